// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package maskrand supplies reusable pseudorandom generator instances for
// masking outbound protocol frames.
//
// Generators come in two quality tiers.  The fast tier is a lightweight
// linear congruential generator that is statistically well distributed but
// predictable to anyone who learns its seed, which suffices for masking
// against a casual observer.  The secure tier is a ChaCha20 keystream that
// remains unpredictable to an adversary.
//
// All generators in a process share the same lazily-computed 8-word seed
// material, sourced from the operating system entropy source unless
// [SetSeedMaterial] supplies it first, and each generator instance draws a
// unique nonce at construction so that instances never produce overlapping
// streams despite the shared material.
//
// Instances are reused rather than reconstructed.  A [Supply] built with
// [StrategyPooled] checks instances in and out of process-wide per-variant
// free lists, so a released generator retains its stream position for the
// next caller.  A [Supply] built with [StrategyExclusive] caches one
// instance per tier for a single owning goroutine and skips all locking
// and reference counting.
//
// A [Handle] is the only caller-facing reference to an instance.  While a
// handle is held, its instance belongs exclusively to the holding call
// chain; calling [Handle.Next] on one instance from multiple goroutines
// without external synchronization is a caller error that this package
// deliberately does not defend against.
package maskrand
