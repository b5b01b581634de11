// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import "fmt"

// Strategy selects how a [Supply] shares generator instances between
// callers.  It is a configuration decision made once per supply, not per
// call.
type Strategy int

const (
	// StrategyPooled hands out instances from the process-wide
	// per-variant free-list pools.  Handles from a pooled supply may be
	// acquired from any goroutine; each checked-out instance belongs to
	// one caller chain at a time and returns to the pool on its final
	// release.
	StrategyPooled Strategy = iota

	// StrategyExclusive caches one instance per variant inside the
	// supply itself, with no locking and no reference counting.  This is
	// the cheaper path for callers that can confine a supply to a single
	// goroutine, standing in for the per-thread storage that the pooled
	// strategy exists to avoid depending on.
	StrategyExclusive
)

// String returns the Strategy as a human-readable name.
func (s Strategy) String() string {
	switch s {
	case StrategyPooled:
		return "pooled"
	case StrategyExclusive:
		return "exclusive"
	}
	return fmt.Sprintf("unknown strategy (%d)", int(s))
}

// ParseStrategy returns the Strategy with the given human-readable name as
// returned by its String method.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "pooled":
		return StrategyPooled, nil
	case "exclusive":
		return StrategyExclusive, nil
	}
	str := fmt.Sprintf("unknown strategy %q", name)
	return 0, makeError(ErrUnknownStrategy, str)
}

// Supply is the factory for generator handles.  The sharing strategy is
// fixed at construction while the quality tier is chosen per call.
//
// A supply using [StrategyPooled] is safe for concurrent access.  A supply
// using [StrategyExclusive] must be confined to a single goroutine.
type Supply struct {
	strategy Strategy

	// fast and secure cache the exclusive-strategy instances, created on
	// first request and reused for the supply's lifetime.  They remain
	// nil under the pooled strategy.
	fast   generator
	secure generator
}

// NewSupply returns a supply that hands out generator handles using the
// given sharing strategy.
func NewSupply(strategy Strategy) *Supply {
	return &Supply{strategy: strategy}
}

// PRNG returns a handle to a generator of the requested quality tier.
// When secure is true the generator is the cryptographically strong
// ChaCha20 variant, otherwise it is the fast non-cryptographic variant.
//
// The caller must release the handle when done with it so pooled instances
// can be reused.
func (s *Supply) PRNG(secure bool) *Handle {
	if s.strategy == StrategyExclusive {
		if secure {
			if s.secure == nil {
				s.secure = newSecureGen()
			}
			return &Handle{gen: s.secure}
		}
		if s.fast == nil {
			s.fast = newFastGen()
		}
		return &Handle{gen: s.fast}
	}

	p := fastPool
	if secure {
		p = securePool
	}
	return &Handle{gen: p.get(), src: p}
}

// defaultSupply backs the package-level MakePRNG convenience function.
// Pooling is the process-wide default since it is safe from any goroutine.
var defaultSupply = NewSupply(StrategyPooled)

// MakePRNG returns a handle to a generator of the requested quality tier
// from the default pooled supply.  It is safe for concurrent access.
func MakePRNG(secure bool) *Handle {
	return defaultSupply.PRNG(secure)
}
