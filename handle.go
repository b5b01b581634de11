// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import (
	"encoding/binary"
	"math/bits"
)

// Handle is the caller-facing reference to a generator instance.  It hides
// which variant produced the instance and which strategy owns it, so the
// consuming code is identical across all four combinations.
//
// While a handle is held, the underlying instance belongs exclusively to
// the holding call chain.  Using a handle after its final [Handle.Release]
// or calling [Handle.Next] on one instance from multiple goroutines
// without external synchronization is a caller error; neither is checked
// at runtime in order to keep the hot path free of branches.
//
// Handles must be obtained from [Supply.PRNG] or [MakePRNG]; the zero
// value is not valid.
type Handle struct {
	gen generator
	src *pool // nil for exclusive-strategy handles
}

// Next returns the next 32-bit word of the generator stream.  The stream
// is infinite and cannot be restarted or rewound.
func (h *Handle) Next() uint32 {
	return h.gen.nextWord()
}

// Acquire records an additional hold on the same underlying instance and
// returns a handle to it, which supports nested holding within one call
// chain.  Each successful Acquire must be balanced by a [Handle.Release].
// Under the exclusive strategy the hold bookkeeping is unnecessary and
// this simply returns the receiver.
func (h *Handle) Acquire() *Handle {
	if h.src != nil {
		h.gen.refCount().Add(1)
	}
	return h
}

// Release gives up one hold on the underlying instance.  Under the pooled
// strategy, releasing the last hold returns the instance to its pool with
// its stream position intact for the next caller.  Under the exclusive
// strategy this is a no-op since the owning supply keeps the instance for
// its own lifetime.
func (h *Handle) Release() {
	if h.src == nil {
		return
	}
	if h.gen.refCount().Add(-1) == 0 {
		h.src.put(h.gen)
	}
}

// Uint32N returns a random uint32 in the range [0,n) without modulo bias.
// Masking layers use this for bounded quantities such as padding lengths.
func (h *Handle) Uint32N(n uint32) uint32 {
	if n&(n-1) == 0 { // n is power of two, can mask
		return h.Next() & (n - 1)
	}

	// Multiply-shift reduction with rejection of the biased region.  See
	// https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	hi, lo := bits.Mul32(h.Next(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul32(h.Next(), n)
		}
	}
	return hi
}

// Fill fills p with bytes drawn from the generator stream, encoding each
// word little endian.  Any unused bytes of the final word are discarded,
// so consecutive Fill calls with short buffers do not produce the same
// bytes as one call with a large buffer.
func (h *Handle) Fill(p []byte) {
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, h.Next())
		p = p[4:]
	}
	if len(p) > 0 {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], h.Next())
		copy(p, tail[:])
	}
}
