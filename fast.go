// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

// Constants for the linear congruential step of the fast generator.  These
// are the Numerical Recipes parameters, which give the generator a full
// 2^32 period.
const (
	lcgMul uint32 = 1664525
	lcgInc uint32 = 1013904223
)

// fastGen is the fast generator variant.  It produces statistically
// well-distributed 32-bit words cheaply, but anyone who learns the seed
// can predict the stream, so it is only suitable for masking against a
// casual observer.
//
// fastGen is not safe for unsynchronized concurrent use.
type fastGen struct {
	genMeta
	state uint32
}

// newFastGen returns a fast generator seeded from the shared process seed
// material and a freshly drawn nonce.
func newFastGen() *fastGen {
	g := new(fastGen)
	g.seed(seedMaterial(nil), nextNonce())
	return g
}

// seed initializes the generator state from the given material and nonce.
// The state starts as the truncated sum of the eight material words plus
// the nonce, so instances sharing identical material still diverge through
// their distinct nonces.
func (g *fastGen) seed(material *[SeedWordCount]uint32, nonce uint64) {
	var sum uint32
	for _, w := range material {
		sum += w
	}
	g.state = sum + uint32(nonce)
	g.nonce = nonce
}

// nextWord advances the generator and returns the next 32-bit word of its
// stream.
func (g *fastGen) nextWord() uint32 {
	g.state = g.state*lcgMul + lcgInc
	return g.state
}
