// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// chachaBlockSize is the ChaCha20 block size in bytes.  Keystream is
// produced one block at a time and served out in 32-bit words.
const chachaBlockSize = 64

// secureGen is the secure generator variant.  Its words are ChaCha20
// keystream keyed by the shared process seed material, with the instance
// nonce as the cipher IV so that instances sharing identical material
// still produce independent streams.  The output is suitable for masking
// where an adversary must not predict or recover the stream.
//
// secureGen is not safe for unsynchronized concurrent use.
type secureGen struct {
	genMeta
	cipher *chacha20.Cipher
	block  [chachaBlockSize]byte
	used   int
}

// newSecureGen returns a secure generator seeded from the shared process
// seed material and a freshly drawn nonce.
func newSecureGen() *secureGen {
	g := new(secureGen)
	g.seed(seedMaterial(nil), nextNonce())
	return g
}

// seed keys the cipher from the given material and nonce.  The eight
// material words form the 256-bit key directly and the nonce occupies the
// low eight bytes of the IV.
func (g *secureGen) seed(material *[SeedWordCount]uint32, nonce uint64) {
	var key [chacha20.KeySize]byte
	for i, w := range material {
		binary.LittleEndian.PutUint32(key[i*4:], w)
	}
	var iv [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(iv[:8], nonce)

	// Never errors with correct key and nonce sizes.
	cipher, _ := chacha20.NewUnauthenticatedCipher(key[:], iv[:])
	g.cipher = cipher
	g.nonce = nonce
	g.used = chachaBlockSize
}

// nextWord returns the next 32-bit word of the keystream, producing a new
// block whenever the buffered one is exhausted.
func (g *secureGen) nextWord() uint32 {
	if g.used == chachaBlockSize {
		for i := range g.block {
			g.block[i] = 0
		}
		g.cipher.XORKeyStream(g.block[:], g.block[:])
		g.used = 0
	}
	w := binary.LittleEndian.Uint32(g.block[g.used:])
	g.used += 4
	return w
}
