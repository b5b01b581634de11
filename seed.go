// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import (
	"encoding/binary"
	"sync"
	"sync/atomic"
)

// SeedWordCount is the number of 32-bit words of seed material shared by
// every generator instance in the process.
const SeedWordCount = 8

var (
	seedOnce  sync.Once
	seedWords [SeedWordCount]uint32

	// nonceCounter is incremented atomically once per generator instance
	// construction, regardless of variant, so no two instances in the
	// process are ever constructed with the same nonce.
	nonceCounter atomic.Uint64
)

// seedMaterial returns the process-wide seed material, computing it on the
// first call.  When supplied is non-nil on the computing call, the material
// is taken from it verbatim; otherwise it is read from the operating system
// entropy source.  A non-nil supplied value on any later call is silently
// ignored and the already-computed material is returned.
//
// This function is safe for concurrent access.
func seedMaterial(supplied *[SeedWordCount]uint32) *[SeedWordCount]uint32 {
	seedOnce.Do(func() {
		if supplied != nil {
			seedWords = *supplied
			return
		}

		var buf [SeedWordCount * 4]byte
		readEntropy(buf[:])
		for i := range seedWords {
			seedWords[i] = binary.LittleEndian.Uint32(buf[i*4:])
		}
	})
	return &seedWords
}

// SetSeedMaterial supplies the process-wide seed material directly instead
// of deriving it from the operating system entropy source.  It only has an
// effect when the material has not already been computed, which happens on
// the first call to this function, [SeedMaterial], or any generator
// construction.  Later calls are silently ignored, so callers that need to
// control seeding must do so before handing out any generators.
//
// This function is safe for concurrent access.
func SetSeedMaterial(words [SeedWordCount]uint32) {
	seedMaterial(&words)
}

// SeedMaterial returns a copy of the process-wide seed material, deriving
// it from the operating system entropy source if it has not yet been
// computed.  Every call after the first returns an identical value.
//
// This function is safe for concurrent access.
func SeedMaterial() [SeedWordCount]uint32 {
	return *seedMaterial(nil)
}

// nextNonce atomically draws the next process-wide instance nonce.  The
// returned values are strictly monotonic, so no two generator instances
// ever observe the same nonce.
func nextNonce() uint64 {
	return nonceCounter.Add(1)
}
