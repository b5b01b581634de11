// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package maskrand

import cryptorand "crypto/rand"

// readEntropy fills buf with entropy from the platform crypto/rand reader.
// There is no safe way to produce unpredictable seed material without the
// entropy source, so failure panics rather than continuing with a weak or
// fixed seed.
func readEntropy(buf []byte) {
	if _, err := cryptorand.Read(buf); err != nil {
		panic("maskrand: entropy source failed: " + err.Error())
	}
}
