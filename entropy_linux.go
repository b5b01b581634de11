// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package maskrand

import "golang.org/x/sys/unix"

// readEntropy fills buf with entropy from the getrandom syscall, blocking
// until the kernel entropy pool has been initialized.  There is no safe
// way to produce unpredictable seed material without the entropy source,
// so failure panics rather than continuing with a weak or fixed seed.
func readEntropy(buf []byte) {
	for len(buf) > 0 {
		n, err := unix.Getrandom(buf, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic("maskrand: getrandom failed: " + err.Error())
		}
		buf = buf[n:]
	}
}
