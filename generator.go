// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import "sync/atomic"

// generator is the single capability shared by both variants: produce the
// next 32-bit word of an infinite, non-restartable stream.
//
// Implementations are not safe for unsynchronized concurrent use.  An
// instance is logically owned by whoever currently holds a handle to it,
// so exclusivity comes from the ownership discipline rather than locking.
type generator interface {
	// nextWord advances the stream and returns its next 32-bit word.
	nextWord() uint32

	// instanceNonce returns the nonce the instance was constructed with.
	instanceNonce() uint64

	// refCount returns the pool reference count attached to the
	// instance.  It is only meaningful under the pooled strategy.
	refCount() *atomic.Int32
}

// genMeta carries the per-instance bookkeeping common to both generator
// variants: the construction nonce and the pool reference count.  The
// reference count belongs to the instance rather than any handle so that
// nested holds on one instance share a single count.
type genMeta struct {
	nonce uint64
	refs  atomic.Int32
}

func (m *genMeta) instanceNonce() uint64 {
	return m.nonce
}

func (m *genMeta) refCount() *atomic.Int32 {
	return &m.refs
}
