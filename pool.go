// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import "sync"

// pool is a free list of idle generator instances of a single variant.
// Instances are checked out of and back into the pool so that their
// construction and seeding cost is paid once and their stream position is
// preserved across callers.
//
// An instance is always in exactly one place: on the free list while idle,
// or held by exactly one caller chain while checked out.  The free list is
// the only mutable state shared between callers and every touch of it
// happens under the mutex.  Construction of new instances happens outside
// the lock so the critical section never exceeds a pointer swap.
type pool struct {
	// These fields are set at initialization time and never modified
	// after.
	name string
	make func() generator

	mtx  sync.Mutex
	free []generator // idle instances, LIFO
}

// fastPool and securePool are the process-wide pooled-strategy singletons,
// one per generator variant.
var (
	fastPool   = &pool{name: "fast", make: func() generator { return newFastGen() }}
	securePool = &pool{name: "secure", make: func() generator { return newSecureGen() }}
)

// get returns an idle generator from the free list, constructing a new one
// when the list is empty.  The returned instance carries a single
// reference for the caller.
func (p *pool) get() generator {
	p.mtx.Lock()
	if n := len(p.free); n > 0 {
		g := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		p.mtx.Unlock()

		g.refCount().Store(1)
		return g
	}
	p.mtx.Unlock()

	g := p.make()
	g.refCount().Store(1)
	log.Tracef("%s pool: constructed generator instance (nonce %d)",
		p.name, g.instanceNonce())
	return g
}

// put returns a generator whose reference count reached zero to the free
// list.  The generator state is deliberately left untouched; the next
// caller continues the same stream rather than triggering a re-seed.
func (p *pool) put(g generator) {
	p.mtx.Lock()
	p.free = append(p.free, g)
	p.mtx.Unlock()
}

// idle returns the number of generators currently on the free list.
func (p *pool) idle() int {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return len(p.free)
}

// drain discards every generator currently idle on the free list and
// returns how many were discarded.  Instances checked out at drain time
// are intentionally left with their holders, since reclaiming them here
// would race with the holder; callers are expected to release every handle
// before shutdown and any stragglers on abnormal shutdown are abandoned.
// The pool remains usable after a drain.
func (p *pool) drain() int {
	p.mtx.Lock()
	n := len(p.free)
	p.free = nil
	p.mtx.Unlock()

	log.Debugf("%s pool: drained %d idle generator instances", p.name, n)
	return n
}
