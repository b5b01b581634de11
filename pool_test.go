// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package maskrand

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestPoolReuseContinuesStream ensures an instance released to the pool
// and acquired again is the same instance and continues its stream from
// where it left off rather than being re-seeded.
func TestPoolReuseContinuesStream(t *testing.T) {
	tests := []struct {
		name   string // test description
		secure bool   // generator variant
	}{{
		name:   "fast variant",
		secure: false,
	}, {
		name:   "secure variant",
		secure: true,
	}}

	for _, test := range tests {
		p := newTestPool(test.secure)
		h := &Handle{gen: p.get(), src: p}
		ref := makeRefGen(test.secure, h.gen.instanceNonce())

		for i := 0; i < 4; i++ {
			if got, want := h.Next(), ref.nextWord(); got != want {
				t.Fatalf("%q: word %d mismatch: got %08x, want %08x",
					test.name, i, got, want)
			}
		}

		g := h.gen
		h.Release()

		h2 := &Handle{gen: p.get(), src: p}
		if h2.gen != g {
			t.Fatalf("%q: acquire after release did not reuse the idle "+
				"instance", test.name)
		}
		if got, want := h2.Next(), ref.nextWord(); got != want {
			t.Fatalf("%q: stream did not continue across pool reuse: got "+
				"%08x, want %08x", test.name, got, want)
		}
		h2.Release()
	}
}

// TestPoolMutualExclusion ensures no instance is ever observed as checked
// out by two holders simultaneously while many goroutines acquire and
// release in a tight loop.
func TestPoolMutualExclusion(t *testing.T) {
	const numWorkers = 8
	const numIters = 200

	p := newTestPool(false)
	var checkedOut sync.Map // generator -> *atomic.Int32 guard flag
	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for i := 0; i < numIters; i++ {
				h := &Handle{gen: p.get(), src: p}
				guardIface, _ := checkedOut.LoadOrStore(h.gen, new(atomic.Int32))
				guard := guardIface.(*atomic.Int32)
				if !guard.CompareAndSwap(0, 1) {
					return errors.New("instance checked out by two holders " +
						"at once")
				}
				for j := 0; j < 10; j++ {
					h.Next()
				}
				guard.Store(0)
				h.Release()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

// TestPoolCheckoutAccounting runs the pooled strategy under concurrent
// load and ensures that every instance the pool ever constructed ends up
// back on the free list once all handles are released, with the number of
// constructed instances bounded by the worker count.
func TestPoolCheckoutAccounting(t *testing.T) {
	const numWorkers = 8
	const numIters = 125
	const wordsPerCheckout = 100

	p := newTestPool(false)
	var instances sync.Map // generator -> struct{}
	var g errgroup.Group
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for i := 0; i < numIters; i++ {
				h := &Handle{gen: p.get(), src: p}
				instances.Store(h.gen, struct{}{})
				for j := 0; j < wordsPerCheckout; j++ {
					h.Next()
				}
				h.Release()
			}
			return nil
		})
	}
	_ = g.Wait()

	var distinct int
	instances.Range(func(_, _ any) bool {
		distinct++
		return true
	})
	if distinct > numWorkers {
		t.Fatalf("pool constructed %d instances for %d concurrent workers",
			distinct, numWorkers)
	}
	if idle := p.idle(); idle != distinct {
		t.Fatalf("free list holds %d instances, want all %d constructed",
			idle, distinct)
	}
}

// TestPoolDrain ensures drain discards exactly the idle instances, leaves
// checked-out instances with their holders, and leaves the pool usable.
func TestPoolDrain(t *testing.T) {
	p := newTestPool(false)

	// Force three distinct instances by holding them simultaneously.
	h1 := &Handle{gen: p.get(), src: p}
	h2 := &Handle{gen: p.get(), src: p}
	h3 := &Handle{gen: p.get(), src: p}
	h1.Release()
	h2.Release()

	if n := p.drain(); n != 2 {
		t.Fatalf("drain discarded %d instances, want 2", n)
	}
	if n := p.idle(); n != 0 {
		t.Fatalf("free list holds %d instances after drain, want 0", n)
	}

	// The checked-out instance is untouched and its release after the
	// drain lands on the now-empty free list.
	h3.Next()
	h3.Release()
	if n := p.idle(); n != 1 {
		t.Fatalf("free list holds %d instances, want 1", n)
	}

	// The pool remains usable for fresh construction.
	h4 := &Handle{gen: p.get(), src: p}
	h4.Next()
	h4.Release()
}
