// Package rt implements the managed-object runtime: a reference-counted
// strong pointer, a non-owning weak pointer, and a trial-deletion cycle
// collector that reclaims reference cycles pure refcounting cannot.
package rt

import "go.uber.org/atomic"

// Meta is the per-object control block: strong count, weak count, and the
// collector's scratch field. One Meta per managed object, 1:1.
//
// weak is born at 1 — the object's own birth slot, released when strong
// reaches 0. Meta is freed exactly once, by whichever handle (strong, weak,
// or the collector) decrements weak from 1 to 0.
type Meta struct {
	strong atomic.Uint32
	weak   atomic.Uint32

	// outRef is collector scratch space: valid only while a collection is
	// in progress on the generation this object belongs to. It collapses
	// three concepts into one field — snapshot count, reachability mark,
	// and worklist membership — per the design's trial-deletion algorithm.
	outRef int
}

// newMeta returns a fresh Meta with strong=1 (the caller's initial handle)
// and weak=1 (the birth slot).
func newMeta() *Meta {
	m := &Meta{}
	m.strong.Store(1)
	m.weak.Store(1)

	return m
}

func (m *Meta) loadStrong() uint32 { return m.strong.Load() }

func (m *Meta) incStrong() { m.strong.Inc() }

// decStrong returns the value strong held before the decrement.
func (m *Meta) decStrong() uint32 {
	// Acquire-release: the decrement that takes strong to 0 must
	// synchronize with every prior use of the object, so the destroyer
	// observes them.
	for {
		cur := m.strong.Load()
		if m.strong.CompareAndSwap(cur, cur-1) {
			return cur
		}
	}
}

// zeroStrong unconditionally zeroes strong. Used only by the collector when
// it has decided the object is unreachable.
func (m *Meta) zeroStrong() { m.strong.Store(0) }

func (m *Meta) incWeak() { m.weak.Inc() }

// decWeak returns the value weak held before the decrement.
func (m *Meta) decWeak() uint32 {
	for {
		cur := m.weak.Load()
		if m.weak.CompareAndSwap(cur, cur-1) {
			return cur
		}
	}
}

// tryUpgrade attempts to bump strong from some nonzero value to value+1.
// Returns false if strong was already 0 (the object is gone).
func (m *Meta) tryUpgrade() bool {
	for {
		cur := m.strong.Load()
		if cur == 0 {
			return false
		}

		if m.strong.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}
