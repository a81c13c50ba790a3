package rt

// Weak is the non-owning weak pointer (§4.4): it holds a share of Meta's
// weak count, but never implies the object is alive. Participates only in
// the weak count; the collector generation sets never see it.
//
// Like Ref, Weak is a plain copied value — no finalizer is attached to it,
// since a finalizer on one copy's address would fire as soon as that copy
// (not necessarily the one the caller keeps) became unreachable. Release
// must be called explicitly by the last owner.
type Weak[T Object] struct {
	m   *Meta
	obj T
}

// NewWeak constructs a weak reference to the object currently held by r.
// An empty r yields an empty Weak.
func NewWeak[T Object](r Ref[T]) Weak[T] {
	if r.m == nil {
		return Weak[T]{}
	}

	r.m.incWeak()

	return Weak[T]{m: r.m, obj: r.obj}
}

// Retain returns a new Weak sharing the same Meta, with the weak count
// incremented.
func (w Weak[T]) Retain() Weak[T] {
	if w.m == nil {
		return Weak[T]{}
	}

	w.m.incWeak()

	return Weak[T]{m: w.m, obj: w.obj}
}

// release decrements the weak count. Once it reaches 0, the Meta is dead —
// Go's own collector reclaims the allocation once nothing references it.
func (w *Weak[T]) release() {
	if w.m == nil {
		return
	}

	m := w.m
	w.m = nil

	var zero T
	w.obj = zero

	m.decWeak()
}

// Release is the public spelling of release.
func (w *Weak[T]) Release() { w.release() }

// Live is the same advisory truth test as Ref.Live: true iff the object
// pointer is non-nil and the strong count is currently nonzero. It is
// advisory — a concurrent collector may invalidate it by the very next
// instruction.
func (w Weak[T]) Live() bool {
	return w.m != nil && w.m.loadStrong() > 0
}

// Lock atomically attempts to upgrade the weak reference to a managed
// pointer, via the CAS loop of §4.1: read current strong; if zero, fail;
// else attempt compare-and-swap to current+1. On success, the returned Ref
// directly owns the strong share the CAS produced (it is not constructed
// through Make, so no extra increment happens). On failure, the returned
// Ref is empty and the Weak's own stored object pointer is cleared so that
// subsequent Live() calls also report dead.
func (w *Weak[T]) Lock() Ref[T] {
	if w.m == nil {
		return Ref[T]{}
	}

	if w.m.tryUpgrade() {
		return Ref[T]{m: w.m, obj: w.obj}
	}

	var zero T
	w.obj = zero

	return Ref[T]{}
}
