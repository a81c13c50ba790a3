package rt

// Destroyer is the explicit stand-in for a C++ destructor body: Go has no
// destructors, so any managed type whose cleanup must run synchronously on
// last release, and whose cleanup must be observable-or-not by sibling
// cycle members per the destructor-visibility rule, implements OnDestroy.
// It is invoked exactly once, after the strong count has already reached 0:
// by Ref.Release once its decrement takes strong to 0, or by the collector
// after it has zeroed strong on an unreachable cycle member.
type Destroyer interface {
	OnDestroy()
}

// Ref is the managed pointer (§4.3 of the spec): an owning handle that
// shares a Meta with every other Ref to the same object, and releases its
// share on Release. T is instantiated with the pointer-ish type that
// implements Object (e.g. Ref[*Node]), so the zero value of Ref[T] is a
// valid "empty" handle — obj is a nil T and meta is nil.
//
// Ref is a plain value, copied on every assignment and return, so there is
// no finalizer safety net here: a finalizer attached to one copy's address
// would fire as soon as that particular copy became unreachable, which
// happens the instant a function returns Ref by value. Release must be
// called explicitly by whichever copy is the last owner.
type Ref[T Object] struct {
	m   *Meta
	obj T
}

// Make constructs a managed object: it registers obj with the collector's
// young generation and returns a handle with strong=1. obj must not already
// have a Meta attached (i.e. must not already be owned by another Ref).
func Make[T Object](obj T) Ref[T] {
	return makeRef(obj, true)
}

// MakeNoGC constructs a managed object without registering it with the
// collector: it is still reference-counted, but excluded from cycle
// collection. Intended for statically-proven-acyclic data.
func MakeNoGC[T Object](obj T) Ref[T] {
	return makeRef(obj, false)
}

func makeRef[T Object](obj T, track bool) Ref[T] {
	m := newMeta()
	obj.setMeta(m)

	r := Ref[T]{m: m, obj: obj}
	if track {
		trackNew(obj)
	}

	return r
}

// IsEmpty reports whether the handle owns neither a Meta nor an object.
func (r Ref[T]) IsEmpty() bool { return r.m == nil }

// Live reports whether the object pointer is non-nil and the strong count
// is currently non-zero. This is the truth test of §4.3: during a collector
// sweep a handle may still hold an object pointer whose Meta has been
// zeroStrong'd, and Live must report false for that handle so destructors
// never reach already-scheduled-for-deletion objects.
func (r Ref[T]) Live() bool {
	// r.obj and r.m are always set or cleared together (see makeRef,
	// Retain, Release), so m == nil is exactly "no object pointer".
	return r.m != nil && r.m.loadStrong() > 0
}

// Get dereferences the handle. Calling Get on an empty handle is a
// programmer error (undefined behavior, not detected — §7 category 1).
func (r Ref[T]) Get() T { return r.obj }

// Retain returns a new handle sharing the same Meta and object, with the
// strong count incremented — the copy-constructor equivalent.
func (r Ref[T]) Retain() Ref[T] {
	if r.m != nil {
		r.m.incStrong()
	}

	return Ref[T]{m: r.m, obj: r.obj}
}

// Release decrements the strong count. If the decrement takes strong from 1
// to 0, it untracks the object from the collector, invokes OnDestroy if the
// object implements Destroyer, then decrements weak; if that reaches 0, the
// Meta is considered dead (Go's own GC reclaims the Meta allocation once
// nothing references it — there is no explicit free, only the bookkeeping
// that says it is safe to drop the last reference to it).
//
// Release is idempotent only in the sense that calling it on an
// already-empty handle is a no-op; calling it twice on two copies of the
// same handle is the normal "two owners release independently" case and is
// exactly what the strong count exists to coordinate.
func (r *Ref[T]) Release() {
	if r.m == nil {
		return
	}

	m := r.m
	obj := r.obj

	r.m = nil
	var zero T
	r.obj = zero

	if m.decStrong() == 1 {
		untrackDead(obj)

		if d, ok := any(obj).(Destroyer); ok {
			d.OnDestroy()
		}

		m.decWeak()
	}
}

// Equal reports identity: true iff both handles reference the same object.
func (r Ref[T]) Equal(other Ref[T]) bool {
	if r.m == nil && other.m == nil {
		return true
	}

	// Boxing through any is always comparable: the dynamic type in
	// practice is a pointer, which is always comparable, so this never
	// panics even though the generic T itself isn't known to be
	// comparable at compile time.
	return any(r.obj) == any(other.obj)
}

// As attempts a runtime downcast to U, returning an empty handle on
// failure. It retains a fresh share of the strong count on success.
func As[T, U Object](r Ref[T]) Ref[U] {
	u, ok := any(r.Get()).(U)
	if !ok {
		reportDowncastFailure(r.Get())
		return Ref[U]{}
	}

	if r.m != nil {
		r.m.incStrong()
	}

	return Ref[U]{m: r.m, obj: u}
}
