package rt

// Object is the contract every managed type satisfies: it owns a Meta and
// exposes a child visitor, the collector's sole view into the
// mutator-visible object graph. ForEachChild must enumerate exactly the
// managed-pointer fields stored directly in the object, not transitively —
// correctness of cycle collection depends on it.
type Object interface {
	// meta returns the object's control block. Implemented by embedding
	// Base; not meant to be implemented by hand.
	meta() *Meta
	setMeta(m *Meta)

	// ForEachChild invokes visit once per managed-pointer field the object
	// stores, passing the child's Object view (nil if the field is empty).
	// The default, inherited by embedding Base without overriding it, is
	// empty — a leaf object with no owning fields.
	ForEachChild(visit func(Object))
}

// Base is embedded by every managed type to satisfy Object's bookkeeping
// half. Types override ForEachChild to declare their owning fields; Base's
// own ForEachChild is the empty default.
//
// Base is the Go stand-in for the C++ original's virtual Object base class:
// Go has no implementation inheritance, so the meta-holding state lives in
// an embedded struct instead of a base class, and the "virtual" dispatch of
// ForEachChild is ordinary Go interface dispatch.
type Base struct {
	m *Meta
}

func (b *Base) meta() *Meta    { return b.m }
func (b *Base) setMeta(m *Meta) { b.m = m }

// ForEachChild is the empty default; override it on the embedding type to
// declare owning fields.
func (b *Base) ForEachChild(func(Object)) {}

// VisitChildren is the ergonomic facility a type's ForEachChild override
// calls with its owning Ref fields, the Go equivalent of the original's
// REGISTER_CHILDREN(a, b, c) comma-separated macro. Each ref's current
// object (or nil, if the ref is empty) is passed to visit in order.
//
//	func (n *Node) ForEachChild(visit func(rt.Object)) {
//		rt.VisitChildren(visit, n.Next, n.Child)
//	}
func VisitChildren[T Object](visit func(Object), refs ...Ref[T]) {
	for _, r := range refs {
		if r.m == nil {
			visit(nil)
			continue
		}

		visit(r.obj)
	}
}
