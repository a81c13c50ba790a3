package collections

import (
	"testing"

	"github.com/orizon-lang/orizon-rt/internal/rt"
)

type leaf struct {
	rt.Base
	v int
}

func newLeaf(v int) rt.Ref[*leaf] { return rt.Make[*leaf](&leaf{v: v}) }

func TestRefArrayPushPopShiftUnshift(t *testing.T) {
	a := NewRefArray[*leaf](0)
	a.Get().Push(newLeaf(1), newLeaf(2))

	if a.Get().Length() != 2 {
		t.Fatalf("expected length 2, got %d", a.Get().Length())
	}

	popped := a.Get().Pop()
	if popped.Get().v != 2 {
		t.Fatalf("expected pop to return 2, got %d", popped.Get().v)
	}

	a.Get().Unshift(newLeaf(0))
	if a.Get().At(0).Get().v != 0 {
		t.Fatalf("expected unshift to place 0 at the front, got %d", a.Get().At(0).Get().v)
	}

	shifted := a.Get().Shift()
	if shifted.Get().v != 0 {
		t.Fatalf("expected shift to return 0, got %d", shifted.Get().v)
	}
}

func TestRefArrayNegativeIndexing(t *testing.T) {
	a := RefArrayOf(newLeaf(1), newLeaf(2), newLeaf(3))

	if a.Get().At(-1).Get().v != 3 {
		t.Fatalf("expected At(-1) to return the last element, got %d", a.Get().At(-1).Get().v)
	}
}

func TestRefArraySliceAndSplice(t *testing.T) {
	a := RefArrayOf(newLeaf(1), newLeaf(2), newLeaf(3), newLeaf(4))

	sl := a.Get().Slice(1, 3)
	if sl.Get().Length() != 2 || sl.Get().At(0).Get().v != 2 {
		t.Fatalf("unexpected slice result")
	}

	removed := a.Get().Splice(1, 2, newLeaf(9))
	if removed.Get().Length() != 2 {
		t.Fatalf("expected 2 removed elements, got %d", removed.Get().Length())
	}

	if a.Get().Length() != 3 || a.Get().At(1).Get().v != 9 {
		t.Fatalf("expected splice to insert replacement, got length %d", a.Get().Length())
	}
}

func TestRefArrayForEachChildVisitsLiveElements(t *testing.T) {
	a := RefArrayOf(newLeaf(1), newLeaf(2))

	var seen []int
	a.Get().ForEachChild(func(o rt.Object) {
		seen = append(seen, o.(*leaf).v)
	})

	if len(seen) != 2 {
		t.Fatalf("expected ForEachChild to visit 2 children, got %d", len(seen))
	}
}

func TestRefArrayFilterFindSomeEvery(t *testing.T) {
	a := RefArrayOf(newLeaf(1), newLeaf(2), newLeaf(3), newLeaf(4))

	even := a.Get().Filter(func(r rt.Ref[*leaf], _ int) bool { return r.Get().v%2 == 0 })
	if even.Get().Length() != 2 {
		t.Fatalf("expected 2 even elements, got %d", even.Get().Length())
	}

	found := a.Get().Find(func(r rt.Ref[*leaf], _ int) bool { return r.Get().v == 3 })
	if found.IsEmpty() || found.Get().v != 3 {
		t.Fatal("expected Find to locate the element with value 3")
	}

	if !a.Get().Some(func(r rt.Ref[*leaf], _ int) bool { return r.Get().v > 3 }) {
		t.Fatal("expected Some to find an element greater than 3")
	}

	if a.Get().Every(func(r rt.Ref[*leaf], _ int) bool { return r.Get().v > 0 }) == false {
		t.Fatal("expected Every element to be greater than 0")
	}
}

func TestRefArrayReverseAndSort(t *testing.T) {
	a := RefArrayOf(newLeaf(3), newLeaf(1), newLeaf(2))

	a.Get().Sort(func(x, y rt.Ref[*leaf]) bool { return x.Get().v < y.Get().v })
	if a.Get().At(0).Get().v != 1 || a.Get().At(2).Get().v != 3 {
		t.Fatal("expected ascending sort order")
	}

	a.Get().Reverse()
	if a.Get().At(0).Get().v != 3 {
		t.Fatal("expected reverse to flip order")
	}
}

func TestMapRefArrayTransformsElementType(t *testing.T) {
	a := RefArrayOf(newLeaf(1), newLeaf(2))

	mapped := MapRefArray[*leaf, *leaf](a, func(r rt.Ref[*leaf], _ int) rt.Ref[*leaf] {
		return newLeaf(r.Get().v * 10)
	})

	if mapped.Get().At(0).Get().v != 10 || mapped.Get().At(1).Get().v != 20 {
		t.Fatal("expected mapped values to be scaled by 10")
	}
}
