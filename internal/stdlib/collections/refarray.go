package collections

import (
	"sort"
	"strings"

	"github.com/orizon-lang/orizon-rt/internal/rt"
)

// RefArray is a managed, child-enumerating dynamic array of rt.Ref[T]
// elements whose ForEachChild walks every non-empty element, the Go
// stand-in for original_source/src/core/ds/array.hpp's Array<T> specialized
// over AutoRef<U> elements ($forEachChild visits every element when
// isAutoRef_v<T>). This package has no array type for non-Ref elements;
// RefArray exists specifically so the collector can see through
// array-held cycles.
type RefArray[T rt.Object] struct {
	rt.Base
	data []rt.Ref[T]
}

// apiConstraint pins the range of internal/rt API versions this package was
// written against; rt_strict builds check it at construction (see
// rt.CheckAPICompatible), the default build does not.
const apiConstraint = ">=1.0.0, <2.0.0"

// NewRefArray constructs an empty managed array. It is always tracked,
// since an array whose elements form a cycle is the whole reason this type
// exists.
func NewRefArray[T rt.Object](capHint int) rt.Ref[*RefArray[T]] {
	rt.CheckAPICompatible(apiConstraint)

	if capHint < 0 {
		capHint = 0
	}

	return rt.Make[*RefArray[T]](&RefArray[T]{data: make([]rt.Ref[T], 0, capHint)})
}

func RefArrayOf[T rt.Object](xs ...rt.Ref[T]) rt.Ref[*RefArray[T]] {
	out := NewRefArray[T](len(xs))
	out.Get().data = append(out.Get().data, xs...)

	return out
}

func (a *RefArray[T]) ForEachChild(visit func(rt.Object)) {
	for _, r := range a.data {
		if r.IsEmpty() {
			continue
		}

		visit(r.Get())
	}
}

func (a *RefArray[T]) Length() int { return len(a.data) }

func (a *RefArray[T]) At(i int) rt.Ref[T] {
	idx := a.normalizeIdx(i)
	if idx >= len(a.data) {
		return rt.Ref[T]{}
	}

	return a.data[idx]
}

func (a *RefArray[T]) normalizeIdx(idx int) int {
	n := len(a.data)
	if idx < -n {
		return 0
	}

	if idx < 0 {
		return n + idx
	}

	if idx < n {
		return idx
	}

	return n
}

func (a *RefArray[T]) Push(items ...rt.Ref[T]) int {
	a.data = append(a.data, items...)
	return len(a.data)
}

func (a *RefArray[T]) Pop() rt.Ref[T] {
	if len(a.data) == 0 {
		return rt.Ref[T]{}
	}

	t := a.data[len(a.data)-1]
	a.data = a.data[:len(a.data)-1]

	return t
}

func (a *RefArray[T]) Shift() rt.Ref[T] {
	if len(a.data) == 0 {
		return rt.Ref[T]{}
	}

	t := a.data[0]
	a.data = a.data[1:]

	return t
}

func (a *RefArray[T]) Unshift(items ...rt.Ref[T]) int {
	a.data = append(append(append([]rt.Ref[T]{}, items...), a.data...))
	return len(a.data)
}

func (a *RefArray[T]) Concat(others ...rt.Ref[*RefArray[T]]) rt.Ref[*RefArray[T]] {
	total := len(a.data)
	for _, o := range others {
		total += o.Get().Length()
	}

	out := NewRefArray[T](total)
	out.Get().data = append(out.Get().data, a.data...)

	for _, o := range others {
		out.Get().data = append(out.Get().data, o.Get().data...)
	}

	return out
}

func (a *RefArray[T]) Slice(start, end int) rt.Ref[*RefArray[T]] {
	i, j := a.normalizeIdx(start), a.normalizeIdx(end)
	if i >= j {
		return NewRefArray[T](0)
	}

	return RefArrayOf(a.data[i:j]...)
}

// Splice removes deleteCount elements starting at start, replacing them
// with items, and returns the removed elements as a new array.
func (a *RefArray[T]) Splice(start, deleteCount int, items ...rt.Ref[T]) rt.Ref[*RefArray[T]] {
	startIdx := a.normalizeIdx(start)

	end := startIdx + deleteCount
	if end > len(a.data) {
		end = len(a.data)
	}

	removed := RefArrayOf(a.data[startIdx:end]...)

	tail := append([]rt.Ref[T]{}, a.data[end:]...)
	a.data = append(append(a.data[:startIdx], items...), tail...)

	return removed
}

func (a *RefArray[T]) Reverse() {
	for i, j := 0, len(a.data)-1; i < j; i, j = i+1, j-1 {
		a.data[i], a.data[j] = a.data[j], a.data[i]
	}
}

func (a *RefArray[T]) Sort(less func(x, y rt.Ref[T]) bool) {
	sort.SliceStable(a.data, func(i, j int) bool { return less(a.data[i], a.data[j]) })
}

func (a *RefArray[T]) ForEach(f func(rt.Ref[T], int)) {
	for i, t := range a.data {
		f(t, i)
	}
}

func (a *RefArray[T]) Filter(f func(rt.Ref[T], int) bool) rt.Ref[*RefArray[T]] {
	out := NewRefArray[T](0)

	for i, t := range a.data {
		if f(t, i) {
			out.Get().data = append(out.Get().data, t)
		}
	}

	return out
}

func (a *RefArray[T]) Find(f func(rt.Ref[T], int) bool) rt.Ref[T] {
	for i, t := range a.data {
		if f(t, i) {
			return t
		}
	}

	return rt.Ref[T]{}
}

func (a *RefArray[T]) FindIndex(f func(rt.Ref[T], int) bool) int {
	for i, t := range a.data {
		if f(t, i) {
			return i
		}
	}

	return -1
}

func (a *RefArray[T]) FindLast(f func(rt.Ref[T], int) bool) rt.Ref[T] {
	for i := len(a.data) - 1; i >= 0; i-- {
		if f(a.data[i], i) {
			return a.data[i]
		}
	}

	return rt.Ref[T]{}
}

func (a *RefArray[T]) FindLastIndex(f func(rt.Ref[T], int) bool) int {
	for i := len(a.data) - 1; i >= 0; i-- {
		if f(a.data[i], i) {
			return i
		}
	}

	return -1
}

func (a *RefArray[T]) Some(f func(rt.Ref[T], int) bool) bool {
	for i, t := range a.data {
		if f(t, i) {
			return true
		}
	}

	return false
}

func (a *RefArray[T]) Every(f func(rt.Ref[T], int) bool) bool {
	for i, t := range a.data {
		if !f(t, i) {
			return false
		}
	}

	return true
}

func (a *RefArray[T]) Fill(value rt.Ref[T], start, end int) {
	i, j := a.normalizeIdx(start), a.normalizeIdx(end)
	for ; i < j; i++ {
		a.data[i] = value
	}
}

func (a *RefArray[T]) ToReversed() rt.Ref[*RefArray[T]] {
	out := NewRefArray[T](len(a.data))

	for i := len(a.data) - 1; i >= 0; i-- {
		out.Get().data = append(out.Get().data, a.data[i])
	}

	return out
}

func (a *RefArray[T]) ToSorted(less func(x, y rt.Ref[T]) bool) rt.Ref[*RefArray[T]] {
	out := RefArrayOf(a.data...)
	out.Get().Sort(less)

	return out
}

func (a *RefArray[T]) With(index int, value rt.Ref[T]) rt.Ref[*RefArray[T]] {
	out := RefArrayOf(a.data...)
	idx := index
	if idx < 0 {
		idx = len(out.Get().data) + idx
	}

	out.Get().data[idx] = value

	return out
}

func (a *RefArray[T]) Join(sep string, toString func(rt.Ref[T]) string) string {
	parts := make([]string, len(a.data))
	for i, t := range a.data {
		parts[i] = toString(t)
	}

	return strings.Join(parts, sep)
}

// MapRefArray transforms a RefArray[T] into a RefArray[U]; it is a free
// function rather than a method because Go methods cannot introduce a new
// type parameter.
func MapRefArray[T, U rt.Object](a rt.Ref[*RefArray[T]], f func(rt.Ref[T], int) rt.Ref[U]) rt.Ref[*RefArray[U]] {
	out := NewRefArray[U](a.Get().Length())

	for i, t := range a.Get().data {
		out.Get().data = append(out.Get().data, f(t, i))
	}

	return out
}
