package sbml

import (
	"iter"
	"slices"
)

// listOwner is implemented by ListOf so elements can leave their
// previous list when appended to another.
type listOwner interface {
	release(e Element)
}

// ListOf is an ordered list that owns its elements. An element belongs
// to at most one list; appending it elsewhere removes it from the list
// it was in.
type ListOf[T Element] struct {
	SBase
	items []T
}

// TypeCode returns TypeListOf.
func (l *ListOf[T]) TypeCode() TypeCode { return TypeListOf }

// Len returns the number of elements.
func (l *ListOf[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Get returns the i-th element, or the zero value when i is out of
// range.
func (l *ListOf[T]) Get(i int) T {
	var zero T
	if l == nil || i < 0 || i >= len(l.items) {
		return zero
	}
	return l.items[i]
}

// Append adds e at the end of the list, removing it from the list that
// previously held it. Appending an element already in this list is a
// no-op. It returns the index of e.
func (l *ListOf[T]) Append(e T) int {
	b := e.base()
	if b.owner == listOwner(l) {
		return l.indexOf(e)
	}
	if b.owner != nil {
		b.owner.release(e)
	}
	b.owner = l
	l.items = append(l.items, e)
	return len(l.items) - 1
}

// Remove detaches and returns the i-th element, or the zero value when
// i is out of range.
func (l *ListOf[T]) Remove(i int) T {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero
	}
	e := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	e.base().owner = nil
	return e
}

// All iterates over the elements in order.
func (l *ListOf[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i, e := range l.items {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Items returns a copy of the element slice.
func (l *ListOf[T]) Items() []T {
	if l == nil {
		return nil
	}
	return slices.Clone(l.items)
}

func (l *ListOf[T]) indexOf(e T) int {
	for i, x := range l.items {
		if Element(x) == Element(e) {
			return i
		}
	}
	return -1
}

func (l *ListOf[T]) release(e Element) {
	for i, x := range l.items {
		if Element(x) == e {
			l.items = slices.Delete(l.items, i, i+1)
			e.base().owner = nil
			return
		}
	}
}

// identified is implemented by elements looked up by identifier.
type identified interface {
	Element
	Identifier() string
}

// find returns the first element whose identifier is id.
func find[T identified](l *ListOf[T], id string) T {
	var zero T
	if l == nil || id == "" {
		return zero
	}
	for _, e := range l.items {
		if e.Identifier() == id {
			return e
		}
	}
	return zero
}
