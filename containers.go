package vessel

import (
	"iter"
	"reflect"
)

// Collection is the sized-collection contract: a container that tracks its
// count and supports add/remove/clear, but offers no random access.
// Implementing this interface makes a type classifiable as a sized
// collection, unless a kind probe (map, slice, array) claims it first.
type Collection interface {
	// Len returns the number of stored elements.
	Len() int

	// Add stores an element. Returns an error if the element cannot
	// be accepted (wrong dynamic type, for typed collections).
	Add(v any) error

	// Remove deletes the first element equal to v.
	// Reports whether an element was removed.
	Remove(v any) bool

	// Clear removes all elements.
	Clear()

	// All iterates the elements in the collection's own order.
	All() iter.Seq[any]
}

// TypedCollection is a Collection that constrains its elements to one
// concrete type. Collections reporting a concrete element type classify
// as a typed sized collection; everything else is untyped.
type TypedCollection interface {
	Collection

	// ElemType returns the element type the collection accepts.
	ElemType() reflect.Type
}

// Synchronizer is the best-effort probe for containers that perform their
// own locking. The proxy never synchronizes on its own; this only surfaces
// the container's claim through Proxy.Synchronized.
type Synchronizer interface {
	Synchronized() bool
}

// View is an immutable view over a container. A View classifies as the
// wrapped container's shape, but every mutation (including element set and
// Clear) fails with ErrUnsupported.
type View struct {
	inner any
}

// ReadOnly wraps a container in an immutable View.
func ReadOnly(v any) View {
	return View{inner: v}
}

// Inner returns the wrapped container.
func (v View) Inner() any {
	return v.inner
}

// Set is a typed sized collection over comparable elements.
// Duplicate elements are stored once. Insertion order is preserved
// for iteration.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]int, len(items))}
	for _, item := range items {
		s.add(item)
	}
	return s
}

func (s *Set[T]) add(item T) {
	if _, ok := s.index[item]; ok {
		return
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)
}

// Len returns the number of stored elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Add stores an element. The dynamic type must be T.
func (s *Set[T]) Add(v any) error {
	item, ok := v.(T)
	if !ok {
		return newCoerceError(v, reflect.TypeFor[T](), nil)
	}
	s.add(item)
	return nil
}

// Remove deletes the element equal to v, if present.
func (s *Set[T]) Remove(v any) bool {
	item, ok := v.(T)
	if !ok {
		return false
	}
	pos, ok := s.index[item]
	if !ok {
		return false
	}
	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, item)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i]] = i
	}
	return true
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.index = make(map[T]int)
	s.items = nil
}

// All iterates elements in insertion order.
func (s *Set[T]) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// ElemType returns T.
func (s *Set[T]) ElemType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Bag is an untyped sized collection. Elements are opaque and duplicates
// are allowed. Iteration follows insertion order.
type Bag struct {
	items []any
}

// NewBag creates a Bag holding the given elements.
func NewBag(items ...any) *Bag {
	return &Bag{items: append([]any(nil), items...)}
}

// Len returns the number of stored elements.
func (b *Bag) Len() int {
	return len(b.items)
}

// Add stores an element.
func (b *Bag) Add(v any) error {
	b.items = append(b.items, v)
	return nil
}

// Remove deletes the first element equal to v, if present.
func (b *Bag) Remove(v any) bool {
	for i, item := range b.items {
		if equalValues(item, v) {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all elements.
func (b *Bag) Clear() {
	b.items = nil
}

// All iterates elements in insertion order.
func (b *Bag) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, item := range b.items {
			if !yield(item) {
				return
			}
		}
	}
}
