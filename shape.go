package vessel

import "reflect"

// Shape classifies a container by its capability set. Exactly one shape is
// assigned per container type, by the priority order of the constants below
// (first match wins).
type Shape int

const (
	// ShapeInvalid is the zero value; no classified proxy carries it.
	ShapeInvalid Shape = iota

	// ShapeTypedMap is an associative container with concrete key and
	// value types (map[string]int).
	ShapeTypedMap

	// ShapeUntypedMap is an associative container whose key or value
	// type is opaque (map[string]any, map[any]any).
	ShapeUntypedMap

	// ShapeTypedList is a random-access sequence of concretely typed
	// elements ([]int, *[]int, [4]int).
	ShapeTypedList

	// ShapeUntypedList is a random-access sequence of opaque elements
	// ([]any, *[]any).
	ShapeUntypedList

	// ShapeTypedCollection is a sized add/remove container without
	// random access, constrained to one element type (Set[T]).
	ShapeTypedCollection

	// ShapeUntypedCollection is a sized add/remove container without
	// random access, holding opaque elements (Bag).
	ShapeUntypedCollection

	// ShapeTypedSequence is a single-pass sequence of concretely typed
	// elements (string, chan int, iter.Seq[int]). Count is unknown
	// without full traversal.
	ShapeTypedSequence

	// ShapeUntypedSequence is a single-pass sequence of opaque elements
	// (chan any, iter.Seq[any]).
	ShapeUntypedSequence
)

// validShapes contains all assignable shapes.
var validShapes = map[Shape]bool{
	ShapeTypedMap:          true,
	ShapeUntypedMap:        true,
	ShapeTypedList:         true,
	ShapeUntypedList:       true,
	ShapeTypedCollection:   true,
	ShapeUntypedCollection: true,
	ShapeTypedSequence:     true,
	ShapeUntypedSequence:   true,
}

// IsValidShape returns true if s is one of the eight assignable shapes.
func IsValidShape(s Shape) bool {
	return validShapes[s]
}

func (s Shape) String() string {
	switch s {
	case ShapeTypedMap:
		return "typed-map"
	case ShapeUntypedMap:
		return "untyped-map"
	case ShapeTypedList:
		return "typed-list"
	case ShapeUntypedList:
		return "untyped-list"
	case ShapeTypedCollection:
		return "typed-collection"
	case ShapeUntypedCollection:
		return "untyped-collection"
	case ShapeTypedSequence:
		return "typed-sequence"
	case ShapeUntypedSequence:
		return "untyped-sequence"
	default:
		return "invalid"
	}
}

// Associative reports whether the shape resolves keys against stored keys
// rather than positions.
func (s Shape) Associative() bool {
	return s == ShapeTypedMap || s == ShapeUntypedMap
}

// Indexed reports whether the shape offers random access by position.
func (s Shape) Indexed() bool {
	return s == ShapeTypedList || s == ShapeUntypedList
}

// Sized reports whether the shape is a count/add/remove collection without
// random access.
func (s Shape) Sized() bool {
	return s == ShapeTypedCollection || s == ShapeUntypedCollection
}

// Sequential reports whether the shape is a single-pass sequence.
func (s Shape) Sequential() bool {
	return s == ShapeTypedSequence || s == ShapeUntypedSequence
}

// concrete reports whether t is a usable concrete type (not any, not a
// bare interface).
func concrete(t reflect.Type) bool {
	return t != nil && t.Kind() != reflect.Interface
}

// classification is the raw result of one classify run.
type classification struct {
	shape    Shape
	value    reflect.Value // unwrapped container value
	readOnly bool          // true when the input was a View
	source   any           // original input after View unwrapping, for interface probes
}

// classify assigns exactly one shape to v, or ok=false when v exposes none
// of the eight capability sets. It is pure: no shape probe mutates or
// consumes the inspected value.
//
// Probe order is fixed: map kinds, then slice/array kinds, then the
// Collection interface, then single-pass sequences (string, channel,
// iterator function). Kind probes run before interface probes, so a named
// slice type that also implements Collection still classifies as a list:
// fixed capacity dominates classification.
func classify(v any) (classification, bool) {
	if v == nil {
		return classification{}, false
	}

	c := classification{source: v}

	// Unwrap immutable views first; the view only contributes the
	// read-only flag.
	if view, ok := v.(View); ok {
		if view.inner == nil {
			return classification{}, false
		}
		c.readOnly = true
		c.source = view.inner
	} else if view, ok := v.(*View); ok {
		if view == nil || view.inner == nil {
			return classification{}, false
		}
		c.readOnly = true
		c.source = view.inner
	}

	rv := reflect.ValueOf(c.source)
	rt := rv.Type()

	// One level of pointer indirection is part of the container's
	// identity: *[]T is the growable list form, *[N]T the writable
	// array form.
	elem := rt
	if rt.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return classification{}, false
		}
		elem = rt.Elem()
	}

	switch elem.Kind() {
	case reflect.Map:
		if rt.Kind() == reflect.Pointer {
			rv = rv.Elem()
		}
		if rv.IsNil() {
			return classification{}, false
		}
		c.value = rv
		if concrete(elem.Key()) && concrete(elem.Elem()) {
			c.shape = ShapeTypedMap
		} else {
			c.shape = ShapeUntypedMap
		}
		return c, true

	case reflect.Slice, reflect.Array:
		c.value = rv
		if concrete(elem.Elem()) {
			c.shape = ShapeTypedList
		} else {
			c.shape = ShapeUntypedList
		}
		return c, true
	}

	if coll, ok := c.source.(Collection); ok {
		c.value = rv
		if tc, ok := coll.(TypedCollection); ok && concrete(tc.ElemType()) {
			c.shape = ShapeTypedCollection
		} else {
			c.shape = ShapeUntypedCollection
		}
		return c, true
	}

	switch rt.Kind() {
	case reflect.String:
		// A character sequence with no random-access surface:
		// single-pass over runes, never writable.
		c.value = rv
		c.shape = ShapeTypedSequence
		c.readOnly = true
		return c, true

	case reflect.Chan:
		if rt.ChanDir()&reflect.RecvDir == 0 || rv.IsNil() {
			return classification{}, false
		}
		c.value = rv
		if concrete(rt.Elem()) {
			c.shape = ShapeTypedSequence
		} else {
			c.shape = ShapeUntypedSequence
		}
		return c, true

	case reflect.Func:
		if !isSeqFunc(rt) || rv.IsNil() {
			return classification{}, false
		}
		c.value = rv
		if concrete(rt.In(0).In(0)) {
			c.shape = ShapeTypedSequence
		} else {
			c.shape = ShapeUntypedSequence
		}
		return c, true
	}

	return classification{}, false
}

// isSeqFunc reports whether t has the iter.Seq[T] signature:
// func(yield func(T) bool).
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 &&
		yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool &&
		!yield.IsVariadic()
}
