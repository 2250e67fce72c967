package vessel

import "reflect"

// adapter is the per-shape strategy behind the proxy's uniform operation
// set. One adapter is bound per proxy at construction; dispatch is by the
// classified shape, never by per-call probing.
//
// The proxy gates every call by shape and capability before dispatching, so
// adapters only ever see operations their shape family supports. Values
// arriving at structural and store methods are already coerced to the
// container's element/key/value types.
type adapter interface {
	// count returns the number of elements. Sequence adapters drain
	// their source on first use.
	count(p *Proxy) int

	// at returns the element at a zero-based position.
	at(p *Proxy, pos int) (any, error)

	// setAt replaces the element at a position.
	setAt(p *Proxy, pos int, v reflect.Value) error

	// forEach visits (key, element) pairs: real keys for associative
	// shapes, positions elsewhere. Visit returns false to stop.
	forEach(p *Proxy, visit func(key, value any) bool)

	// add appends or inserts one element.
	add(p *Proxy, v reflect.Value) error

	// insert places an element at a position, shifting the tail.
	insert(p *Proxy, pos int, v reflect.Value) error

	// removeAt deletes the element at a position.
	removeAt(p *Proxy, pos int) error

	// removeValue deletes the first element equal to v (associative
	// adapters resolve v against keys). Reports whether anything was
	// removed.
	removeValue(p *Proxy, v any) bool

	// clear removes all elements.
	clear(p *Proxy) error

	// lookup resolves an associative key to its value.
	lookup(p *Proxy, key reflect.Value) (any, bool)

	// store sets an associative key to a value, inserting or replacing.
	store(p *Proxy, key, v reflect.Value) error

	// hasKey reports associative key membership.
	hasKey(p *Proxy, key reflect.Value) bool
}

// adapterFor selects the strategy for a classified shape.
func adapterFor(s Shape) adapter {
	switch {
	case s.Associative():
		return mapAdapter{}
	case s.Indexed():
		return sliceAdapter{}
	case s.Sized():
		return collectionAdapter{}
	default:
		return seqAdapter{}
	}
}
