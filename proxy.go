package vessel

import (
	"fmt"
	"reflect"
)

// Proxy is a non-owning wrapper exposing the uniform operation set over one
// classified container. It holds a reference to the caller's container, the
// container's shape, and its type descriptor; it never copies, frees, or
// outlives the wrapped value.
//
// A proxy carries no hidden state across calls, with one documented
// exception: the first operation that needs the elements of a single-pass
// sequence drains the source exactly once into a per-proxy buffer, and
// every later call reads that buffer. A live channel or iterator is never
// re-traversed by the same proxy.
type Proxy struct {
	src      reflect.Value
	source   any // unwrapped container, for interface probes
	desc     *Descriptor
	readOnly bool
	ops      adapter

	// Drain buffer for sequence shapes, filled once.
	drained   []any
	drainedOK bool
}

// newProxy binds a classified value to its adapter.
func newProxy(c classification) *Proxy {
	desc := describe(c)
	p := &Proxy{
		src:      c.value,
		source:   c.source,
		desc:     desc,
		readOnly: c.readOnly,
		ops:      adapterFor(c.shape),
	}
	emitProxyCreated(desc.Type.String(), c.shape)
	return p
}

// Shape returns the container's classified shape.
func (p *Proxy) Shape() Shape {
	return p.desc.Shape
}

// Descriptor returns the container's cached type descriptor.
func (p *Proxy) Descriptor() *Descriptor {
	return p.desc
}

// ReadOnly reports whether the proxy wraps an immutable view. Read-only
// proxies fail every mutating call, including element set and Clear.
func (p *Proxy) ReadOnly() bool {
	return p.readOnly
}

// FixedCapacity reports whether the container can change size. True for
// read-only views, arrays and bare slices, and both sequence shapes (they
// expose no structural mutation surface); false for associative, growable
// list, and sized-collection shapes.
func (p *Proxy) FixedCapacity() bool {
	return p.readOnly || p.desc.FixedCapacity
}

// Synchronized reports the container's own synchronization claim, read
// through the Synchronizer probe. Defaults to false; the proxy itself never
// locks.
func (p *Proxy) Synchronized() bool {
	if !p.desc.HasSyncProbe {
		return false
	}
	s, ok := p.source.(Synchronizer)
	return ok && s.Synchronized()
}

// Count returns the number of elements. O(1) for every shape except the
// sequence shapes, where the first call drains the source into the proxy's
// buffer; the cost is paid exactly once per proxy.
func (p *Proxy) Count() int {
	return p.ops.count(p)
}

// Get resolves the indexer for reads. Associative shapes resolve named keys
// against stored keys (coercing to the key type); every other shape parses a
// named key as an integer position. Returns ErrOutOfRange for invalid
// positions or absent keys.
func (p *Proxy) Get(key Key) (any, error) {
	if p.desc.Shape.Associative() {
		rk, err := coerceValue(key.raw(), p.desc.Key)
		if err != nil {
			return nil, err
		}
		v, ok := p.ops.lookup(p, rk)
		if !ok {
			return nil, newOpError(ErrOutOfRange, "Get", p.desc.Shape, "no key "+key.String())
		}
		return v, nil
	}

	pos, err := key.position()
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos >= p.Count() {
		return nil, newOpError(ErrOutOfRange, "Get", p.desc.Shape, fmt.Sprintf("position %d of %d", pos, p.Count()))
	}
	return p.ops.at(p, pos)
}

// Set resolves the indexer for writes, coercing the value to the
// container's element or value type first. Element set is allowed on
// fixed-capacity lists (the backing store keeps its size); it fails with
// ErrUnsupported on read-only views, sized collections, and sequences.
func (p *Proxy) Set(key Key, value any) error {
	if p.readOnly {
		return newOpError(ErrUnsupported, "Set", p.desc.Shape, "read-only view")
	}

	switch {
	case p.desc.Shape.Associative():
		rk, err := coerceValue(key.raw(), p.desc.Key)
		if err != nil {
			return err
		}
		rv, err := coerceValue(value, p.desc.Value)
		if err != nil {
			return err
		}
		return p.ops.store(p, rk, rv)

	case p.desc.Shape.Indexed():
		pos, err := key.position()
		if err != nil {
			return err
		}
		if pos < 0 || pos >= p.Count() {
			return newOpError(ErrOutOfRange, "Set", p.desc.Shape, fmt.Sprintf("position %d of %d", pos, p.Count()))
		}
		rv, err := coerceValue(value, p.desc.Elem)
		if err != nil {
			return err
		}
		return p.ops.setAt(p, pos, rv)

	default:
		return newOpError(ErrUnsupported, "Set", p.desc.Shape, "no random-access write")
	}
}

// ForEach visits (key, value) pairs uniformly: the real key and value for
// associative shapes, the element's position as key and the element as
// value for every other shape. The visitor returns false to stop early.
func (p *Proxy) ForEach(visit func(key, value any) bool) {
	p.ops.forEach(p, visit)
}
