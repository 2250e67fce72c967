package vessel

import (
	"fmt"
	"reflect"
)

// Structural mutations are capability-gated by shape:
//
//	shape                  Add  AddPair  AddRange  Insert  Remove  RemoveAt  Clear
//	associative            no   yes      no        no      by key  no        yes
//	list (growable)        yes  no       yes       yes     yes     yes       yes
//	sized collection       yes  no       no        no      yes     no        yes
//	sequence / fixed / ro  no   no       no        no      no      no        no
//
// Every disallowed combination returns ErrUnsupported; nothing no-ops
// silently. A failed operation leaves the container unchanged.

// growable reports whether structural list mutations can reach the caller's
// slice header.
func (p *Proxy) growable() bool {
	return p.desc.Shape.Indexed() && !p.desc.FixedCapacity
}

// gate rejects mutations on read-only views and on shapes outside the
// operation's capability row.
func (p *Proxy) gate(op string, allowed bool) error {
	if p.readOnly {
		return newOpError(ErrUnsupported, op, p.desc.Shape, "read-only view")
	}
	if !allowed {
		detail := ""
		if p.FixedCapacity() {
			detail = "fixed capacity"
		}
		return newOpError(ErrUnsupported, op, p.desc.Shape, detail)
	}
	return nil
}

// Add appends one element, coerced to the element type. Supported by
// growable lists and sized collections.
func (p *Proxy) Add(value any) error {
	if err := p.gate("Add", p.growable() || p.desc.Shape.Sized()); err != nil {
		return err
	}
	rv, err := coerceValue(value, p.desc.Elem)
	if err != nil {
		return err
	}
	return p.ops.add(p, rv)
}

// AddPair stores a key/value entry, coercing both to the container's key
// and value types. Supported by associative shapes only.
func (p *Proxy) AddPair(key, value any) error {
	if err := p.gate("AddPair", p.desc.Shape.Associative()); err != nil {
		return err
	}
	rk, err := coerceValue(key, p.desc.Key)
	if err != nil {
		return err
	}
	rv, err := coerceValue(value, p.desc.Value)
	if err != nil {
		return err
	}
	return p.ops.store(p, rk, rv)
}

// AddRange appends a batch of elements. Supported by growable lists only.
// Every element is coerced before the first append, so a bad element leaves
// the list untouched.
func (p *Proxy) AddRange(values ...any) error {
	if err := p.gate("AddRange", p.growable()); err != nil {
		return err
	}
	coerced := make([]reflect.Value, len(values))
	for i, v := range values {
		rv, err := coerceValue(v, p.desc.Elem)
		if err != nil {
			return err
		}
		coerced[i] = rv
	}
	for _, rv := range coerced {
		if err := p.ops.add(p, rv); err != nil {
			return err
		}
	}
	return nil
}

// Insert places an element at a position, shifting the tail. Supported by
// growable lists only; position Count() appends.
func (p *Proxy) Insert(pos int, value any) error {
	if err := p.gate("Insert", p.growable()); err != nil {
		return err
	}
	if pos < 0 || pos > p.Count() {
		return newOpError(ErrOutOfRange, "Insert", p.desc.Shape, fmt.Sprintf("position %d of %d", pos, p.Count()))
	}
	rv, err := coerceValue(value, p.desc.Elem)
	if err != nil {
		return err
	}
	return p.ops.insert(p, pos, rv)
}

// Remove deletes by key on associative shapes and by element value on lists
// and sized collections. Reports whether anything was removed; a value that
// cannot coerce to the container's type removes nothing.
func (p *Proxy) Remove(value any) (bool, error) {
	ok := p.desc.Shape.Associative() || p.growable() || p.desc.Shape.Sized()
	if err := p.gate("Remove", ok); err != nil {
		return false, err
	}
	if p.desc.Shape.Sized() && concrete(p.desc.Elem) {
		rv, err := coerceValue(value, p.desc.Elem)
		if err != nil {
			return false, nil
		}
		value = rv.Interface()
	}
	return p.ops.removeValue(p, value), nil
}

// RemoveAt deletes the element at a position. Supported by growable lists
// only.
func (p *Proxy) RemoveAt(pos int) error {
	if err := p.gate("RemoveAt", p.growable()); err != nil {
		return err
	}
	if pos < 0 || pos >= p.Count() {
		return newOpError(ErrOutOfRange, "RemoveAt", p.desc.Shape, fmt.Sprintf("position %d of %d", pos, p.Count()))
	}
	return p.ops.removeAt(p, pos)
}

// Clear removes every element. Supported by associative shapes, growable
// lists, and sized collections; read-only and fixed-capacity proxies fail
// like every other structural mutation.
func (p *Proxy) Clear() error {
	ok := p.desc.Shape.Associative() || p.growable() || p.desc.Shape.Sized()
	if err := p.gate("Clear", ok); err != nil {
		return err
	}
	return p.ops.clear(p)
}
