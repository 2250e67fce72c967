package vessel

import (
	"fmt"
	"reflect"
)

// Values returns the elements in iteration order as a fresh slice. For
// associative shapes these are the stored values, not the keys.
func (p *Proxy) Values() []any {
	out := make([]any, 0, p.Count())
	p.ops.forEach(p, func(_, v any) bool {
		out = append(out, v)
		return true
	})
	return out
}

// ToSlice produces a new owned slice, coercing every element to T. The
// result's length always equals Count. Serves both the list and array
// conversion forms; Go sizes arrays at compile time, so both collapse into
// a slice.
func ToSlice[T any](p *Proxy) ([]T, error) {
	if p == nil {
		return nil, newOpError(ErrInvalidArgument, "ToSlice", ShapeInvalid, "nil proxy")
	}
	target := reflect.TypeFor[T]()
	src := p.Values()
	out := make([]T, len(src))
	for i, v := range src {
		cv, err := Coerce(v, target)
		if err != nil {
			return nil, err
		}
		if cv != nil {
			out[i] = cv.(T)
		}
	}
	return out, nil
}

// CopyTo writes this proxy's elements into target starting at offset.
// The target must accept positional writes (a list shape). Fails with
// ErrInvalidArgument on a nil target, ErrOutOfRange when offset plus Count
// overflows the target, and ErrUnsupported on read-only targets. A failed
// copy leaves the target untouched.
func (p *Proxy) CopyTo(target any, offset int) error {
	if target == nil {
		return newOpError(ErrInvalidArgument, "CopyTo", p.desc.Shape, "nil target")
	}
	t, ok := TryCreate(target)
	if !ok {
		return newOpError(ErrInvalidArgument, "CopyTo", p.desc.Shape, fmt.Sprintf("target %T is not a container", target))
	}
	if t.readOnly || !t.desc.Shape.Indexed() {
		return newOpError(ErrUnsupported, "CopyTo", p.desc.Shape, "target accepts no positional writes")
	}
	n := p.Count()
	if offset < 0 || offset+n > t.Count() {
		return newOpError(ErrOutOfRange, "CopyTo", p.desc.Shape, fmt.Sprintf("%d elements at offset %d into %d", n, offset, t.Count()))
	}

	// Coerce everything up front so a bad element cannot leave a
	// half-written target.
	coerced := make([]reflect.Value, 0, n)
	for _, v := range p.Values() {
		cv, err := coerceValue(v, t.desc.Elem)
		if err != nil {
			return err
		}
		coerced = append(coerced, cv)
	}
	for i, cv := range coerced {
		if err := t.ops.setAt(t, offset+i, cv); err != nil {
			return err
		}
	}
	return nil
}

// TryCopyTo merges this proxy's contents into another proxy, reporting
// success. It never panics and never leaves a partial merge: a nil or
// read-only target, a shape that cannot accept the entries, a key
// collision, or an uncoercible element all return false with the target
// unchanged. Associative sources merge into associative targets by key;
// every source merges into growable lists and sized collections by element.
func (p *Proxy) TryCopyTo(other *Proxy) bool {
	if other == nil || other.readOnly {
		return false
	}

	if other.desc.Shape.Associative() {
		if !p.desc.Shape.Associative() {
			return false
		}
		type pair struct{ k, v reflect.Value }
		pairs := make([]pair, 0, p.Count())
		failed := false
		p.ops.forEach(p, func(k, v any) bool {
			rk, err := coerceValue(k, other.desc.Key)
			if err != nil {
				failed = true
				return false
			}
			rv, err := coerceValue(v, other.desc.Value)
			if err != nil {
				failed = true
				return false
			}
			if other.ops.hasKey(other, rk) {
				failed = true
				return false
			}
			pairs = append(pairs, pair{rk, rv})
			return true
		})
		if failed {
			return false
		}
		for _, pr := range pairs {
			if other.ops.store(other, pr.k, pr.v) != nil {
				return false
			}
		}
		return true
	}

	if !other.growable() && !other.desc.Shape.Sized() {
		return false
	}
	values := p.Values()
	coerced := make([]reflect.Value, 0, len(values))
	for _, v := range values {
		cv, err := coerceValue(v, other.desc.Elem)
		if err != nil {
			return false
		}
		coerced = append(coerced, cv)
	}
	for _, cv := range coerced {
		if other.ops.add(other, cv) != nil {
			return false
		}
	}
	return true
}

// SequenceEqual reports whether two proxies hold equal contents. False when
// either proxy is nil, when counts differ, or when any corresponding
// element differs; associative proxies compare by key, positional proxies
// in order. Never panics.
func (p *Proxy) SequenceEqual(other *Proxy) bool {
	if p == nil || other == nil {
		return false
	}
	if p.Count() != other.Count() {
		return false
	}

	if p.desc.Shape.Associative() || other.desc.Shape.Associative() {
		if !p.desc.Shape.Associative() || !other.desc.Shape.Associative() {
			return false
		}
		equal := true
		p.ops.forEach(p, func(k, v any) bool {
			rk, err := coerceValue(k, other.desc.Key)
			if err != nil {
				equal = false
				return false
			}
			ov, ok := other.ops.lookup(other, rk)
			if !ok || !equalValues(v, ov) {
				equal = false
				return false
			}
			return true
		})
		return equal
	}

	a, b := p.Values(), other.Values()
	for i := range a {
		if !equalValues(a[i], b[i]) {
			return false
		}
	}
	return true
}
