package vessel

import "reflect"

// sliceAdapter serves both list shapes: slices, arrays, and their pointer
// forms. Growth requires a pointer-to-slice source; the proxy's capability
// gates keep structural mutations away from every other list form.
type sliceAdapter struct{}

// elems returns the indexable value behind the source.
func (sliceAdapter) elems(p *Proxy) reflect.Value {
	if p.src.Kind() == reflect.Pointer {
		return p.src.Elem()
	}
	return p.src
}

// header returns the settable slice header. Only valid for growable lists.
func (sliceAdapter) header(p *Proxy) reflect.Value {
	return p.src.Elem()
}

func (a sliceAdapter) count(p *Proxy) int {
	return a.elems(p).Len()
}

func (a sliceAdapter) at(p *Proxy, pos int) (any, error) {
	return a.elems(p).Index(pos).Interface(), nil
}

func (a sliceAdapter) setAt(p *Proxy, pos int, v reflect.Value) error {
	el := a.elems(p).Index(pos)
	if !el.CanSet() {
		// An array passed by value is a copy; writes could never
		// reach the caller. Pass *[N]T for a writable array.
		return newOpError(ErrUnsupported, "Set", p.desc.Shape, "container not addressable, pass a pointer")
	}
	el.Set(v)
	return nil
}

func (a sliceAdapter) forEach(p *Proxy, visit func(key, value any) bool) {
	els := a.elems(p)
	for i := 0; i < els.Len(); i++ {
		if !visit(i, els.Index(i).Interface()) {
			return
		}
	}
}

func (a sliceAdapter) add(p *Proxy, v reflect.Value) error {
	h := a.header(p)
	h.Set(reflect.Append(h, v))
	return nil
}

func (a sliceAdapter) insert(p *Proxy, pos int, v reflect.Value) error {
	h := a.header(p)
	n := h.Len()
	grown := reflect.Append(h, reflect.Zero(h.Type().Elem()))
	for i := n; i > pos; i-- {
		grown.Index(i).Set(grown.Index(i - 1))
	}
	grown.Index(pos).Set(v)
	h.Set(grown)
	return nil
}

func (a sliceAdapter) removeAt(p *Proxy, pos int) error {
	h := a.header(p)
	n := h.Len()
	for i := pos; i < n-1; i++ {
		h.Index(i).Set(h.Index(i + 1))
	}
	h.Set(h.Slice(0, n-1))
	return nil
}

func (a sliceAdapter) removeValue(p *Proxy, v any) bool {
	els := a.elems(p)
	for i := 0; i < els.Len(); i++ {
		if equalValues(els.Index(i).Interface(), v) {
			return a.removeAt(p, i) == nil
		}
	}
	return false
}

func (a sliceAdapter) clear(p *Proxy) error {
	h := a.header(p)
	h.Set(h.Slice(0, 0))
	return nil
}

func (sliceAdapter) lookup(p *Proxy, _ reflect.Value) (any, bool) {
	return nil, false
}

func (sliceAdapter) store(p *Proxy, _, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Set", p.desc.Shape, "no keyed access")
}

func (sliceAdapter) hasKey(_ *Proxy, _ reflect.Value) bool {
	return false
}
