package vessel

import "reflect"

// mapAdapter serves both associative shapes over reflect's map primitives.
type mapAdapter struct{}

func (mapAdapter) count(p *Proxy) int {
	return p.src.Len()
}

func (mapAdapter) at(p *Proxy, _ int) (any, error) {
	return nil, newOpError(ErrUnsupported, "Get", p.desc.Shape, "no positional access")
}

func (mapAdapter) setAt(p *Proxy, _ int, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Set", p.desc.Shape, "no positional access")
}

func (mapAdapter) forEach(p *Proxy, visit func(key, value any) bool) {
	it := p.src.MapRange()
	for it.Next() {
		if !visit(it.Key().Interface(), it.Value().Interface()) {
			return
		}
	}
}

func (mapAdapter) add(p *Proxy, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Add", p.desc.Shape, "requires a key")
}

func (mapAdapter) insert(p *Proxy, _ int, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Insert", p.desc.Shape, "no positional access")
}

func (mapAdapter) removeAt(p *Proxy, _ int) error {
	return newOpError(ErrUnsupported, "RemoveAt", p.desc.Shape, "no positional access")
}

// removeValue resolves v against stored keys: associative removal is by key.
func (mapAdapter) removeValue(p *Proxy, v any) bool {
	rk, err := coerceValue(v, p.desc.Key)
	if err != nil {
		return false
	}
	if !p.src.MapIndex(rk).IsValid() {
		return false
	}
	p.src.SetMapIndex(rk, reflect.Value{})
	return true
}

func (mapAdapter) clear(p *Proxy) error {
	for _, k := range p.src.MapKeys() {
		p.src.SetMapIndex(k, reflect.Value{})
	}
	return nil
}

func (mapAdapter) lookup(p *Proxy, key reflect.Value) (any, bool) {
	v := p.src.MapIndex(key)
	if !v.IsValid() {
		return nil, false
	}
	return v.Interface(), true
}

func (mapAdapter) store(p *Proxy, key, v reflect.Value) error {
	p.src.SetMapIndex(key, v)
	return nil
}

func (mapAdapter) hasKey(p *Proxy, key reflect.Value) bool {
	return p.src.MapIndex(key).IsValid()
}
