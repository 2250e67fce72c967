package vessel

import "reflect"

// collectionAdapter serves both sized-collection shapes through the
// Collection interface. There is no random access; positional reads walk
// the collection's own iteration order.
type collectionAdapter struct{}

func (collectionAdapter) coll(p *Proxy) Collection {
	return p.source.(Collection)
}

func (a collectionAdapter) count(p *Proxy) int {
	return a.coll(p).Len()
}

// at walks to the requested position; cost is O(pos).
func (a collectionAdapter) at(p *Proxy, pos int) (any, error) {
	i := 0
	var out any
	for v := range a.coll(p).All() {
		if i == pos {
			out = v
			break
		}
		i++
	}
	return out, nil
}

func (collectionAdapter) setAt(p *Proxy, _ int, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Set", p.desc.Shape, "no random-access write")
}

func (a collectionAdapter) forEach(p *Proxy, visit func(key, value any) bool) {
	i := 0
	for v := range a.coll(p).All() {
		if !visit(i, v) {
			return
		}
		i++
	}
}

func (a collectionAdapter) add(p *Proxy, v reflect.Value) error {
	return a.coll(p).Add(v.Interface())
}

func (collectionAdapter) insert(p *Proxy, _ int, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Insert", p.desc.Shape, "no positional access")
}

func (collectionAdapter) removeAt(p *Proxy, _ int) error {
	return newOpError(ErrUnsupported, "RemoveAt", p.desc.Shape, "no positional access")
}

func (a collectionAdapter) removeValue(p *Proxy, v any) bool {
	return a.coll(p).Remove(v)
}

func (a collectionAdapter) clear(p *Proxy) error {
	a.coll(p).Clear()
	return nil
}

func (collectionAdapter) lookup(_ *Proxy, _ reflect.Value) (any, bool) {
	return nil, false
}

func (collectionAdapter) store(p *Proxy, _, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Set", p.desc.Shape, "no keyed access")
}

func (collectionAdapter) hasKey(_ *Proxy, _ reflect.Value) bool {
	return false
}
