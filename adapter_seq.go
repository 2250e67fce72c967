package vessel

import (
	"reflect"
	"time"
)

// seqAdapter serves both forward-only sequence shapes: strings, channels,
// and iterator functions. The first element-touching operation drains the
// source into the proxy's buffer; the source is never traversed twice.
type seqAdapter struct{}

// drain materializes the sequence once per proxy. Channel sources are read
// until closed; iterator functions run to completion.
func (seqAdapter) drain(p *Proxy) []any {
	if p.drainedOK {
		return p.drained
	}
	start := time.Now()

	switch p.src.Kind() {
	case reflect.String:
		for _, r := range p.src.String() {
			p.drained = append(p.drained, r)
		}

	case reflect.Chan:
		for {
			v, ok := p.src.Recv()
			if !ok {
				break
			}
			p.drained = append(p.drained, v.Interface())
		}

	case reflect.Func:
		yieldType := p.src.Type().In(0)
		yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
			p.drained = append(p.drained, args[0].Interface())
			return []reflect.Value{reflect.ValueOf(true)}
		})
		p.src.Call([]reflect.Value{yield})
	}

	p.drainedOK = true
	emitSequenceDrained(p.desc.Type.String(), len(p.drained), time.Since(start))
	return p.drained
}

func (a seqAdapter) count(p *Proxy) int {
	return len(a.drain(p))
}

func (a seqAdapter) at(p *Proxy, pos int) (any, error) {
	return a.drain(p)[pos], nil
}

func (seqAdapter) setAt(p *Proxy, _ int, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Set", p.desc.Shape, "single-pass source")
}

func (a seqAdapter) forEach(p *Proxy, visit func(key, value any) bool) {
	for i, v := range a.drain(p) {
		if !visit(i, v) {
			return
		}
	}
}

func (seqAdapter) add(p *Proxy, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Add", p.desc.Shape, "single-pass source")
}

func (seqAdapter) insert(p *Proxy, _ int, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Insert", p.desc.Shape, "single-pass source")
}

func (seqAdapter) removeAt(p *Proxy, _ int) error {
	return newOpError(ErrUnsupported, "RemoveAt", p.desc.Shape, "single-pass source")
}

func (seqAdapter) removeValue(_ *Proxy, _ any) bool {
	return false
}

func (seqAdapter) clear(p *Proxy) error {
	return newOpError(ErrUnsupported, "Clear", p.desc.Shape, "single-pass source")
}

func (seqAdapter) lookup(_ *Proxy, _ reflect.Value) (any, bool) {
	return nil, false
}

func (seqAdapter) store(p *Proxy, _, _ reflect.Value) error {
	return newOpError(ErrUnsupported, "Set", p.desc.Shape, "no keyed access")
}

func (seqAdapter) hasKey(_ *Proxy, _ reflect.Value) bool {
	return false
}
