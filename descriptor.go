package vessel

import (
	"reflect"
	"sync"
)

// Descriptor holds per-type container metadata, computed once per runtime
// type and shared by every proxy over that type. Descriptors are immutable.
type Descriptor struct {
	// Type is the container's runtime type after view unwrapping.
	Type reflect.Type

	// Shape is the container's classified shape.
	Shape Shape

	// Elem is the element type. Opaque elements report the empty
	// interface type.
	Elem reflect.Type

	// Key is the key type for associative shapes, nil otherwise.
	Key reflect.Type

	// Value is the stored value type: the map value type for associative
	// shapes, Elem everywhere else.
	Value reflect.Type

	// FixedCapacity is true for types whose backing store cannot grow
	// or shrink: arrays, bare slices, strings, and single-pass sequences.
	FixedCapacity bool

	// HasSyncProbe is true when the type implements Synchronizer.
	// The per-instance answer is read through Proxy.Synchronized.
	HasSyncProbe bool
}

var (
	descriptors   = make(map[reflect.Type]*Descriptor)
	descriptorsMu sync.RWMutex
)

// describe returns the cached descriptor for the classified value, building
// it on first encounter of the runtime type.
func describe(c classification) *Descriptor {
	typ := c.value.Type()

	// Fast path: read-lock cache check
	descriptorsMu.RLock()
	if cached, ok := descriptors[typ]; ok {
		descriptorsMu.RUnlock()
		return cached
	}
	descriptorsMu.RUnlock()

	// Slow path: build and cache with write-lock
	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()

	// Double-check pattern
	if cached, ok := descriptors[typ]; ok {
		return cached
	}

	d := buildDescriptor(c)
	descriptors[typ] = d
	return d
}

// ResetDescriptors clears the descriptor cache.
// This is primarily useful for test isolation.
func ResetDescriptors() {
	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()
	descriptors = make(map[reflect.Type]*Descriptor)
}

var emptyInterface = reflect.TypeFor[any]()

func buildDescriptor(c classification) *Descriptor {
	typ := c.value.Type()
	d := &Descriptor{
		Type:  typ,
		Shape: c.shape,
	}
	if _, ok := c.source.(Synchronizer); ok {
		d.HasSyncProbe = true
	}

	container := typ
	if container.Kind() == reflect.Pointer {
		container = container.Elem()
	}

	switch {
	case c.shape.Associative():
		d.Key = container.Key()
		d.Elem = container.Elem()
		d.Value = container.Elem()

	case c.shape.Indexed():
		d.Elem = container.Elem()
		d.Value = d.Elem
		// Only a pointer-to-slice exposes a writable header; every
		// other list form has a fixed backing store.
		d.FixedCapacity = !(typ.Kind() == reflect.Pointer && container.Kind() == reflect.Slice)

	case c.shape.Sized():
		d.Elem = emptyInterface
		if tc, ok := c.source.(TypedCollection); ok {
			if et := tc.ElemType(); concrete(et) {
				d.Elem = et
			}
		}
		d.Value = d.Elem

	case c.shape.Sequential():
		d.FixedCapacity = true
		switch typ.Kind() {
		case reflect.String:
			d.Elem = reflect.TypeFor[rune]()
		case reflect.Chan:
			d.Elem = typ.Elem()
		case reflect.Func:
			d.Elem = typ.In(0).In(0)
		}
		d.Value = d.Elem
	}

	return d
}
