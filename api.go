// Package vessel exposes one uniform operation set over arbitrary container
// values: read, write, add, remove, iterate, convert, and compare, without
// knowing the concrete container ahead of time.
//
// A value handed to TryCreate or AsProxy is classified once into exactly one
// of eight collection shapes, and every operation dispatches through the
// strategy bound to that shape:
//
//   - typed / untyped map: keyed containers (map[string]int, map[string]any)
//   - typed / untyped list: random-access sequences (slices, arrays)
//   - typed / untyped collection: count/add/remove containers without
//     random access (Set, Bag, anything implementing Collection)
//   - typed / untyped sequence: single-pass sources (strings, channels,
//     iterator functions)
//
// Classification is deterministic: the same concrete type always yields the
// same shape, in a fixed priority order. Kind checks win over interface
// checks, so an array or slice is always a list, even when the type also
// implements Collection — fixed capacity dominates classification.
//
// # Capability gating
//
// Each shape supports a subset of the mutation surface; every unsupported
// combination fails with ErrUnsupported rather than no-op-ing, and a failed
// operation leaves the container unchanged. Wrap any container in ReadOnly
// to reject all mutations.
//
// # Basic Usage
//
//	inventory := map[string]int{"bolts": 40, "nuts": 12}
//	p, err := vessel.AsProxy(inventory)
//	if err != nil {
//	    return err
//	}
//
//	p.AddPair("washers", 7)
//	n, _ := p.Get(vessel.Name("bolts"))
//
//	p.ForEach(func(key, value any) bool {
//	    fmt.Println(key, value)
//	    return true
//	})
//
// Values written through the proxy pass through Coerce, so text input
// assigns into typed containers: setting "40" into a map[string]int stores
// 40, and setting "A" at a position of a []rune stores 'A'.
//
// # Single-pass sequences
//
// Strings, channels, and iterator functions have no count without full
// traversal. The first operation that needs their elements drains the
// source exactly once into the proxy and serves every later call from that
// buffer; a channel source must be closed by its producer for the drain to
// finish.
//
// # Concurrency
//
// The proxy performs no locking of its own. If the wrapped container is
// shared across goroutines, synchronization is the caller's responsibility;
// Synchronized only relays the container's own claim via the Synchronizer
// probe.
package vessel

import (
	"fmt"
	"reflect"
)

// TryCreate classifies value and binds a proxy to it. Returns ok=false for
// nil input and for values exposing none of the eight capability sets
// (numeric primitives, plain structs). Never panics.
func TryCreate(value any) (*Proxy, bool) {
	c, ok := classify(value)
	if !ok {
		if value != nil {
			emitClassifyMiss(reflect.TypeOf(value).String())
		}
		return nil, false
	}
	return newProxy(c), true
}

// AsProxy classifies value and binds a proxy to it, turning classification
// failure into an error: ErrInvalidArgument for nil input and for values
// that match no collection shape.
func AsProxy(value any) (*Proxy, error) {
	if value == nil {
		return nil, newOpError(ErrInvalidArgument, "AsProxy", ShapeInvalid, "nil value")
	}
	p, ok := TryCreate(value)
	if !ok {
		return nil, newOpError(ErrInvalidArgument, "AsProxy", ShapeInvalid, fmt.Sprintf("%T is not a container", value))
	}
	return p, nil
}
