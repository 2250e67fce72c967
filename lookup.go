package vessel

// NotFound is the sentinel position returned by IndexOf when no element
// matches.
const NotFound = -1

// IndexOf locates value in the container. Positional shapes return the
// position of the first matching element or NotFound. Associative shapes
// have no stable positions; they answer key membership instead, returning 0
// when value equals some stored key and NotFound otherwise.
func (p *Proxy) IndexOf(value any) int {
	if p.desc.Shape.Associative() {
		rk, err := coerceValue(value, p.desc.Key)
		if err != nil {
			return NotFound
		}
		if p.ops.hasKey(p, rk) {
			return 0
		}
		return NotFound
	}

	found := NotFound
	p.ops.forEach(p, func(key, v any) bool {
		if equalValues(v, value) {
			found = key.(int)
			return false
		}
		return true
	})
	return found
}

// ContainsKey reports key membership for associative shapes. For every
// other shape the key is read as a position and the answer is whether that
// position is valid.
func (p *Proxy) ContainsKey(key Key) bool {
	if p.desc.Shape.Associative() {
		rk, err := coerceValue(key.raw(), p.desc.Key)
		if err != nil {
			return false
		}
		return p.ops.hasKey(p, rk)
	}

	pos, err := key.position()
	if err != nil {
		return false
	}
	return pos >= 0 && pos < p.Count()
}

// ContainsValue reports element membership; for associative shapes it
// checks the stored values, not the keys.
func (p *Proxy) ContainsValue(value any) bool {
	found := false
	p.ops.forEach(p, func(_, v any) bool {
		if equalValues(v, value) {
			found = true
			return false
		}
		return true
	})
	return found
}
