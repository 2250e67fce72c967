package vessel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProxy(t *testing.T, v any) *Proxy {
	t.Helper()
	p, err := AsProxy(v)
	require.NoError(t, err)
	return p
}

// TestCapabilityMatrix pins ReadOnly and FixedCapacity for the canonical
// sample containers.
func TestCapabilityMatrix(t *testing.T) {
	closed := func(vals ...int) chan int {
		ch := make(chan int, len(vals))
		for _, v := range vals {
			ch <- v
		}
		close(ch)
		return ch
	}

	tests := []struct {
		name     string
		value    any
		readOnly bool
		fixed    bool
	}{
		{"read-only map", ReadOnly(map[string]int{"a": 1}), true, true},
		{"typed map", map[string]int{"a": 1}, false, false},
		{"untyped map", map[string]any{"a": 1}, false, false},
		{"read-only list", ReadOnly([]int{1, 2}), true, true},
		{"typed list", &[]int{1, 2}, false, false},
		{"untyped list", &[]any{1, "x"}, false, false},
		{"read-only collection", ReadOnly(NewSet(1, 2)), true, true},
		{"typed collection", NewSet(1, 2), false, false},
		{"untyped collection", NewBag(1, "x"), false, false},
		{"typed sequence", closed(1, 2), false, true},
		{"untyped sequence", make(chan any), false, true},
		{"fixed array", [4]int{1, 2, 3, 4}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustProxy(t, tt.value)
			assert.Equal(t, tt.readOnly, p.ReadOnly())
			assert.Equal(t, tt.fixed, p.FixedCapacity())
		})
	}
}

func TestSynchronized(t *testing.T) {
	p := mustProxy(t, map[string]int{"a": 1})
	assert.False(t, p.Synchronized(), "defaults to false")
}

func TestCount(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"map", map[string]int{"a": 1, "b": 2}, 2},
		{"slice", []int{1, 2, 3}, 3},
		{"array", [4]int{}, 4},
		{"set", NewSet("a", "b", "a"), 2},
		{"bag", NewBag(1, 1, 2), 3},
		{"string runes", "héllo", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustProxy(t, tt.value).Count())
		})
	}
}

func TestGet(t *testing.T) {
	t.Run("map by name", func(t *testing.T) {
		p := mustProxy(t, map[string]int{"bolts": 40})
		v, err := p.Get(Name("bolts"))
		require.NoError(t, err)
		assert.Equal(t, 40, v)
	})

	t.Run("map missing key", func(t *testing.T) {
		p := mustProxy(t, map[string]int{"bolts": 40})
		_, err := p.Get(Name("nuts"))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("int-keyed map by position key", func(t *testing.T) {
		p := mustProxy(t, map[int]string{7: "seven"})
		v, err := p.Get(Position(7))
		require.NoError(t, err)
		assert.Equal(t, "seven", v)
	})

	t.Run("list by position", func(t *testing.T) {
		p := mustProxy(t, []string{"a", "b"})
		v, err := p.Get(Position(1))
		require.NoError(t, err)
		assert.Equal(t, "b", v)
	})

	t.Run("list parses named key as position", func(t *testing.T) {
		p := mustProxy(t, []string{"a", "b"})
		v, err := p.Get(Name("0"))
		require.NoError(t, err)
		assert.Equal(t, "a", v)
	})

	t.Run("list non-numeric name", func(t *testing.T) {
		p := mustProxy(t, []string{"a"})
		_, err := p.Get(Name("first"))
		assert.ErrorIs(t, err, ErrCoerce)
	})

	t.Run("list out of range", func(t *testing.T) {
		p := mustProxy(t, []string{"a"})
		_, err := p.Get(Position(3))
		assert.ErrorIs(t, err, ErrOutOfRange)
		_, err = p.Get(Position(-1))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("collection by position walks iteration order", func(t *testing.T) {
		p := mustProxy(t, NewSet("a", "b", "c"))
		v, err := p.Get(Position(2))
		require.NoError(t, err)
		assert.Equal(t, "c", v)
	})

	t.Run("string by position after drain", func(t *testing.T) {
		p := mustProxy(t, "abc")
		v, err := p.Get(Position(1))
		require.NoError(t, err)
		assert.Equal(t, 'b', v)
	})
}

func TestSet(t *testing.T) {
	t.Run("map coerces value", func(t *testing.T) {
		m := map[string]int{"bolts": 1}
		p := mustProxy(t, m)
		require.NoError(t, p.Set(Name("bolts"), "40"))
		assert.Equal(t, 40, m["bolts"])
	})

	t.Run("map inserts new key", func(t *testing.T) {
		m := map[string]int{}
		p := mustProxy(t, m)
		require.NoError(t, p.Set(Name("nuts"), 12))
		assert.Equal(t, 12, m["nuts"])
	})

	t.Run("list element", func(t *testing.T) {
		s := []int{1, 2}
		p := mustProxy(t, s)
		require.NoError(t, p.Set(Position(1), 9))
		assert.Equal(t, 9, s[1])
	})

	t.Run("rune sequence accepts character text", func(t *testing.T) {
		rs := []rune("xyz")
		p := mustProxy(t, rs)
		require.NoError(t, p.Set(Position(0), "A"))
		assert.Equal(t, 'A', rs[0])

		v, err := p.Get(Position(0))
		require.NoError(t, err)
		assert.Equal(t, 'A', v)
	})

	t.Run("array pointer element", func(t *testing.T) {
		arr := [3]int{1, 2, 3}
		p := mustProxy(t, &arr)
		require.NoError(t, p.Set(Position(2), 9))
		assert.Equal(t, 9, arr[2])
	})

	t.Run("array by value is not addressable", func(t *testing.T) {
		p := mustProxy(t, [3]int{1, 2, 3})
		assert.ErrorIs(t, p.Set(Position(0), 9), ErrUnsupported)
	})

	t.Run("read-only view", func(t *testing.T) {
		p := mustProxy(t, ReadOnly([]int{1}))
		assert.ErrorIs(t, p.Set(Position(0), 2), ErrUnsupported)
	})

	t.Run("string sequence", func(t *testing.T) {
		p := mustProxy(t, "abc")
		assert.ErrorIs(t, p.Set(Position(0), "A"), ErrUnsupported)
	})

	t.Run("collection has no positional write", func(t *testing.T) {
		p := mustProxy(t, NewSet(1, 2))
		assert.ErrorIs(t, p.Set(Position(0), 9), ErrUnsupported)
	})

	t.Run("out of range", func(t *testing.T) {
		s := []int{1}
		p := mustProxy(t, s)
		assert.ErrorIs(t, p.Set(Position(5), 9), ErrOutOfRange)
	})

	t.Run("uncoercible value", func(t *testing.T) {
		s := []int{1}
		p := mustProxy(t, s)
		assert.ErrorIs(t, p.Set(Position(0), "not a number"), ErrCoerce)
	})
}

func TestForEach(t *testing.T) {
	t.Run("map yields real pairs", func(t *testing.T) {
		p := mustProxy(t, map[string]int{"a": 1, "b": 2})
		seen := map[string]int{}
		p.ForEach(func(key, value any) bool {
			seen[key.(string)] = value.(int)
			return true
		})
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, seen)
	})

	t.Run("list yields positions", func(t *testing.T) {
		p := mustProxy(t, []string{"a", "b"})
		var keys []int
		var vals []string
		p.ForEach(func(key, value any) bool {
			keys = append(keys, key.(int))
			vals = append(vals, value.(string))
			return true
		})
		assert.Equal(t, []int{0, 1}, keys)
		assert.Equal(t, []string{"a", "b"}, vals)
	})

	t.Run("visitor stops early", func(t *testing.T) {
		p := mustProxy(t, []int{1, 2, 3})
		n := 0
		p.ForEach(func(_, _ any) bool {
			n++
			return false
		})
		assert.Equal(t, 1, n)
	})
}
