package vessel

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		target reflect.Type
		want   any
	}{
		{"exact match", 42, reflect.TypeFor[int](), 42},
		{"into empty interface", 42, reflect.TypeFor[any](), 42},
		{"numeric widening", 42, reflect.TypeFor[int64](), int64(42)},
		{"numeric narrowing", int64(42), reflect.TypeFor[int](), 42},
		{"int to float", 3, reflect.TypeFor[float64](), 3.0},
		{"float to int", 3.0, reflect.TypeFor[int](), 3},
		{"text to int", "42", reflect.TypeFor[int](), 42},
		{"text to float", "2.5", reflect.TypeFor[float64](), 2.5},
		{"text to bool", "true", reflect.TypeFor[bool](), true},
		{"int to text", 42, reflect.TypeFor[string](), "42"},
		{"char text to rune", "A", reflect.TypeFor[rune](), 'A'},
		{"rune passthrough", 'A', reflect.TypeFor[rune](), 'A'},
		{"text to duration", "2s", reflect.TypeFor[time.Duration](), 2 * time.Second},
		{"nil into pointer", nil, reflect.TypeFor[*int](), (*int)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.value, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFails(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		target reflect.Type
	}{
		{"word to int", "forty", reflect.TypeFor[int]()},
		{"multi-char to rune", "AB", reflect.TypeFor[rune]()},
		{"nil to int", nil, reflect.TypeFor[int]()},
		{"struct to int", struct{}{}, reflect.TypeFor[int]()},
		{"nil target", 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Coerce(tt.value, tt.target)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, ErrCoerce)

				var ce *CoerceError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.target, ce.Target)
			}
		})
	}
}

func TestEqualValues(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"same ints", 1, 1, true},
		{"cross-kind ints", 1, int64(1), true},
		{"int and float", 2, 2.0, true},
		{"different numbers", 1, 2, false},
		{"strings", "a", "a", true},
		{"string and int", "1", 1, false},
		{"both nil", nil, nil, true},
		{"one nil", nil, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equalValues(tt.a, tt.b))
		})
	}
}
