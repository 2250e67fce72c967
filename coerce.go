package vessel

import (
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/spf13/cast"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
)

// Coerce converts value to the target type. The fallback order is fixed:
// exact type match, assignability, numeric widening, parse-from-text, fail.
// A single-rune string coerces into an int32 target as that rune, so "A"
// assigns into a rune sequence as 'A'.
//
// The indexer and the conversion operations share this function; it never
// mutates its input.
func Coerce(value any, target reflect.Type) (any, error) {
	if target == nil {
		return nil, newCoerceError(value, nil, ErrInvalidArgument)
	}
	if target.Kind() == reflect.Interface && target.NumMethod() == 0 {
		return value, nil
	}
	if value == nil {
		// Only nilable targets accept an absent value.
		switch target.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
			return reflect.Zero(target).Interface(), nil
		}
		return nil, newCoerceError(value, target, nil)
	}

	rv := reflect.ValueOf(value)
	if rv.Type() == target {
		return value, nil
	}
	if rv.Type().AssignableTo(target) {
		return rv.Convert(target).Interface(), nil
	}

	// Single-character text into an int32 target reads as a rune, not
	// as numeric text.
	if target.Kind() == reflect.Int32 {
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			return reflect.ValueOf(r).Convert(target).Interface(), nil
		}
	}

	// Numeric widening between numeric kinds only; Go's string<->int
	// convertibility is deliberately excluded.
	if numericKind(rv.Kind()) && numericKind(target.Kind()) {
		return rv.Convert(target).Interface(), nil
	}

	out, err := parseAs(value, target)
	if err != nil {
		return nil, newCoerceError(value, target, err)
	}
	return out, nil
}

// parseAs converts via the cast parsers, then aligns the result to the
// exact target type (covering named types like type ID int).
func parseAs(value any, target reflect.Type) (any, error) {
	if target == timeType {
		return cast.ToTimeE(value)
	}
	if target == durationType {
		return cast.ToDurationE(value)
	}

	var parsed any
	var err error
	switch target.Kind() {
	case reflect.Bool:
		parsed, err = cast.ToBoolE(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err = cast.ToInt64E(value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		parsed, err = cast.ToUint64E(value)
	case reflect.Float32, reflect.Float64:
		parsed, err = cast.ToFloat64E(value)
	case reflect.String:
		parsed, err = cast.ToStringE(value)
	default:
		return nil, ErrCoerce
	}
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(parsed).Convert(target).Interface(), nil
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// coerceValue is the internal entry used by adapters: identical to Coerce
// but returns a reflect.Value ready for assignment.
func coerceValue(value any, target reflect.Type) (reflect.Value, error) {
	out, err := Coerce(value, target)
	if err != nil {
		return reflect.Value{}, err
	}
	if out == nil {
		return reflect.Zero(target), nil
	}
	return reflect.ValueOf(out), nil
}

// equalValues compares two values for element equality: numeric values
// compare by magnitude across kinds, everything else by deep equality.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() == bv.Type() {
		return reflect.DeepEqual(a, b)
	}
	if numericKind(av.Kind()) && numericKind(bv.Kind()) {
		return toFloat(av) == toFloat(bv)
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
