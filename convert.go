package scad

import (
	"fmt"
	"math"
	"reflect"

	"fortio.org/safecast"
)

// Convert maps a host value to a Value.
//
// Values are returned unchanged. Integers map to Int, floats to Float, bools to
// Bool, strings to String and nil to Null. math.Pi maps to Pi; infinities and
// NaN are rejected. Slices and arrays map to a
// PointVector when every element is a Point or a triple of numbers, to a
// FaceVector when every element is a Face, and to a Vector otherwise. An empty
// slice has no shape of its own and maps to the kind given by hint
// (KindPointVector, KindFaceVector, anything else yields an empty Vector).
func Convert(raw any, hint Kind) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case int:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case float64:
		return convertFloat(v)
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := safecast.Conv[int64](rv.Uint())
		if err != nil {
			return nil, fmt.Errorf("%w: %T out of range: %w", ErrUnsupportedType, raw, err)
		}
		return Int(n), nil
	case reflect.Float32, reflect.Float64:
		return convertFloat(rv.Float())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return emptyVector(hint), nil
		}
		return convertList(rv, hint)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return Convert(rv.Elem().Interface(), hint)
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
}

// convertFloat maps math.Pi to Pi and rejects values without a literal form.
func convertFloat(v float64) (Value, error) {
	switch {
	case math.IsInf(v, 0) || math.IsNaN(v):
		return nil, fmt.Errorf("%w: non-finite float %v", ErrUnsupportedType, v)
	case v == math.Pi:
		return Pi{}, nil
	}
	return Float(v), nil
}

// MustConvert is like Convert with a vector hint but panics on error.
func MustConvert(raw any) Value {
	v, err := Convert(raw, KindVector)
	if err != nil {
		panic(err)
	}
	return v
}

// mustConvertHint is like MustConvert with an explicit empty-list hint.
func mustConvertHint(raw any, hint Kind) Value {
	v, err := Convert(raw, hint)
	if err != nil {
		panic(err)
	}
	return v
}

// convertList converts a slice or array value.
func convertList(rv reflect.Value, hint Kind) (Value, error) {
	n := rv.Len()
	if n == 0 {
		return emptyVector(hint), nil
	}

	items := make([]any, n)
	for i := range n {
		items[i] = rv.Index(i).Interface()
	}

	// Point vectors win over face vectors and generic vectors.
	if allOf(items, isPointLike) {
		out := make(PointVector, n)
		for i, item := range items {
			p, err := toPoint(item)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	}

	if allOf(items, isFace) {
		out := make(FaceVector, n)
		for i, item := range items {
			out[i] = item.(Face)
		}
		return out, nil
	}

	out := make(Vector, n)
	for i, item := range items {
		v, err := Convert(item, KindVector)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// emptyVector returns the empty list for hint.
func emptyVector(hint Kind) Value {
	switch hint {
	case KindPointVector:
		return PointVector{}
	case KindFaceVector:
		return FaceVector{}
	default:
		return Vector{}
	}
}

// allOf reports whether pred holds for every item.
func allOf(items []any, pred func(any) bool) bool {
	for _, item := range items {
		if !pred(item) {
			return false
		}
	}
	return true
}

// isFace reports whether item is a Face.
func isFace(item any) bool {
	_, ok := item.(Face)
	return ok
}

// isPointLike reports whether item is a Point or a list of exactly 3 host numbers.
func isPointLike(item any) bool {
	if _, ok := item.(Point); ok {
		return true
	}

	rv := reflect.ValueOf(item)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	if rv.Len() != 3 {
		return false
	}
	for i := range 3 {
		if !isHostNumber(rv.Index(i)) {
			return false
		}
	}
	return true
}

// isHostNumber reports whether rv holds a plain Go number.
func isHostNumber(rv reflect.Value) bool {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if rv.Type().Implements(valueType) {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

var valueType = reflect.TypeFor[Value]()

// toPoint converts a point-like item to a Point.
func toPoint(item any) (Point, error) {
	if p, ok := item.(Point); ok {
		return p, nil
	}

	rv := reflect.ValueOf(item)
	var axes [3]Value
	for i := range 3 {
		v, err := Convert(rv.Index(i).Interface(), KindVector)
		if err != nil {
			return Point{}, err
		}
		axes[i] = v
	}
	return Point{x: axes[0], y: axes[1], z: axes[2]}, nil
}
