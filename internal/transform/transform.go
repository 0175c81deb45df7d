// Package transform composes property decoding and retrieval into one
// decode step producing a plain Go value.
//
// Transforms are decode-only: Encode always fails with
// *property.UnsupportedEncodingError.
package transform

import (
	"github.com/maruel/notionprops/internal/property"
)

// Transform decodes one property value of a fixed type into a T.
type Transform[T any] struct {
	name    string
	typ     property.Type
	project func(property.PropertyValue) (T, error)
}

// newTransform binds a projection over the concrete variant P.
func newTransform[P property.PropertyValue, T any](name string, typ property.Type, fn func(P) (T, error)) Transform[T] {
	return Transform[T]{
		name: name,
		typ:  typ,
		project: func(v property.PropertyValue) (T, error) {
			p, ok := v.(P)
			if !ok {
				var zero T
				got := "nil"
				if v != nil {
					got = string(v.PropertyType())
				}
				return zero, &property.ValidationError{Path: "/type", Code: property.CodeDiscriminatorUnknown, Expected: string(typ), Got: got}
			}
			return fn(p)
		},
	}
}

// required fails with *property.AbsentValueError when get reports absence.
func required[P property.PropertyValue, T any](name string, typ property.Type, get func(P) (T, bool)) Transform[T] {
	return newTransform(name, typ, func(p P) (T, error) {
		v, ok := get(p)
		if !ok {
			return v, &property.AbsentValueError{Type: typ}
		}
		return v, nil
	})
}

// optional never fails once the variant matched.
func optional[P property.PropertyValue, T any](name string, typ property.Type, get func(P) (T, bool)) Transform[Option[T]] {
	return newTransform(name, typ, func(p P) (Option[T], error) {
		if v, ok := get(p); ok {
			return Some(v), nil
		}
		return None[T](), nil
	})
}

// total wraps a retriever that cannot report absence.
func total[P property.PropertyValue, T any](name string, typ property.Type, get func(P) T) Transform[T] {
	return newTransform(name, typ, func(p P) (T, error) {
		return get(p), nil
	})
}

// Name describes the transform, e.g. "title to string".
func (t Transform[T]) Name() string { return t.name }

// Type is the property type accepted by the transform.
func (t Transform[T]) Type() property.Type { return t.typ }

// Decode validates a JSON response value and projects it.
func (t Transform[T]) Decode(data []byte) (T, error) {
	v, err := property.DecodeResponse(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.project(v)
}

// DecodeAny validates an untyped response value and projects it.
func (t Transform[T]) DecodeAny(v any) (T, error) {
	pv, err := property.Decode(property.Response, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.project(pv)
}

// Project runs the projection alone on an already decoded value.
func (t Transform[T]) Project(v property.PropertyValue) (T, error) {
	return t.project(v)
}

// Encode always fails. A projected value does not carry enough information
// to rebuild its wire shape; use the request package instead.
func (t Transform[T]) Encode(T) ([]byte, error) {
	return nil, &property.UnsupportedEncodingError{What: t.name}
}
