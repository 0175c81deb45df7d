package transform

import (
	"github.com/goccy/go-json"
)

// Option is a value that may be absent.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present value.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns an absent value.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// MarshalJSON renders an absent value as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
