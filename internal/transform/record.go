// Decodes a whole page property map into caller variables.

package transform

import (
	"fmt"

	"github.com/maruel/notionprops/internal/property"
)

// FieldDecoder binds one named property to a destination.
type FieldDecoder struct {
	name     string
	optional bool
	decode   func(property.PropertyValue) error
}

// Name is the property name.
func (f FieldDecoder) Name() string { return f.name }

// Field decodes the property called name with t into dst.
func Field[T any](name string, t Transform[T], dst *T) FieldDecoder {
	return FieldDecoder{
		name: name,
		decode: func(v property.PropertyValue) error {
			out, err := t.Project(v)
			if err != nil {
				return err
			}
			*dst = out
			return nil
		},
	}
}

// OptionalField is like Field but a missing property leaves dst untouched.
func OptionalField[T any](name string, t Transform[T], dst *T) FieldDecoder {
	f := Field(name, t, dst)
	f.optional = true
	return f
}

// Record runs every field against props. It stops at the first failure,
// reported with the property name.
func Record(props property.Properties, fields ...FieldDecoder) error {
	for _, f := range fields {
		v, ok := props[f.name]
		if !ok {
			if f.optional {
				continue
			}
			return fmt.Errorf("property %q: %w", f.name, &property.ValidationError{Path: "/" + f.name, Code: property.CodeRequired, Expected: "property", Got: "nothing"})
		}
		if err := f.decode(v); err != nil {
			return fmt.Errorf("property %q: %w", f.name, err)
		}
	}
	return nil
}
