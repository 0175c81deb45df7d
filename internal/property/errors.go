// Defines the error kinds surfaced by decoding and encoding.

package property

import (
	"fmt"
	"strings"
)

// Validation issue codes.
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeInvalidEnum          = "invalid_enum"
	CodeInvalidFormat        = "invalid_format"
	CodeReadOnly             = "read_only"
	CodeParseError           = "parse_error"
)

// ValidationError reports the first structural mismatch found while decoding.
//
// Path is a JSON pointer into the decoded document, e.g. /Tags/multi_select/2/name.
type ValidationError struct {
	Path     string
	Code     string
	Expected string
	Got      string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	path := e.Path
	if path == "" {
		path = "/"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s at %s", e.Code, path)
	if e.Expected != "" {
		fmt.Fprintf(&b, ": expected %s", e.Expected)
	}
	if e.Got != "" {
		fmt.Fprintf(&b, ", got %s", e.Got)
	}
	return b.String()
}

// AbsentValueError is returned by accessors that require a value when the
// property payload is null or otherwise absent.
type AbsentValueError struct {
	Type Type
}

// Error implements the error interface.
func (e *AbsentValueError) Error() string {
	return fmt.Sprintf("%s value is absent", e.Type)
}

// UnsupportedEncodingError is returned when encoding a read-only variant or
// a decode-only projection.
type UnsupportedEncodingError struct {
	What string
}

// Error implements the error interface.
func (e *UnsupportedEncodingError) Error() string {
	return e.What + ": encoding not supported"
}

func invalidType(path, expected string, got any) *ValidationError {
	return &ValidationError{Path: path, Code: CodeInvalidType, Expected: expected, Got: describe(got)}
}

func required(path, expected string) *ValidationError {
	return &ValidationError{Path: path, Code: CodeRequired, Expected: expected, Got: "nothing"}
}

func invalidEnum(path string, allowed []string, got string) *ValidationError {
	return &ValidationError{Path: path, Code: CodeInvalidEnum, Expected: "one of " + strings.Join(allowed, ", "), Got: fmt.Sprintf("%q", got)}
}

func invalidFormat(path, expected, got string) *ValidationError {
	return &ValidationError{Path: path, Code: CodeInvalidFormat, Expected: expected, Got: fmt.Sprintf("%q", got)}
}

// describe names the JSON kind of an untyped value.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		if _, ok := toFloat(t); ok {
			return "number"
		}
		return fmt.Sprintf("%T", v)
	}
}
