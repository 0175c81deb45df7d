// Walks untyped JSON values while tracking the JSON pointer of each field.

package property

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// parse decodes raw JSON into untyped values, keeping numbers exact.
func parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ValidationError{Code: CodeParseError, Expected: "JSON document", Got: err.Error()}
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, &ValidationError{Code: CodeParseError, Expected: "single JSON document", Got: "trailing data"}
	}
	return v, nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPath(path, key string) string {
	return path + "/" + pointerEscaper.Replace(key)
}

func indexPath(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}

// toFloat converts the number representations produced by JSON decoders.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		if err != nil || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// object is a JSON object located at path.
type object struct {
	path string
	m    map[string]any
}

func toObject(v any, path, expected string) (object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return object{}, invalidType(path, expected, v)
	}
	return object{path: path, m: m}, nil
}

func (o object) at(key string) string { return joinPath(o.path, key) }

// present reports whether key exists and is not null.
func (o object) present(key string) bool {
	v, ok := o.m[key]
	return ok && v != nil
}

func (o object) str(key string) (string, error) {
	v, ok := o.m[key]
	if !ok {
		return "", required(o.at(key), "string")
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidType(o.at(key), "string", v)
	}
	return s, nil
}

// nullableStr treats a missing key like null.
func (o object) nullableStr(key string) (*string, error) {
	v := o.m[key]
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, invalidType(o.at(key), "string or null", v)
	}
	return &s, nil
}

func (o object) boolean(key string) (bool, error) {
	v, ok := o.m[key]
	if !ok {
		return false, required(o.at(key), "boolean")
	}
	b, ok := v.(bool)
	if !ok {
		return false, invalidType(o.at(key), "boolean", v)
	}
	return b, nil
}

// optionalBool returns false for a missing key.
func (o object) optionalBool(key string) (bool, error) {
	if _, ok := o.m[key]; !ok {
		return false, nil
	}
	return o.boolean(key)
}

func (o object) nullableBool(key string) (*bool, error) {
	v := o.m[key]
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, invalidType(o.at(key), "boolean or null", v)
	}
	return &b, nil
}

func (o object) nullableNumber(key string) (*float64, error) {
	v := o.m[key]
	if v == nil {
		return nil, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return nil, invalidType(o.at(key), "number or null", v)
	}
	return &f, nil
}

// literal reads a required string restricted to allowed.
func (o object) literal(key string, allowed ...string) (string, error) {
	s, err := o.str(key)
	if err != nil {
		return "", err
	}
	if !contains(allowed, s) {
		return "", invalidEnum(o.at(key), allowed, s)
	}
	return s, nil
}

func (o object) obj(key, expected string) (object, error) {
	v, ok := o.m[key]
	if !ok {
		return object{}, required(o.at(key), expected)
	}
	return toObject(v, o.at(key), expected)
}

// nullableObj returns ok=false for a missing key or null.
func (o object) nullableObj(key, expected string) (object, bool, error) {
	v := o.m[key]
	if v == nil {
		return object{}, false, nil
	}
	c, err := toObject(v, o.at(key), expected+" or null")
	return c, err == nil, err
}

// array reads a required array. When nullable is set, null yields a nil slice.
func (o object) array(key, expected string, nullable bool) ([]any, error) {
	v, ok := o.m[key]
	if !ok {
		return nil, required(o.at(key), expected)
	}
	if v == nil && nullable {
		return nil, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, invalidType(o.at(key), expected, v)
	}
	return a, nil
}

// dateString reads a string that must parse with ParseDate.
func (o object) dateString(key string) (string, error) {
	s, err := o.str(key)
	if err != nil {
		return "", err
	}
	if _, err := ParseDate(s); err != nil {
		return "", invalidFormat(o.at(key), "ISO-8601 date or date-time", s)
	}
	return s, nil
}

func (o object) nullableDateString(key string) (*string, error) {
	s, err := o.nullableStr(key)
	if err != nil || s == nil {
		return nil, err
	}
	if _, err := ParseDate(*s); err != nil {
		return nil, invalidFormat(o.at(key), "ISO-8601 date or date-time", *s)
	}
	return s, nil
}
