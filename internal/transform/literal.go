// Transforms restricting option names to a closed set of literals.

package transform

import (
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/notionprops/internal/property"
	"github.com/maruel/notionprops/internal/retrieve"
)

func checkLiteral[L ~string](path string, allowed []L, name string) (L, error) {
	if slices.Contains(allowed, L(name)) {
		return L(name), nil
	}
	expected := make([]string, len(allowed))
	for i, a := range allowed {
		expected[i] = strconv.Quote(string(a))
	}
	return "", &property.ValidationError{
		Path:     path,
		Code:     property.CodeInvalidEnum,
		Expected: "one of " + strings.Join(expected, ", "),
		Got:      strconv.Quote(name),
	}
}

// SelectToLiteral projects a select to one of allowed.
func SelectToLiteral[L ~string](allowed ...L) Transform[L] {
	return newTransform("select to literal", property.TypeSelect, func(p *property.SelectProperty) (L, error) {
		name, ok := retrieve.Select(p)
		if !ok {
			return "", &property.AbsentValueError{Type: property.TypeSelect}
		}
		return checkLiteral("/select/name", allowed, name)
	})
}

// StatusToLiteral projects a status to one of allowed.
func StatusToLiteral[L ~string](allowed ...L) Transform[L] {
	return newTransform("status to literal", property.TypeStatus, func(p *property.StatusProperty) (L, error) {
		name, ok := retrieve.Status(p)
		if !ok {
			return "", &property.AbsentValueError{Type: property.TypeStatus}
		}
		return checkLiteral("/status/name", allowed, name)
	})
}

// MultiSelectToLiterals projects a multi select, each name being one of
// allowed.
func MultiSelectToLiterals[L ~string](allowed ...L) Transform[[]L] {
	return newTransform("multi select to literals", property.TypeMultiSelect, func(p *property.MultiSelectProperty) ([]L, error) {
		names := retrieve.MultiSelect(p)
		out := make([]L, 0, len(names))
		for i, name := range names {
			l, err := checkLiteral("/multi_select/"+strconv.Itoa(i)+"/name", allowed, name)
			if err != nil {
				return nil, err
			}
			out = append(out, l)
		}
		return out, nil
	})
}
