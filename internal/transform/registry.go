// Looks up transforms by name, for configuration driven projections.

package transform

import (
	"fmt"
	"sort"

	"github.com/maruel/notionprops/internal/property"
)

// Projector is a Transform with its result type erased.
type Projector interface {
	Name() string
	Type() property.Type
	ProjectAny(v property.PropertyValue) (any, error)
}

// ProjectAny implements Projector.
func (t Transform[T]) ProjectAny(v property.PropertyValue) (any, error) {
	return t.Project(v)
}

var registry = map[string]func(values []string) Projector{
	"title_to_string":               func([]string) Projector { return TitleToString() },
	"title_to_option_string":        func([]string) Projector { return TitleToOptionString() },
	"rich_text_to_string":           func([]string) Projector { return RichTextToString() },
	"rich_text_to_option_string":    func([]string) Projector { return RichTextToOptionString() },
	"relation_to_strings":           func([]string) Projector { return RelationToStrings() },
	"unique_id_to_string":           func([]string) Projector { return UniqueIDToString() },
	"unique_id_to_option_string":    func([]string) Projector { return UniqueIDToOptionString() },
	"created_time_to_date":          func([]string) Projector { return CreatedTimeToDate() },
	"last_edited_time_to_date":      func([]string) Projector { return LastEditedTimeToDate() },
	"date_to_date":                  func([]string) Projector { return DateToDate() },
	"date_to_option_date":           func([]string) Projector { return DateToOptionDate() },
	"date_to_range":                 func([]string) Projector { return DateToRange() },
	"url_to_string":                 func([]string) Projector { return URLToString() },
	"url_to_option_string":          func([]string) Projector { return URLToOptionString() },
	"email_to_option_string":        func([]string) Projector { return EmailToOptionString() },
	"phone_number_to_option_string": func([]string) Projector { return PhoneNumberToOptionString() },
	"number_to_float":               func([]string) Projector { return NumberToFloat() },
	"number_to_option_float":        func([]string) Projector { return NumberToOptionFloat() },
	"checkbox_to_bool":              func([]string) Projector { return CheckboxToBool() },
	"people_to_strings":             func([]string) Projector { return PeopleToStrings() },
	"select_to_string":              func([]string) Projector { return SelectToString() },
	"select_to_option_string":       func([]string) Projector { return SelectToOptionString() },
	"status_to_string":              func([]string) Projector { return StatusToString() },
	"multi_select_to_strings":       func([]string) Projector { return MultiSelectToStrings() },
	"number_rollup_to_float":        func([]string) Projector { return NumberRollupToFloat() },
	"date_rollup_to_date":           func([]string) Projector { return DateRollupToDate() },
	"formula_to_string":             func([]string) Projector { return FormulaToString() },
	"files_to_strings":              func([]string) Projector { return FilesToStrings() },
	"created_by_to_string":          func([]string) Projector { return CreatedByToString() },
	"last_edited_by_to_string":      func([]string) Projector { return LastEditedByToString() },
	"select_to_literal":             func(v []string) Projector { return SelectToLiteral(v...) },
	"status_to_literal":             func(v []string) Projector { return StatusToLiteral(v...) },
	"multi_select_to_literals":      func(v []string) Projector { return MultiSelectToLiterals(v...) },
}

// literalTransforms require a non-empty set of values.
var literalTransforms = map[string]bool{
	"select_to_literal":        true,
	"status_to_literal":        true,
	"multi_select_to_literals": true,
}

// Names lists the registered transform names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the transform registered under name. values is the literal
// set of the *_to_literal(s) transforms and must be empty for the others.
func Lookup(name string, values ...string) (Projector, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform %q", name)
	}
	if literalTransforms[name] != (len(values) != 0) {
		if len(values) == 0 {
			return nil, fmt.Errorf("transform %q requires values", name)
		}
		return nil, fmt.Errorf("transform %q does not take values", name)
	}
	return mk(values), nil
}
