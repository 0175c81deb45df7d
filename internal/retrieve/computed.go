// Retrievers for dates and server computed values.

package retrieve

import (
	"strconv"
	"time"

	"github.com/maruel/notionprops/internal/property"
)

// Range is a date property with both endpoints set.
type Range struct {
	Start    time.Time
	End      time.Time
	TimeZone *string
}

func start(d *property.DateValue) (time.Time, bool) {
	if d == nil {
		return time.Time{}, false
	}
	return parse(d.Start)
}

func parse(s string) (time.Time, bool) {
	t, err := property.ParseDate(s)
	return t, err == nil
}

// Date returns the start instant.
func Date(p *property.DateProperty) (time.Time, bool) {
	return start(p.Date)
}

// DateRange returns the range only when both start and end are set; Date
// still succeeds on a start-only value.
func DateRange(p *property.DateProperty) (Range, bool) {
	if p.Date == nil || p.Date.End == nil {
		return Range{}, false
	}
	s, ok := parse(p.Date.Start)
	if !ok {
		return Range{}, false
	}
	e, ok := parse(*p.Date.End)
	if !ok {
		return Range{}, false
	}
	return Range{Start: s, End: e, TimeZone: p.Date.TimeZone}, true
}

// CreatedTime returns the creation instant.
func CreatedTime(p *property.CreatedTimeProperty) (time.Time, bool) {
	return parse(p.CreatedTime)
}

// LastEditedTime returns the last edition instant.
func LastEditedTime(p *property.LastEditedTimeProperty) (time.Time, bool) {
	return parse(p.LastEditedTime)
}

// NumberRollup returns the aggregate of a rollup of type number.
func NumberRollup(p *property.RollupProperty) (float64, bool) {
	if p.Rollup.Type != property.RollupNumber || p.Rollup.Number == nil {
		return 0, false
	}
	return *p.Rollup.Number, true
}

// DateRollup returns the start instant of a rollup of type date.
func DateRollup(p *property.RollupProperty) (time.Time, bool) {
	if p.Rollup.Type != property.RollupDate {
		return time.Time{}, false
	}
	return start(p.Rollup.Date)
}

// ArrayRollup has no projection defined. It always returns ErrUnsupported;
// the decoded items remain available on p.Rollup.Array.
func ArrayRollup(p *property.RollupProperty) ([]string, error) {
	return nil, ErrUnsupported
}

// Formula returns the string form of the formula result, whatever its type.
func Formula(p *property.FormulaProperty) (string, bool) {
	f := p.Formula
	switch f.Type {
	case property.FormulaString:
		return deref(f.String)
	case property.FormulaNumber:
		if f.Number != nil {
			return formatNumber(*f.Number), true
		}
	case property.FormulaBoolean:
		if f.Boolean != nil {
			return strconv.FormatBool(*f.Boolean), true
		}
	case property.FormulaDate:
		if f.Date != nil {
			return f.Date.Start, true
		}
	}
	return "", false
}

// FormulaNumber returns the result of a number formula.
func FormulaNumber(p *property.FormulaProperty) (float64, bool) {
	if p.Formula.Type != property.FormulaNumber || p.Formula.Number == nil {
		return 0, false
	}
	return *p.Formula.Number, true
}

// FormulaBool returns the result of a boolean formula.
func FormulaBool(p *property.FormulaProperty) (bool, bool) {
	if p.Formula.Type != property.FormulaBoolean || p.Formula.Boolean == nil {
		return false, false
	}
	return *p.Formula.Boolean, true
}

// FormulaDate returns the start instant of a date formula.
func FormulaDate(p *property.FormulaProperty) (time.Time, bool) {
	if p.Formula.Type != property.FormulaDate {
		return time.Time{}, false
	}
	return start(p.Formula.Date)
}
