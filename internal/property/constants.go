// Defines the closed literal sets and the date formats accepted on the wire.

package property

import (
	"errors"
	"sync"
	"time"
	_ "time/tzdata" // Time zone names are validated without relying on the host.
)

// Color is a Notion display color.
type Color string

// baseColors are the colors usable on select options.
var baseColors = []string{"default", "gray", "brown", "orange", "yellow", "green", "blue", "purple", "pink", "red"}

// colors are the colors usable on text annotations.
var colors = func() []string {
	out := append([]string(nil), baseColors...)
	for _, c := range baseColors[1:] {
		out = append(out, c+"_background")
	}
	return out
}()

// IsBase reports whether c may be used on a select option.
func (c Color) IsBase() bool { return contains(baseColors, string(c)) }

// Valid reports whether c may be used on a text annotation.
func (c Color) Valid() bool { return contains(colors, string(c)) }

// RollupFunction is the aggregation applied by a rollup.
type RollupFunction string

var rollupFunctions = []string{
	"count", "count_values", "empty", "not_empty", "unique", "show_unique",
	"percent_empty", "percent_not_empty", "sum", "average", "median", "min",
	"max", "range", "earliest_date", "latest_date", "date_range", "checked",
	"unchecked", "percent_checked", "percent_unchecked", "count_per_group",
	"percent_per_group", "show_original",
}

// Valid reports whether f is a known rollup function.
func (f RollupFunction) Valid() bool { return contains(rollupFunctions, string(f)) }

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// errDateFormat is returned by ParseDate for unsupported layouts.
var errDateFormat = errors.New("not an ISO-8601 date or date-time")

// dateLayouts are tried in order. Values without a zone are UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate parses a wire date: RFC 3339 date-time, date-time without zone
// or date only. Date-only values are midnight UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errDateFormat
}

var zones sync.Map // map[string]bool

// validTimeZone reports whether name is a loadable IANA zone name.
func validTimeZone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	if v, ok := zones.Load(name); ok {
		return v.(bool)
	}
	_, err := time.LoadLocation(name)
	zones.Store(name, err == nil)
	return err == nil
}
