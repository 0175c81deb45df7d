// Package request builds the minimal write fragments for writable property
// types.
//
// Builders do no semantic validation. The server decides whether, for
// example, a select option name exists.
package request

import (
	"time"
)

// Fragment is one property entry of a create or update page request.
type Fragment map[string]any

// Title sets a title to a single text span.
func Title(content string) Fragment {
	return Fragment{"title": textSpans(content)}
}

// RichText sets rich text to a single text span.
func RichText(content string) Fragment {
	return Fragment{"rich_text": textSpans(content)}
}

func textSpans(content string) []any {
	return []any{map[string]any{"text": map[string]any{"content": content}}}
}

// Number sets a number.
func Number(n float64) Fragment {
	return Fragment{"number": n}
}

// Select picks an option by name.
func Select(name string) Fragment {
	return Fragment{"select": map[string]any{"name": name}}
}

// Status picks a status by name.
func Status(name string) Fragment {
	return Fragment{"status": map[string]any{"name": name}}
}

// MultiSelect picks options by name, in order.
func MultiSelect(names ...string) Fragment {
	opts := make([]any, 0, len(names))
	for _, n := range names {
		opts = append(opts, map[string]any{"name": n})
	}
	return Fragment{"multi_select": opts}
}

// URL sets a url.
func URL(u string) Fragment {
	return Fragment{"url": u}
}

// Email sets an email address.
func Email(addr string) Fragment {
	return Fragment{"email": addr}
}

// PhoneNumber sets a phone number.
func PhoneNumber(n string) Fragment {
	return Fragment{"phone_number": n}
}

// Checkbox checks or clears a checkbox.
func Checkbox(checked bool) Fragment {
	return Fragment{"checkbox": checked}
}

// Relation sets the related pages, in order.
func Relation(ids ...string) Fragment {
	return Fragment{"relation": refs(ids, nil)}
}

// People sets the assigned users, in order.
func People(ids ...string) Fragment {
	return Fragment{"people": refs(ids, map[string]any{"object": "user"})}
}

func refs(ids []string, extra map[string]any) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		m := map[string]any{"id": id}
		for k, v := range extra {
			m[k] = v
		}
		out = append(out, m)
	}
	return out
}

// offset is the fixed UTC offset dates are rendered in, regardless of the
// host time zone.
var offset = time.FixedZone("+09:00", 9*60*60)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05-07:00"
)

// FormatDate renders t as a date-time at UTC+09:00, or as the calendar date
// of t in its own location.
func FormatDate(t time.Time, includeTime bool) string {
	if includeTime {
		return t.In(offset).Format(dateTimeLayout)
	}
	return t.Format(dateLayout)
}

// DateOptions describes a date or a date range.
type DateOptions struct {
	Start time.Time
	// End is optional.
	End         time.Time
	IncludeTime bool
}

// Date sets a date, with an end when opts.End is set.
func Date(opts DateOptions) Fragment {
	d := map[string]any{"start": FormatDate(opts.Start, opts.IncludeTime)}
	if !opts.End.IsZero() {
		d["end"] = FormatDate(opts.End, opts.IncludeTime)
	}
	return Fragment{"date": d}
}

// ClearDate clears a date.
func ClearDate() Fragment {
	return Fragment{"date": nil}
}

// Properties assembles named fragments into the "properties" object of a
// page request.
func Properties(fragments map[string]Fragment) map[string]any {
	out := make(map[string]any, len(fragments))
	for name, f := range fragments {
		out[name] = map[string]any(f)
	}
	return out
}
