// Parses -set property assignments into request fragments.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/notionprops/internal/request"
)

type assignment struct {
	name     string
	fragment request.Fragment
}

// assignments implements flag.Value for repeated -set flags.
type assignments []assignment

func (a *assignments) String() string {
	names := make([]string, 0, len(*a))
	for _, x := range *a {
		names = append(names, x.name)
	}
	return strings.Join(names, ",")
}

func (a *assignments) Set(s string) error {
	x, err := parseAssignment(s)
	if err != nil {
		return err
	}
	*a = append(*a, x)
	return nil
}

// parseAssignment parses "name=kind:value". List kinds take comma separated
// values; date takes "start[/end]" as YYYY-MM-DD or RFC 3339.
func parseAssignment(s string) (assignment, error) {
	name, rest, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return assignment{}, fmt.Errorf("invalid assignment %q: expected name=kind:value", s)
	}
	kind, value, ok := strings.Cut(rest, ":")
	if !ok {
		return assignment{}, fmt.Errorf("invalid assignment %q: expected name=kind:value", s)
	}
	f, err := fragment(kind, value)
	if err != nil {
		return assignment{}, fmt.Errorf("invalid assignment %q: %w", s, err)
	}
	return assignment{name: name, fragment: f}, nil
}

func fragment(kind, value string) (request.Fragment, error) {
	switch kind {
	case "title":
		return request.Title(value), nil
	case "rich_text":
		return request.RichText(value), nil
	case "number":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, err
		}
		return request.Number(n), nil
	case "select":
		return request.Select(value), nil
	case "status":
		return request.Status(value), nil
	case "multi_select":
		return request.MultiSelect(split(value)...), nil
	case "url":
		return request.URL(value), nil
	case "email":
		return request.Email(value), nil
	case "phone_number":
		return request.PhoneNumber(value), nil
	case "checkbox":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, err
		}
		return request.Checkbox(b), nil
	case "relation":
		return request.Relation(split(value)...), nil
	case "people":
		return request.People(split(value)...), nil
	case "date":
		if value == "" {
			return request.ClearDate(), nil
		}
		return dateFragment(value)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func split(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func dateFragment(value string) (request.Fragment, error) {
	startS, endS, hasEnd := strings.Cut(value, "/")
	start, withTime, err := parseTime(startS)
	if err != nil {
		return nil, err
	}
	opts := request.DateOptions{Start: start, IncludeTime: withTime}
	if hasEnd {
		end, endTime, err := parseTime(endS)
		if err != nil {
			return nil, err
		}
		opts.End = end
		opts.IncludeTime = withTime || endTime
	}
	return request.Date(opts), nil
}

func parseTime(s string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q", s)
	}
	return t, true, nil
}
