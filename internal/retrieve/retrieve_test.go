// Tests for the property retrievers.

package retrieve

import (
	"errors"
	"testing"
	"time"

	"github.com/maruel/notionprops/internal/property"
)

func ptr[T any](v T) *T { return &v }

func spans(texts ...string) []property.RichText {
	out := make([]property.RichText, 0, len(texts))
	for _, s := range texts {
		out = append(out, property.RichText{Type: property.RichTextText, Text: &property.TextContent{Content: s}, PlainText: s})
	}
	return out
}

func TestText(t *testing.T) {
	t.Run("Title", func(t *testing.T) {
		tests := []struct {
			name   string
			in     []property.RichText
			want   string
			wantOK bool
		}{
			{"joined", spans("Hello", " World"), "Hello World", true},
			{"empty", []property.RichText{}, "", true},
			{"null", nil, "", false},
			{"mention first", append([]property.RichText{{Type: property.RichTextMention, PlainText: "@Ada"}}, spans(" hi")...), "@Ada hi", true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, ok := Title(&property.TitleProperty{Title: tt.in})
				if got != tt.want || ok != tt.wantOK {
					t.Errorf("expected (%q, %v), got (%q, %v)", tt.want, tt.wantOK, got, ok)
				}
			})
		}
	})

	t.Run("RichText", func(t *testing.T) {
		tests := []struct {
			name   string
			in     []property.RichText
			want   string
			wantOK bool
		}{
			{"joined", spans("a", "b", "c"), "abc", true},
			{"null", nil, "", false},
			{"equation first", append([]property.RichText{{Type: property.RichTextEquation, PlainText: "x"}}, spans("y")...), "", true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, ok := RichText(&property.RichTextProperty{RichText: tt.in})
				if got != tt.want || ok != tt.wantOK {
					t.Errorf("expected (%q, %v), got (%q, %v)", tt.want, tt.wantOK, got, ok)
				}
			})
		}
	})
}

func TestUniqueID(t *testing.T) {
	tests := []struct {
		name   string
		in     property.UniqueIDValue
		want   string
		wantOK bool
	}{
		{"prefixed", property.UniqueIDValue{Prefix: ptr("TASK"), Number: ptr(42.0)}, "TASK-42", true},
		{"bare", property.UniqueIDValue{Number: ptr(7.0)}, "7", true},
		{"absent", property.UniqueIDValue{Prefix: ptr("TASK")}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := UniqueID(&property.UniqueIDProperty{UniqueID: tt.in})
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
}

func TestDate(t *testing.T) {
	t.Run("StartOnly", func(t *testing.T) {
		p := &property.DateProperty{Date: &property.DateValue{Start: "2024-03-01"}}
		got, ok := Date(p)
		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		if !ok || !got.Equal(want) {
			t.Errorf("expected %v, got %v (%v)", want, got, ok)
		}
		if _, ok := DateRange(p); ok {
			t.Error("expected no range without an end")
		}
	})

	t.Run("Range", func(t *testing.T) {
		p := &property.DateProperty{Date: &property.DateValue{
			Start:    "2024-03-01T09:00:00+09:00",
			End:      ptr("2024-03-02T09:00:00.000Z"),
			TimeZone: ptr("Asia/Tokyo"),
		}}
		r, ok := DateRange(p)
		if !ok {
			t.Fatal("expected a range")
		}
		if !r.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", r.Start)
		}
		if !r.End.Equal(time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %v", r.End)
		}
		if r.TimeZone == nil || *r.TimeZone != "Asia/Tokyo" {
			t.Errorf("unexpected time zone %v", r.TimeZone)
		}
	})

	t.Run("Null", func(t *testing.T) {
		p := &property.DateProperty{}
		if _, ok := Date(p); ok {
			t.Error("expected absent date")
		}
		if _, ok := DateRange(p); ok {
			t.Error("expected absent range")
		}
	})

	t.Run("NaiveDateTime", func(t *testing.T) {
		got, ok := CreatedTime(&property.CreatedTimeProperty{CreatedTime: "2024-03-01T10:30"})
		if !ok || !got.Equal(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)) {
			t.Errorf("unexpected created time %v (%v)", got, ok)
		}
	})
}

func TestRollup(t *testing.T) {
	num := &property.RollupProperty{Rollup: property.RollupValue{Type: property.RollupNumber, Number: ptr(3.0), Function: "sum"}}
	if got, ok := NumberRollup(num); !ok || got != 3 {
		t.Errorf("expected 3, got %v (%v)", got, ok)
	}
	if _, ok := DateRollup(num); ok {
		t.Error("expected no date from a number rollup")
	}

	date := &property.RollupProperty{Rollup: property.RollupValue{Type: property.RollupDate, Date: &property.DateValue{Start: "2024-01-02"}, Function: "latest_date"}}
	if got, ok := DateRollup(date); !ok || got.Day() != 2 {
		t.Errorf("unexpected date %v (%v)", got, ok)
	}
	if _, ok := NumberRollup(date); ok {
		t.Error("expected no number from a date rollup")
	}

	arr := &property.RollupProperty{Rollup: property.RollupValue{Type: property.RollupArray, Function: "show_original"}}
	if _, err := ArrayRollup(arr); !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

func TestCollections(t *testing.T) {
	rel := Relation(&property.RelationProperty{Relation: []property.PageRef{{ID: "b"}, {ID: "a"}}})
	if len(rel) != 2 || rel[0] != "b" || rel[1] != "a" {
		t.Errorf("unexpected relation %v", rel)
	}

	names := People(&property.PeopleProperty{People: []property.User{
		{ID: "1", Type: property.UserPerson, Name: ptr("Ada")},
		{ID: "2"},
		{ID: "3", Type: property.UserBot, Name: ptr("Bot")},
	}})
	if len(names) != 2 || names[0] != "Ada" || names[1] != "Bot" {
		t.Errorf("unexpected people %v", names)
	}

	tags := MultiSelect(&property.MultiSelectProperty{MultiSelect: []property.SelectOption{{Name: "x"}, {Name: "y"}}})
	if len(tags) != 2 || tags[0] != "x" || tags[1] != "y" {
		t.Errorf("unexpected tags %v", tags)
	}

	urls := Files(&property.FilesProperty{Files: []property.FileValue{
		{Name: "a", Type: "file", File: &property.HostedFile{URL: "https://s3/a"}},
		{Name: "b", Type: "external", External: &property.Link{URL: "https://example.com/b"}},
	}})
	if len(urls) != 2 || urls[0] != "https://s3/a" || urls[1] != "https://example.com/b" {
		t.Errorf("unexpected urls %v", urls)
	}
}

func TestScalars(t *testing.T) {
	if _, ok := Select(&property.SelectProperty{}); ok {
		t.Error("expected absent select")
	}
	if got, ok := Status(&property.StatusProperty{Status: &property.SelectOption{Name: "Done"}}); !ok || got != "Done" {
		t.Errorf("unexpected status %q", got)
	}
	if got, ok := URL(&property.URLProperty{URL: ptr("https://example.com")}); !ok || got != "https://example.com" {
		t.Errorf("unexpected url %q", got)
	}
	if _, ok := Email(&property.EmailProperty{}); ok {
		t.Error("expected absent email")
	}
	if _, ok := Number(&property.NumberProperty{}); ok {
		t.Error("expected absent number")
	}
	if !Checkbox(&property.CheckboxProperty{Checkbox: true}) {
		t.Error("expected checked")
	}
	if got := CreatedBy(&property.CreatedByProperty{CreatedBy: property.User{ID: "u1"}}); got != "u1" {
		t.Errorf("expected u1, got %q", got)
	}
}

func TestFormula(t *testing.T) {
	tests := []struct {
		name   string
		in     property.FormulaValue
		want   string
		wantOK bool
	}{
		{"string", property.FormulaValue{Type: property.FormulaString, String: ptr("x")}, "x", true},
		{"number", property.FormulaValue{Type: property.FormulaNumber, Number: ptr(1.5)}, "1.5", true},
		{"boolean", property.FormulaValue{Type: property.FormulaBoolean, Boolean: ptr(true)}, "true", true},
		{"date", property.FormulaValue{Type: property.FormulaDate, Date: &property.DateValue{Start: "2024-03-01"}}, "2024-03-01", true},
		{"null number", property.FormulaValue{Type: property.FormulaNumber}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Formula(&property.FormulaProperty{Formula: tt.in})
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.want, tt.wantOK, got, ok)
			}
		})
	}
	if n, ok := FormulaNumber(&property.FormulaProperty{Formula: property.FormulaValue{Type: property.FormulaNumber, Number: ptr(2.0)}}); !ok || n != 2 {
		t.Errorf("unexpected formula number %v", n)
	}
	if _, ok := FormulaBool(&property.FormulaProperty{Formula: property.FormulaValue{Type: property.FormulaNumber, Number: ptr(2.0)}}); ok {
		t.Error("expected no boolean from a number formula")
	}
}
