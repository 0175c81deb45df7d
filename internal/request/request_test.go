// Tests for the request fragment builders.

package request

import (
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/maruel/notionprops/internal/property"
)

func TestFragments(t *testing.T) {
	tests := []struct {
		name string
		in   Fragment
		want string
		typ  property.Type
	}{
		{"title", Title("Hi"), `{"title":[{"text":{"content":"Hi"}}]}`, property.TypeTitle},
		{"rich_text", RichText("x"), `{"rich_text":[{"text":{"content":"x"}}]}`, property.TypeRichText},
		{"number", Number(2.5), `{"number":2.5}`, property.TypeNumber},
		{"select", Select("Open"), `{"select":{"name":"Open"}}`, property.TypeSelect},
		{"status", Status("Done"), `{"status":{"name":"Done"}}`, property.TypeStatus},
		{"multi_select", MultiSelect("a", "b"), `{"multi_select":[{"name":"a"},{"name":"b"}]}`, property.TypeMultiSelect},
		{"empty multi_select", MultiSelect(), `{"multi_select":[]}`, property.TypeMultiSelect},
		{"url", URL("https://example.com"), `{"url":"https://example.com"}`, property.TypeURL},
		{"email", Email("a@example.com"), `{"email":"a@example.com"}`, property.TypeEmail},
		{"phone_number", PhoneNumber("+1 555"), `{"phone_number":"+1 555"}`, property.TypePhoneNumber},
		{"checkbox", Checkbox(true), `{"checkbox":true}`, property.TypeCheckbox},
		{"relation", Relation("p1", "p2"), `{"relation":[{"id":"p1"},{"id":"p2"}]}`, property.TypeRelation},
		{"people", People("u1"), `{"people":[{"id":"u1","object":"user"}]}`, property.TypePeople},
		{"clear date", ClearDate(), `{"date":null}`, property.TypeDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
			v, err := property.DecodeRequest(b)
			if err != nil {
				t.Fatalf("DecodeRequest failed: %v", err)
			}
			if v.PropertyType() != tt.typ {
				t.Errorf("expected type %q, got %q", tt.typ, v.PropertyType())
			}
		})
	}
}

func TestDate(t *testing.T) {
	start := time.Date(2024, 3, 1, 1, 2, 3, 0, time.UTC)
	end := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   DateOptions
		want string
	}{
		{"date", DateOptions{Start: start}, `{"date":{"start":"2024-03-01"}}`},
		{"date time", DateOptions{Start: start, IncludeTime: true}, `{"date":{"start":"2024-03-01T10:02:03+09:00"}}`},
		{"range", DateOptions{Start: start, End: end}, `{"date":{"end":"2024-03-01","start":"2024-03-01"}}`},
		{"range with time", DateOptions{Start: start, End: end, IncludeTime: true}, `{"date":{"end":"2024-03-02T05:00:00+09:00","start":"2024-03-01T10:02:03+09:00"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(Date(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
			if _, err := property.DecodeRequest(b); err != nil {
				t.Errorf("DecodeRequest failed: %v", err)
			}
		})
	}
}

func TestFormatDateKeepsCalendarDay(t *testing.T) {
	for _, loc := range []*time.Location{time.FixedZone("+13:00", 13*60*60), time.FixedZone("-10:00", -10*60*60)} {
		t.Run(loc.String(), func(t *testing.T) {
			day := time.Date(2024, 1, 5, 0, 0, 0, 0, loc)
			if got := FormatDate(day, false); got != "2024-01-05" {
				t.Errorf("expected %q, got %q", "2024-01-05", got)
			}
			late := time.Date(2024, 1, 5, 23, 30, 0, 0, loc)
			if got := FormatDate(late, false); got != "2024-01-05" {
				t.Errorf("expected %q, got %q", "2024-01-05", got)
			}
		})
	}
	at := time.Date(2024, 1, 5, 0, 0, 0, 0, time.FixedZone("+13:00", 13*60*60))
	if got, want := FormatDate(at, true), "2024-01-04T20:00:00+09:00"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestProperties(t *testing.T) {
	props := Properties(map[string]Fragment{"Name": Title("x"), "Done": Checkbox(false)})
	b, err := json.Marshal(props)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Done":{"checkbox":false},"Name":{"title":[{"text":{"content":"x"}}]}}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}
