// Tests for the CLI helpers.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/maruel/notionprops/internal/config"
	"github.com/maruel/notionprops/internal/jsonldb"
	"github.com/maruel/notionprops/internal/notion"
	"github.com/maruel/notionprops/internal/paginate"
	"github.com/maruel/notionprops/internal/property"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Name=title:Hello", `{"title":[{"text":{"content":"Hello"}}]}`},
		{"Points=number:5", `{"number":5}`},
		{"Done=checkbox:true", `{"checkbox":true}`},
		{"Tags=multi_select:a, b", `{"multi_select":[{"name":"a"},{"name":"b"}]}`},
		{"State=status:Done", `{"status":{"name":"Done"}}`},
		{"Due=date:", `{"date":null}`},
		{"Due=date:2024-01-05", `{"date":{"start":"2024-01-05"}}`},
		{"Due=date:2024-01-05/2024-01-07", `{"date":{"end":"2024-01-07","start":"2024-01-05"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a, err := parseAssignment(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			got, err := json.Marshal(a.fragment)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
	for _, input := range []string{"Name", "=title:x", "Name=title", "Points=number:x", "Done=checkbox:maybe", "Due=date:tomorrow", "X=unknown:1"} {
		t.Run("invalid "+input, func(t *testing.T) {
			if _, err := parseAssignment(input); err == nil {
				t.Errorf("expected an error for %q", input)
			}
		})
	}
}

func TestAssignmentsFlag(t *testing.T) {
	var a assignments
	for _, s := range []string{"A=number:1", "B=url:https://example.com"} {
		if err := a.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	if got := a.String(); got != "A,B" {
		t.Errorf("expected %q, got %q", "A,B", got)
	}
}

// fakeExecutor serves one canned page for every database.
type fakeExecutor struct {
	notion.Executor
	page notion.Page
	err  error
}

func (f *fakeExecutor) QueryDatabase(ctx context.Context, q notion.QueryRequest) (*paginate.Page[notion.Page], error) {
	if f.err != nil {
		return nil, f.err
	}
	return &paginate.Page[notion.Page]{Results: []notion.Page{f.page}}, nil
}

const pageJSON = `{
	"id": "0123456789abcdef0123456789abcdef",
	"properties": {
		"Name": {"id": "title", "type": "title", "title": [{"type": "text", "text": {"content": "Write docs", "link": null}, "annotations": {"bold": false, "italic": false, "strikethrough": false, "underline": false, "code": false, "color": "default"}, "plain_text": "Write docs", "href": null}]},
		"State": {"id": "s", "type": "status", "status": {"id": "1", "name": "Done", "color": "green"}},
		"Points": {"id": "p", "type": "number", "number": null}
	}
}`

func newPage(t *testing.T) notion.Page {
	var p notion.Page
	if err := json.Unmarshal([]byte(pageJSON), &p); err != nil {
		t.Fatal(err)
	}
	return p
}

func newConfig(t *testing.T, props string) *config.Config {
	c, err := config.Parse([]byte("version: 1\ndomain: acme\ndatabases:\n  - id: db1\n    name: Tasks\n    properties: " + props + "\n"))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestQueryAll(t *testing.T) {
	t.Run("Projected", func(t *testing.T) {
		ex := &fakeExecutor{page: newPage(t)}
		cfg := newConfig(t, `[{name: Name, transform: title_to_string}, {name: State, transform: status_to_literal, values: [Todo, Done]}, {name: Points, transform: number_to_option_float}]`)
		var buf bytes.Buffer
		if err := queryAll(t.Context(), ex, cfg, &buf, nil); err != nil {
			t.Fatal(err)
		}
		want := `{"database":"Tasks","id":"0123456789abcdef0123456789abcdef","title":"Write docs","url":"https://www.notion.so/acme/0123456789abcdef0123456789abcdef","properties":{"Name":"Write docs","Points":null,"State":"Done"}}` + "\n"
		if got := buf.String(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
	t.Run("OptionalMissing", func(t *testing.T) {
		ex := &fakeExecutor{page: newPage(t)}
		cfg := newConfig(t, `[{name: Due, transform: date_to_date, optional: true}]`)
		var buf bytes.Buffer
		if err := queryAll(t.Context(), ex, cfg, &buf, nil); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %s", buf.String())
		}
	})
	t.Run("RequiredMissing", func(t *testing.T) {
		ex := &fakeExecutor{page: newPage(t)}
		cfg := newConfig(t, `[{name: Due, transform: date_to_date}]`)
		err := queryAll(t.Context(), ex, cfg, &bytes.Buffer{}, nil)
		if err == nil || !strings.Contains(err.Error(), `property "Due" not found`) {
			t.Errorf("expected a missing property error, got %v", err)
		}
	})
	t.Run("WrongType", func(t *testing.T) {
		ex := &fakeExecutor{page: newPage(t)}
		cfg := newConfig(t, `[{name: State, transform: select_to_string}]`)
		err := queryAll(t.Context(), ex, cfg, &bytes.Buffer{}, nil)
		var verr *property.ValidationError
		if !errors.As(err, &verr) || verr.Code != property.CodeDiscriminatorUnknown {
			t.Errorf("expected a discriminator error, got %v", err)
		}
	})
	t.Run("Snapshot", func(t *testing.T) {
		ex := &fakeExecutor{page: newPage(t)}
		cfg := newConfig(t, `[{name: Name, transform: title_to_string}]`)
		path := filepath.Join(t.TempDir(), "out.jsonl")
		out, err := jsonldb.Open[*pageLine](path)
		if err != nil {
			t.Fatal(err)
		}
		for range 2 {
			if err := queryAll(t.Context(), ex, cfg, &bytes.Buffer{}, out); err != nil {
				t.Fatal(err)
			}
		}
		if out.Len() != 1 {
			t.Errorf("expected 1 row, got %d", out.Len())
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		var got pageLine
		if err := json.Unmarshal(bytes.TrimSpace(data), &got); err != nil {
			t.Fatalf("expected a single row, got %q: %v", data, err)
		}
		if got.Properties["Name"] != "Write docs" {
			t.Errorf("unexpected snapshot %+v", got)
		}
	})
	t.Run("QueryError", func(t *testing.T) {
		ex := &fakeExecutor{err: errors.New("boom")}
		cfg := newConfig(t, `[]`)
		err := queryAll(t.Context(), ex, cfg, &bytes.Buffer{}, nil)
		if err == nil || !strings.Contains(err.Error(), "database Tasks") {
			t.Errorf("expected a wrapped error, got %v", err)
		}
	})
}

func TestDescribePage(t *testing.T) {
	p := newPage(t)
	got, err := json.Marshal(describePage(&p))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"id":"0123456789abcdef0123456789abcdef","title":"Write docs","url":"https://www.notion.so/0123456789abcdef0123456789abcdef","last_edited_time":"0001-01-01T00:00:00Z","properties":{"Name":"title","Points":"number","State":"status"}}`
	if string(got) != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestWatchFileStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	ctx, cancel := context.WithCancel(t.Context())
	calls := 0
	err := watchFile(ctx, path, func(context.Context) error {
		calls++
		cancel()
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}
