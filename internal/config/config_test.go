// Tests for configuration parsing.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const valid = `
version: 1
domain: acme
databases:
  - id: db1
    name: Tasks
    filter:
      property: Done
      checkbox:
        equals: false
    properties:
      - name: Name
        transform: title_to_string
      - name: State
        transform: status_to_literal
        values: [Todo, Done]
      - name: Due
        transform: date_to_option_date
        optional: true
  - id: db2
    properties: []
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(valid))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Domain != "acme" || len(c.Databases) != 2 {
		t.Fatalf("unexpected config %+v", c)
	}
	db := &c.Databases[0]
	if db.DisplayName() != "Tasks" || c.Databases[1].DisplayName() != "db2" {
		t.Errorf("unexpected display names %q %q", db.DisplayName(), c.Databases[1].DisplayName())
	}
	if db.Filter["property"] != "Done" {
		t.Errorf("unexpected filter %v", db.Filter)
	}
	if len(db.Properties) != 3 || !db.Properties[2].Optional {
		t.Errorf("unexpected properties %+v", db.Properties)
	}
	p, err := db.Properties[1].Projector()
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "status to literal" {
		t.Errorf("unexpected projector %q", p.Name())
	}
	if ids := c.DatabaseIDs(); len(ids) != 2 || ids[0] != "db1" || ids[1] != "db2" {
		t.Errorf("unexpected ids %v", ids)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"version", "version: 2\ndatabases: [{id: a}]", "unsupported config version"},
		{"no database", "version: 1", "at least one database"},
		{"missing id", "version: 1\ndatabases: [{name: a}]", "id is required"},
		{"duplicate", "version: 1\ndatabases: [{id: a}, {id: a}]", "listed twice"},
		{"property name", "version: 1\ndatabases: [{id: a, properties: [{transform: title_to_string}]}]", "name is required"},
		{"unknown transform", "version: 1\ndatabases: [{id: a, properties: [{name: x, transform: nope}]}]", "unknown transform"},
		{"literal values", "version: 1\ndatabases: [{id: a, properties: [{name: x, transform: select_to_literal}]}]", "requires values"},
		{"yaml", "version: [", "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(valid), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load failed: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSchema(t *testing.T) {
	s := Schema()
	for _, name := range []string{"version", "domain", "databases"} {
		if _, ok := s.Properties.Get(name); !ok {
			t.Errorf("expected property %q in schema", name)
		}
	}
	found := false
	for _, r := range s.Required {
		if r == "databases" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected databases to be required, got %v", s.Required)
	}
}
