// Package config parses the YAML configuration of the notion-props CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/maruel/notionprops/internal/transform"
)

// Config lists the databases to read and how to project their properties.
type Config struct {
	Version   int        `yaml:"version" json:"version" jsonschema:"description=Configuration format version,enum=1"`
	Domain    string     `yaml:"domain,omitempty" json:"domain,omitempty" jsonschema:"description=Workspace domain used in page urls"`
	Databases []Database `yaml:"databases" json:"databases" jsonschema:"description=Databases to query"`
}

// Database is one database and its projected properties.
type Database struct {
	ID         string         `yaml:"id" json:"id" jsonschema:"description=Notion database id"`
	Name       string         `yaml:"name,omitempty" json:"name,omitempty" jsonschema:"description=Display name, defaults to the id"`
	Filter     map[string]any `yaml:"filter,omitempty" json:"filter,omitempty" jsonschema:"description=Raw Notion query filter"`
	Properties []Property     `yaml:"properties" json:"properties" jsonschema:"description=Properties to decode and print"`
}

// Property selects one page property and the transform applied to it.
type Property struct {
	Name      string   `yaml:"name" json:"name" jsonschema:"description=Property name as shown in Notion"`
	Transform string   `yaml:"transform" json:"transform" jsonschema:"description=Transform name such as title_to_string"`
	Values    []string `yaml:"values,omitempty" json:"values,omitempty" jsonschema:"description=Allowed names for the *_to_literal(s) transforms"`
	Optional  bool     `yaml:"optional,omitempty" json:"optional,omitempty" jsonschema:"description=Skip pages missing the property"`
}

// Load reads and parses a configuration from a file.
// The path is provided by the CLI user, so file inclusion is expected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified config path
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse parses a configuration from bytes.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

var errNoDatabase = errors.New("at least one database is required")

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if len(c.Databases) == 0 {
		return errNoDatabase
	}
	seen := map[string]bool{}
	for i := range c.Databases {
		db := &c.Databases[i]
		if db.ID == "" {
			return fmt.Errorf("database %d: id is required", i)
		}
		if seen[db.ID] {
			return fmt.Errorf("database %s: listed twice", db.ID)
		}
		seen[db.ID] = true
		for j := range db.Properties {
			p := &db.Properties[j]
			if p.Name == "" {
				return fmt.Errorf("database %s, property %d: name is required", db.ID, j)
			}
			if _, err := transform.Lookup(p.Transform, p.Values...); err != nil {
				return fmt.Errorf("database %s, property %q: %w", db.ID, p.Name, err)
			}
		}
	}
	return nil
}

// DatabaseIDs returns the ids of every configured database.
func (c *Config) DatabaseIDs() []string {
	ids := make([]string, 0, len(c.Databases))
	for i := range c.Databases {
		ids = append(ids, c.Databases[i].ID)
	}
	return ids
}

// DisplayName returns the name of the database, or its id.
func (d *Database) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return d.ID
}

// Projector returns the transform of p. The configuration must have been
// validated.
func (p *Property) Projector() (transform.Projector, error) {
	return transform.Lookup(p.Transform, p.Values...)
}

// Schema returns the JSON Schema of the configuration file, for editor
// completion.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	s := r.Reflect(&Config{})
	s.Title = "notion-props configuration"
	return s
}
