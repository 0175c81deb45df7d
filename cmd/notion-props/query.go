// Queries the configured databases and prints the projected properties.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/maruel/notionprops/internal/config"
	"github.com/maruel/notionprops/internal/jsonldb"
	"github.com/maruel/notionprops/internal/notion"
	"github.com/maruel/notionprops/internal/property"
)

type pageLine struct {
	Database   string         `json:"database"`
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	URL        string         `json:"url"`
	Properties map[string]any `json:"properties"`
}

// Key implements jsonldb.Row.
func (l *pageLine) Key() string { return l.ID }

// queryAll prints one line per projected page to w and, when out is not
// nil, upserts them into the snapshot table.
func queryAll(ctx context.Context, ex notion.Executor, cfg *config.Config, w io.Writer, out *jsonldb.Table[*pageLine]) error {
	for i := range cfg.Databases {
		db := &cfg.Databases[i]
		q := notion.QueryRequest{DatabaseID: db.ID}
		if len(db.Filter) != 0 {
			q.Filter = db.Filter
		}
		pages, err := notion.QueryDatabaseAll(ctx, ex, q)
		if err != nil {
			return fmt.Errorf("database %s: %w", db.DisplayName(), err)
		}
		slog.InfoContext(ctx, "Queried database", "database", db.DisplayName(), "pages", len(pages))
		var lines []*pageLine
		for j := range pages {
			line, err := project(ctx, db, &pages[j], cfg.Domain)
			if err != nil {
				return fmt.Errorf("database %s, page %s: %w", db.DisplayName(), pages[j].ID, err)
			}
			if line == nil {
				continue
			}
			if err := writeJSON(w, line, false); err != nil {
				return err
			}
			lines = append(lines, line)
		}
		if out != nil && len(lines) != 0 {
			added, err := out.Upsert(lines...)
			if err != nil {
				return fmt.Errorf("database %s: %w", db.DisplayName(), err)
			}
			slog.DebugContext(ctx, "Saved snapshot", "database", db.DisplayName(), "new", added, "updated", len(lines)-added, "rows", out.Len())
		}
	}
	return nil
}

// project applies the configured transforms to one page. It returns nil
// when an optional property is missing.
func project(ctx context.Context, db *config.Database, p *notion.Page, domain string) (*pageLine, error) {
	line := &pageLine{
		Database:   db.DisplayName(),
		ID:         p.ID,
		Title:      notion.PageTitle(p),
		URL:        notion.PageURL(p.ID, domain),
		Properties: make(map[string]any, len(db.Properties)),
	}
	for k := range db.Properties {
		prop := &db.Properties[k]
		v, ok := p.Properties[prop.Name]
		if !ok {
			if prop.Optional {
				slog.DebugContext(ctx, "Skipping page", "id", p.ID, "missing", prop.Name)
				return nil, nil
			}
			return nil, fmt.Errorf("property %q not found", prop.Name)
		}
		proj, err := prop.Projector()
		if err != nil {
			return nil, err
		}
		out, err := proj.ProjectAny(v)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", prop.Name, err)
		}
		line.Properties[prop.Name] = out
	}
	return line, nil
}

type pageInfo struct {
	ID             string                   `json:"id"`
	Title          string                   `json:"title"`
	URL            string                   `json:"url"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	Properties     map[string]property.Type `json:"properties"`
}

// describePage lists the type of every property of p, as a starting point
// for writing a configuration.
func describePage(p *notion.Page) *pageInfo {
	info := &pageInfo{
		ID:             p.ID,
		Title:          notion.PageTitle(p),
		URL:            notion.PageURL(p.ID, ""),
		LastEditedTime: p.LastEditedTime,
		Properties:     make(map[string]property.Type, len(p.Properties)),
	}
	for name, v := range p.Properties {
		info.Properties[name] = v.PropertyType()
	}
	return info
}
