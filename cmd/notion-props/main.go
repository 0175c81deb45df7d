// Package main is the entry point for the notion-props CLI tool.
//
// notion-props queries Notion databases, validates every page property and
// prints the projections selected in its YAML configuration as JSON lines.
// The results can be saved to a JSONL snapshot and the query repeated each
// time the configuration changes. It can also list the pages edited on a
// given day and update properties of a page.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/maruel/notionprops/internal/config"
	"github.com/maruel/notionprops/internal/jsonldb"
	"github.com/maruel/notionprops/internal/notion"
	"github.com/maruel/notionprops/internal/request"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "notion-props: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	token := flag.String("token", "", "Notion integration token (or set NOTION_TOKEN)")
	configPath := flag.String("config", "notion-props.yaml", "Configuration file")
	printSchema := flag.Bool("config-schema", false, "Print the JSON Schema of the configuration file and exit")
	edited := flag.String("edited", "", "List the pages edited on this day (YYYY-MM-DD, local time) instead of querying")
	outPath := flag.String("out", "", "JSONL snapshot file updated with the projected pages, keyed by page ID")
	watch := flag.Bool("watch", false, "Query again each time the configuration file changes")
	pageID := flag.String("page", "", "Print the title, url and property types of one page and exit")
	update := flag.String("update", "", "Page ID to update with -set")
	var sets assignments
	flag.Var(&sets, "set", "Property assignment name=kind:value for -update, repeatable")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	ll := &slog.LevelVar{}
	ll.Set(slog.LevelInfo)
	if *verbose {
		ll.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	if *printSchema {
		return writeJSON(os.Stdout, config.Schema(), true)
	}

	if *token == "" {
		*token = os.Getenv("NOTION_TOKEN")
	}
	if *token == "" {
		return errors.New("-token or NOTION_TOKEN environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	client := notion.NewClient(ctx, *token)

	if *pageID != "" {
		p, err := client.GetPage(ctx, *pageID)
		if err != nil {
			return err
		}
		return writeJSON(os.Stdout, describePage(p), true)
	}

	if *update != "" {
		if len(sets) == 0 {
			return errors.New("-update requires at least one -set")
		}
		props := map[string]request.Fragment{}
		for _, a := range sets {
			props[a.name] = a.fragment
		}
		p, err := client.UpdatePage(ctx, &notion.UpdatePageRequest{PageID: *update, Properties: request.Properties(props)})
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "Updated page", "id", p.ID, "title", notion.PageTitle(p))
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	if *edited != "" {
		day, err := time.ParseInLocation(time.DateOnly, *edited, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -edited: %w", err)
		}
		pages, err := notion.EditedPagesByDate(ctx, client, cfg.DatabaseIDs(), day)
		if err != nil {
			return err
		}
		slog.InfoContext(ctx, "Edited pages", "day", *edited, "count", len(pages))
		for i := range pages {
			line := editedLine{
				ID:             pages[i].ID,
				Title:          notion.PageTitle(&pages[i]),
				URL:            notion.PageURL(pages[i].ID, cfg.Domain),
				LastEditedTime: pages[i].LastEditedTime,
			}
			if err := writeJSON(os.Stdout, line, false); err != nil {
				return err
			}
		}
		return nil
	}

	var out *jsonldb.Table[*pageLine]
	if *outPath != "" {
		if out, err = jsonldb.Open[*pageLine](*outPath); err != nil {
			return err
		}
	}
	if !*watch {
		return queryAll(ctx, client, cfg, os.Stdout, out)
	}
	return watchFile(ctx, *configPath, func(ctx context.Context) error {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		return queryAll(ctx, client, cfg, os.Stdout, out)
	})
}

type editedLine struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	LastEditedTime time.Time `json:"last_edited_time"`
}

func writeJSON(w io.Writer, v any, indent bool) error {
	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
