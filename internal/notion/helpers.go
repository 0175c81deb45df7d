// Implements the exhaustive queries built on top of an Executor.

package notion

import (
	"context"
	"strings"
	"time"

	"github.com/maruel/notionprops/internal/paginate"
	"github.com/maruel/notionprops/internal/property"
	"github.com/maruel/notionprops/internal/retrieve"
)

// QueryDatabaseAll queries all pages in a database, handling pagination.
func QueryDatabaseAll(ctx context.Context, ex Executor, q QueryRequest) ([]Page, error) {
	return paginate.All(ctx, q, ex.QueryDatabase)
}

// SearchAll returns every page matching req, handling pagination.
func SearchAll(ctx context.Context, ex Executor, req SearchRequest) ([]Page, error) {
	return paginate.All(ctx, req, ex.Search)
}

// PropertyItemsAll retrieves the complete value of one page property, even
// when it is paginated.
func PropertyItemsAll(ctx context.Context, ex Executor, q paginate.ItemQuery) (property.PropertyValue, error) {
	list, err := paginate.PropertyItems(ctx, q, ex.GetPropertyItem)
	if err != nil {
		return nil, err
	}
	return list.Value()
}

// dayBounds returns the first and last instant of the day of t, in t's
// location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// EditedPagesFromDatabaseByDate returns the rows of a database last edited
// on the day of day.
func EditedPagesFromDatabaseByDate(ctx context.Context, ex Executor, databaseID string, day time.Time) ([]Page, error) {
	start, end := dayBounds(day)
	q := QueryRequest{
		DatabaseID: databaseID,
		Filter: map[string]any{
			"and": []any{
				map[string]any{
					"timestamp":        "last_edited_time",
					"last_edited_time": map[string]any{"on_or_after": start.Format(time.RFC3339)},
				},
				map[string]any{
					"timestamp":        "last_edited_time",
					"last_edited_time": map[string]any{"on_or_before": end.Format(time.RFC3339)},
				},
			},
		},
	}
	return QueryDatabaseAll(ctx, ex, q)
}

// EditedPagesFromSearchByDate returns the pages visible to the integration
// last edited on the day of day.
//
// Results come newest first, so paging stops at the first page edited
// before the day.
func EditedPagesFromSearchByDate(ctx context.Context, ex Executor, day time.Time) ([]Page, error) {
	req := SearchRequest{
		Filter: &SearchFilter{Property: "object", Value: "page"},
		Sort:   &SearchSort{Timestamp: "last_edited_time", Direction: "descending"},
	}
	start, end := dayBounds(day)
	pages, err := paginate.Until(ctx, req, ex.Search, func(p Page) bool { return p.LastEditedTime.Before(start) })
	if err != nil {
		return nil, err
	}
	out := pages[:0]
	for _, p := range pages {
		if t := p.LastEditedTime; !t.Before(start) && !t.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

// EditedPagesByDate merges the pages edited on the day of day found through
// search and through each database, keeping one copy per page id.
func EditedPagesByDate(ctx context.Context, ex Executor, databaseIDs []string, day time.Time) ([]Page, error) {
	sources := []paginate.Source[Page]{
		func(ctx context.Context) ([]Page, error) { return EditedPagesFromSearchByDate(ctx, ex, day) },
	}
	for _, id := range databaseIDs {
		sources = append(sources, func(ctx context.Context) ([]Page, error) {
			return EditedPagesFromDatabaseByDate(ctx, ex, id, day)
		})
	}
	return paginate.Merge(ctx, func(p Page) string { return p.ID }, sources...)
}

// PageURL returns the browser url of a page, optionally under a workspace
// domain.
func PageURL(pageID, domain string) string {
	id := strings.ReplaceAll(pageID, "-", "")
	if domain != "" {
		return "https://www.notion.so/" + domain + "/" + id
	}
	return "https://www.notion.so/" + id
}

// NoTitle is returned by PageTitle for pages without a recognized title.
const NoTitle = "No Title"

// PageTitle returns the plain text of the "Name" title property, else of
// the "title" property, else NoTitle.
func PageTitle(p *Page) string {
	for _, name := range []string{"Name", "title"} {
		if t, ok := p.Properties[name].(*property.TitleProperty); ok {
			s, _ := retrieve.Title(t)
			return s
		}
	}
	return NoTitle
}
