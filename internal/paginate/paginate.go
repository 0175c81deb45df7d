// Package paginate aggregates cursor paginated operations into complete
// result sets.
//
// All and PropertyItems walk one cursor chain strictly sequentially. Merge
// runs independent sources concurrently and deduplicates their union.
package paginate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maruel/ksid"
	"golang.org/x/sync/errgroup"

	"github.com/maruel/notionprops/internal/property"
)

// Page is one response of a paged operation.
type Page[T any] struct {
	Results    []T
	NextCursor *string
}

// Query is a paged request that can be resumed at a cursor. The returned
// value must keep every other field of the receiver.
type Query[Q any] interface {
	WithStartCursor(cursor string) Q
}

// All returns the concatenation of every page of q, in order. fetch issues
// one page. The first failure aborts the whole run and no partial result is
// returned.
func All[Q Query[Q], T any](ctx context.Context, q Q, fetch func(context.Context, Q) (*Page[T], error)) ([]T, error) {
	return Until(ctx, q, fetch, nil)
}

// Until is like All but stops at the first item for which stop returns
// true. That item and the rest of its page are dropped and no further page
// is fetched. A nil stop never stops.
func Until[Q Query[Q], T any](ctx context.Context, q Q, fetch func(context.Context, Q) (*Page[T], error), stop func(T) bool) ([]T, error) {
	run := ksid.NewID()
	var out []T
	for n := 0; ; n++ {
		page, err := fetch(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", n, err)
		}
		for i, item := range page.Results {
			if stop != nil && stop(item) {
				slog.DebugContext(ctx, "paginate", "run", run.String(), "page", n, "results", i, "stopped", true)
				return append(out, page.Results[:i]...), nil
			}
		}
		out = append(out, page.Results...)
		slog.DebugContext(ctx, "paginate", "run", run.String(), "page", n, "results", len(page.Results), "more", page.NextCursor != nil)
		if page.NextCursor == nil {
			return out, nil
		}
		q = q.WithStartCursor(*page.NextCursor)
	}
}

// Source produces one complete result set.
type Source[T any] = func(ctx context.Context) ([]T, error)

// Merge runs every source concurrently, flattens the results in source
// order and drops items whose key was already seen. The first failure
// cancels the context passed to the other sources.
func Merge[T any, K comparable](ctx context.Context, key func(T) K, sources ...Source[T]) ([]T, error) {
	run := ksid.NewID()
	results := make([][]T, len(sources))
	eg, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		eg.Go(func() error {
			r, err := src(ctx)
			if err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var out []T
	seen := map[K]struct{}{}
	total := 0
	for _, r := range results {
		total += len(r)
		for _, item := range r {
			k := key(item)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	slog.DebugContext(ctx, "merge", "run", run.String(), "sources", len(sources), "results", total, "unique", len(out))
	return out, nil
}

// ItemQuery addresses one property of one page.
type ItemQuery struct {
	PageID      string
	PropertyID  string
	StartCursor string
	PageSize    int
}

// WithStartCursor implements Query.
func (q ItemQuery) WithStartCursor(cursor string) ItemQuery {
	q.StartCursor = cursor
	return q
}

// ItemFetch issues one property item request.
type ItemFetch func(ctx context.Context, q ItemQuery) (*property.ItemPage, error)

// PropertyItems fetches a property whose value may itself be paginated. A
// single property item is returned as is; a list is followed until its
// cursor is exhausted.
func PropertyItems(ctx context.Context, q ItemQuery, fetch ItemFetch) (*property.ItemList, error) {
	run := ksid.NewID()
	page, err := fetch(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property %s: %w", q.PropertyID, err)
	}
	list := property.NewItemList(page)
	for n := 1; page.NextCursor != nil; n++ {
		if page, err = fetch(ctx, q.WithStartCursor(*page.NextCursor)); err != nil {
			return nil, fmt.Errorf("failed to fetch property %s page %d: %w", q.PropertyID, n, err)
		}
		list.Append(page)
	}
	slog.DebugContext(ctx, "property items", "run", run.String(), "property", q.PropertyID, "type", list.Type, "items", len(list.Items))
	return list, nil
}
