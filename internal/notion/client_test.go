// Tests for the Notion API client.

package notion

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/maruel/notionprops/internal/paginate"
	"github.com/maruel/notionprops/internal/property"
	"github.com/maruel/notionprops/internal/request"
)

const titleSpan = `{"type":"text","text":{"content":"Task","link":null},` +
	`"annotations":{"bold":false,"italic":false,"strikethrough":false,"underline":false,"code":false,"color":"default"},` +
	`"plain_text":"Task","href":null}`

func pageJSON(id string) string {
	return `{"object":"page","id":"` + id + `","created_time":"2024-03-01T00:00:00.000Z","last_edited_time":"2024-03-01T10:00:00.000Z",` +
		`"parent":{"type":"database_id","database_id":"db"},"archived":false,"url":"https://www.notion.so/` + id + `",` +
		`"properties":{"Name":{"id":"title","type":"title","title":[` + titleSpan + `]},"Points":{"id":"p","type":"number","number":3}}}`
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	c := NewClient(t.Context(), "secret")
	c.BaseURL = server.URL
	c.limiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

func TestClient(t *testing.T) {
	t.Run("QueryDatabaseAll", func(t *testing.T) {
		var cursors []string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer secret" {
				t.Errorf("expected bearer token, got %q", got)
			}
			if got := r.Header.Get("Notion-Version"); got != APIVersion {
				t.Errorf("expected version %q, got %q", APIVersion, got)
			}
			if r.URL.Path != "/databases/db/query" || r.Method != http.MethodPost {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("failed to decode body: %v", err)
			}
			cursor, _ := body["start_cursor"].(string)
			cursors = append(cursors, cursor)
			if cursor == "" {
				_, _ = io.WriteString(w, `{"object":"list","results":[`+pageJSON("a")+`],"next_cursor":"c1","has_more":true}`)
				return
			}
			_, _ = io.WriteString(w, `{"object":"list","results":[`+pageJSON("b")+`],"next_cursor":null,"has_more":false}`)
		})
		pages, err := QueryDatabaseAll(t.Context(), c, QueryRequest{DatabaseID: "db"})
		if err != nil {
			t.Fatalf("QueryDatabaseAll failed: %v", err)
		}
		if len(pages) != 2 || pages[0].ID != "a" || pages[1].ID != "b" {
			t.Fatalf("unexpected pages %+v", pages)
		}
		if len(cursors) != 2 || cursors[1] != "c1" {
			t.Errorf("unexpected cursors %v", cursors)
		}
		if got := PageTitle(&pages[0]); got != "Task" {
			t.Errorf("expected title %q, got %q", "Task", got)
		}
		if _, ok := pages[0].Properties["Points"].(*property.NumberProperty); !ok {
			t.Errorf("expected a number property, got %T", pages[0].Properties["Points"])
		}
	})

	t.Run("APIError", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find database"}`)
		})
		_, err := c.QueryDatabase(t.Context(), QueryRequest{DatabaseID: "missing"})
		var terr *TransportError
		if !errors.As(err, &terr) || terr.Op != "query database" {
			t.Fatalf("expected *TransportError, got %v", err)
		}
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if apiErr.Status != 404 || apiErr.Code != "object_not_found" {
			t.Errorf("unexpected API error %+v", apiErr)
		}
	})

	t.Run("NonJSONError", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "upstream down")
		})
		_, err := c.Search(t.Context(), SearchRequest{})
		if err == nil || !strings.Contains(err.Error(), "502") {
			t.Errorf("expected status in error, got %v", err)
		}
	})

	t.Run("SearchSkipsDatabases", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"object":"list","results":[`+
				`{"object":"database","id":"db","properties":{"Name":{"id":"title","name":"Name","type":"title","title":{}}}},`+
				pageJSON("a")+`],"next_cursor":null,"has_more":false}`)
		})
		page, err := c.Search(t.Context(), SearchRequest{})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(page.Results) != 1 || page.Results[0].ID != "a" || page.NextCursor != nil {
			t.Errorf("unexpected search page %+v", page)
		}
	})

	t.Run("PropertyItemsAll", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/pages/pg/properties/rel" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			next, more, id := `"c1"`, "true", "p1"
			if r.URL.Query().Get("start_cursor") == "c1" {
				next, more, id = "null", "false", "p2"
			}
			_, _ = io.WriteString(w, `{"object":"list","results":[{"object":"property_item","id":"rel","type":"relation","relation":{"id":"`+id+`"}}],`+
				`"next_cursor":`+next+`,"has_more":`+more+`,`+
				`"property_item":{"id":"rel","type":"relation","relation":{}}}`)
		})
		v, err := PropertyItemsAll(t.Context(), c, paginate.ItemQuery{PageID: "pg", PropertyID: "rel"})
		if err != nil {
			t.Fatalf("PropertyItemsAll failed: %v", err)
		}
		rel := v.(*property.RelationProperty).Relation
		if len(rel) != 2 || rel[0].ID != "p1" || rel[1].ID != "p2" {
			t.Errorf("unexpected relation %+v", rel)
		}
	})

	t.Run("UpdatePage", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch || r.URL.Path != "/pages/a" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			b, _ := io.ReadAll(r.Body)
			if want := `{"properties":{"Points":{"number":5}}}`; string(b) != want {
				t.Errorf("expected body %s, got %s", want, b)
			}
			_, _ = io.WriteString(w, pageJSON("a"))
		})
		p, err := c.UpdatePage(t.Context(), &UpdatePageRequest{
			PageID:     "a",
			Properties: request.Properties(map[string]request.Fragment{"Points": request.Number(5)}),
		})
		if err != nil {
			t.Fatalf("UpdatePage failed: %v", err)
		}
		if p.ID != "a" {
			t.Errorf("unexpected page %+v", p)
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
		c.limiter = rate.NewLimiter(rate.Every(MinInterval), 1)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		if _, err := c.GetPage(ctx, "a"); err == nil {
			t.Error("expected an error on a cancelled context")
		}
	})
}
