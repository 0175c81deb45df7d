// Implements the Notion API client with rate limiting.

package notion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/maruel/notionprops/internal/paginate"
	"github.com/maruel/notionprops/internal/property"
)

const (
	// BaseURL is the Notion API base URL.
	BaseURL = "https://api.notion.com/v1"
	// APIVersion is the pinned Notion API version.
	APIVersion = "2022-06-28"
	// MinInterval is the minimum time between requests (3 req/sec).
	MinInterval = 334 * time.Millisecond
	// pageSize is the largest page the API serves.
	pageSize = 100
)

// Executor is the set of API operations the helpers rely on.
type Executor interface {
	QueryDatabase(ctx context.Context, q QueryRequest) (*paginate.Page[Page], error)
	GetPropertyItem(ctx context.Context, q paginate.ItemQuery) (*property.ItemPage, error)
	CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error)
	UpdatePage(ctx context.Context, req *UpdatePageRequest) (*Page, error)
	Search(ctx context.Context, req SearchRequest) (*paginate.Page[Page], error)
}

// Client is a rate-limited Notion API client.
type Client struct {
	// BaseURL defaults to the public API endpoint.
	BaseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ Executor = (*Client)(nil)

// NewClient creates a new Notion API client authenticating with an
// integration token.
//
// ctx may carry an *http.Client under oauth2.HTTPClient to use as the base
// transport.
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	hc := oauth2.NewClient(ctx, ts)
	hc.Timeout = 30 * time.Second
	return &Client{
		BaseURL:    BaseURL,
		httpClient: hc,
		limiter:    rate.NewLimiter(rate.Every(MinInterval), 1),
	}
}

// do performs an HTTP request with rate limiting.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Notion-Version", APIVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Code == "" {
			return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
		}
		return nil, apiErr
	}
	return respBody, nil
}

// QueryDatabase queries one page of a database.
func (c *Client) QueryDatabase(ctx context.Context, q QueryRequest) (*paginate.Page[Page], error) {
	if q.PageSize == 0 {
		q.PageSize = pageSize
	}
	data, err := c.do(ctx, http.MethodPost, "/databases/"+url.PathEscape(q.DatabaseID)+"/query", q)
	if err != nil {
		return nil, &TransportError{Op: "query database", Err: err}
	}
	var resp PaginatedResponse[Page]
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &TransportError{Op: "query database", Err: fmt.Errorf("failed to parse query response: %w", err)}
	}
	return toPage(&resp), nil
}

// searchResult is decoded first to skip databases, whose properties are a
// schema rather than values.
type searchResult struct {
	Object string `json:"object"`
}

// Search searches for pages. Databases in the results are skipped.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*paginate.Page[Page], error) {
	if req.PageSize == 0 {
		req.PageSize = pageSize
	}
	data, err := c.do(ctx, http.MethodPost, "/search", req)
	if err != nil {
		return nil, &TransportError{Op: "search", Err: err}
	}
	var raw PaginatedResponse[json.RawMessage]
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &TransportError{Op: "search", Err: fmt.Errorf("failed to parse search response: %w", err)}
	}
	out := &paginate.Page[Page]{NextCursor: nextCursor(raw.HasMore, raw.NextCursor)}
	for i, r := range raw.Results {
		var sr searchResult
		if err := json.Unmarshal(r, &sr); err != nil {
			return nil, &TransportError{Op: "search", Err: fmt.Errorf("failed to parse search result %d: %w", i, err)}
		}
		if sr.Object != "page" {
			continue
		}
		var p Page
		if err := json.Unmarshal(r, &p); err != nil {
			return nil, &TransportError{Op: "search", Err: fmt.Errorf("failed to parse search result %d: %w", i, err)}
		}
		out.Results = append(out.Results, p)
	}
	return out, nil
}

// GetPropertyItem retrieves one page of a page property.
func (c *Client) GetPropertyItem(ctx context.Context, q paginate.ItemQuery) (*property.ItemPage, error) {
	v := url.Values{}
	if q.StartCursor != "" {
		v.Set("start_cursor", q.StartCursor)
	}
	if q.PageSize != 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	path := "/pages/" + url.PathEscape(q.PageID) + "/properties/" + url.PathEscape(q.PropertyID)
	if len(v) != 0 {
		path += "?" + v.Encode()
	}
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &TransportError{Op: "get property item", Err: err}
	}
	page, err := property.DecodeItemPage(data)
	if err != nil {
		return nil, &TransportError{Op: "get property item", Err: fmt.Errorf("failed to parse property item response: %w", err)}
	}
	return page, nil
}

// GetPage retrieves a page by ID.
func (c *Client) GetPage(ctx context.Context, id string) (*Page, error) {
	data, err := c.do(ctx, http.MethodGet, "/pages/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, &TransportError{Op: "get page", Err: err}
	}
	return parsePage("get page", data)
}

// CreatePage creates a page.
func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	data, err := c.do(ctx, http.MethodPost, "/pages", req)
	if err != nil {
		return nil, &TransportError{Op: "create page", Err: err}
	}
	return parsePage("create page", data)
}

// UpdatePage updates the properties of a page.
func (c *Client) UpdatePage(ctx context.Context, req *UpdatePageRequest) (*Page, error) {
	data, err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(req.PageID), req)
	if err != nil {
		return nil, &TransportError{Op: "update page", Err: err}
	}
	return parsePage("update page", data)
}

func parsePage(op string, data []byte) (*Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to parse page response: %w", err)}
	}
	return &p, nil
}

func toPage[T any](resp *PaginatedResponse[T]) *paginate.Page[T] {
	return &paginate.Page[T]{Results: resp.Results, NextCursor: nextCursor(resp.HasMore, resp.NextCursor)}
}

// nextCursor drops a cursor the API returned alongside has_more=false.
func nextCursor(hasMore bool, c *string) *string {
	if !hasMore || c == nil || *c == "" {
		return nil
	}
	return c
}
