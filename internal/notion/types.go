// Defines Notion API request and response types.

package notion

import (
	"fmt"
	"time"

	"github.com/maruel/notionprops/internal/property"
)

// Page represents a Notion page, including database rows.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	CreatedTime    time.Time           `json:"created_time"`
	LastEditedTime time.Time           `json:"last_edited_time"`
	Parent         Parent              `json:"parent"`
	Archived       bool                `json:"archived"`
	Properties     property.Properties `json:"properties"`
	URL            string              `json:"url"`
}

// Parent represents the parent of a page or database.
type Parent struct {
	Type       string `json:"type,omitempty"` // "database_id", "page_id", "workspace", "block_id"
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	BlockID    string `json:"block_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// PaginatedResponse is the common structure for paginated API responses.
type PaginatedResponse[T any] struct {
	Object     string  `json:"object"`
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor"`
	HasMore    bool    `json:"has_more"`
}

// QueryRequest is the body of a database query.
type QueryRequest struct {
	DatabaseID  string `json:"-"`
	Filter      any    `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// WithStartCursor returns a copy of q resuming at cursor.
func (q QueryRequest) WithStartCursor(cursor string) QueryRequest {
	q.StartCursor = cursor
	return q
}

// Sort defines a sort order for database queries.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"` // "created_time" or "last_edited_time"
	Direction string `json:"direction"`           // "ascending" or "descending"
}

// SearchFilter defines filters for the search endpoint.
type SearchFilter struct {
	Value    string `json:"value"`    // "page" or "database"
	Property string `json:"property"` // "object"
}

// SearchSort orders search results by edition time.
type SearchSort struct {
	Direction string `json:"direction"`
	Timestamp string `json:"timestamp"` // "last_edited_time"
}

// SearchRequest is the request body for the search endpoint.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	Sort        *SearchSort   `json:"sort,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// WithStartCursor returns a copy of r resuming at cursor.
func (r SearchRequest) WithStartCursor(cursor string) SearchRequest {
	r.StartCursor = cursor
	return r
}

// CreatePageRequest is the body of a page creation. Properties values are
// built with the request package.
type CreatePageRequest struct {
	Parent     Parent         `json:"parent"`
	Properties map[string]any `json:"properties"`
}

// UpdatePageRequest is the body of a page update.
type UpdatePageRequest struct {
	PageID     string         `json:"-"`
	Properties map[string]any `json:"properties,omitempty"`
	Archived   *bool          `json:"archived,omitempty"`
}

// Error is an error object returned by the Notion API.
type Error struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// TransportError wraps any failure of one API operation.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "notion " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error, an *Error for API failures.
func (e *TransportError) Unwrap() error {
	return e.Err
}
