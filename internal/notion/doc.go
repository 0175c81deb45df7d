// Package notion provides a client for the Notion records API.
//
// It executes the operations whose results the property packages decode:
//   - API client with rate limiting (3 req/sec) and bearer authentication
//   - Database queries, search, and paginated property items
//   - Page creation and update from request fragments
//   - Exhaustive helpers such as EditedPagesByDate
package notion
