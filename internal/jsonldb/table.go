// Package jsonldb stores keyed rows in a JSONL (JSON Lines) file with full
// in-memory caching.
//
// Rows are kept in insertion order. Writing a row whose key already exists
// replaces it in place, so a table holds at most one row per key. Every
// mutation rewrites the file through a temporary file and a rename.
package jsonldb

import (
	"bufio"
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/goccy/go-json"
)

// Row is implemented by the rows of a Table.
type Row interface {
	Key() string
}

// Table handles storage and in-memory caching for a single JSONL file.
type Table[T Row] struct {
	path string
	mu   sync.RWMutex

	rows  []T
	index map[string]int
}

// Open creates the directory of path if needed and loads the table. A
// missing file is an empty table.
func Open[T Row](path string) (*Table[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	t := &Table[T]{path: path, index: map[string]int{}}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table[T]) load() error {
	f, err := os.Open(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open table file %s: %w", t.path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var row T
		if err := json.Unmarshal(line, &row); err != nil {
			return fmt.Errorf("failed to unmarshal row at %s:%d: %w", t.path, n, err)
		}
		t.put(row)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read table file %s: %w", t.path, err)
	}
	return nil
}

// put inserts or replaces row in memory and reports whether it was new.
func (t *Table[T]) put(row T) bool {
	k := row.Key()
	if i, ok := t.index[k]; ok {
		t.rows[i] = row
		return false
	}
	t.index[k] = len(t.rows)
	t.rows = append(t.rows, row)
	return true
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Upsert inserts or replaces rows by key and persists the table. It returns
// the number of rows that were not present before.
//
// On write failure the in-memory state is rolled back.
func (t *Table[T]) Upsert(rows ...T) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	oldRows := slices.Clone(t.rows)
	oldIndex := maps.Clone(t.index)

	added := 0
	for _, row := range rows {
		if t.put(row) {
			added++
		}
	}
	if err := t.save(); err != nil {
		t.rows, t.index = oldRows, oldIndex
		return 0, err
	}
	return added, nil
}

func (t *Table[T]) save() error {
	tmp := t.path + ".tmp"
	f, err := os.Create(tmp) //nolint:gosec // Path is under the caller's control.
	if err != nil {
		return fmt.Errorf("failed to create table file: %w", err)
	}
	w := bufio.NewWriter(f)
	err = t.write(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write table file: %w", err)
	}
	if err := os.Rename(tmp, t.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace table file: %w", err)
	}
	return nil
}

func (t *Table[T]) write(w *bufio.Writer) error {
	for _, row := range t.rows {
		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal row %q: %w", row.Key(), err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}
