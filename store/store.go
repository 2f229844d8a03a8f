// Package store implements a small file-backed time-series object
// store. A Store is a directory, a Collection a sub-directory, and an
// item a single file holding one line of JSON metadata followed by
// JSONL rows of (date, value) points.
//
// The layout is deliberately human-readable and git-friendly: items
// diff line by line, and appending rows never rewrites history.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/etnz/fintrack/date"
)

// ext is the file extension of an item.
const ext = ".jsonl"

// Row is one point of an item's table.
type Row struct {
	On    date.Date `json:"date"`
	Value float64   `json:"value"`
}

// Store is a directory of collections.
type Store struct {
	root string
}

// Open opens (creating it if needed) a store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: open %q: %w", dir, err)
	}
	return &Store{root: dir}, nil
}

// Root returns the directory the store lives in.
func (s *Store) Root() string { return s.root }

// Collection returns the named collection. The directory is created
// lazily, on the first write.
func (s *Store) Collection(name string) *Collection {
	return &Collection{name: name, dir: filepath.Join(s.root, name)}
}

// Collections lists the collection names present in the store.
func (s *Store) Collections() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("store: list collections: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// DeleteCollection removes a collection and all its items.
func (s *Store) DeleteCollection(name string) error {
	if err := os.RemoveAll(filepath.Join(s.root, name)); err != nil {
		return fmt.Errorf("store: delete collection %q: %w", name, err)
	}
	return nil
}

// Collection is a named group of items.
type Collection struct {
	name string
	dir  string
}

// Name returns the collection name.
func (c *Collection) Name() string { return c.name }

func (c *Collection) path(item string) string { return filepath.Join(c.dir, item+ext) }

// Has reports whether the item exists.
func (c *Collection) Has(item string) bool {
	_, err := os.Stat(c.path(item))
	return err == nil
}

// Write stores an item: its metadata (any JSON-marshalable value) and
// its table rows. Unless overwrite is set, writing an existing item
// fails with fs.ErrExist.
func (c *Collection) Write(item string, rows []Row, meta any, overwrite bool) error {
	if !overwrite && c.Has(item) {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, fs.ErrExist)
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("store: collection %s: %w", c.name, err)
	}
	var buf strings.Builder
	if err := encodeItem(&buf, rows, meta); err != nil {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	if err := os.WriteFile(c.path(item), []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	return nil
}

// Append adds rows to an existing item's table, without touching its
// metadata. It fails with fs.ErrNotExist when the item is missing.
func (c *Collection) Append(item string, rows ...Row) error {
	if !c.Has(item) {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, fs.ErrNotExist)
	}
	f, err := os.OpenFile(c.path(item), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, row := range rows {
		line, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
		}
		w.Write(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	return nil
}

// Read loads an item's table, and its metadata into meta when meta is
// non-nil. It fails with fs.ErrNotExist when the item is missing.
func (c *Collection) Read(item string, meta any) ([]Row, error) {
	f, err := os.Open(c.path(item))
	if err != nil {
		return nil, fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
		}
		return nil, fmt.Errorf("store: item %s/%s: missing metadata header", c.name, item)
	}
	if meta != nil {
		if err := json.Unmarshal(scanner.Bytes(), meta); err != nil {
			return nil, fmt.Errorf("store: item %s/%s: metadata: %w", c.name, item, err)
		}
	}
	var rows []Row
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("store: item %s/%s: row %d: %w", c.name, item, len(rows)+2, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	return rows, nil
}

// ListItems returns the item names of the collection, sorted. A
// missing collection directory is an empty collection.
func (c *Collection) ListItems() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: collection %s: %w", c.name, err)
	}
	var items []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		items = append(items, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(items)
	return items, nil
}

// Delete removes an item. Deleting a missing item fails with
// fs.ErrNotExist.
func (c *Collection) Delete(item string) error {
	if err := os.Remove(c.path(item)); err != nil {
		return fmt.Errorf("store: item %s/%s: %w", c.name, item, err)
	}
	return nil
}

func encodeItem(buf *strings.Builder, rows []Row, meta any) error {
	if meta == nil {
		meta = struct{}{}
	}
	header, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	buf.Write(header)
	buf.WriteByte('\n')
	for _, row := range rows {
		line, err := json.Marshal(row)
		if err != nil {
			return err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return nil
}
