// Package comments persists a free-text note per screenshot file.
//
// The on-disk form is a JSON object holding two parallel arrays:
//
//	{"keys": ["/abs/a.png", ...], "values": ["nice", ...]}
package comments

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultFile is the comments file name used when none is configured.
const DefaultFile = "ScreenshotComments.json"

// record is the serialized form of a Store.
type record struct {
	Keys   []string `json:"keys"`
	Values []string `json:"values"`
}

// toRecord flattens m into parallel arrays sorted by key.
func toRecord(m map[string]string) record {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rec := record{Keys: keys, Values: make([]string, len(keys))}
	for i, k := range keys {
		rec.Values[i] = m[k]
	}
	return rec
}

// fromRecord rebuilds the mapping. Later duplicates win.
func fromRecord(rec record) (map[string]string, error) {
	if len(rec.Keys) != len(rec.Values) {
		return nil, fmt.Errorf("%d keys but %d values", len(rec.Keys), len(rec.Values))
	}
	m := make(map[string]string, len(rec.Keys))
	for i, k := range rec.Keys {
		m[k] = rec.Values[i]
	}
	return m, nil
}

// Store maps absolute screenshot paths to comments.
type Store struct {
	path    string
	entries map[string]string
}

// Load reads the comments file at path. A missing file yields an empty
// store that will be created on the first Save.
func Load(path string) (*Store, error) {
	s := &Store{path: path, entries: map[string]string{}}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read comments %s: %w", path, err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse comments %s: %w", path, err)
	}
	m, err := fromRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("parse comments %s: %w", path, err)
	}
	s.entries = m
	return s, nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string { return s.path }

// Get returns the comment for file and whether one exists.
func (s *Store) Get(file string) (string, bool) {
	v, ok := s.entries[key(file)]
	return v, ok
}

// Set records text for file. Empty text is kept as an explicit empty
// comment; use Delete to forget a file.
func (s *Store) Set(file, text string) {
	s.entries[key(file)] = text
}

// Delete forgets the comment for file.
func (s *Store) Delete(file string) {
	delete(s.entries, key(file))
}

// Move re-keys the comment of oldPath under newPath, used after renames.
func (s *Store) Move(oldPath, newPath string) {
	k := key(oldPath)
	v, ok := s.entries[k]
	if !ok {
		return
	}
	delete(s.entries, k)
	s.entries[key(newPath)] = v
}

// Entries returns a copy of every comment keyed by absolute path.
func (s *Store) Entries() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Save overwrites the comments file with the current contents.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(toRecord(s.entries), "", "  ")
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create comments dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write comments %s: %w", s.path, err)
	}
	return nil
}

func key(file string) string {
	if abs, err := filepath.Abs(file); err == nil {
		return abs
	}
	return file
}
