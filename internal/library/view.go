package library

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// SortOrder selects how entries are ordered.
type SortOrder int

const (
	SortByName SortOrder = iota
	SortByDate
)

func (s SortOrder) String() string {
	if s == SortByDate {
		return "date"
	}
	return "name"
}

// ParseSortOrder accepts "name" or "date".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name":
		return SortByName, nil
	case "date":
		return SortByDate, nil
	}
	return SortByName, fmt.Errorf("unknown sort order %q", s)
}

// View is the sort and filter applied to a listing.
type View struct {
	Sort   SortOrder
	Filter string
}

// Apply returns a sorted and filtered copy of entries.
func (v View) Apply(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	Sort(out, v.Sort)
	return Filter(out, v.Filter)
}

// Sort orders entries in place. Name order is ascending by path; date order
// is newest first with ties broken by name.
func Sort(entries []Entry, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i].ModTime, entries[j].ModTime
			if !a.Equal(b) {
				return a.After(b)
			}
			return entries[i].Path < entries[j].Path
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Path < entries[j].Path
		})
	}
}

// Filter keeps entries whose file name contains text, ignoring case, and
// preserves their relative order. An empty filter keeps everything.
func Filter(entries []Entry, text string) []Entry {
	if text == "" {
		return entries
	}
	needle := strings.ToLower(text)
	out := entries[:0:0]
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = filepath.Base(e.Path)
		}
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, e)
		}
	}
	return out
}
