package selection

import (
	"github.com/lbaumann/ferry/internal/listing"
)

// Set holds the entries the user has marked, keyed by absolute path.
// It is independent of cursor position and survives directory changes.
type Set struct {
	entries map[string]listing.Entry
}

func New() *Set {
	return &Set{entries: make(map[string]listing.Entry)}
}

// Toggle adds or removes an entry. The synthetic parent reference is never
// selectable.
func (s *Set) Toggle(entry listing.Entry) {
	if entry.IsParent() {
		return
	}
	if _, ok := s.entries[entry.Path]; ok {
		delete(s.entries, entry.Path)
	} else {
		s.entries[entry.Path] = entry
	}
}

// SelectAll replaces the current selection with every entry in the listing
// except the parent reference.
func (s *Set) SelectAll(entries []listing.Entry) {
	s.entries = make(map[string]listing.Entry)
	for _, entry := range entries {
		if entry.IsParent() {
			continue
		}
		s.entries[entry.Path] = entry
	}
}

func (s *Set) Clear() {
	s.entries = make(map[string]listing.Entry)
}

func (s *Set) Contains(entry listing.Entry) bool {
	_, ok := s.entries[entry.Path]
	return ok
}

func (s *Set) Len() int {
	return len(s.entries)
}

// Snapshot returns the selected entries ordered by the given listing, with
// any selected entries no longer visible in it appended afterwards. This
// keeps clipboard order stable for multi-entry operations.
func (s *Set) Snapshot(visible []listing.Entry) []listing.Entry {
	snapshot := make([]listing.Entry, 0, len(s.entries))
	seen := make(map[string]bool, len(s.entries))
	for _, entry := range visible {
		if _, ok := s.entries[entry.Path]; ok {
			snapshot = append(snapshot, entry)
			seen[entry.Path] = true
		}
	}
	for path, entry := range s.entries {
		if !seen[path] {
			snapshot = append(snapshot, entry)
		}
	}
	return snapshot
}
