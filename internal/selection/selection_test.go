package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lbaumann/ferry/internal/listing"
)

func entry(path string) listing.Entry {
	return listing.Entry{Path: path, Name: path}
}

func TestToggle(t *testing.T) {
	s := New()
	e := entry("/tmp/a.txt")

	s.Toggle(e)
	assert.True(t, s.Contains(e))
	assert.Equal(t, 1, s.Len())

	// Toggling twice restores the original state.
	s.Toggle(e)
	assert.False(t, s.Contains(e))
	assert.Equal(t, 0, s.Len())
}

func TestToggleParentIsNoop(t *testing.T) {
	s := New()
	parent := listing.Entry{Path: "/tmp", Name: "..", IsDir: true}

	s.Toggle(parent)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(parent))
}

func TestSelectAllSkipsParent(t *testing.T) {
	s := New()
	entries := []listing.Entry{
		{Path: "/tmp", Name: "..", IsDir: true},
		entry("/tmp/a"),
		entry("/tmp/b"),
	}

	s.SelectAll(entries)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(entries[0]))
}

func TestSelectAllReplaces(t *testing.T) {
	s := New()
	s.Toggle(entry("/old/x"))

	s.SelectAll([]listing.Entry{entry("/tmp/a")})
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Contains(entry("/old/x")))
	assert.True(t, s.Contains(entry("/tmp/a")))
}

func TestClear(t *testing.T) {
	s := New()
	s.Toggle(entry("/tmp/a"))
	s.Toggle(entry("/tmp/b"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSnapshotFollowsListingOrder(t *testing.T) {
	s := New()
	a, b, c := entry("/tmp/a"), entry("/tmp/b"), entry("/tmp/c")
	s.Toggle(c)
	s.Toggle(a)

	snapshot := s.Snapshot([]listing.Entry{a, b, c})
	assert.Equal(t, []listing.Entry{a, c}, snapshot)
}

func TestSnapshotKeepsInvisibleEntries(t *testing.T) {
	// Marks made in another directory survive navigation and still show up.
	s := New()
	elsewhere := entry("/other/z")
	here := entry("/tmp/a")
	s.Toggle(elsewhere)
	s.Toggle(here)

	snapshot := s.Snapshot([]listing.Entry{here})
	assert.Len(t, snapshot, 2)
	assert.Equal(t, here, snapshot[0])
	assert.Equal(t, elsewhere, snapshot[1])
}
