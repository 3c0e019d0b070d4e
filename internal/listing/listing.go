package listing

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry is a single filesystem object identified by its absolute path.
// The synthetic parent reference uses the display name "..".
type Entry struct {
	Path      string
	Name      string
	IsDir     bool
	Size      int64
	ModTime   time.Time
	IsSymlink bool
}

// IsParent reports whether this is the synthetic parent reference.
func (e Entry) IsParent() bool {
	return e.Name == ".."
}

// Parent builds the synthetic parent entry for dir, or false when dir is a
// filesystem root.
func Parent(dir string) (Entry, bool) {
	parent := filepath.Dir(dir)
	if parent == dir {
		return Entry{}, false
	}
	return Entry{Path: parent, Name: "..", IsDir: true}, true
}

// List enumerates the direct children of dir, sorted directories-first and
// case-insensitively by name, with the parent entry prepended when dir has
// one. Hidden entries (dot prefix) are excluded unless showHidden is set;
// a non-empty filter keeps only names containing it case-insensitively.
// List is a pure read; permission recovery is the caller's policy.
func List(dir string, showHidden bool, filter string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	needle := strings.ToLower(filter)
	entries := []Entry{}

	for _, de := range dirEntries {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Lstat(path)
		if err != nil {
			// Vanished between ReadDir and Lstat; not our problem.
			continue
		}

		entry := Entry{
			Path:    path,
			Name:    name,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}

		if info.Mode()&os.ModeSymlink != 0 {
			entry.IsSymlink = true
			// Follow the link so directories behind symlinks open normally.
			if target, err := os.Stat(path); err == nil {
				entry.IsDir = target.IsDir()
				entry.Size = target.Size()
				entry.ModTime = target.ModTime()
			}
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	if parent, ok := Parent(dir); ok {
		entries = append([]Entry{parent}, entries...)
	}

	return entries, nil
}
