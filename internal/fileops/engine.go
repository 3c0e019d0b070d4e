package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lbaumann/ferry/internal/clipboard"
	"github.com/lbaumann/ferry/internal/listing"
	"github.com/lbaumann/ferry/internal/logger"
)

var (
	// ErrEmptySelection means an operation needing marked entries found none.
	ErrEmptySelection = errors.New("nothing selected")
	// ErrEmptyClipboard means paste was attempted with an empty clipboard.
	// The text doubles as the status line shown for it.
	ErrEmptyClipboard = errors.New("Clipboard empty")
	// ErrCollisionExhausted means no free destination name was found within
	// the attempt cap.
	ErrCollisionExhausted = errors.New("no free destination name")
	// ErrPasteIntoItself means a directory's destination lies inside the
	// directory being transferred.
	ErrPasteIntoItself = errors.New("cannot paste a directory into itself")
)

// isWithin reports whether path equals dir or lies under it.
func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// EntryError records a single entry's failure within a batch.
type EntryError struct {
	Path string
	Err  error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("%s: %v", filepath.Base(e.Path), e.Err)
}

func (e EntryError) Unwrap() error {
	return e.Err
}

// BatchResult is the aggregate outcome of a multi-entry operation. A batch
// keeps going past individual failures, so callers can tell apart
// all-succeeded, partial, and total failure without parsing messages.
type BatchResult struct {
	Transferred int
	Skipped     int
	Failures    []EntryError
}

func (r BatchResult) AllSucceeded() bool {
	return len(r.Failures) == 0
}

func (r BatchResult) Partial() bool {
	return len(r.Failures) > 0 && r.Transferred > 0
}

// Err summarizes the batch: nil when everything succeeded, otherwise an
// error carrying the failure count and the first failure encountered.
func (r BatchResult) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d failed, first: %w",
		len(r.Failures), r.Transferred+r.Skipped+len(r.Failures), r.Failures[0])
}

// Paste transfers the clipboard entries into destDir in order. Name
// conflicts are resolved with numeric suffixes; an entry whose computed
// destination is its own current path is already in place under cut mode
// and is skipped. A failed entry never aborts the rest of the batch.
func Paste(entries []listing.Entry, mode clipboard.Mode, destDir string) BatchResult {
	var result BatchResult

	for _, src := range entries {
		// A directory must never be transferred into its own subtree; the
		// copy would recurse into the destination it is creating.
		if src.IsDir && isWithin(src.Path, destDir) {
			logger.Error("paste %s into %s: %v", src.Path, destDir, ErrPasteIntoItself)
			result.Failures = append(result.Failures, EntryError{Path: src.Path, Err: ErrPasteIntoItself})
			continue
		}

		destPath := filepath.Join(destDir, src.Name)
		samePlace := filepath.Clean(destPath) == filepath.Clean(src.Path)

		if _, err := os.Lstat(destPath); err == nil {
			if samePlace && mode == clipboard.ModeCut {
				result.Skipped++
				continue
			}
			resolved, err := ResolveCollision(destPath, src.IsDir)
			if err != nil {
				logger.Error("paste %s: %v", src.Path, err)
				result.Failures = append(result.Failures, EntryError{Path: src.Path, Err: err})
				continue
			}
			destPath = resolved
		}

		var err error
		if mode == clipboard.ModeCut {
			err = Move(src.Path, destPath)
		} else {
			err = CopyFileOrDir(src.Path, destPath)
		}
		if err != nil {
			logger.Error("paste %s -> %s: %v", src.Path, destPath, err)
			result.Failures = append(result.Failures, EntryError{Path: src.Path, Err: err})
			continue
		}
		result.Transferred++
	}

	return result
}

// Delete recursively removes each entry, aggregating per-entry failures the
// same way Paste does.
func Delete(entries []listing.Entry) BatchResult {
	var result BatchResult

	for _, entry := range entries {
		if err := Remove(entry.Path, entry.IsDir); err != nil {
			logger.Error("delete %s: %v", entry.Path, err)
			result.Failures = append(result.Failures, EntryError{Path: entry.Path, Err: err})
			continue
		}
		result.Transferred++
	}

	return result
}
