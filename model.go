package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lbaumann/ferry/internal/clipboard"
	"github.com/lbaumann/ferry/internal/config"
	"github.com/lbaumann/ferry/internal/fileops"
	"github.com/lbaumann/ferry/internal/git"
	"github.com/lbaumann/ferry/internal/listing"
	"github.com/lbaumann/ferry/internal/logger"
	"github.com/lbaumann/ferry/internal/selection"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 50
	minTerminalHeight = 12
	uiOverhead        = 6 // header (1) + legend (1) + status (1) + borders (3)
)

const statusTTL = 3 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeFilter
	modeJump
	modeConfirmDelete
)

type model struct {
	mode         mode
	currentDir   string
	entries      []listing.Entry
	cursor       int
	scrollOffset int
	filter       string
	showHidden   bool

	selected *selection.Set
	clip     *clipboard.Clipboard

	textInput textinput.Model

	width  int
	height int

	statusMsg    string
	statusIsErr  bool
	statusExpiry time.Time

	gitInfo git.Info
	config  *config.Config

	quitting bool
}

func initialModel(startDir string, cfg *config.Config) model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	m := model{
		mode:       modeNormal,
		currentDir: startDir,
		showHidden: cfg.ShowHidden,
		selected:   selection.New(),
		clip:       clipboard.New(),
		textInput:  ti,
		config:     cfg,
	}

	m.loadEntries()
	m.gitInfo = git.Scan(m.currentDir)
	return m
}

// loadEntries recomputes the listing from the filesystem. The listing is a
// cache, never a source of truth; callers invalidate it after every
// mutating operation, navigation, filter change, or hidden toggle.
// Permission failures fall back to the parent directory and retry once.
func (m *model) loadEntries() {
	entries, err := listing.List(m.currentDir, m.showHidden, m.filter)
	if err != nil {
		logger.Error("list %s: %v", m.currentDir, err)

		if errors.Is(err, fs.ErrPermission) {
			parent := filepath.Dir(m.currentDir)
			if parent != m.currentDir {
				if parentEntries, perr := listing.List(parent, m.showHidden, m.filter); perr == nil {
					m.setError(fmt.Sprintf("permission denied: %s", filepath.Base(m.currentDir)))
					m.currentDir = parent
					m.entries = parentEntries
					m.cursor = 0
					m.scrollOffset = 0
					return
				}
			}
		}

		m.setError(fmt.Sprintf("cannot read directory: %v", err))
		m.entries = []listing.Entry{}
		m.cursor = 0
		m.scrollOffset = 0
		return
	}

	m.entries = entries
	m.clampCursor()
}

func (m *model) clampCursor() {
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.scrollOffset > m.cursor {
		m.scrollOffset = m.cursor
	}
}

// moveCursor moves by delta, clamped to [0, len-1].
func (m *model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// pageSize is the number of rows a page-up/down jumps over.
func (m *model) pageSize() int {
	size := m.contentHeight() - 1
	if size < 1 {
		size = 10
	}
	return size
}

func (m *model) contentHeight() int {
	height := m.height
	if height < minTerminalHeight {
		height = minTerminalHeight
	}
	available := height - uiOverhead
	if available < 3 {
		available = 3
	}
	return available
}

// currentEntry returns the entry under the cursor.
func (m *model) currentEntry() (listing.Entry, bool) {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return listing.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// openDir navigates into dir: cursor and scroll reset, listing reloaded,
// status cleared. The selection set intentionally survives navigation —
// it is keyed by path, not by listing position.
func (m *model) openDir(dir string) {
	m.currentDir = dir
	m.cursor = 0
	m.scrollOffset = 0
	m.statusMsg = ""
	m.statusIsErr = false
	m.loadEntries()
	m.gitInfo = git.Scan(m.currentDir)
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
	m.statusExpiry = time.Now().Add(statusTTL)
}

func (m *model) setError(msg string) {
	m.statusMsg = msg
	m.statusIsErr = true
	m.statusExpiry = time.Now().Add(statusTTL)
}

// stashSelection snapshots the current selection into the clipboard with
// the given mode and clears the selection on success.
func (m *model) stashSelection(mode clipboard.Mode) {
	snapshot := m.selected.Snapshot(m.entries)
	if len(snapshot) == 0 {
		m.setError(fileops.ErrEmptySelection.Error())
		return
	}
	if err := m.clip.Stash(snapshot, mode); err != nil {
		m.setError(err.Error())
		return
	}
	m.selected.Clear()
	m.setStatus(fmt.Sprintf("%d %s to clipboard", len(snapshot), mode))
}

// paste transfers the clipboard into the current directory. A successful
// cut-paste consumes the clipboard; copy-paste retains it so repeated
// pastes keep working.
func (m *model) paste() {
	entries, pasteMode := m.clip.Take()
	if len(entries) == 0 {
		m.setError(fileops.ErrEmptyClipboard.Error())
		return
	}

	result := fileops.Paste(entries, pasteMode, m.currentDir)

	if err := result.Err(); err != nil {
		m.setError(fmt.Sprintf("paste: %v", err))
	} else {
		if pasteMode == clipboard.ModeCut {
			m.clip.Clear()
		}
		m.setStatus(fmt.Sprintf("pasted %d items", result.Transferred))
	}

	m.loadEntries()
}

// executeDelete runs the confirmed delete. The selection is cleared and
// the listing invalidated whether or not every entry succeeded.
func (m *model) executeDelete() {
	snapshot := m.selected.Snapshot(m.entries)
	result := fileops.Delete(snapshot)

	m.selected.Clear()
	m.loadEntries()

	if err := result.Err(); err != nil {
		m.setError(fmt.Sprintf("delete: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("deleted %d items", result.Transferred))
}
