package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lbaumann/ferry/internal/clipboard"
	"github.com/lbaumann/ferry/internal/git"
	"github.com/lbaumann/ferry/internal/search"
)

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle("⛴ Ferry - " + m.currentDir)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
		m.statusIsErr = false
	}

	switch msg := msg.(type) {
	case externalOpenErr:
		m.setError(fmt.Sprintf("open failed: %v", msg.err))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minTerminalWidth {
			m.width = minTerminalWidth
		}
		if m.height < minTerminalHeight {
			m.height = minTerminalHeight
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilterInput(msg)
		case modeJump:
			return m.updateJumpInput(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}

		// modeNormal
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			m.moveCursor(1)

		case "k", "up":
			m.moveCursor(-1)

		case "ctrl+d", "pgdown":
			m.moveCursor(m.pageSize())

		case "ctrl+u", "pgup":
			m.moveCursor(-m.pageSize())

		case "g", "home":
			m.cursor = 0

		case "G", "end":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}

		case " ":
			// Toggle selection on the current entry and advance. The
			// parent reference is never selectable.
			if entry, ok := m.currentEntry(); ok {
				m.selected.Toggle(entry)
				if !entry.IsParent() {
					m.moveCursor(1)
				}
			}

		case "enter", "l", "right":
			if entry, ok := m.currentEntry(); ok && entry.IsDir {
				m.openDir(entry.Path)
				return m, tea.SetWindowTitle("⛴ Ferry - " + m.currentDir)
			}
			// Opening a file this way is deliberately a no-op; 'o' opens
			// externally.

		case "h", "left":
			// Shortcut for opening the parent reference
			if len(m.entries) > 0 && m.entries[0].IsParent() {
				m.openDir(m.entries[0].Path)
				return m, tea.SetWindowTitle("⛴ Ferry - " + m.currentDir)
			}

		case "a":
			m.selected.SelectAll(m.entries)
			m.setStatus(fmt.Sprintf("selected %d items", m.selected.Len()))

		case "A":
			m.selected.Clear()
			m.setStatus("selection cleared")

		case "c":
			m.stashSelection(clipboard.ModeCopy)

		case "x":
			m.stashSelection(clipboard.ModeCut)

		case "p":
			m.paste()

		case "C":
			m.clip.Clear()
			m.setStatus("clipboard cleared")

		case "d":
			if m.selected.Len() == 0 {
				m.setError("nothing selected")
				break
			}
			m.mode = modeConfirmDelete
			m.textInput.SetValue("")
			m.textInput.Placeholder = ""
			m.textInput.Focus()
			return m, textinput.Blink

		case ".":
			m.showHidden = !m.showHidden
			m.loadEntries()
			if m.showHidden {
				m.setStatus("showing hidden files")
			} else {
				m.setStatus("hiding hidden files")
			}

		case "/":
			m.mode = modeFilter
			m.textInput.SetValue(m.filter)
			m.textInput.Placeholder = "filter..."
			m.textInput.Focus()
			return m, textinput.Blink

		case "esc":
			// Only acts when a filter is active
			if m.filter != "" {
				m.filter = ""
				m.loadEntries()
				m.setStatus("filter cleared")
			}

		case "f":
			m.mode = modeJump
			m.textInput.SetValue("")
			m.textInput.Placeholder = "jump to..."
			m.textInput.Focus()
			return m, textinput.Blink

		case "y":
			if entry, ok := m.currentEntry(); ok && !entry.IsParent() {
				m.copyPathToSystemClipboard(entry.Path)
			}

		case "o":
			if entry, ok := m.currentEntry(); ok && !entry.IsParent() && !entry.IsDir {
				return m, m.openExternal(entry.Path)
			}

		case "r":
			m.loadEntries()
			m.gitInfo = git.Scan(m.currentDir)
			m.setStatus("refreshed")
		}
		// Unrecognized keys are ignored: no status change.
	}

	return m, cmd
}

func (m *model) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil
	case "enter":
		m.filter = strings.TrimSpace(m.textInput.Value())
		m.mode = modeNormal
		m.textInput.SetValue("")
		m.cursor = 0
		m.scrollOffset = 0
		m.loadEntries()
		if m.filter != "" {
			m.setStatus(fmt.Sprintf("filter: %s", m.filter))
		}
		return m, nil
	default:
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}

func (m *model) updateJumpInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = modeNormal
		m.textInput.SetValue("")
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.textInput.Value())
		m.mode = modeNormal
		m.textInput.SetValue("")
		if query == "" {
			return m, nil
		}
		names := make([]string, len(m.entries))
		for i, entry := range m.entries {
			names[i] = entry.Name
		}
		if idx, ok := search.BestMatch(query, names); ok {
			m.cursor = idx
		} else {
			m.setError(fmt.Sprintf("no match for %q", query))
		}
		return m, nil
	default:
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}

// updateConfirmDelete is the await-confirmation phase of the delete state
// machine. Only the exact token "y" executes; any other answer aborts
// with zero filesystem mutations.
func (m *model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		m.mode = modeNormal
		m.textInput.SetValue("")
		m.setStatus("Cancelled")
		return m, nil
	case "enter":
		answer := strings.TrimSpace(m.textInput.Value())
		m.mode = modeNormal
		m.textInput.SetValue("")
		if answer != "y" {
			m.setStatus("Cancelled")
			return m, nil
		}
		m.executeDelete()
		return m, nil
	default:
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
}
