package main

import (
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"
)

// Helper functions

// copyPathToSystemClipboard puts the entry's absolute path on the system
// clipboard (distinct from the internal file clipboard).
func (m *model) copyPathToSystemClipboard(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		m.setError(fmt.Sprintf("failed to copy path: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("copied path: %s", path))
}

// externalOpenErr reports a failed external open back to the update loop.
type externalOpenErr struct {
	err error
}

// openExternal opens a file with the configured editor when one is set,
// otherwise with the system default application.
func (m *model) openExternal(path string) tea.Cmd {
	editor := m.config.Editor
	return func() tea.Msg {
		if editor != "" {
			if _, err := exec.LookPath(editor); err == nil {
				if err := exec.Command(editor, path).Start(); err != nil {
					return externalOpenErr{err: err}
				}
				return nil
			}
		}
		if err := open.Run(path); err != nil {
			return externalOpenErr{err: err}
		}
		return nil
	}
}

// shortenPath trims a long directory path for the header, keeping the tail.
func shortenPath(path string, max int) string {
	if max <= 1 || len(path) <= max {
		return path
	}
	return "…" + path[len(path)-max+1:]
}
