package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbaumann/ferry/internal/config"
	"github.com/lbaumann/ferry/internal/fileops"
)

func newTestModel(t *testing.T, dir string) *model {
	t.Helper()
	m := initialModel(dir, &config.Config{})
	m.width = 80
	m.height = 24
	return &m
}

func press(m *model, key string) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

func typeText(m *model, text string) {
	for _, r := range text {
		press(m, string(r))
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
}

func TestCursorMovementClamps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "b.txt"))
	m := newTestModel(t, dir)

	assert.Equal(t, 0, m.cursor)

	press(m, "k")
	assert.Equal(t, 0, m.cursor, "cursor stays at the top edge")

	press(m, "j")
	press(m, "j")
	press(m, "j")
	press(m, "j")
	assert.Equal(t, len(m.entries)-1, m.cursor, "cursor stays at the bottom edge")

	press(m, "g")
	assert.Equal(t, 0, m.cursor)
	press(m, "G")
	assert.Equal(t, len(m.entries)-1, m.cursor)
}

func TestSpaceOnParentDoesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)

	require.True(t, m.entries[0].IsParent())
	press(m, " ")

	assert.Equal(t, 0, m.selected.Len())
	assert.Equal(t, 0, m.cursor, "cursor does not advance off the parent entry")
}

func TestSpaceSelectsAndAdvances(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "b.txt"))
	m := newTestModel(t, dir)

	press(m, "j") // onto a.txt
	press(m, " ")

	assert.Equal(t, 1, m.selected.Len())
	assert.Equal(t, 2, m.cursor)

	// Back up and toggle off.
	press(m, "k")
	press(m, " ")
	assert.Equal(t, 0, m.selected.Len())
}

func TestSelectionSurvivesNavigation(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	marked := filepath.Join(sub, "a.txt")
	writeFile(t, marked)

	m := newTestModel(t, sub)
	press(m, "j")
	press(m, " ")
	require.Equal(t, 1, m.selected.Len())

	press(m, "h") // up to dir
	assert.Equal(t, dir, m.currentDir)
	assert.Equal(t, 1, m.selected.Len(), "marks are keyed by path, not by listing")
}

func TestEnterOnFileIsNoop(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)

	press(m, "j")
	press(m, "enter")
	assert.Equal(t, dir, m.currentDir)
}

func TestEnterOpensDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	m := newTestModel(t, dir)

	press(m, "j") // onto sub
	press(m, "enter")
	assert.Equal(t, sub, m.currentDir)
	assert.Equal(t, 0, m.cursor)
}

func TestCopyWithEmptySelection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)

	press(m, "c")
	assert.True(t, m.statusIsErr)
	assert.Equal(t, "nothing selected", m.statusMsg)
	assert.Equal(t, 0, m.clip.Len())
}

func TestPasteWithEmptyClipboard(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)

	press(m, "p")
	assert.True(t, m.statusIsErr)
	assert.Equal(t, fileops.ErrEmptyClipboard.Error(), m.statusMsg)
	assert.Equal(t, "Clipboard empty", m.statusMsg)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no filesystem mutation")
}

func TestCopyPasteIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "note.txt"))
	m := newTestModel(t, dir)

	press(m, "j") // onto note.txt
	press(m, " ")
	press(m, "c")
	assert.Equal(t, 0, m.selected.Len(), "stash clears the selection")
	assert.Equal(t, 1, m.clip.Len())

	press(m, "p")
	_, err := os.Stat(filepath.Join(dir, "note_1.txt"))
	assert.NoError(t, err)

	// Copy mode retains the clipboard so paste works again.
	press(m, "p")
	_, err = os.Stat(filepath.Join(dir, "note_2.txt"))
	assert.NoError(t, err)
}

func TestCutPasteConsumesClipboard(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeFile(t, filepath.Join(sub, "a.txt"))

	m := newTestModel(t, sub)
	press(m, "j")
	press(m, " ")
	press(m, "x")
	require.Equal(t, 1, m.clip.Len())

	press(m, "h") // up to dir
	press(m, "p")

	_, err := os.Stat(filepath.Join(dir, "a.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(sub, "a.txt"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 0, m.clip.Len(), "a completed cut-paste empties the clipboard")

	press(m, "p")
	assert.Equal(t, "Clipboard empty", m.statusMsg)
}

func TestCutPasteIntoSameDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path)
	m := newTestModel(t, dir)

	press(m, "j")
	press(m, " ")
	press(m, "x")
	press(m, "p")

	// Already in place: no move, no rename.
	_, err := os.Stat(path)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "a_1.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteRequiresSelection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)

	press(m, "d")
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "nothing selected", m.statusMsg)
}

func TestDeleteCancelledByWrongAnswer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path)
	m := newTestModel(t, dir)

	press(m, "j")
	press(m, " ")
	press(m, "d")
	require.Equal(t, modeConfirmDelete, m.mode)

	typeText(m, "n")
	press(m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "Cancelled", m.statusMsg)
	assert.Equal(t, 1, m.selected.Len(), "cancelling keeps the selection")
	_, err := os.Stat(path)
	assert.NoError(t, err, "cancelling performs zero mutations")
}

func TestDeleteCancelledByEsc(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path)
	m := newTestModel(t, dir)

	press(m, "j")
	press(m, " ")
	press(m, "d")
	press(m, "esc")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "Cancelled", m.statusMsg)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestDeleteConfirmed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path)
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeFile(t, filepath.Join(sub, "inner.txt"))

	m := newTestModel(t, dir)
	press(m, "a") // select everything
	require.Equal(t, 2, m.selected.Len())

	press(m, "d")
	typeText(m, "y")
	press(m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 0, m.selected.Len())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(sub)
	assert.True(t, os.IsNotExist(err), "directories are removed recursively")
}

func TestFilterAppliesAndClears(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.log"))
	writeFile(t, filepath.Join(dir, "readme.md"))
	m := newTestModel(t, dir)
	require.Len(t, m.entries, 3)

	press(m, "/")
	require.Equal(t, modeFilter, m.mode)
	typeText(m, "log")
	press(m, "enter")

	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, "log", m.filter)
	require.Len(t, m.entries, 2) // parent + app.log
	assert.Equal(t, "app.log", m.entries[1].Name)

	press(m, "esc")
	assert.Equal(t, "", m.filter)
	assert.Len(t, m.entries, 3)
}

func TestHiddenToggle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".secret"))
	writeFile(t, filepath.Join(dir, "visible.txt"))
	m := newTestModel(t, dir)
	require.Len(t, m.entries, 2)

	press(m, ".")
	assert.Len(t, m.entries, 3)
	press(m, ".")
	assert.Len(t, m.entries, 2)
}

func TestSelectAllAndClear(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	writeFile(t, filepath.Join(dir, "b.txt"))
	m := newTestModel(t, dir)

	press(m, "a")
	assert.Equal(t, 2, m.selected.Len(), "select-all never includes the parent entry")

	press(m, "A")
	assert.Equal(t, 0, m.selected.Len())
}

func TestUnknownKeyIsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)
	press(m, "j")

	press(m, "z")
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 1, m.cursor)
	assert.Equal(t, "", m.statusMsg)
}

func TestExternalOpenFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"))
	m := newTestModel(t, dir)

	m.Update(externalOpenErr{err: errors.New("no handler")})

	assert.True(t, m.statusIsErr)
	assert.Equal(t, "open failed: no handler", m.statusMsg)
}

func TestWindowResizeClampsDimensions(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Equal(t, minTerminalWidth, m.width)
	assert.Equal(t, minTerminalHeight, m.height)
}
