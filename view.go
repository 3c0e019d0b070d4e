package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lbaumann/ferry/internal/search"
	"github.com/lbaumann/ferry/internal/utils"
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	header := m.renderHeader()

	var mainContent string
	switch m.mode {
	case modeConfirmDelete:
		mainContent = m.renderConfirmDeleteView()
	case modeFilter:
		mainContent = m.renderInputDialog("🔎 Filter", "Press Enter to apply, Esc to cancel")
	case modeJump:
		mainContent = m.renderInputDialog("⤵ Jump to entry", "Press Enter to jump, Esc to cancel")
	default:
		mainContent = m.renderEntryList(m.width)
	}

	legend := m.renderLegend()
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mainContent,
		legend,
		statusBar,
	)
}

func (m *model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(m.width)

	title := fmt.Sprintf("⛴ Ferry - %s", shortenPath(m.currentDir, m.width-12))
	if m.filter != "" {
		title += fmt.Sprintf("  [filter: %s]", m.filter)
	}
	if !m.showHidden {
		title += "  [hidden off]"
	}

	return titleStyle.Render(title)
}

// renderEntryList renders the listing panel with scroll indicators.
func (m *model) renderEntryList(width int) string {
	availableHeight := m.contentHeight()

	contentHeight := availableHeight - 1
	if contentHeight < 1 {
		contentHeight = 1
	}

	maxItems := contentHeight
	hasTopIndicator := m.scrollOffset > 0
	hasBottomIndicator := m.scrollOffset+maxItems < len(m.entries)

	actualMaxItems := maxItems
	if hasTopIndicator {
		actualMaxItems--
	}
	if hasBottomIndicator {
		actualMaxItems--
	}
	if actualMaxItems < 1 {
		actualMaxItems = 1
	}

	// Keep the cursor visible
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+actualMaxItems {
		m.scrollOffset = m.cursor - actualMaxItems + 1
	}

	hasTopIndicator = m.scrollOffset > 0
	hasBottomIndicator = m.scrollOffset+actualMaxItems < len(m.entries)

	var items []string

	if len(m.entries) == 0 {
		items = append(items, lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("  (empty)"))
	}

	endIdx := m.scrollOffset + actualMaxItems
	if endIdx > len(m.entries) {
		endIdx = len(m.entries)
	}

	for i := m.scrollOffset; i < endIdx; i++ {
		entry := m.entries[i]

		icon := "📄"
		if entry.IsDir {
			if entry.IsParent() {
				icon = "⬆️"
			} else {
				icon = "📁"
			}
		} else {
			icon = utils.GetFileIcon(entry.Name)
		}

		marker := " "
		if m.selected.Contains(entry) {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render("▪")
		}

		displayName := entry.Name
		if m.filter != "" && !entry.IsParent() {
			if indexes := search.SubstringIndexes(m.filter, entry.Name); len(indexes) > 0 {
				displayName = highlightMatches(entry.Name, indexes)
			}
		}

		badges := ""
		if m.gitInfo.Modified[entry.Path] {
			badges += " " + lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Render("[M]")
		}
		if entry.IsSymlink {
			badges += " " + lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Render("[→]")
		}

		rightSide := ""
		if !entry.IsParent() {
			sizeStr := ""
			if !entry.IsDir {
				sizeStr = utils.FormatFileSizeColored(entry.Size)
			}
			modStr := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(utils.FormatModTime(entry.ModTime))
			rightSide = strings.TrimSpace(sizeStr + "  " + modStr)
		}

		leftSide := fmt.Sprintf("%s %s %s%s", marker, icon, displayName, badges)

		totalWidth := width - 4
		padding := totalWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
		if padding < 1 {
			padding = 1
		}
		line := leftSide + strings.Repeat(" ", padding) + rightSide

		if i == m.cursor {
			line = lipgloss.NewStyle().
				Background(lipgloss.Color("57")).
				Foreground(lipgloss.Color("230")).
				Render(line)
		} else {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Render(line)
		}

		items = append(items, line)
	}

	if hasTopIndicator {
		items = append([]string{"▲ more above..."}, items...)
	}
	if hasBottomIndicator {
		items = append(items, "▼ more below...")
	}

	listStyle := lipgloss.NewStyle().Padding(0, 1)
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 2).
		Height(availableHeight)

	return borderStyle.Render(listStyle.Render(strings.Join(items, "\n")))
}

func (m *model) renderConfirmDeleteView() string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("196")).
		Width(60).
		Padding(1).
		Align(lipgloss.Center)

	var content []string
	content = append(content, "⚠️  Confirm Delete")
	content = append(content, "")
	content = append(content, fmt.Sprintf("Delete %d selected items permanently?", m.selected.Len()))
	content = append(content, "")
	content = append(content, m.textInput.View())
	content = append(content, "")
	content = append(content, `Type "y" and press Enter to confirm; anything else cancels`)

	dialog := dialogStyle.Render(strings.Join(content, "\n"))
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, dialog)
}

func (m *model) renderInputDialog(title, hint string) string {
	dialogStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("99")).
		Width(60).
		Padding(1)

	var content []string
	content = append(content, title)
	content = append(content, "")
	content = append(content, m.textInput.View())
	content = append(content, "")
	content = append(content, hint)

	dialog := dialogStyle.Render(strings.Join(content, "\n"))
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, dialog)
}

func (m *model) renderLegend() string {
	legendStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Background(lipgloss.Color("236")).
		Padding(0, 1).
		Width(m.width)

	legend := "space select • a all • c copy • x cut • p paste • d delete • C clear clip • / filter • . hidden • f jump • q quit"
	return legendStyle.Render(legend)
}

func (m *model) renderStatusBar() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("240")).
		Padding(0, 1).
		Width(m.width)

	var parts []string

	if len(m.entries) > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", m.cursor+1, len(m.entries)))
	}
	if m.gitInfo.Branch != "" {
		parts = append(parts, fmt.Sprintf("branch: %s", m.gitInfo.Branch))
	}
	if m.selected.Len() > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", m.selected.Len()))
	}
	if m.clip.Len() > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", m.clip.Len(), m.clip.Mode()))
	}

	if m.statusMsg != "" {
		msg := m.statusMsg
		if m.statusIsErr {
			msg = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render(msg)
		} else {
			msg = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Render(msg)
		}
		parts = append(parts, msg)
	}

	statusText := strings.Join(parts, " | ")

	totalWidth := m.width - 2
	rightSide := "esc clears filter"
	if m.filter == "" {
		rightSide = ""
	}
	padding := totalWidth - lipgloss.Width(statusText) - lipgloss.Width(rightSide) - 1
	if padding < 1 {
		padding = 1
	}
	statusText += strings.Repeat(" ", padding) + rightSide

	return statusStyle.Render(statusText)
}

// highlightMatches highlights matched character positions in a name.
func highlightMatches(text string, matches []int) string {
	highlightStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("226")).
		Bold(true)

	matchMap := make(map[int]bool, len(matches))
	runes := []rune(text)
	for _, idx := range matches {
		if idx < len(runes) {
			matchMap[idx] = true
		}
	}

	var result strings.Builder
	for i, r := range runes {
		if matchMap[i] {
			result.WriteString(highlightStyle.Render(string(r)))
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
