package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// FormatFileSize formats a byte count as a human-readable string.
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}

// FormatFileSizeColored returns a color-styled size string; larger files
// get louder colors.
func FormatFileSizeColored(size int64) string {
	sizeStr := FormatFileSize(size)

	const (
		kb    = 1024
		mb    = 1024 * kb
		mb100 = 100 * mb
	)

	var style lipgloss.Style
	switch {
	case size < kb:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	case size < mb:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	case size < mb100:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	}

	return style.Render(sizeStr)
}

// FormatModTime renders a modification timestamp for list rows.
func FormatModTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 02 15:04")
}

// GetFileIcon returns an emoji icon for a file based on its extension.
func GetFileIcon(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".go":
		return "🐹"
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜"
	case ".py":
		return "🐍"
	case ".rs":
		return "🦀"
	case ".c", ".cpp", ".h":
		return "⚙️"
	case ".html", ".htm":
		return "🌐"
	case ".css", ".scss":
		return "🎨"
	case ".json", ".yaml", ".yml", ".toml":
		return "📋"
	case ".md", ".markdown":
		return "📝"
	case ".txt", ".log":
		return "📄"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico":
		return "🖼️"
	case ".mp4", ".avi", ".mov", ".mkv":
		return "🎬"
	case ".mp3", ".wav", ".flac", ".ogg":
		return "🎵"
	case ".zip", ".tar", ".gz", ".rar", ".7z":
		return "📦"
	case ".pdf":
		return "📕"
	case ".sh", ".bash", ".zsh":
		return "🖥️"
	default:
		return "📄"
	}
}
