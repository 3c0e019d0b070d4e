package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatFileSize(0))
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.0 KB", FormatFileSize(1024))
	assert.Equal(t, "1.5 MB", FormatFileSize(3*512*1024))
	assert.Equal(t, "2.0 GB", FormatFileSize(2*1024*1024*1024))
}

func TestFormatModTime(t *testing.T) {
	assert.Equal(t, "", FormatModTime(time.Time{}))

	ts := time.Date(2026, time.March, 7, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 07 09:30", FormatModTime(ts))
}

func TestGetFileIcon(t *testing.T) {
	assert.Equal(t, "🐹", GetFileIcon("main.go"))
	assert.Equal(t, "📋", GetFileIcon("config.YAML"))
	assert.Equal(t, "📄", GetFileIcon("mystery.xyz"))
}
