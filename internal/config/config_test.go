package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Load()
	assert.False(t, cfg.ShowHidden)
	assert.Empty(t, cfg.Editor)
	assert.Empty(t, cfg.StartDir)

	path, err := Path()
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err, "first run persists the defaults")
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Save(&Config{ShowHidden: true, Editor: "vim", StartDir: "/srv"}))

	cfg := Load()
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, "vim", cfg.Editor)
	assert.Equal(t, "/srv", cfg.StartDir)
}

func TestLoadBrokenFileFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, ".config", "ferry", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	cfg := Load()
	assert.False(t, cfg.ShowHidden)
	assert.Empty(t, cfg.Editor)
}
