package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sh", cfg.Shell)
	assert.Equal(t, 30, cfg.FetchInterval)
	assert.True(t, cfg.ShowIcons)
	assert.Equal(t, "$", cfg.PromptSymbol)
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfig(t, `
shell: bash
theme: dracula
fetch_interval: 60
debug_log: /tmp/skiff.log
show_icons: false
prompt_symbol: ">"
bookmark_file: /tmp/bm.json
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "bash", cfg.Shell)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.Equal(t, 60, cfg.FetchInterval)
	assert.Equal(t, "/tmp/skiff.log", cfg.DebugLog)
	assert.False(t, cfg.ShowIcons)
	assert.Equal(t, ">", cfg.PromptSymbol)
	assert.Equal(t, "/tmp/bm.json", cfg.BookmarkFile)
}

func TestLoadConfigCoercions(t *testing.T) {
	path := writeConfig(t, `
fetch_interval: "45"
show_icons: "off"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 45, cfg.FetchInterval)
	assert.False(t, cfg.ShowIcons)
}

func TestLoadConfigRejectsNonPositiveInterval(t *testing.T) {
	path := writeConfig(t, "fetch_interval: -5\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FetchInterval)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "shell: [unclosed\n")
	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	// Defaults still come back so the session can start.
	assert.Equal(t, "sh", cfg.Shell)
}
