// Package config loads the skiff configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig holds the global skiff options.
type AppConfig struct {
	Shell         string // shell interpreter for command lines (default "sh")
	Theme         string // theme name, see internal/theme
	FetchInterval int    // seconds between fetching status refreshes (default 30)
	DebugLog      string // debug log file path, empty to discard
	ShowIcons     bool   // render Nerd Font icons in the navigator and sidebar
	PromptSymbol  string // trailing prompt marker (default "$")
	BookmarkFile  string // bookmark store override, empty for the default location
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Shell:         "sh",
		Theme:         "",
		FetchInterval: 30,
		ShowIcons:     true,
		PromptSymbol:  "$",
	}
}

// ConfigDir returns the skiff configuration directory.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "skiff")
}

// LoadConfig reads configPath, or the default config.yaml/config.yml
// under the skiff config directory when empty. A missing file yields
// the defaults; a malformed file is an error.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		paths = []string{configPath}
	} else {
		paths = []string{
			filepath.Join(ConfigDir(), "config.yaml"),
			filepath.Join(ConfigDir(), "config.yml"),
		}
	}

	cfg := DefaultConfig()
	for _, path := range paths {
		// #nosec G304 -- the path comes from the user's own flag or config dir
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
		}
		applyRaw(cfg, raw)
		break
	}
	return cfg, nil
}

func applyRaw(cfg *AppConfig, raw map[string]any) {
	if v := cleanString(raw["shell"]); v != "" {
		cfg.Shell = v
	}
	if v := cleanString(raw["theme"]); v != "" {
		cfg.Theme = v
	}
	if v := coerceInt(raw["fetch_interval"], cfg.FetchInterval); v > 0 {
		cfg.FetchInterval = v
	}
	if v := cleanString(raw["debug_log"]); v != "" {
		cfg.DebugLog = v
	}
	cfg.ShowIcons = coerceBool(raw["show_icons"], cfg.ShowIcons)
	if v := cleanString(raw["prompt_symbol"]); v != "" {
		cfg.PromptSymbol = v
	}
	if v := cleanString(raw["bookmark_file"]); v != "" {
		cfg.BookmarkFile = v
	}
}

func cleanString(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func coerceBool(value any, defaultVal bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

func coerceInt(value any, defaultVal int) int {
	switch v := value.(type) {
	case int:
		return v
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return defaultVal
}
