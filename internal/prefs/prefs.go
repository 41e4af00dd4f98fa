// Package prefs keeps the UI choices that survive a restart. Only the theme
// is stored; tag bindings live on the backend.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/recordify/internal/config"
)

// Prefs is the on-disk shape of prefs.toml.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/recordify/prefs.toml"
	defaultTheme     = "Midnight"
)

// DefaultPath is used when no --prefs flag is given.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load never fails. Any problem with the file (absent, unreadable, bad TOML,
// blank theme) leaves the built-in theme in place.
func Load(path string) Prefs {
	fallback := Prefs{Theme: defaultTheme}

	file, err := locate(path)
	if err != nil {
		return fallback
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return fallback
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return fallback
	}
	if strings.TrimSpace(p.Theme) == "" {
		return fallback
	}
	return p
}

// Save replaces the prefs file, making its directory first if needed.
func Save(path string, p Prefs) error {
	file, err := locate(path)
	if err != nil {
		return fmt.Errorf("locate prefs file: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("make prefs directory: %w", err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("save prefs to %s: %w", file, err)
	}
	return nil
}

func locate(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
