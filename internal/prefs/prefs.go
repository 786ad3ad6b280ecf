// Package prefs persists widget host preferences.
// Preferences are stored in ~/.config/listen/widget.toml.
package prefs

import (
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/listen/internal/filex"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for the widget host.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/listen/widget.toml"
	DefaultTheme     = "Paper"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. A missing or unreadable file yields the
// defaults.
func Load(path string) Prefs {
	p := Prefs{Theme: DefaultTheme}

	resolved, err := filex.ExpandPath(orDefault(path))
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: DefaultTheme}
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = DefaultTheme
	}
	return p
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := filex.EnsureParentDir(orDefault(path))
	if err != nil {
		return fmt.Errorf("prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func orDefault(path string) string {
	if strings.TrimSpace(path) == "" {
		return defaultPrefsPath
	}
	return path
}
