package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.Equal(t, DefaultTheme, Load("").Theme)
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "listen")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.toml"), []byte("theme = \"Dusk\"\n"), 0o644))

	require.Equal(t, "Dusk", Load("").Theme)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "widget.toml")
	require.NoError(t, Save(path, Prefs{Theme: "Ink"}))
	require.Equal(t, "Ink", Load(path).Theme)
}

func TestLoad_Degrades(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty theme", "theme = \"\"\n"},
		{"invalid toml", "not valid toml {{{\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "widget.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			require.Equal(t, DefaultTheme, Load(path).Theme)
		})
	}
}
