package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jask/inspector/widgets"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("INSPECTOR_CONFIG", filepath.Join(dir, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 72, cfg.UI.Width)
	require.Equal(t, 18, cfg.UI.LabelWidth)
	require.Equal(t, 250*time.Millisecond, cfg.UI.TickInterval)
	require.Equal(t, filepath.Join(dir, ".local", "share", "inspector", "inspector.db"), cfg.Database.Path)
	require.Equal(t, widgets.DefaultTheme(), cfg.Theme.Palette())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
width = 90
label_width = 24
tick_interval = "1s"

[theme]
accent = "#ff8800"

[log]
level = "debug"
`), 0o644))
	t.Setenv("INSPECTOR_CONFIG", path)
	t.Setenv("INSPECTOR_UI_WIDTH", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 120, cfg.UI.Width)
	require.Equal(t, 24, cfg.UI.LabelWidth)
	require.Equal(t, time.Second, cfg.UI.TickInterval)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, lipgloss.Color("#ff8800"), cfg.Theme.Palette().Accent)
	require.Equal(t, widgets.DefaultTheme().Text, cfg.Theme.Palette().Text)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\nwidth = "), 0o644))
	t.Setenv("INSPECTOR_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("INSPECTOR_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.UI.LabelWidth = 30
	cfg.UI.TickInterval = 2 * time.Second
	cfg.Scaffold.Dir = "panels"
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}
