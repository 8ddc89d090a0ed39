package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/jask/inspector/widgets"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
	Scaffold ScaffoldConfig `mapstructure:"scaffold"`
}

// DatabaseConfig holds sqlite settings for the asset store.
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	Migrations string `mapstructure:"migrations"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width        int           `mapstructure:"width"`
	LabelWidth   int           `mapstructure:"label_width"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

// ThemeConfig overrides palette colours; empty values keep the default.
type ThemeConfig struct {
	Text      string `mapstructure:"text"`
	Muted     string `mapstructure:"muted"`
	Border    string `mapstructure:"border"`
	Accent    string `mapstructure:"accent"`
	Alert     string `mapstructure:"alert"`
	Container string `mapstructure:"container"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ScaffoldConfig is used by the scaffold subcommand.
type ScaffoldConfig struct {
	Dir string `mapstructure:"dir"`
}

// Palette applies the configured overrides to the default theme.
func (t ThemeConfig) Palette() widgets.Theme {
	return widgets.DefaultTheme().Merge(widgets.Theme{
		Text:      lipgloss.Color(t.Text),
		Muted:     lipgloss.Color(t.Muted),
		Border:    lipgloss.Color(t.Border),
		Accent:    lipgloss.Color(t.Accent),
		Alert:     lipgloss.Color(t.Alert),
		Container: lipgloss.Color(t.Container),
	})
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "inspector")
}

// Path is the config file location: $INSPECTOR_CONFIG or ~/.config/inspector/config.toml.
func Path() string {
	if p := os.Getenv("INSPECTOR_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "inspector", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix INSPECTOR_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "inspector.db"))
	v.SetDefault("database.migrations", "internal/database/migrations")
	v.SetDefault("ui.width", 72)
	v.SetDefault("ui.label_width", 18)
	v.SetDefault("ui.tick_interval", "250ms")
	v.SetDefault("theme.text", "")
	v.SetDefault("theme.muted", "")
	v.SetDefault("theme.border", "")
	v.SetDefault("theme.accent", "")
	v.SetDefault("theme.alert", "")
	v.SetDefault("theme.container", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(dataDir(), "inspector.log"))
	v.SetDefault("scaffold.dir", "")

	v.SetConfigType("toml")
	if p := os.Getenv("INSPECTOR_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "inspector"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INSPECTOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TickInterval <= 0 {
		return Config{}, fmt.Errorf("ui.tick_interval must be positive, got %s", c.UI.TickInterval)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.migrations", cfg.Database.Migrations)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("ui.label_width", cfg.UI.LabelWidth)
	v.Set("ui.tick_interval", cfg.UI.TickInterval.String())
	v.Set("theme.text", cfg.Theme.Text)
	v.Set("theme.muted", cfg.Theme.Muted)
	v.Set("theme.border", cfg.Theme.Border)
	v.Set("theme.accent", cfg.Theme.Accent)
	v.Set("theme.alert", cfg.Theme.Alert)
	v.Set("theme.container", cfg.Theme.Container)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("scaffold.dir", cfg.Scaffold.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
