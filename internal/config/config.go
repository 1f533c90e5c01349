package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jundev/oneline/internal/widget"
)

// Config holds application configuration.
type Config struct {
	State  StateConfig
	Locale LocaleConfig
	UI     UIConfig
	App    AppConfig
}

// StateConfig selects the shared store backend.
type StateConfig struct {
	Backend string // sqlite | file | memory
	Path    string
}

// LocaleConfig holds language settings.
type LocaleConfig struct {
	// Primary overrides the primary catalog's language; empty keeps the
	// messages file's language, or Korean.
	Primary  string
	Override string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Layouts  []string
	Timezone string
}

// AppConfig describes the host application.
type AppConfig struct {
	OpenCommand  string `mapstructure:"open_command"`
	MessagesPath string `mapstructure:"messages_path"`
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "oneline")
}

// ConfigPath is where Load looks and Save writes.
func ConfigPath() string {
	if p := os.Getenv("ONELINE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "oneline", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix ONELINE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("state.backend", BackendSQLite)
	v.SetDefault("state.path", "")
	v.SetDefault("locale.primary", "")
	v.SetDefault("locale.override", "")
	v.SetDefault("ui.layouts", []string{string(widget.LayoutSmall), string(widget.LayoutMedium)})
	v.SetDefault("ui.timezone", "")
	v.SetDefault("app.open_command", "")
	v.SetDefault("app.messages_path", "")

	v.SetConfigType("toml")
	v.SetConfigFile(ConfigPath())

	v.SetEnvPrefix("ONELINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.normalize()
}

func (c Config) normalize() (Config, error) {
	c.State.Backend = strings.ToLower(strings.TrimSpace(c.State.Backend))
	switch c.State.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown state backend %q", c.State.Backend)
	}
	if strings.TrimSpace(c.State.Path) == "" {
		c.State.Path = DefaultStatePath(c.State.Backend)
	}
	if len(c.UI.Layouts) == 1 && strings.Contains(c.UI.Layouts[0], ",") {
		// ONELINE_UI_LAYOUTS=small,medium arrives as one element.
		c.UI.Layouts = strings.Split(c.UI.Layouts[0], ",")
	}
	for i, l := range c.UI.Layouts {
		layout, err := widget.ParseLayout(l)
		if err != nil {
			return Config{}, fmt.Errorf("ui.layouts: %w", err)
		}
		c.UI.Layouts[i] = string(layout)
	}
	return c, nil
}

// DefaultStatePath is the store location used when state.path is unset.
func DefaultStatePath(backend string) string {
	switch backend {
	case BackendFile:
		return filepath.Join(dataDir(), "widget_state.json")
	default:
		return filepath.Join(dataDir(), "oneline.db")
	}
}

// TriggerPath is the file a running widget watches for explicit reloads.
func (c Config) TriggerPath() string {
	return filepath.Join(filepath.Dir(c.State.Path), "reload")
}

// Layouts returns the configured widget layouts.
func (c Config) Layouts() []widget.Layout {
	out := make([]widget.Layout, 0, len(c.UI.Layouts))
	for _, l := range c.UI.Layouts {
		out = append(out, widget.Layout(l))
	}
	return out
}

// Location resolves ui.timezone; empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.UI.Timezone) == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.UI.Timezone)
}

// SystemLocale returns the raw locale tag: locale.override, then LC_ALL,
// LC_MESSAGES and LANG.
func (c Config) SystemLocale() string {
	if s := strings.TrimSpace(c.Locale.Override); s != "" {
		return s
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if s := strings.TrimSpace(os.Getenv(key)); s != "" {
			return s
		}
	}
	return ""
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("state.backend", cfg.State.Backend)
	v.Set("state.path", cfg.State.Path)
	v.Set("locale.primary", cfg.Locale.Primary)
	v.Set("locale.override", cfg.Locale.Override)
	v.Set("ui.layouts", cfg.UI.Layouts)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("app.open_command", cfg.App.OpenCommand)
	v.Set("app.messages_path", cfg.App.MessagesPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
