package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jundev/oneline/internal/widget"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ONELINE_CONFIG", filepath.Join(home, "config.toml"))
	for _, k := range []string{
		"ONELINE_STATE_BACKEND", "ONELINE_STATE_PATH", "ONELINE_LOCALE_PRIMARY",
		"ONELINE_LOCALE_OVERRIDE", "ONELINE_UI_LAYOUTS", "ONELINE_UI_TIMEZONE",
		"ONELINE_APP_OPEN_COMMAND", "ONELINE_APP_MESSAGES_PATH",
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendSQLite, cfg.State.Backend)
	require.Equal(t, filepath.Join(home, ".local", "share", "oneline", "oneline.db"), cfg.State.Path)
	require.Empty(t, cfg.Locale.Primary)
	require.Equal(t, []widget.Layout{widget.LayoutSmall, widget.LayoutMedium}, cfg.Layouts())
	require.Equal(t, filepath.Join(home, ".local", "share", "oneline", "reload"), cfg.TriggerPath())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, time.Local, loc)
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)
	doc := `
[state]
backend = "file"

[ui]
layouts = ["medium"]
timezone = "Asia/Seoul"

[app]
open_command = "xdg-open oneline://today"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(doc), 0o600))
	t.Setenv("ONELINE_LOCALE_OVERRIDE", "en-US")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.State.Backend)
	require.Equal(t, filepath.Join(home, ".local", "share", "oneline", "widget_state.json"), cfg.State.Path)
	require.Equal(t, []widget.Layout{widget.LayoutMedium}, cfg.Layouts())
	require.Equal(t, "xdg-open oneline://today", cfg.App.OpenCommand)
	require.Equal(t, "en-US", cfg.SystemLocale())

	loc, err := cfg.Location()
	require.NoError(t, err)
	require.Equal(t, "Asia/Seoul", loc.String())
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	isolate(t)
	t.Setenv("ONELINE_STATE_BACKEND", "redis")
	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	cfg := Config{
		State:  StateConfig{Backend: BackendMemory, Path: filepath.Join(home, "x.db")},
		Locale: LocaleConfig{Primary: "ko", Override: "ko-KR"},
		UI:     UIConfig{Layouts: []string{"small"}, Timezone: "UTC"},
		App:    AppConfig{OpenCommand: "true", MessagesPath: filepath.Join(home, "messages.toml")},
	}
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestSystemLocaleEnvOrder(t *testing.T) {
	isolate(t)
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("LC_MESSAGES", "ko_KR.UTF-8")
	t.Setenv("LC_ALL", "")

	require.Equal(t, "ko_KR.UTF-8", Config{}.SystemLocale())

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	require.Equal(t, "fr_FR.UTF-8", Config{}.SystemLocale())
}
