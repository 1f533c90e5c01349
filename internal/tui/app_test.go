package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jundev/oneline/internal/refresh"
	"github.com/jundev/oneline/internal/service"
	"github.com/jundev/oneline/internal/widget"
)

func newTestApp(t *testing.T, st widget.State, openCommand string) *App {
	t.Helper()
	store := widget.NewMemoryStore()
	require.NoError(t, store.WriteState(context.Background(), st))
	r := &service.Renderer{
		Bridge:    &service.WidgetBridge{Store: store},
		Engine:    widget.NewEngine(widget.WithPicker(widget.PickerFunc(func(int) int { return 0 }))),
		Instances: service.NewInstances(widget.LayoutMedium, widget.LayoutSmall),
		Locale:    "en-US",
	}
	fixed := time.Date(2026, 2, 2, 21, 30, 0, 0, time.Local)
	a := New(context.Background(), r, Options{OpenCommand: openCommand, Now: func() time.Time { return fixed }})
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	run(t, a, a.Init())
	return a
}

// run executes cmd and feeds its message back into the app.
func run(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	a.Update(cmd())
}

func press(a *App, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := a.Update(msg)
	return cmd
}

func TestAppRendersAllInstances(t *testing.T) {
	a := newTestApp(t, widget.State{HasWrittenToday: true, CurrentStreak: 6, LastEntryContent: widget.StringPtr("a good day")}, "")

	require.Len(t, a.views, 2)
	view := ansi.Strip(a.View())
	require.Equal(t, 2, strings.Count(view, "Great job today ✨"))
	require.Equal(t, 1, strings.Count(view, `"a good day"`))
	require.Contains(t, view, "rendered 21:30:00")
	require.Contains(t, view, "enter open app")
}

func TestAppShowsStreakBadgeBeforeWriting(t *testing.T) {
	a := newTestApp(t, widget.State{CurrentStreak: 5}, "")
	view := ansi.Strip(a.View())
	require.Contains(t, view, "🔥 5")
	require.Contains(t, view, "🔥 5 day streak!")
}

func TestAppResizeAddRemove(t *testing.T) {
	a := newTestApp(t, widget.State{}, "")
	first := a.views[0].Instance

	run(t, a, press(a, "s"))
	require.Equal(t, widget.LayoutSmall, a.views[0].Instance.Layout)
	require.Equal(t, first.ID, a.views[0].Instance.ID)

	run(t, a, press(a, "a"))
	require.Len(t, a.views, 3)
	require.Equal(t, 2, a.cursor)

	run(t, a, press(a, "x"))
	require.Len(t, a.views, 2)
	require.Equal(t, 1, a.cursor)

	press(a, "tab")
	require.Equal(t, 0, a.cursor)

	run(t, a, press(a, "x"))
	run(t, a, press(a, "x"))
	require.Empty(t, a.views)
	require.Contains(t, ansi.Strip(a.View()), "No widgets placed")
	require.Nil(t, press(a, "x"))
	require.Nil(t, press(a, "enter"))
}

func TestAppOpenWithoutCommand(t *testing.T) {
	a := newTestApp(t, widget.State{}, "")
	require.Nil(t, press(a, "enter"))
	require.True(t, a.statusErr)
	require.Contains(t, ansi.Strip(a.View()), "No app.open_command configured")
}

func TestAppOpenRunsCommand(t *testing.T) {
	a := newTestApp(t, widget.State{}, "true --flag")
	require.Equal(t, []string{"true", "--flag"}, a.openCommand)
	require.NotNil(t, press(a, "enter"))

	_, cmd := a.Update(openDoneMsg{})
	require.NotNil(t, cmd)
	require.Equal(t, "Returned from app", a.status)
	require.Equal(t, refresh.ReasonExplicit, a.lastReason)
}

func TestAppRerenderMsg(t *testing.T) {
	a := newTestApp(t, widget.State{}, "")
	_, cmd := a.Update(RerenderMsg{Reason: refresh.ReasonScheduled})
	require.NotNil(t, cmd)
	require.Equal(t, refresh.ReasonScheduled, a.lastReason)

	store := a.renderer.Bridge.Store
	require.NoError(t, store.WriteState(context.Background(), widget.State{HasWrittenToday: true}))
	a.Update(cmd())
	require.Equal(t, widget.ModeWritten, a.views[0].View.Mode)
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t, widget.State{}, "")
	cmd := press(a, "q")
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
