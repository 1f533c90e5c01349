package tui

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jundev/oneline/internal/refresh"
	"github.com/jundev/oneline/internal/service"
	"github.com/jundev/oneline/internal/widget"
)

// RerenderMsg asks the board to run the render pipeline again. The refresh
// scheduler delivers it through tea.Program.Send.
type RerenderMsg struct {
	Reason refresh.Reason
}

type viewsMsg []service.InstanceView

type openDoneMsg struct{ err error }

// App is the terminal widget board: one card per placed widget.
type App struct {
	ctx         context.Context
	renderer    *service.Renderer
	openCommand []string
	keys        keyMap
	now         func() time.Time

	views      []service.InstanceView
	cursor     int
	width      int
	height     int
	status     string
	statusErr  bool
	lastRender time.Time
	lastReason refresh.Reason
}

// Options configures the board.
type Options struct {
	// OpenCommand launches the host app when a card is activated.
	OpenCommand string
	Now         func() time.Time
}

func New(ctx context.Context, renderer *service.Renderer, opts Options) *App {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &App{
		ctx:         ctx,
		renderer:    renderer,
		openCommand: strings.Fields(opts.OpenCommand),
		keys:        defaultKeyMap(),
		now:         now,
	}
}

func (a *App) Init() tea.Cmd {
	return a.render()
}

func (a *App) render() tea.Cmd {
	return func() tea.Msg {
		return viewsMsg(a.renderer.RenderAll(a.ctx))
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case RerenderMsg:
		a.lastReason = m.Reason
		return a, a.render()
	case viewsMsg:
		a.views = m
		a.lastRender = a.now()
		if a.cursor >= len(a.views) {
			a.cursor = max(0, len(a.views)-1)
		}
		return a, nil
	case openDoneMsg:
		if m.err != nil {
			a.setError(fmt.Sprintf("open app: %v", m.err))
		} else {
			a.setStatus("Returned from app")
		}
		// The app may have changed today's entry.
		a.lastReason = refresh.ReasonExplicit
		return a, a.render()
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Reload):
		a.lastReason = refresh.ReasonExplicit
		a.setStatus("Reloaded")
		return a, a.render()
	case key.Matches(m, a.keys.Next):
		if len(a.views) > 0 {
			a.cursor = (a.cursor + 1) % len(a.views)
		}
	case key.Matches(m, a.keys.Prev):
		if len(a.views) > 0 {
			a.cursor = (a.cursor - 1 + len(a.views)) % len(a.views)
		}
	case key.Matches(m, a.keys.Layout):
		inst, ok := a.focused()
		if !ok {
			return a, nil
		}
		next := widget.LayoutSmall
		if inst.Layout.Compact() {
			next = widget.LayoutMedium
		}
		a.renderer.Instances.SetLayout(inst.ID, next)
		a.setStatus("Widget resized to " + string(next))
		return a, a.render()
	case key.Matches(m, a.keys.Add):
		a.renderer.Instances.Add(widget.LayoutMedium)
		a.cursor = a.renderer.Instances.Len() - 1
		a.setStatus("Widget added")
		return a, a.render()
	case key.Matches(m, a.keys.Remove):
		inst, ok := a.focused()
		if !ok {
			return a, nil
		}
		a.renderer.Instances.Remove(inst.ID)
		a.setStatus("Widget removed")
		return a, a.render()
	case key.Matches(m, a.keys.Open):
		return a, a.open()
	}
	return a, nil
}

// open is the single tap action: launch the host app.
func (a *App) open() tea.Cmd {
	if _, ok := a.focused(); !ok {
		return nil
	}
	if len(a.openCommand) == 0 {
		a.setError("No app.open_command configured")
		return nil
	}
	cmd := exec.Command(a.openCommand[0], a.openCommand[1:]...)
	return tea.ExecProcess(cmd, func(err error) tea.Msg { return openDoneMsg{err: err} })
}

func (a *App) focused() (service.Instance, bool) {
	if a.cursor < 0 || a.cursor >= len(a.views) {
		return service.Instance{}, false
	}
	return a.views[a.cursor].Instance, true
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

func (a *App) View() string {
	sections := []string{a.renderHeader()}
	if len(a.views) == 0 {
		sections = append(sections, emptyStyle.Render("No widgets placed. Press a to add one."))
	} else {
		cards := make([]string, 0, len(a.views))
		for i, iv := range a.views {
			card := renderCard(iv.View, i == a.cursor)
			caption := captionStyle.Render(fmt.Sprintf(" %s · %s", iv.Instance.Layout, shortID(iv.Instance.ID)))
			cards = append(cards, lipgloss.JoinVertical(lipgloss.Left, card, caption))
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	if a.status != "" {
		sections = append(sections, a.renderStatus(a.status))
	}
	sections = append(sections, a.renderFooter(a.keys.bindings()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHeader() string {
	meta := "not rendered yet"
	if !a.lastRender.IsZero() {
		next := refresh.NextMidnight(a.lastRender)
		meta = fmt.Sprintf("rendered %s (%s) · next %s",
			a.lastRender.Format("15:04:05"), a.lastReason, next.Format("Mon 15:04"))
	}
	return titleStyle.Render("one line") + "  " + headerMetaStyle.Render(meta)
}

func (a *App) renderStatus(text string) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	style := statusBarStyle
	if a.statusErr {
		style = statusErrBarStyle
	}
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(flat)
}

func (a *App) renderFooter(bindings []key.Binding) string {
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
