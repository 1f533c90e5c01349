package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jundev/oneline/internal/widget"
)

const (
	cardHeight      = 9
	cardPadX        = 2
	cardPadY        = 1
	messageMaxLines = 2
)

func cardWidth(layout widget.Layout) int {
	if layout.Compact() {
		return 24
	}
	return 48
}

// renderCard paints one widget. Every cell carries the palette background so
// the card reads as a solid tile on any terminal theme.
func renderCard(v widget.RenderedView, focused bool) string {
	pal := v.Palette
	bg := pal.Flat(pal.Background)
	width := cardWidth(v.Layout)
	inner := width - 2*cardPadX
	innerHeight := cardHeight - 2*cardPadY

	base := lipgloss.NewStyle().Background(bg)
	line := base.Width(inner)

	icon := base.Foreground(pal.Flat(pal.Accent)).Bold(true).Render(v.Icon)
	badge := ""
	if v.StreakBadge != nil {
		badge = base.Foreground(pal.Flat(pal.Secondary)).Bold(true).Render(*v.StreakBadge)
	}
	gap := max(1, inner-lipgloss.Width(icon)-lipgloss.Width(badge))
	header := line.Render(icon + base.Render(strings.Repeat(" ", gap)) + badge)

	msgStyle := line.Foreground(pal.Flat(pal.Primary)).Bold(true)
	var body []string
	for _, l := range clampLines(v.Message, inner, messageMaxLines) {
		body = append(body, msgStyle.Render(l))
	}
	if v.ContentPreview != nil {
		preview := ansi.Truncate(*v.ContentPreview, inner, "…")
		body = append(body, line.Foreground(pal.Flat(pal.Tertiary)).Render(preview))
	}

	rows := []string{header}
	for i := len(body) + 1; i < innerHeight; i++ {
		rows = append(rows, line.Render(""))
	}
	rows = append(rows, body...)

	border := lipgloss.HiddenBorder()
	borderColor := bg
	if focused {
		border = lipgloss.RoundedBorder()
		borderColor = colorFocus
	}
	return lipgloss.NewStyle().
		Background(bg).
		Padding(cardPadY, cardPadX).
		Width(width).
		Border(border).
		BorderForeground(borderColor).
		Render(strings.Join(rows, "\n"))
}

// clampLines word-wraps text to width and keeps at most n lines, marking a
// cut with an ellipsis.
func clampLines(text string, width, n int) []string {
	wrapped := strings.Split(ansi.Wrap(text, width, ""), "\n")
	if len(wrapped) <= n {
		return wrapped
	}
	out := wrapped[:n]
	out[n-1] = ansi.Truncate(out[n-1]+" …", width, "…")
	return out
}
