package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jundev/oneline/internal/widget"
)

func TestRenderCardDimensions(t *testing.T) {
	e := widget.NewEngine()
	for _, layout := range widget.Layouts() {
		view := e.Render(widget.State{CurrentStreak: 3}, widget.LanguagePrimary, layout)
		card := renderCard(view, false)
		require.Equal(t, cardWidth(layout)+2, lipgloss.Width(card), "layout %s", layout)
		require.Equal(t, cardHeight+2, lipgloss.Height(card), "layout %s", layout)
		require.Contains(t, ansi.Strip(card), "🔥 3")
	}
}

func TestRenderCardTruncatesPreview(t *testing.T) {
	long := strings.Repeat("long line ", 20)
	view := widget.NewEngine().Render(widget.State{HasWrittenToday: true, LastEntryContent: &long}, widget.LanguageFallback, widget.LayoutMedium)
	card := ansi.Strip(renderCard(view, true))
	require.Contains(t, card, "…")
	require.Equal(t, cardHeight+2, lipgloss.Height(card))
}

func TestClampLines(t *testing.T) {
	require.Equal(t, []string{"short"}, clampLines("short", 10, 2))

	lines := clampLines("one two three four five six seven", 9, 2)
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[1], "…"))
	for _, l := range lines {
		require.LessOrEqual(t, ansi.StringWidth(l), 9)
	}
}
