package widget

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout is the size class of a placed widget.
type Layout string

const (
	LayoutSmall  Layout = "small"
	LayoutMedium Layout = "medium"
)

// Layouts lists every supported size class, smallest first.
func Layouts() []Layout {
	return []Layout{LayoutSmall, LayoutMedium}
}

// ParseLayout accepts the size class names case-insensitively.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutSmall:
		return LayoutSmall, nil
	case LayoutMedium, "":
		return LayoutMedium, nil
	}
	return "", fmt.Errorf("unknown layout %q", s)
}

// Compact reports whether the layout is too small for the content preview.
func (l Layout) Compact() bool { return l == LayoutSmall }

const (
	iconWritten    = "✓"
	iconNotWritten = "✎"
)

// Visibility says which optional rows a render shows.
type Visibility struct {
	StreakBadge    bool
	ContentPreview bool
}

// VisibilityFor evaluates both rules against one snapshot.
func VisibilityFor(s State, compact bool) Visibility {
	_, hasContent := s.Content()
	return Visibility{
		StreakBadge:    !s.HasWrittenToday && s.CurrentStreak > 0,
		ContentPreview: hasContent && !compact,
	}
}

// RenderedView is everything a surface needs to paint one widget. It is
// recomputed on every render and never stored.
type RenderedView struct {
	Message        string
	StreakBadge    *string
	ContentPreview *string
	Mode           VisualMode
	Palette        Palette
	Icon           string
	Layout         Layout
	Language       Language
}

// StreakBadgeText formats the badge shown before today's line is written.
func StreakBadgeText(streak int) string {
	return "🔥 " + strconv.Itoa(streak)
}

// PreviewText wraps today's line in double quotes.
func PreviewText(content string) string {
	return `"` + content + `"`
}

// Render derives the full view from a single snapshot so that text, colors
// and visibility always agree with each other.
func (e *Engine) Render(s State, lang Language, layout Layout) RenderedView {
	vis := VisibilityFor(s, layout.Compact())
	view := RenderedView{
		Message:  e.SelectMessage(s.HasWrittenToday, s.CurrentStreak, lang),
		Mode:     ModeFor(s.HasWrittenToday),
		Palette:  SelectPalette(s.HasWrittenToday),
		Icon:     iconNotWritten,
		Layout:   layout,
		Language: lang,
	}
	if s.HasWrittenToday {
		view.Icon = iconWritten
	}
	if vis.StreakBadge {
		view.StreakBadge = StringPtr(StreakBadgeText(s.CurrentStreak))
	}
	if vis.ContentPreview {
		content, _ := s.Content()
		view.ContentPreview = StringPtr(PreviewText(content))
	}
	return view
}
