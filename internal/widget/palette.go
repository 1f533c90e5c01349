package widget

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// VisualMode drives the color selection of a widget.
type VisualMode int

const (
	ModeNotWritten VisualMode = iota
	ModeWritten
)

func (m VisualMode) String() string {
	if m == ModeWritten {
		return "written"
	}
	return "not_written"
}

// ModeFor maps the written flag to its visual mode.
func ModeFor(hasWritten bool) VisualMode {
	if hasWritten {
		return ModeWritten
	}
	return ModeNotWritten
}

// Color is a 0xAARRGGBB value, the format the widget layouts were authored in.
type Color uint32

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// Hex formats the color channels as #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// Over flattens c onto an opaque background. Terminals cannot draw
// translucent text, so every surface without alpha goes through here.
func (c Color) Over(bg Color) lipgloss.Color {
	alpha := float64(c.A()) / 255
	blended := bg.colorful().BlendRgb(c.colorful(), alpha).Clamped()
	return lipgloss.Color(blended.Hex())
}

// Palette is the color set of one visual mode. Primary colors the message,
// Secondary the streak badge, Tertiary the content preview, Accent the icon.
type Palette struct {
	Background Color
	Primary    Color
	Secondary  Color
	Tertiary   Color
	Accent     Color
}

const colorAccent Color = 0xFFFF9500

var (
	writtenPalette = Palette{
		Background: 0xFFFAF5ED,
		Primary:    0xCC000000,
		Secondary:  0x99000000,
		Tertiary:   0x80000000,
		Accent:     colorAccent,
	}
	notWrittenPalette = Palette{
		Background: 0xFF262626,
		Primary:    0xFFFFFFFF,
		Secondary:  0xCCFFFFFF,
		Tertiary:   0x99FFFFFF,
		Accent:     colorAccent,
	}
)

// SelectPalette returns the cream palette once today's line is written and
// the dark one before.
func SelectPalette(hasWritten bool) Palette {
	if hasWritten {
		return writtenPalette
	}
	return notWrittenPalette
}

// Flat returns the lipgloss color for c painted on this palette's background.
func (p Palette) Flat(c Color) lipgloss.Color {
	return c.Over(p.Background)
}
