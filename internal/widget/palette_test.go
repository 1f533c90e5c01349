package widget

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestSelectPalette(t *testing.T) {
	t.Parallel()
	written := SelectPalette(true)
	require.Equal(t, "#FFFAF5ED", written.Background.String())
	require.Equal(t, "#CC000000", written.Primary.String())
	require.Equal(t, "#99000000", written.Secondary.String())
	require.Equal(t, "#80000000", written.Tertiary.String())

	dark := SelectPalette(false)
	require.Equal(t, "#FF262626", dark.Background.String())
	require.Equal(t, "#FFFFFFFF", dark.Primary.String())
	require.Equal(t, "#CCFFFFFF", dark.Secondary.String())
	require.Equal(t, "#99FFFFFF", dark.Tertiary.String())

	require.Equal(t, written.Accent, dark.Accent)
}

func TestColorChannels(t *testing.T) {
	t.Parallel()
	c := Color(0x80FF9500)
	require.Equal(t, uint8(0x80), c.A())
	require.Equal(t, uint8(0xFF), c.R())
	require.Equal(t, uint8(0x95), c.G())
	require.Equal(t, uint8(0x00), c.B())
	require.Equal(t, "#FF9500", c.Hex())
}

func TestColorOverFlattensAlpha(t *testing.T) {
	t.Parallel()
	cream := Color(0xFFFAF5ED)

	require.True(t, strings.EqualFold("#FFFFFF", string(Color(0xFFFFFFFF).Over(cream))))
	require.True(t, strings.EqualFold(cream.Hex(), string(Color(0x00000000).Over(cream))))
	require.True(t, strings.EqualFold("#32312F", string(Color(0xCC000000).Over(cream))))
}

func TestPaletteFlatColorsAreValidHex(t *testing.T) {
	t.Parallel()
	for _, p := range []Palette{SelectPalette(true), SelectPalette(false)} {
		for _, c := range []lipgloss.Color{
			p.Flat(p.Background), p.Flat(p.Primary), p.Flat(p.Secondary),
			p.Flat(p.Tertiary), p.Flat(p.Accent),
		} {
			require.Regexp(t, hexColorRegex, string(c))
		}
	}
}

func TestModeFor(t *testing.T) {
	t.Parallel()
	require.Equal(t, ModeWritten, ModeFor(true))
	require.Equal(t, ModeNotWritten, ModeFor(false))
	require.Equal(t, "written", ModeWritten.String())
	require.Equal(t, "not_written", ModeNotWritten.String())
}
