package tui

import "github.com/charmbracelet/lipgloss"

// Chrome around the widget cards. The cards themselves use the widget
// palettes.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorLavender lipgloss.Color = "#b4befe"
)

const (
	colorAccent  = colorPeach
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
)

var (
	titleStyle        = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerMetaStyle   = lipgloss.NewStyle().Foreground(colorSubtext0)
	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0).Padding(0, 1)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0).Padding(0, 1)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle).Padding(0, 1)
	helpKeyStyle      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	emptyStyle        = lipgloss.NewStyle().Foreground(colorText).Padding(1, 2)
	captionStyle      = lipgloss.NewStyle().Foreground(colorSubtext0)
)
