package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorScheme defines the palette used for terminal diagnostics
type ColorScheme struct {
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Muted   lipgloss.Color
}

// Styles contains the lipgloss styles used when writing to a terminal
type Styles struct {
	Colors ColorScheme

	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultColors returns the basic 16-color palette.
func DefaultColors() ColorScheme {
	return ColorScheme{
		Success: lipgloss.Color("10"), // Bright Green
		Warning: lipgloss.Color("11"), // Bright Yellow
		Error:   lipgloss.Color("1"),  // Red
		Muted:   lipgloss.Color("8"),  // Gray
	}
}

// New builds styles bound to w. Color support is detected from w and the
// environment; noColor forces plain output.
func New(w io.Writer, noColor bool) Styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return NewWithRenderer(r)
}

// NewWithRenderer builds styles for an existing renderer.
func NewWithRenderer(r *lipgloss.Renderer) Styles {
	colors := AdaptColorsToProfile(DefaultColors(), r.ColorProfile())
	return Styles{
		Colors:  colors,
		Error:   r.NewStyle().Foreground(colors.Error),
		Warning: r.NewStyle().Foreground(colors.Warning),
		Success: r.NewStyle().Foreground(colors.Success),
		Muted:   r.NewStyle().Foreground(colors.Muted),
	}
}

// AdaptColorsToProfile adapts colors to the terminal's capabilities
func AdaptColorsToProfile(colors ColorScheme, profile termenv.Profile) ColorScheme {
	if profile == termenv.Ascii {
		return ColorScheme{}
	}
	return colors
}
