// Package ui provides the terminal front-end for the studentnet widgets.
// Models translate key presses into document events and draw the document
// with lipgloss.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette based on the studentnet web theme
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#1b1c1d")
	LightPrimary    = lipgloss.Color("#2185d0") // Blue
	LightAccent     = lipgloss.Color("#00b5ad") // Teal
	LightMuted      = lipgloss.Color("#767676")
	LightBorder     = lipgloss.Color("#d4d4d5")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#1b1c1d")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#54c8ff")
	DarkAccent     = lipgloss.Color("#6dffff")
	DarkMuted      = lipgloss.Color("#9e9e9e")
	DarkBorder     = lipgloss.Color("#3a3b3c")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#db2828") // Red
	Success     = lipgloss.Color("#21ba45") // Green
)

// chipColors maps chip style tokens to label colours.
var chipColors = map[string]lipgloss.Color{
	"teal":   lipgloss.Color("#00b5ad"),
	"purple": lipgloss.Color("#a333c8"),
	"olive":  lipgloss.Color("#b5cc18"),
	"orange": lipgloss.Color("#f2711c"),
	"pink":   lipgloss.Color("#e03997"),
	"blue":   lipgloss.Color("#2185d0"),
}

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// DetectTheme picks dark mode when forced or when the terminal reports a
// dark background through COLORFGBG ("foreground;background").
func DetectTheme(forceDark bool) Theme {
	if forceDark {
		return DarkTheme()
	}
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header   lipgloss.Style
	Title    lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Chip     lipgloss.Style
	Selected lipgloss.Style

	// Carousel
	Slide      lipgloss.Style
	NumberText lipgloss.Style
	Caption    lipgloss.Style
	Dot        lipgloss.Style
	DotActive  lipgloss.Style
	Arrow      lipgloss.Style
	Modal      lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Focused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		Blurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Chip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			MarginRight(1),

		Selected: lipgloss.NewStyle().
			Underline(true).
			Bold(true),

		Slide: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		NumberText: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Caption: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true),

		Dot: lipgloss.NewStyle().
			Foreground(theme.Border),

		DotActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Arrow: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme(false))
}

// ChipStyle returns the chip style for a colour token. Unknown tokens fall
// back to the theme accent.
func (s Styles) ChipStyle(token string) lipgloss.Style {
	color, ok := chipColors[token]
	if !ok {
		color = s.Theme.Accent
	}
	return s.Chip.Background(color)
}
