// Package ui provides the terminal interface for pazar: the interactive
// market table page, its styling, and the static table renderer used by the
// non-interactive commands.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pazar/internal/config"
)

// Color palette. The dark palette follows the original web page.
var (
	// Dark Mode Colors (Default)
	DarkBackground = lipgloss.Color("#1E1E1E")
	DarkForeground = lipgloss.Color("#E0E0E0")
	DarkPrimary    = lipgloss.Color("#4DB6AC") // Teal
	DarkAccent     = lipgloss.Color("#006064") // Deep teal, selection
	DarkSecondary  = lipgloss.Color("#232323") // Odd rows
	DarkMuted      = lipgloss.Color("#888888") // Placeholder text
	DarkBorder     = lipgloss.Color("#444444")
	DarkCard       = lipgloss.Color("#2D2D2D") // Table, inputs

	// Light Mode Colors
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#00838F")
	LightAccent     = lipgloss.Color("#B2EBF2")
	LightSecondary  = lipgloss.Color("#e1e4e8")
	LightMuted      = lipgloss.Color("#8a94a3")
	LightBorder     = lipgloss.Color("#dce0e5")
	LightCard       = lipgloss.Color("#ffffff")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Secondary:  DarkSecondary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Secondary:  LightSecondary,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// ThemeFor resolves a configured theme name. "auto" inspects the terminal.
func ThemeFor(name string) Theme {
	switch name {
	case config.ThemeLight:
		return LightTheme()
	case config.ThemeAuto:
		return DetectTheme()
	default:
		return DarkTheme()
	}
}

// DetectTheme guesses the terminal background. PAZAR_DARK_MODE=0 forces the
// light theme; otherwise COLORFGBG decides, falling back to dark.
func DetectTheme() Theme {
	if os.Getenv("PAZAR_DARK_MODE") == "0" {
		return LightTheme()
	}

	// Format is usually "foreground;background"
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 0-6 and 8 (dark grey) are dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
			return LightTheme()
		}
	}

	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Controls
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Control        lipgloss.Style
	ControlOff     lipgloss.Style
	TableHeader    lipgloss.Style
	TableCell      lipgloss.Style
	TableCellAlt   lipgloss.Style
	TableSelected  lipgloss.Style
	Popover        lipgloss.Style
	Error          lipgloss.Style
	Info           lipgloss.Style
	SortIndicators [3]string
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(theme.Foreground).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Control: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 1),

		ControlOff: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Card).
			Padding(0, 1),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 1),

		TableCell: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Card).
			Padding(0, 1),

		TableCellAlt: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Secondary).
			Padding(0, 1),

		TableSelected: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Accent).
			Bold(false),

		Popover: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),

		SortIndicators: [3]string{"", " ▲", " ▼"},
	}
}

// DefaultStyles returns styles with the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
