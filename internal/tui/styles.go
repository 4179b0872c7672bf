// Package tui renders generation progress and the run summary in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sopgen/sopgen/internal/config"
)

// Theme contains all style definitions for the TUI.
type Theme struct {
	// Colors (raw values for reference)
	PrimaryColor   lipgloss.Color
	SecondaryColor lipgloss.Color
	AccentColor    lipgloss.Color
	ErrorColor     lipgloss.Color
	WarningColor   lipgloss.Color
	SuccessColor   lipgloss.Color
	MutedColor     lipgloss.Color

	// Color styles (for direct use)
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style

	// Component styles
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Box    lipgloss.Style
	Footer lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableRowAlt lipgloss.Style
}

// NewTheme creates a new theme based on the color scheme configuration.
func NewTheme(scheme config.ColorScheme) *Theme {
	switch scheme {
	case config.ColorSchemeAmber:
		return buildTheme("#FFAA00", "#AA7700", "#FFCC66", "#664400", "#FFFF00", "#FFAA00")
	case config.ColorSchemeWhite:
		return buildTheme("#FFFFFF", "#AAAAAA", "#FFFFFF", "#666666", "#FFAA00", "#00FF00")
	default:
		return buildTheme("#00FF00", "#00AA00", "#66FF66", "#006600", "#FFAA00", "#00FF00")
	}
}

func buildTheme(primary, secondary, accent, muted, warningColor, successColor lipgloss.Color) *Theme {
	errorColor := lipgloss.Color("#FF4444")

	t := &Theme{
		PrimaryColor:   primary,
		SecondaryColor: secondary,
		AccentColor:    accent,
		ErrorColor:     errorColor,
		WarningColor:   warningColor,
		SuccessColor:   successColor,
		MutedColor:     muted,
	}

	t.Primary = lipgloss.NewStyle().Foreground(primary)
	t.Secondary = lipgloss.NewStyle().Foreground(secondary)
	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(errorColor)
	t.Warning = lipgloss.NewStyle().Foreground(warningColor)
	t.Success = lipgloss.NewStyle().Foreground(successColor)
	t.Muted = lipgloss.NewStyle().Foreground(muted)

	t.Title = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true).
		Padding(0, 1)

	t.Label = lipgloss.NewStyle().
		Foreground(secondary)

	t.Value = lipgloss.NewStyle().
		Foreground(primary)

	t.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondary).
		Padding(0, 1)

	t.Footer = lipgloss.NewStyle().
		Foreground(secondary).
		Padding(0, 1)

	t.TableHeader = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.TableRow = lipgloss.NewStyle().
		Foreground(primary)

	t.TableRowAlt = lipgloss.NewStyle().
		Foreground(secondary)

	return t
}

// BoxHorizontal is the rule character used under headings.
const BoxHorizontal = "─"

// DrawHorizontalLine draws a horizontal line.
func (t *Theme) DrawHorizontalLine(width int) string {
	if width < 0 {
		width = 0
	}
	return t.Secondary.Render(strings.Repeat(BoxHorizontal, width))
}
