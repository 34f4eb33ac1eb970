// Package ui holds the terminal styling for the packvault CLI. All
// output degrades to plain text when stdout is not a TTY.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/packvault/packvault/internal/artefact"
)

// IsTTY indicates whether stdout is an interactive terminal.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

var (
	Gold     = lipgloss.Color("#F4D03F")
	Copper   = lipgloss.Color("#DC7633")
	Purple   = lipgloss.Color("#9B59B6")
	Blue     = lipgloss.Color("#5DADE2")
	Green    = lipgloss.Color("#58D68D")
	Pink     = lipgloss.Color("#FF6B9D")
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Gold)
	Success   = lipgloss.NewStyle().Foreground(Green)
	Error     = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	Warning   = lipgloss.NewStyle().Foreground(Copper)
	Muted     = lipgloss.NewStyle().Foreground(Gray)
	Highlight = lipgloss.NewStyle().Foreground(Gold).Bold(true)
)

var baseBadge = lipgloss.NewStyle().Padding(0, 1).Bold(true)

// TypeBadge returns the badge for an artefact type
func TypeBadge(t artefact.Type) string {
	if !IsTTY {
		return fmt.Sprintf("[%s]", strings.ToUpper(string(t)))
	}
	switch t {
	case artefact.TypeCommand:
		return baseBadge.Background(Blue).Foreground(White).Render("⌘ CMD")
	case artefact.TypeStandard:
		return baseBadge.Background(Copper).Foreground(White).Render("§ STD")
	case artefact.TypeSkill:
		return baseBadge.Background(Purple).Foreground(White).Render("✦ SKILL")
	default:
		return baseBadge.Background(DarkGray).Foreground(White).Render("?")
	}
}

// DiffTag renders a change-type tag colored by its effect: additions
// green, deletions pink, updates gold.
func DiffTag(t artefact.DiffType) string {
	if !IsTTY {
		return string(t)
	}
	switch t {
	case artefact.DiffAddFile, artefact.DiffAddRule:
		return Success.Render(string(t))
	case artefact.DiffDeleteFile, artefact.DiffDeleteRule:
		return Error.Render(string(t))
	default:
		return Highlight.Render(string(t))
	}
}

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	style := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("  %s %s", style.Render(icon), style.Render(message))
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Pink)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Copper)
}

// Render applies a style, returning plain text in non-TTY environments
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}

// Truncate truncates text to max length with ellipsis
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(text) <= max {
		return text
	}
	if max <= 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}

// Divider returns a horizontal divider
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}
