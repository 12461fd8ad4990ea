// Package tui provides the interactive component picker for agentpack.
// It uses Charmbracelet's Bubble Tea and Lip Gloss for the terminal UI.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the TUI.
var (
	// Primary colors
	primaryColor = lipgloss.Color("#7D56F4")
	accentColor  = lipgloss.Color("#00D9FF")

	// Status colors
	successColor = lipgloss.Color("#28A745")
	warningColor = lipgloss.Color("#FFC107")

	// Neutral colors
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#333333")
	highlightColor = lipgloss.Color("#1A1A2E")
)

// Box styles for containers.
var (
	// outerBoxStyle is the main container style.
	outerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	// dividerStyle creates horizontal dividers.
	dividerStyle = lipgloss.NewStyle().
			Foreground(borderColor)
)

// Text styles.
var (
	// titleStyle for main titles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// mutedTextStyle for less important text.
	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// groupStyle for component type group headers.
	groupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// keyStyle for key hints.
	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	// keyDescStyle for key hint descriptions.
	keyDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// Component list styles.
var (
	// cursorItemStyle for the currently highlighted item.
	cursorItemStyle = lipgloss.NewStyle().
			Background(highlightColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	// normalItemStyle for non-highlighted items.
	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// checkedStyle for selected checkboxes.
	checkedStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// uncheckedStyle for unselected checkboxes.
	uncheckedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// partialStyle for indeterminate group checkboxes.
	partialStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	// sizeStyle for component size display.
	sizeStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// cursorStyle for the cursor indicator.
	cursorStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)
)
