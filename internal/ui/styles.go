// Package ui provides consistent styling and components for the wlout CLI
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorInfo    = lipgloss.Color("86")  // Cyan

	ColorText   = lipgloss.Color("252") // Light gray
	ColorSubtle = lipgloss.Color("241") // Medium gray

	ColorEnabled  = ColorSuccess
	ColorDisabled = ColorSubtle
)

var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// Mode annotations in mode listings
	CurrentModeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	PreferredModeStyle = lipgloss.NewStyle().
				Foreground(ColorInfo)
)

// Icons and indicators
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"

	EnabledIndicator = lipgloss.NewStyle().
				Foreground(ColorEnabled).
				Render("●")

	DisabledIndicator = lipgloss.NewStyle().
				Foreground(ColorDisabled).
				Render("○")
)

func FormatSuccess(msg string) string {
	return SuccessStyle.Render(IconSuccess) + " " + msg
}

func FormatWarning(msg string) string {
	return WarningStyle.Render(IconWarning) + " " + msg
}

func FormatError(msg string) string {
	return ErrorStyle.Render(IconError) + " " + msg
}

func FormatEnabled(enabled bool) string {
	if enabled {
		return EnabledIndicator + " yes"
	}
	return DisabledIndicator + " no"
}
