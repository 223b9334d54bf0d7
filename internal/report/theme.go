package report

import (
	"charm.land/lipgloss/v2"
)

// Color palette shared by terminal reports and the interactive browser.
var (
	Primary = lipgloss.Color("#8B5CF6") // Violet
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Warning = lipgloss.Color("#EAB308") // Amber
	Danger  = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	dimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	goodStyle = lipgloss.NewStyle().
			Foreground(Success)

	warnStyle = lipgloss.NewStyle().
			Foreground(Warning)

	badStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)

// severityStyle maps a flag or insight severity to its display style.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "high":
		return badStyle
	case "medium":
		return warnStyle
	case "success":
		return goodStyle
	default:
		return dimStyle
	}
}

// rateStyle colors a 0-100 success or mastery rate.
func rateStyle(rate float64) lipgloss.Style {
	switch {
	case rate >= 80:
		return goodStyle
	case rate >= 40:
		return warnStyle
	default:
		return badStyle
	}
}
