package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// colorCyan is used for identifiable nouns: feature ids, categories, file paths.
	colorCyan = lipgloss.Color("14")

	// colorGreen is used for the "enabled" feature status (bright, high-visibility).
	colorGreen = lipgloss.Color("82")

	// colorYellow is used for the "required" badge.
	colorYellow = lipgloss.Color("220")

	// colorBoldRed is used for error lines (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark (✔).
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for borders and other structural chrome.
	colorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (feature ids, categories, file paths).
	StyleNoun = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim styles structural chrome (descriptions, separators, placeholders).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleHeader styles section headers such as the feature menu banner.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
)

// Feature status constants.
const (
	StatusEnabled  = "enabled"
	StatusDisabled = "disabled"
	StatusRequired = "required"
)

// StatusStyle returns the lipgloss style for a feature status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusEnabled:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusDisabled:
		return lipgloss.NewStyle().Faint(true)
	case StatusRequired:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatError renders a single-line error message for in-session feedback.
func FormatError(msg string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed).Render("Error: ") + msg
}

// FormatSelected renders the selection status word for listings.
func FormatSelected(selected bool) string {
	if selected {
		return StatusStyle(StatusEnabled).Render(StatusEnabled)
	}
	return StatusStyle(StatusDisabled).Render(StatusDisabled)
}

// FormatToggle renders the feedback line for a toggled feature.
func FormatToggle(feature string, enabled bool) string {
	if enabled {
		return StatusStyle(StatusEnabled).Render("Enabled: ") + StyleNoun.Render(feature)
	}
	return StatusStyle(StatusDisabled).Render("Disabled: ") + StyleNoun.Render(feature)
}

// minVetLabelWidth is the minimum width for the check label column before
// the detail suffix. This ensures detail text aligns consistently.
const minVetLabelWidth = 32

// FormatVetCheck renders a passed check with an aligned, dimmed detail column.
func FormatVetCheck(label, detail string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	if detail == "" {
		return check + " " + label
	}

	padding := minVetLabelWidth - len(label)
	if padding < 2 {
		padding = 2
	}

	return check + " " + label + strings.Repeat(" ", padding) + StyleDim.Render(detail)
}
