package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuItem is a single selectable entry in a feature menu.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Selected    bool
	Required    bool
}

// MenuSection groups menu items under a category heading.
type MenuSection struct {
	Category    string
	Description string
	Items       []MenuItem
}

const menuSeparatorWidth = 50

// RenderMenu renders a categorized selection menu with checkboxes,
// required badges, and dimmed descriptions.
func RenderMenu(title string, sections []MenuSection) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(StyleHeader.Render(title))
	sb.WriteString("\n")

	for _, section := range sections {
		sb.WriteString("\n")
		sb.WriteString(StyleSummary.Render(strings.ToUpper(section.Category)))
		sb.WriteString(": ")
		sb.WriteString(section.Description)
		sb.WriteString("\n")
		sb.WriteString(StyleDim.Render(strings.Repeat("-", menuSeparatorWidth)))
		sb.WriteString("\n")

		for _, item := range section.Items {
			sb.WriteString(renderMenuItem(item))
		}
	}

	return sb.String()
}

func renderMenuItem(item MenuItem) string {
	var sb strings.Builder

	check := " "
	if item.Selected {
		check = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	}

	sb.WriteString("[")
	sb.WriteString(check)
	sb.WriteString("] ")
	sb.WriteString(StyleNoun.Render(item.ID))
	sb.WriteString(": ")
	sb.WriteString(item.Name)
	if item.Required {
		sb.WriteString(" ")
		sb.WriteString(StatusStyle(StatusRequired).Render("[Required]"))
	}
	sb.WriteString("\n    ")
	sb.WriteString(StyleDim.Render(item.Description))
	sb.WriteString("\n")

	return sb.String()
}
