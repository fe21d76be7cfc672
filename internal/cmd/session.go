package cmd

import (
	"bufio"
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopgen/cli/internal/catalog"
	oerrors "github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

const menuTitle = "=== E-COMMERCE MICROSERVICE FEATURES ==="

const sessionHelp = `
Commands:
  toggle <category> <feature_id> - Toggle a feature on/off
  save - Save current configuration
  exit - Exit without saving
  done - Save and exit
`

// runSession drives the interactive feature selection loop. Input comes
// from the command's input stream so the loop stays scriptable.
func runSession(cmd *cobra.Command) error {
	selectionPath := GetSelectionPath()

	state, err := selection.Load(selectionPath)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		output.Print(output.RenderMenu(menuTitle, menuSections(state)))
		output.Print(sessionHelp)
		output.Print("\nEnter command: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return oerrors.WrapFilesystem(err, "reading command input")
			}
			// End of input behaves like exit: unsaved changes are discarded.
			output.Println("")
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch {
		case fields[0] == "exit":
			return nil

		case fields[0] == "save":
			if err := saveSelection(selectionPath, state); err != nil {
				return err
			}

		case fields[0] == "done":
			if err := saveSelection(selectionPath, state); err != nil {
				return err
			}
			output.Println("\nFeature selection complete!")
			output.Println("\nYou can now use this configuration to generate the microservice project.")
			output.Println("Run 'shopgen --generate' to emit the service scaffolds.")
			return nil

		case fields[0] == "toggle" && len(fields) == 3:
			toggleFeature(state, fields[1], fields[2])

		default:
			output.Println("Invalid command. Try again.")
		}
	}
}

// saveSelection persists the state and confirms it to the user.
func saveSelection(path string, state selection.State) error {
	if err := selection.Save(path, state); err != nil {
		return err
	}
	output.Println("Configuration saved to " + path)
	return nil
}

// toggleFeature applies one toggle and reports the outcome. Toggle
// failures are part of the conversation, not fatal: the session continues.
func toggleFeature(state selection.State, categoryID, featureID string) {
	enabled, err := state.Toggle(categoryID, featureID)
	if err != nil {
		var detailErr *oerrors.DetailError
		if stderrors.As(err, &detailErr) {
			output.Println(output.FormatError(detailErr.Message))
		} else {
			output.Println(output.FormatError(err.Error()))
		}
		return
	}
	output.Println(output.FormatToggle(featureID, enabled))
}

// menuSections projects the catalog and current selection into menu rows.
func menuSections(state selection.State) []output.MenuSection {
	categories := catalog.Categories()
	sections := make([]output.MenuSection, 0, len(categories))
	for _, cat := range categories {
		section := output.MenuSection{
			Category:    cat.ID,
			Description: cat.Description,
		}
		for _, comp := range cat.Components {
			section.Items = append(section.Items, output.MenuItem{
				ID:          comp.ID,
				Name:        comp.Name,
				Description: comp.Description,
				Selected:    state.Enabled(cat.ID, comp.ID),
				Required:    comp.Required,
			})
		}
		sections = append(sections, section)
	}
	return sections
}
