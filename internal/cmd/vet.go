package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

// NewVetCmd creates the vet command.
func NewVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the selection file",
		Long: `Validate a feature selection file against the catalog.

Checks performed:
  1. Selection file exists at the resolved path
  2. File parses as a category to feature-list document
  3. Every listed category and feature exists in the catalog
  4. No feature is listed more than once
  5. Every required feature is present

Unlike the interactive session, vet never repairs the file: it reports
what drifted and exits non-zero so it can gate scripted generation.

Examples:
  # Validate the default selection file
  shopgen vet

  # Validate a specific file
  shopgen vet --config team.json`,
		Args: cobra.NoArgs,
		RunE: runSelectionVet,
	}
}

func runSelectionVet(cmd *cobra.Command, args []string) error {
	selectionPath := GetSelectionPath()

	output.Debug("vetting selection", "path", selectionPath)

	issues, err := selection.Vet(selectionPath)
	if err != nil {
		return err
	}

	if len(issues) > 0 {
		for _, issue := range issues {
			output.Println(output.FormatError(issue.String()))
		}
		output.Println("")
		output.Println(fmt.Sprintf("Found %d issue(s) in %s", len(issues), selectionPath))
		return &oerrors.ExitError{
			Code:    ExitConfigError,
			Err:     fmt.Errorf("selection has %d issue(s)", len(issues)),
			Printed: true,
		}
	}

	output.Println(output.FormatVetCheck("Selection file parses", selectionPath))
	output.Println(output.FormatVetCheck("Features exist in the catalog", ""))
	output.Println(output.FormatVetCheck("Required features present", ""))
	output.Println(output.FormatCheckmark("Selection is valid: " + selectionPath))

	return nil
}
