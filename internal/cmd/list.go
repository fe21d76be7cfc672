package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shopgen/cli/internal/catalog"
	oerrors "github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

var listOutputFlag string

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog features and their selection status",
		Long: `List every feature in the catalog together with its selection status.

The selection file is resolved the same way the interactive session
resolves it, so the listing always reflects what --generate would use.

Examples:
  # List features as a table
  shopgen list

  # List features as JSON
  shopgen list -o json

  # List the status of a specific selection file
  shopgen list --config team.json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listOutputFlag, "output", "o", "table",
		fmt.Sprintf("Output format: %s", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

// listedFeature is one row of the feature listing.
type listedFeature struct {
	Category    string `json:"category"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
	Selected    bool   `json:"selected"`
}

func runList(cmd *cobra.Command, args []string) error {
	format := output.Format(listOutputFlag)
	if !format.IsValid() {
		return &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown output format: %s", listOutputFlag),
			Hint:    fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
			Cause:   oerrors.ErrValidation,
		}
	}

	state, err := selection.Load(GetSelectionPath())
	if err != nil {
		return err
	}

	features := listFeatures(state)

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(features, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling feature list: %w", err)
		}
		output.Println(string(data))

	default:
		table := output.NewTable("STATUS", "CATEGORY", "FEATURE", "NAME", "REQUIRED")
		for _, f := range features {
			table.Row(
				output.FormatSelected(f.Selected),
				f.Category,
				f.ID,
				f.Name,
				formatRequired(f.Required),
			)
		}
		output.Println(table.String())
	}

	return nil
}

// listFeatures flattens the catalog with the selection applied.
func listFeatures(state selection.State) []listedFeature {
	var features []listedFeature
	for _, cat := range catalog.Categories() {
		for _, comp := range cat.Components {
			features = append(features, listedFeature{
				Category:    cat.ID,
				ID:          comp.ID,
				Name:        comp.Name,
				Description: comp.Description,
				Required:    comp.Required,
				Selected:    state.Enabled(cat.ID, comp.ID),
			})
		}
	}
	return features
}

func formatRequired(required bool) string {
	if required {
		return "yes"
	}
	return ""
}
