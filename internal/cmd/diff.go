package cmd

import (
	"os"

	"github.com/spf13/cobra"

	oerrors "github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff [selection-file]",
		Short: "Show selection differences",
		Long: `Show a structural diff between feature selections.

Without arguments the persisted selection is compared against the default
selection (required features only), answering "what did I change". With a
file argument the persisted selection is compared against that file.

Examples:
  # What differs from a fresh default selection
  shopgen diff

  # Compare against another selection file
  shopgen diff team.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSelectionDiff,
	}
}

func runSelectionDiff(cmd *cobra.Command, args []string) error {
	selectionPath := GetSelectionPath()

	current, err := selection.Load(selectionPath)
	if err != nil {
		return err
	}

	from, fromName := selection.Default(), "defaults"
	to, toName := current, selectionPath

	if len(args) == 1 {
		// An explicitly named compare target must exist; the implicit
		// missing-file-means-defaults rule would hide typos here.
		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			return &oerrors.DetailError{
				Type:     "not found",
				Message:  "selection file not found",
				Location: args[0],
				Hint:     "Check the path or run 'shopgen' to create a selection.",
				Cause:    oerrors.ErrNotFound,
			}
		}
		other, err := selection.Load(args[0])
		if err != nil {
			return err
		}
		from, fromName = current, selectionPath
		to, toName = other, args[0]
	}

	output.Debug("diffing selections", "from", fromName, "to", toName)

	report, err := selection.Diff(from, to, selection.DiffOptions{
		FromName: fromName,
		ToName:   toName,
		UseColor: output.IsTTY(),
	})
	if err != nil {
		return err
	}

	if report == "" {
		output.Println("No changes detected.")
		return nil
	}

	output.Println(report)
	return nil
}
