package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shopgen/cli/internal/generate"
	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

// runGenerate emits scaffolds for the persisted selection and exits.
func runGenerate(cmd *cobra.Command) error {
	selectionPath := GetSelectionPath()
	outputDir := GetOutputDir()

	state, err := selection.Load(selectionPath)
	if err != nil {
		return err
	}

	output.Debug("generating scaffolds",
		"selection", selectionPath,
		"output", outputDir,
	)

	var results []generate.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		results, genErr = generate.GenerateAll(generate.Default(), state, outputDir)
		return genErr
	}, output.WithTitle("Generating service scaffolds..."))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		output.Println("Nothing generated: none of the selected features has a generator yet.")
		return nil
	}

	files := make(map[string]string)
	total := 0
	for _, res := range results {
		for _, f := range res.Files {
			files[f] = scaffoldFileDescription(f)
			total++
		}
	}

	output.Println(fmt.Sprintf("Generated scaffolds for %d service(s) in %s\n", len(results), outputDir))
	output.Print(output.RenderFileTree(outputDir, files))
	output.Println("")
	output.Println(output.FormatCheckmark(fmt.Sprintf("Generation complete (%d files)", total)))

	return nil
}

// scaffoldFileDescription returns the summary line for a generated file.
func scaffoldFileDescription(path string) string {
	switch filepath.Base(path) {
	case "main.py":
		return "Service entry point stub"
	case "Dockerfile":
		return "Container build file"
	default:
		return ""
	}
}
