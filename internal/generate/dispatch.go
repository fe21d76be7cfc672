package generate

import (
	"fmt"
	"os"

	"github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

// Result describes the scaffold emitted for one feature.
type Result struct {
	Feature string
	Files   []string
}

// GenerateAll emits scaffolds for every selected feature that has a
// registered generator, core categories before optional ones. Selected
// features without a generator are skipped so a selection may reference
// services whose generators do not ship yet.
func GenerateAll(reg *Registry, sel selection.State, outputDir string) ([]Result, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.WrapFilesystem(err, "creating output directory")
	}

	var results []Result
	for _, featureID := range sel.Union() {
		gen, ok := reg.Get(featureID)
		if !ok {
			output.Debug("no generator registered, skipping", "feature", featureID)
			continue
		}

		log := output.FeatureLogger(featureID)
		log.Debug("generating scaffold", "output", outputDir)

		files, err := gen.Emit(outputDir)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", featureID, err)
		}

		log.Info("scaffold generated", "files", len(files))
		results = append(results, Result{Feature: featureID, Files: files})
	}
	return results, nil
}
