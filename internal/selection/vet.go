package selection

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/shopgen/cli/internal/catalog"
	"github.com/shopgen/cli/internal/errors"
)

// Issue is a single defect found while vetting a selection file.
type Issue struct {
	Category string
	Feature  string
	Problem  string
}

func (i Issue) String() string {
	if i.Feature == "" {
		return fmt.Sprintf("%s: %s", i.Category, i.Problem)
	}
	return fmt.Sprintf("%s/%s: %s", i.Category, i.Feature, i.Problem)
}

// Vet checks a selection file against the catalog without repairing it.
// It returns the issues found; parse and read failures are returned as
// errors instead.
func Vet(path string) ([]Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.DetailError{
				Type:     "not found",
				Message:  fmt.Sprintf("selection file '%s' does not exist", path),
				Location: path,
				Hint:     "Run 'shopgen' and use 'save' to create one.",
				Cause:    errors.ErrNotFound,
			}
		}
		return nil, errors.WrapFilesystem(err, "reading selection file")
	}

	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParseError(path, err)
	}

	var issues []Issue

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, categoryID := range keys {
		if _, ok := catalog.LookupCategory(categoryID); !ok {
			issues = append(issues, Issue{Category: categoryID, Problem: "unknown category"})
			continue
		}
		seen := make(map[string]bool)
		for _, featureID := range doc[categoryID] {
			if _, ok := catalog.Lookup(categoryID, featureID); !ok {
				issues = append(issues, Issue{Category: categoryID, Feature: featureID, Problem: "unknown feature"})
				continue
			}
			if seen[featureID] {
				issues = append(issues, Issue{Category: categoryID, Feature: featureID, Problem: "listed more than once"})
				continue
			}
			seen[featureID] = true
		}
	}

	for _, categoryID := range catalog.CategoryIDs() {
		listed, ok := doc[categoryID]
		if !ok {
			issues = append(issues, Issue{Category: categoryID, Problem: "category missing"})
			continue
		}
		present := make(map[string]bool, len(listed))
		for _, featureID := range listed {
			present[featureID] = true
		}
		for _, featureID := range catalog.Required(categoryID) {
			if !present[featureID] {
				issues = append(issues, Issue{Category: categoryID, Feature: featureID, Problem: "required feature missing"})
			}
		}
	}

	return issues, nil
}
