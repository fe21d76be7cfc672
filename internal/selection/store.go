package selection

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopgen/cli/internal/catalog"
	"github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
)

// DefaultFile is where the selection is persisted when no path is given.
const DefaultFile = "ecommerce_config.json"

// Load reads a selection file and normalizes it against the catalog.
// A missing file is not an error: the default selection is returned so a
// fresh working directory behaves like a first run.
func Load(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			output.Debug("selection file missing, starting from defaults", "path", path)
			return Default(), nil
		}
		return State{}, errors.WrapFilesystem(err, "reading selection file")
	}

	var doc map[string][]string
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, errors.NewParseError(path, err)
	}
	return fromDocument(doc, path), nil
}

// fromDocument converts a persisted document into a valid State, warning
// about and repairing anything that drifted from the catalog.
func fromDocument(doc map[string][]string, path string) State {
	s := New()
	for categoryID, features := range doc {
		if _, ok := catalog.LookupCategory(categoryID); !ok {
			output.Warn("dropping unknown category from selection file", "category", categoryID, "path", path)
			continue
		}
		for _, featureID := range features {
			if _, ok := catalog.Lookup(categoryID, featureID); !ok {
				output.Warn("dropping unknown feature from selection file", "category", categoryID, "feature", featureID, "path", path)
				continue
			}
			s.enable(categoryID, featureID)
		}
	}
	for _, categoryID := range catalog.CategoryIDs() {
		for _, featureID := range catalog.Required(categoryID) {
			if !s.Enabled(categoryID, featureID) {
				output.Warn("re-adding required feature to selection", "category", categoryID, "feature", featureID)
				s.enable(categoryID, featureID)
			}
		}
	}
	return s
}

// Encode renders the selection as the persisted JSON document: one key per
// category, each holding the selected feature ids in catalog display order.
func Encode(s State) ([]byte, error) {
	doc := make(map[string][]string, len(catalog.CategoryIDs()))
	for _, categoryID := range catalog.CategoryIDs() {
		doc[categoryID] = s.Selected(categoryID)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling selection: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes the selection atomically: a temp file in the same directory
// is renamed over the target so readers never observe a partial document.
func Save(path string, s State) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.WrapFilesystem(err, "writing selection file")
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.WrapFilesystem(err, "replacing selection file")
	}
	output.Debug("selection saved", "path", path)
	return nil
}
