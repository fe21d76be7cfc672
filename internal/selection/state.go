// Package selection holds the feature selection state and its persistence.
package selection

import (
	"github.com/shopgen/cli/internal/catalog"
)

// State is the set of selected features per category. The category key set
// is fixed to the catalog's categories; required features are always present.
type State struct {
	selected map[string]map[string]bool
}

// New returns an empty selection with every catalog category present.
func New() State {
	s := State{selected: make(map[string]map[string]bool)}
	for _, id := range catalog.CategoryIDs() {
		s.selected[id] = make(map[string]bool)
	}
	return s
}

// Default returns the selection every product variant starts from:
// exactly the required features of each category.
func Default() State {
	s := New()
	for _, categoryID := range catalog.CategoryIDs() {
		for _, featureID := range catalog.Required(categoryID) {
			s.selected[categoryID][featureID] = true
		}
	}
	return s
}

// Enabled reports whether a feature is currently selected.
func (s State) Enabled(categoryID, featureID string) bool {
	return s.selected[categoryID][featureID]
}

// Selected returns the selected feature ids of one category in catalog
// display order.
func (s State) Selected(categoryID string) []string {
	ids := []string{}
	cat, ok := catalog.LookupCategory(categoryID)
	if !ok {
		return ids
	}
	for _, comp := range cat.Components {
		if s.selected[categoryID][comp.ID] {
			ids = append(ids, comp.ID)
		}
	}
	return ids
}

// Union returns all selected feature ids across categories in catalog
// display order.
func (s State) Union() []string {
	var ids []string
	for _, categoryID := range catalog.CategoryIDs() {
		ids = append(ids, s.Selected(categoryID)...)
	}
	return ids
}

// Clone returns an independent copy of the selection.
func (s State) Clone() State {
	out := State{selected: make(map[string]map[string]bool, len(s.selected))}
	for categoryID, features := range s.selected {
		set := make(map[string]bool, len(features))
		for id, on := range features {
			set[id] = on
		}
		out.selected[categoryID] = set
	}
	return out
}

// Equal reports whether two selections contain the same features.
func (s State) Equal(other State) bool {
	for _, categoryID := range catalog.CategoryIDs() {
		cat, _ := catalog.LookupCategory(categoryID)
		for _, comp := range cat.Components {
			if s.Enabled(categoryID, comp.ID) != other.Enabled(categoryID, comp.ID) {
				return false
			}
		}
	}
	return true
}

// enable marks a feature selected.
func (s State) enable(categoryID, featureID string) {
	if s.selected[categoryID] == nil {
		s.selected[categoryID] = make(map[string]bool)
	}
	s.selected[categoryID][featureID] = true
}

// disable removes a feature from the selection.
func (s State) disable(categoryID, featureID string) {
	delete(s.selected[categoryID], featureID)
}
