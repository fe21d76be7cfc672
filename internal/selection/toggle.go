package selection

import (
	"github.com/shopgen/cli/internal/catalog"
	"github.com/shopgen/cli/internal/errors"
)

// Toggle flips a feature in and out of the selection and returns the new
// enabled status. Unknown features are rejected before the required check.
func (s State) Toggle(categoryID, featureID string) (bool, error) {
	comp, ok := catalog.Lookup(categoryID, featureID)
	if !ok {
		return false, errors.NewUnknownFeatureError(categoryID, featureID)
	}
	if comp.Required {
		return false, errors.NewRequiredFeatureError(featureID)
	}
	if s.Enabled(categoryID, featureID) {
		s.disable(categoryID, featureID)
		return false, nil
	}
	s.enable(categoryID, featureID)
	return true, nil
}
