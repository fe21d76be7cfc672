package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cats := Categories()

	require.Len(t, cats, 2)
	assert.Equal(t, "core", cats[0].ID)
	assert.Equal(t, "optional", cats[1].ID)
	assert.Len(t, cats[0].Components, 7)
	assert.Len(t, cats[1].Components, 3)
}

func TestCategoriesImmutable(t *testing.T) {
	cats := Categories()
	cats[0].Components[0].ID = "mutated"
	cats[1].Description = "mutated"

	fresh := Categories()
	assert.Equal(t, "gateway", fresh[0].Components[0].ID)
	assert.NotEqual(t, "mutated", fresh[1].Description)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		category string
		feature  string
		wantOK   bool
		wantName string
		required bool
	}{
		{name: "core required feature", category: "core", feature: "gateway", wantOK: true, wantName: "API Gateway", required: true},
		{name: "optional feature", category: "optional", feature: "reviews", wantOK: true, wantName: "Reviews Service", required: false},
		{name: "unknown feature", category: "core", feature: "wishlists", wantOK: false},
		{name: "unknown category", category: "premium", feature: "gateway", wantOK: false},
		{name: "feature in wrong category", category: "optional", feature: "gateway", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp, ok := Lookup(tt.category, tt.feature)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, comp.Name)
				assert.Equal(t, tt.required, comp.Required)
			}
		})
	}
}

func TestLookupCategory(t *testing.T) {
	core, ok := LookupCategory("core")
	require.True(t, ok)
	assert.NotEmpty(t, core.Description)

	_, ok = LookupCategory("premium")
	assert.False(t, ok)
}

func TestRequired(t *testing.T) {
	assert.Equal(t, []string{"gateway", "user", "catalog", "cart", "orders", "payments", "inventory"}, Required("core"))
	assert.Empty(t, Required("optional"))
	assert.Empty(t, Required("premium"))
}

func TestAllCoreComponentsRequired(t *testing.T) {
	core, ok := LookupCategory("core")
	require.True(t, ok)
	for _, comp := range core.Components {
		assert.True(t, comp.Required, "core component %s should be required", comp.ID)
	}
}

func TestNoOptionalComponentRequired(t *testing.T) {
	optional, ok := LookupCategory("optional")
	require.True(t, ok)
	for _, comp := range optional.Components {
		assert.False(t, comp.Required, "optional component %s should not be required", comp.ID)
	}
}

func TestCategoryIDs(t *testing.T) {
	assert.Equal(t, []string{"core", "optional"}, CategoryIDs())
}
