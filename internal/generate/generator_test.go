package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	id    string
	files []string
	err   error
}

func (s stubGenerator) FeatureID() string { return s.id }

func (s stubGenerator) Emit(outputDir string) ([]string, error) {
	return s.files, s.err
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubGenerator{id: "reviews"}))

	g, ok := r.Get("reviews")
	require.True(t, ok)
	assert.Equal(t, "reviews", g.FeatureID())

	_, ok = r.Get("cart")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubGenerator{id: "reviews"}))

	err := r.Register(stubGenerator{id: "reviews"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reviews")
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(stubGenerator{id: "reviews"}))
	require.NoError(t, r.Register(stubGenerator{id: "cart"}))
	require.NoError(t, r.Register(stubGenerator{id: "inventory"}))

	assert.Equal(t, []string{"cart", "inventory", "reviews"}, r.Names())
}

func TestDefaultRegistryShipsInventoryOnly(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"inventory"}, r.Names())

	g, ok := r.Get("inventory")
	require.True(t, ok)
	assert.Equal(t, "inventory", g.FeatureID())
}
