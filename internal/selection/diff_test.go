package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdenticalSelections(t *testing.T) {
	out, err := Diff(Default(), Default(), DiffOptions{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffReportsToggledFeature(t *testing.T) {
	from := Default()
	to := Default()
	_, err := to.Toggle("optional", "reviews")
	require.NoError(t, err)

	out, err := Diff(from, to, DiffOptions{FromName: "defaults", ToName: "current"})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "reviews")
	assert.Contains(t, out, "optional")
}

func TestDiffDisabledColorStillRenders(t *testing.T) {
	from := Default()
	to := Default()
	_, err := to.Toggle("optional", "admin")
	require.NoError(t, err)

	plain, err := Diff(from, to, DiffOptions{UseColor: false})
	require.NoError(t, err)
	assert.NotEmpty(t, plain)
}
