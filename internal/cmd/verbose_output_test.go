package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopgen/cli/internal/config"
	"github.com/shopgen/cli/internal/output"
)

func TestVerboseOutput_ResolvedValues(t *testing.T) {
	isolateConfig(t)

	// A flag value shadows the SHOPGEN_SELECTION set by isolateConfig.
	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		SelectionFlag: "flagged.json",
	})
	require.NoError(t, err)

	t.Run("default output hides resolution", func(t *testing.T) {
		var buf bytes.Buffer
		output.SetupLogging(output.LogConfig{})
		output.SetLogWriter(&buf)

		config.LogResolvedValues(resolved.Values())

		assert.Empty(t, buf.String(), "resolution logs are debug level only")
	})

	t.Run("verbose output shows values and provenance", func(t *testing.T) {
		var buf bytes.Buffer
		output.SetupLogging(output.LogConfig{Verbose: true})
		output.SetLogWriter(&buf)

		config.LogResolvedValues(resolved.Values())

		got := buf.String()
		assert.Contains(t, got, "config value resolved")
		assert.Contains(t, got, "flagged.json")
		assert.Contains(t, got, "source=flag")
		assert.Contains(t, got, "shadowed by higher precedence")
		assert.Contains(t, got, "shadowed_source=env")
	})
}
