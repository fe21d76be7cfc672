package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderLoadsYAMLFile(t *testing.T) {
	clearShopgenEnv(t)
	path := writeConfigFile(t, `selection: team.json
generator:
  outputDir: /srv/scaffolds
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "team.json", cfg.Selection)
	assert.Equal(t, "/srv/scaffolds", cfg.Generator.OutputDir)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestLoaderLoadsTimestamps(t *testing.T) {
	clearShopgenEnv(t)
	path := writeConfigFile(t, `log:
  timestamps: false
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Log.Timestamps)
	assert.False(t, *cfg.Log.Timestamps)
}

func TestLoaderMissingFileIsNotAnError(t *testing.T) {
	clearShopgenEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Selection)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	clearShopgenEnv(t)
	t.Setenv("SHOPGEN_SELECTION", "env.json")
	path := writeConfigFile(t, "selection: file.json\n")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env.json", cfg.Selection)
}

func TestLoadWithDefaultsFillsGaps(t *testing.T) {
	clearShopgenEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "ecommerce_config.json", cfg.Selection)
	assert.Equal(t, "generated", cfg.Generator.OutputDir)
}

func TestConfigFileExists(t *testing.T) {
	clearShopgenEnv(t)
	path := writeConfigFile(t, "selection: x.json\n")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ConfigFileExists(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)
}
