package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for shopgen.
type Paths struct {
	// ConfigFile is the path to the config file (~/.shopgen/config.yaml).
	ConfigFile string

	// HomeDir is the shopgen home directory (~/.shopgen).
	HomeDir string
}

// DefaultPaths returns the default paths for shopgen.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	shopgenHome := filepath.Join(homeDir, ".shopgen")

	return &Paths{
		ConfigFile: filepath.Join(shopgenHome, "config.yaml"),
		HomeDir:    shopgenHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If SHOPGEN_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("SHOPGEN_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is
	return path, nil
}
