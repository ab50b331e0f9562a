package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for modmeta.
type Paths struct {
	// ConfigFile is the path to the config file (~/.modmeta/config.yaml).
	ConfigFile string

	// HomeDir is the modmeta home directory (~/.modmeta).
	HomeDir string
}

// DefaultPaths returns the default paths for modmeta.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	modmetaHome := filepath.Join(homeDir, ".modmeta")

	return &Paths{
		ConfigFile: filepath.Join(modmetaHome, "config.yaml"),
		HomeDir:    modmetaHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If MODMETA_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("MODMETA_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureHomeDir creates the modmeta home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}
	return os.MkdirAll(paths.HomeDir, 0o755)
}
