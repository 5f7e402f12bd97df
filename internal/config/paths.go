package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for restscope.
type Paths struct {
	// ConfigFile is the path to the config file (~/.restscope/config.yaml).
	ConfigFile string

	// HomeDir is the restscope home directory (~/.restscope).
	HomeDir string
}

// DefaultPaths returns the default paths for restscope.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".restscope")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
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

	// ~username is not supported
	return path, nil
}

// FileExists reports whether a regular file exists at path.
func FileExists(path string) (bool, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
