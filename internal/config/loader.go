package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

// Loader reads the restscope config file. Environment variables and flags
// are applied later by the resolver so each value keeps its source.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{v: viper.New()}
}

// Load loads configuration from the given file path. A missing file yields an
// empty Config and found=false.
func (l *Loader) Load(configFile string) (cfg *Config, found bool, err error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, false, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return &Config{}, false, nil
		}
		return nil, false, fmt.Errorf("reading config file: %w", err)
	}

	cfg = &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, true, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, true, nil
}
