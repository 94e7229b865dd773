package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds the file-backed settings for the render command. Every key
// has a matching flag; flags set on the command line win over file values.
type config struct {
	Arrow      string `toml:"arrow"`
	ASCII      bool   `toml:"ascii"`
	ASCIIStyle int    `toml:"ascii_style"`
}

// defaultConfigPath returns the standard config file location,
// e.g. ~/.config/asciidag/config.toml on Linux.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asciidag", "config.toml")
}

// loadConfig reads settings from path. An empty path means the default
// location, where a missing file is fine; an explicitly given file must
// exist.
func loadConfig(path string) (config, error) {
	var cfg config

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
