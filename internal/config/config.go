package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mavwarf/bubbleicon/internal/paths"
)

// Config holds settings read from icons-config.json.
type Config struct {
	OutputDir string `json:"output_dir,omitempty"`
	Favicon   bool   `json:"favicon,omitempty"`
	Log       bool   `json:"log,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{OutputDir: paths.DefaultOutputDir}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	if err := json.Unmarshal(data, (*Alias)(c)); err != nil {
		return err
	}
	if c.OutputDir == "" {
		c.OutputDir = paths.DefaultOutputDir
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. icons-config.json in the working directory
//  3. DataDir()/icons-config.json
//
// If none exists the defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}
	for _, p := range []string{
		paths.ConfigFileName,
		filepath.Join(paths.DataDir(), paths.ConfigFileName),
	} {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
