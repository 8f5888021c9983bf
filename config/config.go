// Package config loads the settings of the izr command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/takoeight0821/inzertion/driver"
)

// EnvVar names a config file that takes the place of the XDG lookup.
const EnvVar = "IZR_CONFIG"

// relPath is the config file location relative to the XDG config directories.
var relPath = filepath.Join("inzertion", "config.toml")

type Config struct {
	Output OutputConfig `toml:"output"`
	REPL   REPLConfig   `toml:"repl"`
}

type OutputConfig struct {
	Format string `toml:"format"` // "sexpr" or "yaml"
	Color  bool   `toml:"color"`
}

type REPLConfig struct {
	Prompt  string `toml:"prompt"`
	History bool   `toml:"history"`
}

func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "sexpr", Color: true},
		REPL:   REPLConfig{Prompt: "> ", History: true},
	}
}

// Load reads the TOML file at path over the defaults.
// Keys missing from the file keep their default values; unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Find resolves the config file path: explicit, then $IZR_CONFIG, then the XDG config dirs.
// It returns "" when there is no config file to load.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(EnvVar); path != "" {
		return path
	}

	// SearchConfigFile fails when no directory holds the file.
	path, err := xdg.SearchConfigFile(relPath)
	if err != nil {
		return ""
	}

	return path
}

// LoadDefault loads the file chosen by Find, or returns the defaults when there is none.
func LoadDefault(explicit string) (*Config, error) {
	path := Find(explicit)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) Validate() error {
	if _, err := driver.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	return nil
}
