// Package config loads the tool configuration from a TOML file.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the engine settings the inspector tool honors.
type Config struct {
	// Multibyte enables multibyte character positions. Defaults to true.
	Multibyte bool `toml:"multibyte"`

	// GapSize is the initial gap allocated for a loaded buffer, in
	// bytes. Zero picks the engine default.
	GapSize int64 `toml:"gap_size"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Multibyte: true,
		LogLevel:  "info",
	}
}

// Load reads the configuration at path. A missing file is not an
// error; the defaults are returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFrom reads configuration from r.
func LoadFrom(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", source, err)
	}
	return cfg, nil
}
