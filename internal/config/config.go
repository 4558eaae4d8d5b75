// Package config defines the converter settings, their defaults and helpers
// for loading overrides from an optional config file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Mode selects which pipeline a Config is meant for. Only the default
// identifier differs between modes.
type Mode int

const (
	// ModePixels emits a flat RGBA pixel array.
	ModePixels Mode = iota
	// ModeICO emits a re-encoded .ico file.
	ModeICO
)

const (
	// DefaultPixelVarName is the array identifier of the pixel array output.
	DefaultPixelVarName = "icon_data"
	// DefaultICOVarName is the array identifier of the .ico output.
	DefaultICOVarName = "icon_ico"
	// DefaultSize is the edge length every icon is normalized to.
	DefaultSize = 32
)

// Config carries the options recognised by both converters. VarName is
// emitted verbatim; it is not sanitised, so callers must pass an identifier
// valid in C.
type Config struct {
	VarName string `json:"varname" toml:"varname"`
	Size    int    `json:"size" toml:"size"`
}

// Default returns the built-in settings for mode.
func Default(mode Mode) *Config {
	cfg := &Config{}
	cfg.applyRuntimeDefaults(mode)
	return cfg
}

// Load reads overrides from path on top of the defaults for mode. Files
// ending in .toml are parsed as TOML, anything else as JSON. An empty path
// yields the defaults.
func Load(path string, mode Mode) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(mode), nil
	}
	cfg := &Config{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.applyRuntimeDefaults(mode)
	return cfg, nil
}

// Override applies non-empty command line values.
func (c *Config) Override(varName string) {
	if v := strings.TrimSpace(varName); v != "" {
		c.VarName = v
	}
}

// applyRuntimeDefaults fills zero values so the pipelines always receive a
// usable identifier and size.
func (c *Config) applyRuntimeDefaults(mode Mode) {
	if strings.TrimSpace(c.VarName) == "" {
		c.VarName = DefaultPixelVarName
		if mode == ModeICO {
			c.VarName = DefaultICOVarName
		}
	}
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
}

func decodeFile(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(b), v); err != nil {
			return fmt.Errorf("config parse error: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("config parse error: %w", err)
	}
	return nil
}
