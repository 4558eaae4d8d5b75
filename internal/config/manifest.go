package config

import "strings"

// DefaultBundleOutput is where the script bundle is written when nothing else
// is configured.
const DefaultBundleOutput = "preloaded_scripts.h"

// DefaultScripts is the ordered list of scripts bundled by default.
var DefaultScripts = []string{
	"visual-darkhouse.lua",
	"visual-tempform.lua",
	"visual-wireframe-sphere.lua",
	"part_example.lua",
}

// Manifest describes a script bundle. Files keep their order; it decides the
// array numbering.
type Manifest struct {
	Output string   `json:"output" toml:"output"`
	Guard  string   `json:"guard" toml:"guard"`
	Prefix string   `json:"prefix" toml:"prefix"`
	Files  []string `json:"files" toml:"files"`
}

// DefaultManifest returns the built-in bundle description.
func DefaultManifest() *Manifest {
	m := &Manifest{}
	m.applyRuntimeDefaults()
	return m
}

// LoadManifest reads a bundle manifest (TOML or JSON, by extension). Relative
// file entries are kept as written, so they resolve against the working
// directory. An empty path yields the defaults.
func LoadManifest(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultManifest(), nil
	}
	m := &Manifest{}
	if err := decodeFile(path, m); err != nil {
		return nil, err
	}
	m.applyRuntimeDefaults()
	return m, nil
}

func (m *Manifest) applyRuntimeDefaults() {
	if strings.TrimSpace(m.Output) == "" {
		m.Output = DefaultBundleOutput
	}
	if len(m.Files) == 0 {
		m.Files = append([]string(nil), DefaultScripts...)
	}
}
