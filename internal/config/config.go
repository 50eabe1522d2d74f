// Package config handles Vellum workspace configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/vellumtools/vellum/internal/atomicfile"
	"github.com/vellumtools/vellum/internal/model"
	"github.com/vellumtools/vellum/internal/outline/numbering"
)

// Config represents a workspace's configuration, stored at
// .vellum/config.toml inside the workspace root.
type Config struct {
	// Numbering controls the structural address style.
	Numbering NumberingConfig `toml:"numbering"`

	// Highlight controls highlight defaults and terminal colors.
	Highlight HighlightConfig `toml:"highlight"`
}

// NumberingConfig selects the outline numbering style.
type NumberingConfig struct {
	// Levels lists the per-depth counter formats, cycling when the outline
	// nests deeper. Valid values: decimal, lower-alpha, upper-alpha,
	// lower-roman, upper-roman.
	Levels []string `toml:"levels"`

	// Separator joins address components (default ".").
	Separator string `toml:"separator"`
}

// HighlightConfig holds highlight defaults and per-kind terminal colors.
type HighlightConfig struct {
	// Mode is the default highlight mode: all, selected, or none.
	Mode string `toml:"mode"`

	// Colors maps entity kinds to ANSI/hex colors for terminal rendering.
	Colors map[string]string `toml:"colors"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Numbering: NumberingConfig{
			Levels:    []string{"decimal", "lower-alpha", "lower-roman"},
			Separator: ".",
		},
		Highlight: HighlightConfig{
			Mode: "all",
			Colors: map[string]string{
				string(model.KindTerm):   "#A78BFA",
				string(model.KindDate):   "#7DC4E4",
				string(model.KindPerson): "#A6DA95",
				string(model.KindPlace):  "#EED49F",
			},
		},
	}
}

// Style builds the numbering style from the configured levels, falling back
// to the legal drafting default for missing or unknown values.
func (c *Config) Style() numbering.Style {
	if len(c.Numbering.Levels) == 0 {
		return numbering.Legal()
	}

	levels := make([]numbering.Format, 0, len(c.Numbering.Levels))
	for _, l := range c.Numbering.Levels {
		f := numbering.Format(l)
		if !f.Valid() {
			return numbering.Legal()
		}
		levels = append(levels, f)
	}

	sep := c.Numbering.Separator
	if sep == "" {
		sep = "."
	}
	return numbering.Style{Levels: levels, Separator: sep}
}

// KindColor returns the configured color for an entity kind, falling back
// to the defaults.
func (c *Config) KindColor(kind model.EntityKind) string {
	if color, ok := c.Highlight.Colors[string(kind)]; ok && color != "" {
		return color
	}
	return Default().Highlight.Colors[string(kind)]
}

// Load loads the configuration for a workspace, returning defaults if the
// file doesn't exist.
func Load(workspacePath string) (*Config, error) {
	path := PathIn(workspacePath)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path. Missing sections
// fall back to defaults.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Save writes the configuration to the workspace's config file.
func (c *Config) Save(workspacePath string) error {
	path := PathIn(workspacePath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := atomicfile.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// PathIn returns the config file path inside a workspace.
func PathIn(workspacePath string) string {
	return filepath.Join(workspacePath, ".vellum", "config.toml")
}
