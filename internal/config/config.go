// Package config provides YAML-based configuration loading for the
// generator defaults and the SSH server.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lightup/internal/game"
)

//go:embed defaults/lightup.yaml
var defaultYAML []byte

// Config is the top-level configuration file.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Server    ServerConfig    `yaml:"server"`
}

// GeneratorConfig sets the parameters used when no flags override them.
type GeneratorConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	BlackPercent int    `yaml:"black_percent"`
	Symmetry     string `yaml:"symmetry"` // none, mirror2, rot2, mirror4, rot4
	Hard         bool   `yaml:"hard"`
}

// ServerConfig sets the SSH server defaults.
type ServerConfig struct {
	Address        string `yaml:"address"`
	HostKeyPath    string `yaml:"host_key_path"`
	DBPath         string `yaml:"db_path"`
	IdleTimeoutMin int    `yaml:"idle_timeout_minutes"`
	// Preset is the index into the default preset menu used for new
	// sessions.
	Preset int `yaml:"preset"`
}

var symmetryNames = map[string]game.Symmetry{
	"none":    game.SymmNone,
	"mirror2": game.SymmMirror2,
	"rot2":    game.SymmRot2,
	"mirror4": game.SymmMirror4,
	"rot4":    game.SymmRot4,
}

// Params converts the generator section to engine parameters.
func (g GeneratorConfig) Params() (game.Params, error) {
	symm, ok := symmetryNames[g.Symmetry]
	if !ok {
		return game.Params{}, fmt.Errorf("config: unknown symmetry %q", g.Symmetry)
	}
	p := game.Params{
		Width:        g.Width,
		Height:       g.Height,
		BlackPercent: g.BlackPercent,
		Symm:         symm,
		Hard:         g.Hard,
	}
	if err := p.Validate(true); err != nil {
		return game.Params{}, fmt.Errorf("config: %w", err)
	}
	return p, nil
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		// The embedded file ships with the binary; failing to parse it is
		// a build defect.
		panic(fmt.Sprintf("config: embedded default invalid: %v", err))
	}
	return cfg
}

// Load reads the configuration.
// Search order: customPath -> ~/.lightup/config.yaml -> ./configs/lightup.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/lightup.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightup", filename)
}
