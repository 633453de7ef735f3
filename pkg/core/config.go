// pkg/core/config.go
package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config holds getargv-config settings
type Config struct {
	Library     string          `yaml:"library" json:"library"`
	RegistryDir string          `yaml:"registry_dir" json:"registry_dir"`
	FactsFile   string          `yaml:"facts_file" json:"facts_file"`
	CgoFile     string          `yaml:"cgo_file" json:"cgo_file"`
	CgoPackage  string          `yaml:"cgo_package" json:"cgo_package"`
	DocsInclude string          `yaml:"docs_include" json:"docs_include"`
	Generator   GeneratorConfig `yaml:"generator" json:"generator"`
	Debug       bool            `yaml:"debug" json:"debug"`
}

// GeneratorConfig configures the external binding generator
type GeneratorConfig struct {
	Command  string   `yaml:"command" json:"command"`
	Args     []string `yaml:"args" json:"args"`
	Manifest string   `yaml:"manifest" json:"manifest"`
	Output   string   `yaml:"output" json:"output"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Library == "" {
		c.Library = "getargv"
	}
	if c.FactsFile == "" {
		c.FactsFile = "getargv_facts.yaml"
	}
	if c.CgoFile == "" {
		c.CgoFile = "zz_getargv_cgo.go"
	}
	if c.CgoPackage == "" {
		c.CgoPackage = "getargv"
	}
	if c.DocsInclude == "" {
		c.DocsInclude = "docs_shim"
	}
	if c.Generator.Command == "" {
		c.Generator.Command = "c-for-go"
	}
	if c.Generator.Manifest == "" {
		c.Generator.Manifest = "getargv.yml"
	}
	if c.Generator.Output == "" {
		c.Generator.Output = "."
	}
}

// DefaultConfigPath returns $HOME/.config/getargv/config.yaml, or "" if
// the home directory is unknown
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "getargv", "config.yaml")
}

// LoadConfig loads configuration from file. YAML is assumed unless the
// extension is .json or .jsonc. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}
