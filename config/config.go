// Package config holds the settings that drive diagram generation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/muhammadmuzzammil1998/jsonc"
	"gopkg.in/yaml.v3"
)

type ParamNames string

const (
	ParamNamesBeforeType ParamNames = "before-type"
	ParamNamesAfterType  ParamNames = "after-type"
	ParamNamesNone       ParamNames = "none"
)

func (p *ParamNames) UnmarshalText(text []byte) error {
	switch v := ParamNames(strings.ToLower(string(text))); v {
	case ParamNamesBeforeType, ParamNamesAfterType, ParamNamesNone:
		*p = v
		return nil
	}
	return fmt.Errorf("unknown param name placement %q (expected before-type, after-type or none)", text)
}

type TypeDisplay string

const (
	TypeDisplayFull   TypeDisplay = "full"
	TypeDisplaySimple TypeDisplay = "simple"
	TypeDisplayNone   TypeDisplay = "none"
)

func (t *TypeDisplay) UnmarshalText(text []byte) error {
	switch v := TypeDisplay(strings.ToLower(string(text))); v {
	case TypeDisplayFull, TypeDisplaySimple, TypeDisplayNone:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown type display %q (expected full, simple or none)", text)
}

type MethodConfig struct {
	ParamNames ParamNames  `yaml:"param_names" json:"param_names"`
	ParamTypes TypeDisplay `yaml:"param_types" json:"param_types"`
	ReturnType TypeDisplay `yaml:"return_type" json:"return_type"`
}

type OutputConfig struct {
	Directory string `yaml:"directory" json:"directory"`
	Extension string `yaml:"extension" json:"extension"`
}

type Config struct {
	ExcludedReferences               []string     `yaml:"excluded_references" json:"excluded_references"`
	IncludeAbstractSuperclassMethods bool         `yaml:"include_abstract_superclass_methods" json:"include_abstract_superclass_methods"`
	Methods                          MethodConfig `yaml:"methods" json:"methods"`
	// Include selects the types that get a diagram. Patterns are doublestar globs
	// matched against the qualified name with dots turned into slashes.
	Include     []string     `yaml:"include" json:"include"`
	Indentation int          `yaml:"indentation" json:"indentation"`
	Output      OutputConfig `yaml:"output" json:"output"`
}

func Default() *Config {
	return &Config{
		ExcludedReferences:               []string{"java.lang.Object", "java.lang.Enum"},
		IncludeAbstractSuperclassMethods: true,
		Methods: MethodConfig{
			ParamNames: ParamNamesBeforeType,
			ParamTypes: TypeDisplaySimple,
			ReturnType: TypeDisplaySimple,
		},
		Include:     []string{"**"},
		Indentation: 4,
		Output: OutputConfig{
			Directory: ".",
			Extension: ".puml",
		},
	}
}

// Load reads a YAML or JSON(C) file over the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		return nil, fmt.Errorf("unsupported config format: %s (expected .yaml, .yml, .json or .jsonc)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for _, pattern := range c.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	if c.Indentation < 0 {
		return fmt.Errorf("indentation must not be negative, got %d", c.Indentation)
	}
	if c.Output.Extension != "" && !strings.HasPrefix(c.Output.Extension, ".") {
		return fmt.Errorf("output extension %q must start with a dot", c.Output.Extension)
	}
	return nil
}

// Excluded returns the exclusion list as a set.
func (c *Config) Excluded() map[string]bool {
	excluded := make(map[string]bool, len(c.ExcludedReferences))
	for _, name := range c.ExcludedReferences {
		excluded[name] = true
	}
	return excluded
}

// Includes reports whether a diagram should be generated for the qualified name.
func (c *Config) Includes(qualifiedName string) bool {
	path := strings.ReplaceAll(qualifiedName, ".", "/")
	for _, pattern := range c.Include {
		if doublestar.MatchUnvalidated(pattern, path) {
			return true
		}
	}
	return false
}

func (c *Config) Indent() string {
	return strings.Repeat(" ", c.Indentation)
}
