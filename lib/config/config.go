// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable read by [Load].
const EnvConfig = "PROTOGEN_CONFIG"

// Config is the master configuration for protogen.
type Config struct {
	// Paths configures where inputs and outputs live.
	Paths PathsConfig `yaml:"paths"`

	// Engine configures how the game binary is launched.
	Engine EngineConfig `yaml:"engine"`

	// Payload configures locating and decoding the framed payload.
	Payload PayloadConfig `yaml:"payload"`

	// Catalog configures key selection and identifier sanitization.
	Catalog CatalogConfig `yaml:"catalog"`

	// Target configures the generated file.
	Target TargetConfig `yaml:"target"`
}

// PathsConfig configures directory and file locations. Relative paths
// other than Root are resolved against Root.
type PathsConfig struct {
	// Root is the project root. Default: the working directory.
	Root string `yaml:"root"`

	// Output is the generated file.
	// Default: src/factorioData.hpp
	Output string `yaml:"output"`

	// Manifest is the CBOR sidecar. Empty disables it.
	Manifest string `yaml:"manifest"`

	// ModDirectory holds the data-dumping mod passed to the game.
	// Default: data/dataScraper
	ModDirectory string `yaml:"mod_directory"`

	// SaveCapture, when set, receives a copy of every raw capture.
	SaveCapture string `yaml:"save_capture"`
}

// EngineConfig configures the external game process.
type EngineConfig struct {
	// Scenario is the scenario the game loads on startup.
	// Default: base/freeplay
	Scenario string `yaml:"scenario"`

	// Timeout bounds a single run, as a Go duration string. Empty or
	// "0" means no limit.
	// Default: 5m
	Timeout string `yaml:"timeout"`

	// RequireSuccess makes a non-zero exit status fatal even when the
	// process produced output.
	RequireSuccess bool `yaml:"require_success"`
}

// PayloadConfig configures the scanner and decoder.
type PayloadConfig struct {
	// Marker precedes the decimal length field.
	// Default: DATA
	Marker string `yaml:"marker"`

	// Lenient accepts comments and trailing commas in the payload.
	Lenient bool `yaml:"lenient"`
}

// CatalogConfig configures the extractor.
type CatalogConfig struct {
	// Select is the key path from the payload root to the catalog
	// object. Empty uses the root.
	Select []string `yaml:"select"`

	// Casing is "pascal" or "none".
	// Default: pascal
	Casing string `yaml:"casing"`

	// MaxAttempts bounds the suffix search for one colliding identifier.
	// Default: 1000
	MaxAttempts int `yaml:"max_attempts"`
}

// TargetConfig configures the code emitter.
type TargetConfig struct {
	// Language is "cpp" or "go".
	// Default: cpp
	Language string `yaml:"language"`

	// Namespace is the C++ namespace or Go package.
	// Default: ComputerPlaysFactorio
	Namespace string `yaml:"namespace"`

	// Enum is the enumerated type name.
	// Default: FactorioEntity
	Enum string `yaml:"enum"`

	// Generator appears in the "Code generated by" line.
	// Default: protogen
	Generator string `yaml:"generator"`

	// Purpose is the second header comment line. May be empty.
	Purpose string `yaml:"purpose"`
}

// Default returns the default configuration. It matches the layout of
// the ComputerPlaysFactorio repository, so running protogen from that
// repository's root needs no file at all.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Root:         ".",
			Output:       "src/factorioData.hpp",
			ModDirectory: "data/dataScraper",
		},
		Engine: EngineConfig{
			Scenario: "base/freeplay",
			Timeout:  "5m",
		},
		Payload: PayloadConfig{
			Marker: "DATA",
		},
		Catalog: CatalogConfig{
			Casing:      "pascal",
			MaxAttempts: 1000,
		},
		Target: TargetConfig{
			Language:  "cpp",
			Namespace: "ComputerPlaysFactorio",
			Enum:      "FactorioEntity",
			Generator: "protogen",
			Purpose:   "It contains the prototype names from the Factorio data.raw table.",
		},
	}
}

// Load loads configuration from the file named by PROTOGEN_CONFIG.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvConfig)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your protogen.yaml, or use --config", EnvConfig)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from path on top of [Default]. Unknown
// keys are rejected so that a misspelled option is not silently
// ignored.
func LoadFile(path string) (*Config, error) {
	return loadFile(path, nil)
}

func loadFile(path string, override func(*Config)) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if override != nil {
		override(cfg)
	}
	cfg.expandVariables()
	return cfg, nil
}

// Resolve picks the configuration for a command invocation: the
// explicit path if one was given, else the file named by
// PROTOGEN_CONFIG, else [Default] with variables expanded.
func Resolve(explicitPath string) (*Config, error) {
	return ResolveWith(explicitPath, nil)
}

// ResolveWith is [Resolve] with override applied to the decoded
// configuration before variables are expanded, so ${PROTOGEN_ROOT}
// refers to the overridden root.
func ResolveWith(explicitPath string, override func(*Config)) (*Config, error) {
	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}
	if explicitPath != "" {
		return loadFile(explicitPath, override)
	}
	cfg := Default()
	if override != nil {
		override(cfg)
	}
	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"PROTOGEN_ROOT": c.Paths.Root,
		"HOME":          os.Getenv("HOME"),
	}

	c.Paths.Root = expandVars(c.Paths.Root, vars)
	vars["PROTOGEN_ROOT"] = c.Paths.Root // Update for dependent paths.

	c.Paths.Output = expandVars(c.Paths.Output, vars)
	c.Paths.Manifest = expandVars(c.Paths.Manifest, vars)
	c.Paths.ModDirectory = expandVars(c.Paths.ModDirectory, vars)
	c.Paths.SaveCapture = expandVars(c.Paths.SaveCapture, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns.
func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// resolve joins a relative path onto Paths.Root. Empty stays empty.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Paths.Root, path)
}

// OutputPath returns the generated file's location.
func (c *Config) OutputPath() string {
	return c.resolve(c.Paths.Output)
}

// ManifestPath returns the sidecar location, or "" when disabled.
func (c *Config) ManifestPath() string {
	return c.resolve(c.Paths.Manifest)
}

// ModDirectoryPath returns the mod directory passed to the game.
func (c *Config) ModDirectoryPath() string {
	return c.resolve(c.Paths.ModDirectory)
}

// SaveCapturePath returns where raw captures are copied, or "".
func (c *Config) SaveCapturePath() string {
	return c.resolve(c.Paths.SaveCapture)
}

// EngineTimeout parses Engine.Timeout. Validate reports bad values.
func (c *Config) EngineTimeout() time.Duration {
	if c.Engine.Timeout == "" {
		return 0
	}
	timeout, err := time.ParseDuration(c.Engine.Timeout)
	if err != nil {
		return 0
	}
	return timeout
}

// Validate checks the configuration for errors. Checks that need the
// emitter or extractor (identifier grammar, keywords) are left to
// those packages.
func (c *Config) Validate() error {
	var errs []error

	if c.Paths.Root == "" {
		errs = append(errs, fmt.Errorf("paths.root is required"))
	}
	if c.Paths.Output == "" {
		errs = append(errs, fmt.Errorf("paths.output is required"))
	}
	if c.Paths.ModDirectory == "" {
		errs = append(errs, fmt.Errorf("paths.mod_directory is required"))
	}
	if c.Engine.Scenario == "" {
		errs = append(errs, fmt.Errorf("engine.scenario is required"))
	}
	if c.Engine.Timeout != "" {
		timeout, err := time.ParseDuration(c.Engine.Timeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("engine.timeout: %w", err))
		} else if timeout < 0 {
			errs = append(errs, fmt.Errorf("engine.timeout must not be negative"))
		}
	}
	if c.Payload.Marker == "" {
		errs = append(errs, fmt.Errorf("payload.marker is required"))
	}

	casings := []string{"pascal", "none"}
	if !contains(casings, c.Catalog.Casing) {
		errs = append(errs, fmt.Errorf("catalog.casing must be one of: %v", casings))
	}
	if c.Catalog.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("catalog.max_attempts must be positive"))
	}
	for i, key := range c.Catalog.Select {
		if key == "" {
			errs = append(errs, fmt.Errorf("catalog.select[%d] is empty", i))
		}
	}

	languages := []string{"cpp", "go"}
	if !contains(languages, c.Target.Language) {
		errs = append(errs, fmt.Errorf("target.language must be one of: %v", languages))
	}
	if c.Target.Namespace == "" {
		errs = append(errs, fmt.Errorf("target.namespace is required"))
	}
	if c.Target.Enum == "" {
		errs = append(errs, fmt.Errorf("target.enum is required"))
	}
	if c.Target.Generator == "" {
		errs = append(errs, fmt.Errorf("target.generator is required"))
	}

	return errors.Join(errs...)
}

func contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}
