// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/catalog"
	"github.com/bureau-foundation/protogen/lib/config"
	"github.com/bureau-foundation/protogen/lib/emit"
	"github.com/bureau-foundation/protogen/lib/generate"
)

// pipelineFlags are the flags shared by the commands that run the
// pipeline. Only flags the user actually set override the config file.
type pipelineFlags struct {
	configPath  string
	root        string
	output      string
	manifest    string
	saveCapture string
	check       bool

	modDirectory   string
	scenario       string
	timeout        time.Duration
	requireSuccess bool

	marker      string
	lenient     bool
	selectPath  []string
	casing      string
	maxAttempts int

	language  string
	namespace string
	enum      string

	verbose bool

	flagSet *pflag.FlagSet
}

// flagGroups selects which flags a command exposes.
type flagGroups struct {
	outputs bool
	engine  bool
}

func (p *pipelineFlags) newFlagSet(name string, groups flagGroups) *pflag.FlagSet {
	defaults := config.Default()
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)

	flagSet.StringVar(&p.configPath, "config", "", "configuration file (default: $"+config.EnvConfig+", else built-in defaults)")
	flagSet.StringVar(&p.root, "root", defaults.Paths.Root, "project root that relative paths are resolved against")

	if groups.outputs {
		flagSet.StringVarP(&p.output, "output", "o", defaults.Paths.Output, "generated file, relative to --root")
		flagSet.StringVar(&p.manifest, "manifest", "", "also write a CBOR manifest of key, identifier, and ordinal")
		flagSet.StringVar(&p.saveCapture, "save-capture", "", "save the raw capture for replay (.zst and .lz4 are compressed)")
		flagSet.BoolVar(&p.check, "check", false, "verify the generated files are current instead of writing them")
	}
	if groups.engine {
		flagSet.StringVar(&p.modDirectory, "mod-directory", defaults.Paths.ModDirectory, "directory holding the dataScraper mod, relative to --root")
		flagSet.StringVar(&p.scenario, "scenario", defaults.Engine.Scenario, "scenario the game loads on startup")
		flagSet.DurationVar(&p.timeout, "timeout", defaults.EngineTimeout(), "maximum time the game may run (0 for no limit)")
		flagSet.BoolVar(&p.requireSuccess, "require-success", false, "fail when the game exits non-zero even if it printed the catalog")
	}

	flagSet.StringVar(&p.marker, "marker", defaults.Payload.Marker, "marker preceding the payload length")
	flagSet.BoolVar(&p.lenient, "lenient", false, "accept comments and trailing commas in the payload")
	flagSet.StringSliceVar(&p.selectPath, "select", nil, "comma-separated key path from the payload root to the catalog")
	flagSet.StringVar(&p.casing, "casing", defaults.Catalog.Casing, "identifier casing: pascal or none")
	flagSet.IntVar(&p.maxAttempts, "max-attempts", defaults.Catalog.MaxAttempts, "suffixes tried per colliding identifier")
	flagSet.StringVar(&p.language, "language", defaults.Target.Language, "generated language: cpp or go")
	flagSet.StringVar(&p.namespace, "namespace", defaults.Target.Namespace, "C++ namespace or Go package name")
	flagSet.StringVar(&p.enum, "enum", defaults.Target.Enum, "name of the generated enum type")
	flagSet.BoolVarP(&p.verbose, "verbose", "v", false, "log every pipeline stage")

	p.flagSet = flagSet
	return flagSet
}

func (p *pipelineFlags) changed(name string) bool {
	return p.flagSet != nil && p.flagSet.Lookup(name) != nil && p.flagSet.Changed(name)
}

// resolve loads the configuration, applies the flags that were set,
// and validates the result. Every problem here is a usage error.
func (p *pipelineFlags) resolve() (*config.Config, error) {
	cfg, err := config.ResolveWith(p.configPath, p.override)
	if err != nil {
		return nil, cli.Usagef("loading configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, cli.Usagef("invalid configuration:\n%v", err)
	}
	return cfg, nil
}

// override copies the flags that were set onto cfg.
func (p *pipelineFlags) override(cfg *config.Config) {
	if p.changed("root") {
		cfg.Paths.Root = p.root
	}
	if p.changed("output") {
		cfg.Paths.Output = p.output
	}
	if p.changed("manifest") {
		cfg.Paths.Manifest = p.manifest
	}
	if p.changed("save-capture") {
		cfg.Paths.SaveCapture = p.saveCapture
	}
	if p.changed("mod-directory") {
		cfg.Paths.ModDirectory = p.modDirectory
	}
	if p.changed("scenario") {
		cfg.Engine.Scenario = p.scenario
	}
	if p.changed("timeout") {
		cfg.Engine.Timeout = p.timeout.String()
	}
	if p.changed("require-success") {
		cfg.Engine.RequireSuccess = p.requireSuccess
	}
	if p.changed("marker") {
		cfg.Payload.Marker = p.marker
	}
	if p.changed("lenient") {
		cfg.Payload.Lenient = p.lenient
	}
	if p.changed("select") {
		cfg.Catalog.Select = p.selectPath
	}
	if p.changed("casing") {
		cfg.Catalog.Casing = p.casing
	}
	if p.changed("max-attempts") {
		cfg.Catalog.MaxAttempts = p.maxAttempts
	}
	if p.changed("language") {
		cfg.Target.Language = p.language
	}
	if p.changed("namespace") {
		cfg.Target.Namespace = p.namespace
	}
	if p.changed("enum") {
		cfg.Target.Enum = p.enum
	}
}

// options converts a resolved configuration into pipeline options.
func (p *pipelineFlags) options(cfg *config.Config) (generate.Options, error) {
	casing, err := catalog.ParseCasing(cfg.Catalog.Casing)
	if err != nil {
		return generate.Options{}, cli.Usagef("%v", err)
	}
	language, err := emit.ParseLanguage(cfg.Target.Language)
	if err != nil {
		return generate.Options{}, cli.Usagef("%v", err)
	}
	target := emit.Target{
		Language:  language,
		Namespace: cfg.Target.Namespace,
		Enum:      cfg.Target.Enum,
		Generator: cfg.Target.Generator,
		Purpose:   cfg.Target.Purpose,
	}
	if err := target.Validate(); err != nil {
		return generate.Options{}, cli.Usagef("invalid target:\n%v", err)
	}

	options := generate.Options{
		Output:      cfg.OutputPath(),
		Manifest:    cfg.ManifestPath(),
		SaveCapture: cfg.SaveCapturePath(),
		Marker:      cfg.Payload.Marker,
		Target:      target,
		Check:       p.check,
	}
	options.Decode.Lenient = cfg.Payload.Lenient
	options.Catalog = catalog.Options{
		Select:      cfg.Catalog.Select,
		Casing:      casing,
		MaxAttempts: cfg.Catalog.MaxAttempts,
	}
	return options, nil
}

// existingFile validates the single positional argument of a command.
func existingFile(args []string, what, usage string) (string, error) {
	if len(args) != 1 {
		return "", cli.Usagef("expected exactly one %s argument\n\nUsage: %s", what, usage)
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return "", cli.Usagef("%s %q: %v", what, args[0], err)
	}
	if info.IsDir() {
		return "", cli.Usagef("%s %q is a directory", what, args[0])
	}
	path, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", args[0], err)
	}
	return path, nil
}
