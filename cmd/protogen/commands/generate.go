// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/capture"
	"github.com/bureau-foundation/protogen/lib/generate"
)

const generateUsage = "protogen generate [flags] <factorio-binary>"

func generateCommand() *cli.Command {
	var flags pipelineFlags

	return &cli.Command{
		Name:    "generate",
		Summary: "Run Factorio with the dump mod and write the generated header",
		Description: `Launch the Factorio binary headless with the dataScraper mod and the
startup scenario, capture everything it prints, and write the
prototype enum to --output (src/factorioData.hpp under --root by
default).

The game is expected to exit with an error once the mod has printed
the catalog; that exit status is ignored as long as output was
captured. Use --require-success to make it fatal.

With --check nothing is written: the command exits with status 9 when
the generated files would change.`,
		Usage: generateUsage,
		Examples: []cli.Example{
			{
				Description: "Regenerate the header from the repository root",
				Command:     "protogen generate ~/factorio/bin/x64/factorio",
			},
			{
				Description: "Keep the raw capture to replay later without the game",
				Command:     "protogen generate --save-capture build/capture.log.zst ~/factorio/bin/x64/factorio",
			},
		},
		Flags: func() *pflag.FlagSet {
			return flags.newFlagSet("generate", flagGroups{outputs: true, engine: true})
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			binary, err := existingFile(args, "factorio binary", generateUsage)
			if err != nil {
				return err
			}
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			options, err := flags.options(cfg)
			if err != nil {
				return err
			}

			modDirectory, err := filepath.Abs(cfg.ModDirectoryPath())
			if err != nil {
				return fmt.Errorf("resolving mod directory: %w", err)
			}
			logger = logger.With("command", "generate", "binary", binary)
			provider := &capture.Process{
				Binary:         binary,
				Args:           capture.FactorioArgs(modDirectory, cfg.Engine.Scenario),
				Timeout:        cfg.EngineTimeout(),
				RequireSuccess: cfg.Engine.RequireSuccess,
				Logger:         logger,
			}
			logger.Debug("launching game", "mod_directory", modDirectory, "scenario", cfg.Engine.Scenario)

			_, err = generate.Run(ctx, provider, options, logger)
			return err
		},
	}
}
