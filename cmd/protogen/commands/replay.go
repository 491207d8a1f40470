// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/capture"
	"github.com/bureau-foundation/protogen/lib/generate"
)

const replayUsage = "protogen replay [flags] <capture-file>"

func replayCommand() *cli.Command {
	var flags pipelineFlags

	return &cli.Command{
		Name:    "replay",
		Summary: "Generate the header from a saved capture",
		Description: `Run the same pipeline as generate, reading the capture from a file
written by --save-capture instead of launching the game. Plain, zstd,
and lz4 captures are recognized by their content.`,
		Usage: replayUsage,
		Examples: []cli.Example{
			{
				Description: "Check that the committed header matches a saved capture",
				Command:     "protogen replay --check build/capture.log.zst",
			},
		},
		Flags: func() *pflag.FlagSet {
			return flags.newFlagSet("replay", flagGroups{outputs: true})
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			path, err := existingFile(args, "capture file", replayUsage)
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

			logger = logger.With("command", "replay", "capture", path)
			_, err = generate.Run(ctx, capture.File{Path: path}, options, logger)
			return err
		},
	}
}
