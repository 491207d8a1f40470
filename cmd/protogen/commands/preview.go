// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/capture"
	"github.com/bureau-foundation/protogen/lib/emit"
	"github.com/bureau-foundation/protogen/lib/generate"
)

const previewUsage = "protogen preview [flags] <capture-file>"

func previewCommand(stdout io.Writer) *cli.Command {
	var flags pipelineFlags
	var color string

	return &cli.Command{
		Name:    "preview",
		Summary: "Print the file a saved capture would generate",
		Description: `Render the generated file for a saved capture and print it to stdout
instead of writing it. Output is syntax-highlighted when stdout is a
terminal; --color always or never overrides the detection.`,
		Usage: previewUsage,
		Examples: []cli.Example{
			{
				Description: "See the Go rendering of a capture",
				Command:     "protogen preview --language go --namespace prototypes --enum Entity capture.log",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := flags.newFlagSet("preview", flagGroups{})
			flagSet.StringVar(&color, "color", "auto", "highlight output: auto, always, or never")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			path, err := existingFile(args, "capture file", previewUsage)
			if err != nil {
				return err
			}
			var highlight bool
			switch color {
			case "auto":
				highlight = cli.IsTerminal(stdout)
			case "always":
				highlight = true
			case "never":
				highlight = false
			default:
				return cli.Usagef("--color must be auto, always, or never (got %q)", color)
			}

			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			options, err := flags.options(cfg)
			if err != nil {
				return err
			}

			raw, err := capture.File{Path: path}.Capture(ctx)
			if err != nil {
				return err
			}
			result, err := generate.Build(raw, options, logger)
			if err != nil {
				return err
			}
			return writePreview(stdout, result.Artifact, options.Target.Language, highlight)
		},
	}
}

func writePreview(w io.Writer, artifact []byte, language emit.Language, highlight bool) error {
	output := artifact
	if highlight {
		lexer := "cpp"
		if language == emit.LanguageGo {
			lexer = "go"
		}
		// Highlight into a buffer so a failure part way through falls
		// back to the plain text without mixing the two.
		var highlighted bytes.Buffer
		if err := quick.Highlight(&highlighted, string(artifact), lexer, "terminal256", "monokai"); err == nil {
			output = highlighted.Bytes()
		}
	}
	if _, err := w.Write(output); err != nil {
		return fmt.Errorf("writing preview: %w", err)
	}
	return nil
}
