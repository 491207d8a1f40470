// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
)

// Root builds the complete protogen command tree. Command output goes
// to stdout; help text, logs, and diagnostics go to stderr.
func Root(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name: "protogen",
		Description: `protogen: generate a prototype enum from a Factorio data dump.

Runs Factorio headless with the dataScraper mod, finds the length-framed
catalog the mod prints among the engine's log lines, and writes one
enumerant per prototype name to a generated C++ header (or Go file).`,
		Output: stderr,
		Subcommands: []*cli.Command{
			generateCommand(),
			replayCommand(),
			keysCommand(stdout),
			previewCommand(stdout),
			versionCommand(stdout),
		},
	}
}
