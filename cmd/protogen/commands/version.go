// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/version"
)

func versionCommand(stdout io.Writer) *cli.Command {
	var showDigest bool

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&showDigest, "digest", false, "also print the BLAKE3 digest of the running binary")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) != 0 {
				return cli.Usagef("version takes no arguments")
			}
			fmt.Fprintf(stdout, "protogen %s\n", version.Full())
			if showDigest {
				sum, path, err := version.SelfDigest()
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "  Binary: %s\n  BLAKE3: %s\n", path, sum)
			}
			return nil
		},
	}
}
