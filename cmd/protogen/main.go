// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// protogen generates a prototype enum for the ComputerPlaysFactorio bot
// from the catalog that the dataScraper mod prints while Factorio loads.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/protogen/cmd/protogen/commands"
	"github.com/bureau-foundation/protogen/lib/process"
)

func main() {
	if err := run(); err != nil {
		process.Exit(err, commands.ExitCode(err))
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return commands.Root(os.Stdout, os.Stderr).Execute(ctx, os.Args[1:])
}
