// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name:   "protogen",
		Output: &bytes.Buffer{},
		Subcommands: []*Command{
			{
				Name: "generate",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "generate"
					return nil
				},
			},
			{
				Name: "replay",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					called = "replay"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"replay"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "replay" {
		t.Errorf("dispatched to %q, want %q", called, "replay")
	}
}

func TestCommand_Execute_FlagsAndArgs(t *testing.T) {
	var output string
	var receivedArgs []string

	command := &Command{
		Name:   "replay",
		Output: &bytes.Buffer{},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("replay", pflag.ContinueOnError)
			flagSet.StringVar(&output, "output", "src/factorioData.hpp", "generated file")
			return flagSet
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			receivedArgs = args
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"capture.log", "--output", "out.hpp"})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if output != "out.hpp" {
		t.Errorf("output = %q, want out.hpp", output)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "capture.log" {
		t.Errorf("args = %v, want [capture.log]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommand(t *testing.T) {
	root := &Command{
		Name:   "protogen",
		Output: &bytes.Buffer{},
		Subcommands: []*Command{
			{Name: "generate", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
			{Name: "preview", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"genrate"})
	var usageError *UsageError
	if !errors.As(err, &usageError) {
		t.Fatalf("error = %v, want *UsageError", err)
	}
	if !strings.Contains(err.Error(), `did you mean "generate"?`) {
		t.Errorf("error %q lacks a suggestion", err)
	}

	err = root.Execute(context.Background(), []string{"zzzzzzzzzz"})
	if !errors.As(err, &usageError) {
		t.Fatalf("error = %v, want *UsageError", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("error %q suggests something for a distant name", err)
	}
}

func TestCommand_Execute_UnknownFlag(t *testing.T) {
	command := &Command{
		Name:   "generate",
		Output: &bytes.Buffer{},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flagSet.String("namespace", "", "")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error {
			t.Error("Run called despite a flag error")
			return nil
		},
	}

	err := command.Execute(context.Background(), []string{"--namespce", "X"})
	var usageError *UsageError
	if !errors.As(err, &usageError) {
		t.Fatalf("error = %v, want *UsageError", err)
	}
	if !strings.Contains(err.Error(), "did you mean --namespace?") {
		t.Errorf("error %q lacks a suggestion", err)
	}
}

func TestCommand_Execute_Help(t *testing.T) {
	var help bytes.Buffer
	root := &Command{
		Name:        "protogen",
		Description: "Generate prototype enums from a Factorio data dump.",
		Output:      &help,
		Subcommands: []*Command{
			{Name: "generate", Summary: "Run the game and generate", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	if err := root.Execute(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("Execute(--help) error: %v", err)
	}
	for _, want := range []string{"Generate prototype enums", "Usage:\n  protogen <command> [flags]", "generate", "Run the game and generate"} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, help.String())
		}
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "protogen",
		Output:      &bytes.Buffer{},
		Subcommands: []*Command{{Name: "generate", Run: func(context.Context, []string, *slog.Logger) error { return nil }}},
	}
	err := root.Execute(context.Background(), nil)
	var usageError *UsageError
	if !errors.As(err, &usageError) {
		t.Fatalf("error = %v, want *UsageError", err)
	}
}

func TestCommand_Execute_Verbose(t *testing.T) {
	var logs bytes.Buffer
	var verbose bool
	command := &Command{
		Name:   "keys",
		Output: &logs,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("keys", pflag.ContinueOnError)
			flagSet.BoolVarP(&verbose, "verbose", "v", false, "")
			return flagSet
		},
		Run: func(_ context.Context, _ []string, logger *slog.Logger) error {
			logger.Debug("debug record")
			return nil
		},
	}

	if err := command.Execute(context.Background(), nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if strings.Contains(logs.String(), "debug record") {
		t.Errorf("debug record logged without --verbose: %s", logs.String())
	}

	if err := command.Execute(context.Background(), []string{"-v"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(logs.String(), `"msg":"debug record"`) {
		t.Errorf("debug record missing with --verbose (want JSON for non-terminal output): %s", logs.String())
	}
}

func TestCommand_OutputInherited(t *testing.T) {
	var output bytes.Buffer
	root := &Command{
		Name:   "protogen",
		Output: &output,
		Subcommands: []*Command{
			{Name: "keys", Summary: "List catalog keys", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}
	if err := root.Execute(context.Background(), []string{"keys", "--help"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(output.String(), "protogen keys") {
		t.Errorf("subcommand help not written to the parent's output: %q", output.String())
	}
}
