// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the protogen
// binary.
//
// A [Command] is a node in a tree: either a group dispatching to
// Subcommands by name, or a leaf with a Run function. Flags are
// declared per command with [github.com/spf13/pflag] and parsed by
// [Command.Execute] before Run is called. Unknown commands and flags
// produce a [*UsageError] carrying a Levenshtein-distance suggestion
// ("did you mean ...?").
//
// Every Run receives a *slog.Logger from [NewCommandLogger]. When the
// command declares a boolean --verbose flag and it is set, the logger
// emits debug records.
package cli
