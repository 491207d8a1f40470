// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the protogen command tree.
//
// generate launches the game with the dump mod and writes the header;
// replay does the same from a capture saved with --save-capture. keys
// and preview inspect a saved capture without writing anything.
//
// [ExitCode] maps a returned error to the process exit status, one
// code per failure kind, so build scripts can tell a missing marker
// from a broken filesystem.
package commands
