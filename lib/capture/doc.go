// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package capture produces the raw capture that the rest of protogen
// searches for the catalog payload.
//
// A [Provider] returns one complete byte buffer or fails; the pipeline
// never sees partial output. Three providers exist:
//
//   - [Process] runs the game binary (normally with [FactorioArgs]) and
//     captures its stdout and stderr interleaved into one buffer, in
//     the order the process wrote them.
//   - [File] reads a capture saved earlier with [Save]. Captures may be
//     stored plain, zstd-compressed, or lz4-framed; the format is
//     detected from the leading magic bytes, not the file name.
//   - [Static] serves an in-memory buffer, for tests and tools that
//     already hold the bytes.
//
// Every provider failure is a [*LaunchError].
package capture
