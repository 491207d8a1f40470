// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest provides BLAKE3-256 content digests for capture
// payloads and generated files.
//
// Digests identify a run's inputs and outputs in logs and in the
// catalog manifest, and let check mode compare a freshly rendered
// artifact with the one on disk:
//
//   - [Sum] digests a byte slice
//   - [SumFile] streams a file through the hash with constant memory
//   - [Digest.String] and [Parse] convert to and from lowercase hex
//
// This package has no dependencies on other protogen packages.
package digest
