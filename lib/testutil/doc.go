// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for protogen packages.
//
// [Frame] and [FramedCapture] build raw captures the way the dump mod
// and the game produce them: a length-framed payload buried in engine
// log lines. [CatalogPayload] builds a payload object from a list of
// keys. The declared length is always computed from the payload bytes,
// so tests never hand-count lengths.
//
// [ProjectRoot] lays out a temporary project directory with the
// directories protogen reads and writes by default. [ReadFile] and
// [WriteFile] wrap os calls for test setup.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no protogen-internal dependencies.
package testutil
