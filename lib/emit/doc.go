// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package emit renders catalog entries into a generated source file
// and installs it atomically.
//
// [Render] is a pure function of the entries and the [Target]: the same
// inputs always produce byte-identical output, with explicit ordinals
// on every enumerant so that code persisting ordinals is not silently
// renumbered by an implicit counter. Two target languages are
// supported: C++ (an unscoped enum inside a namespace, the default) and
// Go (a named int type with a const block).
//
// [WriteFile] writes to a temporary file in the destination directory,
// fsyncs it, and renames it over the destination. A failed or
// interrupted run never leaves a partial artifact in place and never
// disturbs the previous one. Failures are reported as [*WriteError].
package emit
