// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package generate runs the protogen pipeline once: take a capture
// from a [capture.Provider], locate the framed payload ([scan]),
// decode it ([payload]), extract identifiers ([catalog]), render the
// source file ([emit]), and install it together with the optional
// [manifest].
//
// [Build] is the pure part (capture bytes to rendered artifact) and
// does no I/O. [Run] adds the provider call, the optional capture
// save, and the writes. With Options.Check set, Run writes nothing and
// returns an error wrapping [ErrStale] when the file on disk differs
// from what would be generated.
//
// Every stage returns the first error it meets, unchanged in type, so
// callers can classify it with errors.Is and errors.As.
package generate
