// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for protogen.
// These functions centralize the one legitimate raw I/O pattern that
// exists outside the structured logger: reporting the final error of
// main() on stderr and exiting with the code that classifies it.
//
// Library packages never print; they return errors and log through a
// *slog.Logger they were handed.
package process
