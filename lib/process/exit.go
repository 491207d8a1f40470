// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for errors that occur before the command tree can classify
// them.
func Fatal(err error) {
	Exit(err, 1)
}

// Exit writes "error: err" to stderr and exits with code. A nil err
// exits with code without printing anything.
func Exit(err error, code int) {
	Report(os.Stderr, err)
	os.Exit(code)
}

// Report writes the single "error: ..." diagnostic line for err to w.
// Multi-line errors are written as-is after the prefix.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
