// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"context"
	"fmt"
)

// Provider yields one raw capture per call.
type Provider interface {
	Capture(ctx context.Context) ([]byte, error)

	// Describe returns a short human-readable name for the source,
	// used in log lines.
	Describe() string
}

// LaunchError reports that a provider failed to produce a capture.
type LaunchError struct {
	// Source is the provider's Describe() value.
	Source string

	// ExitCode is the process exit status, or -1 when the process did
	// not run to completion (or the provider is not a process).
	ExitCode int

	// OutputTail holds the last bytes the process wrote, for
	// diagnostics.
	OutputTail string

	Err error
}

func (e *LaunchError) Error() string {
	message := fmt.Sprintf("capturing from %s: %v", e.Source, e.Err)
	if e.OutputTail != "" {
		message += "\n--- last output ---\n" + e.OutputTail
	}
	return message
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Static is a provider that returns a fixed buffer.
type Static []byte

// Capture returns the buffer.
func (s Static) Capture(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LaunchError{Source: s.Describe(), ExitCode: -1, Err: err}
	}
	return s, nil
}

// Describe implements [Provider].
func (s Static) Describe() string {
	return fmt.Sprintf("in-memory capture (%d bytes)", len(s))
}
