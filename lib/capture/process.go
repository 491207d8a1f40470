// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"time"
)

// outputTailBytes bounds how much process output a [LaunchError]
// carries.
const outputTailBytes = 2048

// FactorioArgs returns the arguments that make a Factorio binary load
// the dump mod from modDirectory and start scenario headless. The mod
// prints the framed catalog during data loading and then ends the
// process.
func FactorioArgs(modDirectory, scenario string) []string {
	return []string{
		"--mod-directory", modDirectory,
		"--start-server-load-scenario", scenario,
	}
}

// Process runs an external binary and captures its combined output.
type Process struct {
	// Binary is the path of the executable.
	Binary string

	// Args are passed to the binary.
	Args []string

	// Dir is the working directory. Empty uses the current one.
	Dir string

	// Env entries are appended to the current environment.
	Env []string

	// Timeout bounds the run. Zero means no limit beyond ctx.
	Timeout time.Duration

	// RequireSuccess makes a non-zero exit status fatal. The dump mod
	// aborts the game after printing the catalog, so by default a
	// non-zero exit with output is accepted and the scanner decides.
	RequireSuccess bool

	// Logger receives a debug line per run. Nil discards.
	Logger *slog.Logger
}

// Describe implements [Provider].
func (p *Process) Describe() string {
	return p.Binary
}

// Capture runs the binary to completion and returns everything it
// wrote to stdout and stderr.
func (p *Process) Capture(ctx context.Context) ([]byte, error) {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	var output bytes.Buffer
	command := exec.CommandContext(ctx, p.Binary, p.Args...)
	command.Dir = p.Dir
	if len(p.Env) > 0 {
		command.Env = append(os.Environ(), p.Env...)
	}
	// One writer for both streams keeps log lines and the payload in
	// the order the process produced them.
	command.Stdout = &output
	command.Stderr = &output

	started := time.Now()
	runErr := command.Run()
	elapsed := time.Since(started)

	exitCode := -1
	if command.ProcessState != nil {
		exitCode = command.ProcessState.ExitCode()
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Debug("external process finished",
		"binary", p.Binary,
		"exit_code", exitCode,
		"output_bytes", output.Len(),
		"elapsed", elapsed,
	)

	if runErr == nil {
		return output.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, p.launchError(exitCode, &output, fmt.Errorf("process did not finish: %w", ctxErr))
	}

	var exitErr *exec.ExitError
	if !errors.As(runErr, &exitErr) {
		// Not started at all: missing binary, permission denied, bad Dir.
		return nil, p.launchError(-1, &output, runErr)
	}

	if p.RequireSuccess || output.Len() == 0 {
		return nil, p.launchError(exitCode, &output, runErr)
	}

	logger.Warn("external process exited with non-zero status, using its output",
		"binary", p.Binary,
		"exit_code", exitCode,
	)
	return output.Bytes(), nil
}

func (p *Process) launchError(exitCode int, output *bytes.Buffer, err error) *LaunchError {
	tail := output.Bytes()
	if len(tail) > outputTailBytes {
		tail = tail[len(tail)-outputTailBytes:]
	}
	return &LaunchError{
		Source:     p.Describe(),
		ExitCode:   exitCode,
		OutputTail: string(bytes.TrimSpace(tail)),
		Err:        err,
	}
}
