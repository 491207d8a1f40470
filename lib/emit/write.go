// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports a failure to install a generated file. The
// previous file at Path, if any, is unchanged.
type WriteError struct {
	// Op is the step that failed: "mkdir", "create", "write", "sync",
	// "close", "chmod", or "rename". Callers that compare against the
	// installed file use "read".
	Op   string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFile atomically replaces path with data. The data is written to
// a temporary file in the same directory, fsynced, and renamed into
// place, so readers see either the old content or the new content and
// never a partial write. Missing parent directories are created. The
// installed file has mode 0644.
func WriteFile(path string, data []byte) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return &WriteError{Op: "mkdir", Path: path, Err: err}
	}

	temporary, err := os.CreateTemp(directory, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Op: "create", Path: path, Err: err}
	}
	temporaryPath := temporary.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(temporaryPath)
		}
	}()

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		return &WriteError{Op: "write", Path: path, Err: err}
	}
	if err := temporary.Sync(); err != nil {
		temporary.Close()
		return &WriteError{Op: "sync", Path: path, Err: err}
	}
	if err := temporary.Close(); err != nil {
		return &WriteError{Op: "close", Path: path, Err: err}
	}
	// CreateTemp uses 0600; generated sources are meant to be shared.
	if err := os.Chmod(temporaryPath, 0o644); err != nil {
		return &WriteError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		return &WriteError{Op: "rename", Path: path, Err: err}
	}
	success = true

	// Make the rename itself durable.
	if parent, err := os.Open(directory); err == nil {
		parent.Sync()
		parent.Close()
	}
	return nil
}
