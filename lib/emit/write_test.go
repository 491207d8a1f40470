// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "generated", "factorioData.hpp")

	if err := WriteFile(path, []byte("first\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "first\n" {
		t.Errorf("content = %q, want %q", got, "first\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Errorf("mode = %v, want 0644", info.Mode().Perm())
	}
}

func TestWriteFileReplaces(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "factorioData.hpp")

	if err := WriteFile(path, []byte("a much longer first version\n")); err != nil {
		t.Fatalf("WriteFile first: %v", err)
	}
	if err := WriteFile(path, []byte("short\n")); err != nil {
		t.Fatalf("WriteFile second: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "short\n" {
		t.Errorf("content = %q, want %q (no merge with previous)", got, "short\n")
	}
	assertOnlyEntries(t, directory, "factorioData.hpp")
}

func TestWriteFileFailureLeavesPrevious(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "factorioData.hpp")

	// A non-empty directory at the target path makes the final rename
	// fail after the temporary file has been written.
	if err := os.MkdirAll(filepath.Join(path, "occupied"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	err := WriteFile(path, []byte("new content\n"))

	var writeError *WriteError
	if !errors.As(err, &writeError) {
		t.Fatalf("error = %v, want *WriteError", err)
	}
	if writeError.Op != "rename" {
		t.Errorf("Op = %q, want rename", writeError.Op)
	}
	if writeError.Path != path {
		t.Errorf("Path = %q, want %q", writeError.Path, path)
	}
	if _, err := os.Stat(filepath.Join(path, "occupied")); err != nil {
		t.Errorf("previous target disturbed: %v", err)
	}
	assertOnlyEntries(t, directory, "factorioData.hpp")
}

func TestWriteFileParentIsFile(t *testing.T) {
	directory := t.TempDir()
	blocker := filepath.Join(directory, "src")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatalf("WriteFile blocker: %v", err)
	}

	err := WriteFile(filepath.Join(blocker, "factorioData.hpp"), []byte("x"))

	var writeError *WriteError
	if !errors.As(err, &writeError) {
		t.Fatalf("error = %v, want *WriteError", err)
	}
	if writeError.Op != "mkdir" {
		t.Errorf("Op = %q, want mkdir", writeError.Op)
	}
}

// assertOnlyEntries fails unless directory contains exactly the named
// entries (so no temporary files were left behind).
func assertOnlyEntries(t *testing.T, directory string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(directory)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != len(names) {
		var got []string
		for _, entry := range entries {
			got = append(got, entry.Name())
		}
		t.Fatalf("directory entries = %v, want %v", got, names)
	}
	for i, entry := range entries {
		if entry.Name() != names[i] {
			t.Errorf("entry %d = %q, want %q", i, entry.Name(), names[i])
		}
	}
}
