// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest writes and reads the catalog manifest: a CBOR
// sidecar recording, for every generated enumerant, the catalog key it
// came from and its ordinal, together with the digest of the payload
// it was generated from.
//
// The generated source file alone cannot be mapped back to catalog
// keys (sanitization is lossy). Tools that need the original names,
// such as a runtime lookup table or a diff of two game versions, read
// the manifest instead of re-parsing a capture.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"github.com/bureau-foundation/protogen/lib/catalog"
	"github.com/bureau-foundation/protogen/lib/codec"
	"github.com/bureau-foundation/protogen/lib/digest"
	"github.com/bureau-foundation/protogen/lib/emit"
)

// FormatVersion is incremented on incompatible changes to [Manifest].
const FormatVersion = 1

// Manifest describes one generated artifact.
type Manifest struct {
	Version   int    `cbor:"version"`
	Language  string `cbor:"language"`
	Namespace string `cbor:"namespace"`
	Enum      string `cbor:"enum"`

	// PayloadDigest is the BLAKE3 digest of the payload bytes.
	PayloadDigest digest.Digest `cbor:"payload_digest"`

	Entries []Entry `cbor:"entries"`
}

// Entry mirrors [catalog.Entry].
type Entry struct {
	Key        string `cbor:"key"`
	Identifier string `cbor:"identifier"`
	Ordinal    int    `cbor:"ordinal"`
}

// Build assembles a manifest for entries rendered with target.
func Build(entries []catalog.Entry, target emit.Target, payloadDigest digest.Digest) *Manifest {
	manifest := &Manifest{
		Version:       FormatVersion,
		Language:      string(target.Language),
		Namespace:     target.Namespace,
		Enum:          target.Enum,
		PayloadDigest: payloadDigest,
		Entries:       make([]Entry, len(entries)),
	}
	for i, entry := range entries {
		manifest.Entries[i] = Entry{Key: entry.Key, Identifier: entry.Identifier, Ordinal: entry.Ordinal}
	}
	return manifest
}

// Lookup returns the entry generated for key.
func (m *Manifest) Lookup(key string) (Entry, bool) {
	for _, entry := range m.Entries {
		if entry.Key == key {
			return entry, true
		}
	}
	return Entry{}, false
}

// Marshal encodes m deterministically.
func Marshal(m *Manifest) ([]byte, error) {
	data, err := codec.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return data, nil
}

// Write atomically replaces the manifest at path. Failures are
// [*emit.WriteError].
func Write(path string, m *Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	return emit.WriteFile(path, data)
}

// Read loads a manifest written by [Write]. When the file does not
// exist the returned error wraps os.ErrNotExist.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := codec.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, err)
	}
	if m.Version != FormatVersion {
		return nil, fmt.Errorf("manifest %s has format version %d, want %d", path, m.Version, FormatVersion)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	var errs []error
	for position, entry := range m.Entries {
		if entry.Ordinal != position {
			errs = append(errs, fmt.Errorf("entry %d has ordinal %d", position, entry.Ordinal))
		}
		if !catalog.IsIdentifier(entry.Identifier) {
			errs = append(errs, fmt.Errorf("entry %d has invalid identifier %q", position, entry.Identifier))
		}
	}
	return errors.Join(errs...)
}
