// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bureau-foundation/protogen/lib/payload"
)

// DefaultMaxAttempts bounds the suffix search for one colliding
// identifier.
const DefaultMaxAttempts = 1000

// Entry is one catalog key and the identifier generated for it.
type Entry struct {
	// Key is the original catalog key.
	Key string

	// Identifier is the sanitized, unique identifier.
	Identifier string

	// Ordinal is the zero-based position of the key in the catalog.
	Ordinal int
}

// Options controls extraction.
type Options struct {
	// Select is a key path from the payload root to the catalog
	// object. Empty selects the root.
	Select []string

	// Casing is applied to sanitized keys. The zero value selects
	// [CasingPascal].
	Casing Casing

	// Reserved lists words that may not be used as identifiers
	// verbatim (the target language's keywords). A sanitized key
	// equal to one of them gets a "_" suffix.
	Reserved []string

	// MaxAttempts bounds the number of suffixed candidates tried for
	// one colliding identifier. Zero selects [DefaultMaxAttempts].
	MaxAttempts int
}

// DuplicateIdentifierError reports that no unique identifier could be
// found for a key within the attempt budget.
type DuplicateIdentifierError struct {
	Key        string
	Identifier string
	Attempts   int
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("key %q: identifier %q still collides after %d suffixed attempts",
		e.Key, e.Identifier, e.Attempts)
}

// Extract returns one [Entry] per catalog key, in payload order.
func Extract(root payload.Value, options Options) ([]Entry, error) {
	object, err := selectCatalog(root, options.Select)
	if err != nil {
		return nil, err
	}
	return Identifiers(object.Keys(), options)
}

// Identifiers sanitizes and uniquifies keys in order. Extract calls it
// after selecting the catalog; it is exported for callers that already
// have a key list.
func Identifiers(keys []string, options Options) ([]Entry, error) {
	casing := options.Casing
	if casing == "" {
		casing = CasingPascal
	}
	maxAttempts := options.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	reserved := make(map[string]bool, len(options.Reserved))
	for _, word := range options.Reserved {
		reserved[word] = true
	}

	entries := make([]Entry, 0, len(keys))
	taken := make(map[string]bool, len(keys))
	for ordinal, key := range keys {
		if key == "" {
			return nil, &payload.DecodeError{
				Kind:   payload.KindEmptyKey,
				Offset: -1,
				Detail: fmt.Sprintf("catalog key at position %d is empty", ordinal),
			}
		}

		base := Sanitize(key, casing)
		if reserved[base] {
			base += "_"
		}

		identifier, err := uniquify(key, base, taken, maxAttempts)
		if err != nil {
			return nil, err
		}
		taken[identifier] = true

		entries = append(entries, Entry{Key: key, Identifier: identifier, Ordinal: ordinal})
	}
	return entries, nil
}

func uniquify(key, base string, taken map[string]bool, maxAttempts int) (string, error) {
	if !taken[base] {
		return base, nil
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate := base + "_" + strconv.Itoa(attempt+1)
		if !taken[candidate] {
			return candidate, nil
		}
	}
	return "", &DuplicateIdentifierError{Key: key, Identifier: base, Attempts: maxAttempts}
}

func selectCatalog(root payload.Value, path []string) (*payload.Object, error) {
	current := root
	for depth := 0; ; depth++ {
		object, ok := current.AsObject()
		if !ok {
			return nil, &payload.DecodeError{
				Kind:   payload.KindNotObject,
				Offset: -1,
				Detail: fmt.Sprintf("%s is %s", describePath(path[:depth]), current.Kind()),
			}
		}
		if depth == len(path) {
			return object, nil
		}

		next, ok := object.Get(path[depth])
		if !ok {
			return nil, &payload.DecodeError{
				Kind:   payload.KindNotObject,
				Offset: -1,
				Detail: fmt.Sprintf("%s has no key %q", describePath(path[:depth]), path[depth]),
			}
		}
		current = next
	}
}

func describePath(path []string) string {
	if len(path) == 0 {
		return "payload root"
	}
	quoted := make([]string, len(path))
	for i, key := range path {
		quoted[i] = strconv.Quote(key)
	}
	return "payload[" + strings.Join(quoted, "][") + "]"
}
