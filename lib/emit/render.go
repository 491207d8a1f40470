// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"bytes"
	"fmt"

	"github.com/bureau-foundation/protogen/lib/catalog"
)

// Render produces the generated file for entries. entries must be in
// ordinal order with valid, unique identifiers, as returned by
// [catalog.Extract].
func Render(entries []catalog.Entry, target Target) ([]byte, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}
	if err := checkEntries(entries); err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "// Code generated by %s. DO NOT EDIT.\n", target.Generator)
	if target.Purpose != "" {
		fmt.Fprintf(&buffer, "// %s\n", target.Purpose)
	}
	buffer.WriteByte('\n')

	switch target.Language {
	case LanguageGo:
		renderGo(&buffer, entries, target)
	default:
		renderCPP(&buffer, entries, target)
	}
	return buffer.Bytes(), nil
}

func renderCPP(buffer *bytes.Buffer, entries []catalog.Entry, target Target) {
	fmt.Fprintf(buffer, "namespace %s {\n", target.Namespace)
	fmt.Fprintf(buffer, "enum %s {\n", target.Enum)
	for _, entry := range entries {
		fmt.Fprintf(buffer, "    %s = %d,\n", entry.Identifier, entry.Ordinal)
	}
	buffer.WriteString("};\n")
	buffer.WriteString("}\n")
}

func renderGo(buffer *bytes.Buffer, entries []catalog.Entry, target Target) {
	fmt.Fprintf(buffer, "package %s\n\n", target.Namespace)
	fmt.Fprintf(buffer, "type %s int\n\n", target.Enum)
	buffer.WriteString("const (\n")
	for _, entry := range entries {
		fmt.Fprintf(buffer, "\t%s %s = %d\n", entry.Identifier, target.Enum, entry.Ordinal)
	}
	buffer.WriteString(")\n")
}

// checkEntries rejects entries that would produce a file that does not
// compile. catalog.Extract never returns such entries.
func checkEntries(entries []catalog.Entry) error {
	seen := make(map[string]int, len(entries))
	for position, entry := range entries {
		if !catalog.IsIdentifier(entry.Identifier) {
			return fmt.Errorf("entry %d (key %q): %q is not a valid identifier", position, entry.Key, entry.Identifier)
		}
		if entry.Ordinal != position {
			return fmt.Errorf("entry %d (key %q): ordinal %d out of order", position, entry.Key, entry.Ordinal)
		}
		if previous, exists := seen[entry.Identifier]; exists {
			return fmt.Errorf("entries %d and %d share identifier %q", previous, position, entry.Identifier)
		}
		seen[entry.Identifier] = position
	}
	return nil
}
