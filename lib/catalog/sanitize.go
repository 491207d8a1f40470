// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"strings"
)

// Casing selects how sanitized keys are cased.
type Casing string

const (
	// CasingPascal splits on underscores, capitalizes the first letter
	// of each segment, and joins the segments: "iron_plate" becomes
	// "IronPlate".
	CasingPascal Casing = "pascal"

	// CasingNone keeps the sanitized key as is.
	CasingNone Casing = "none"
)

// ParseCasing validates a casing name. The empty string selects
// [CasingPascal].
func ParseCasing(name string) (Casing, error) {
	switch Casing(name) {
	case "", CasingPascal:
		return CasingPascal, nil
	case CasingNone:
		return CasingNone, nil
	default:
		return "", fmt.Errorf("unknown casing %q (want %q or %q)", name, CasingPascal, CasingNone)
	}
}

// Sanitize maps a catalog key to an identifier candidate without
// reserved-word or uniqueness handling. The result always matches
// [IsIdentifier].
func Sanitize(key string, casing Casing) string {
	var builder strings.Builder
	builder.Grow(len(key))
	for _, r := range key {
		if isIdentifierRune(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteByte('_')
		}
	}
	identifier := builder.String()

	if casing == CasingPascal {
		identifier = pascal(identifier)
	}

	if identifier == "" {
		return "_"
	}
	if isDigit(identifier[0]) {
		identifier = "_" + identifier
	}
	return identifier
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentifierRune(rune(s[i])) {
			return false
		}
	}
	return true
}

// pascal upper-cases the first letter of every underscore-delimited
// segment and removes the underscores. Only ASCII letters are touched;
// the input is already restricted to [A-Za-z0-9_].
func pascal(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for _, segment := range strings.Split(s, "_") {
		if segment == "" {
			continue
		}
		first := segment[0]
		if first >= 'a' && first <= 'z' {
			first -= 'a' - 'A'
		}
		builder.WriteByte(first)
		builder.WriteString(segment[1:])
	}
	return builder.String()
}

func isIdentifierRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
