// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/protogen/lib/catalog"
)

// Language selects the syntax of the generated file.
type Language string

const (
	// LanguageCPP emits a C++ header.
	LanguageCPP Language = "cpp"

	// LanguageGo emits a Go source file.
	LanguageGo Language = "go"
)

// ParseLanguage validates a language name. The empty string selects
// [LanguageCPP].
func ParseLanguage(name string) (Language, error) {
	switch Language(name) {
	case "", LanguageCPP:
		return LanguageCPP, nil
	case LanguageGo:
		return LanguageGo, nil
	default:
		return "", fmt.Errorf("unknown language %q (want %q or %q)", name, LanguageCPP, LanguageGo)
	}
}

// Target describes the wrapper around the generated enumeration. None
// of it is derived from the catalog.
type Target struct {
	Language Language

	// Namespace is the C++ namespace or the Go package name.
	Namespace string

	// Enum is the name of the enumerated type.
	Enum string

	// Generator names the tool in the "Code generated by" header line.
	Generator string

	// Purpose is the one-line description in the second header line.
	Purpose string
}

// DefaultTarget returns the C++ target consumed by the bot: the
// FactorioEntity enum in the ComputerPlaysFactorio namespace.
func DefaultTarget() Target {
	return Target{
		Language:  LanguageCPP,
		Namespace: "ComputerPlaysFactorio",
		Enum:      "FactorioEntity",
		Generator: "protogen",
		Purpose:   "It contains the prototype names from the Factorio data.raw table.",
	}
}

// Validate checks that the wrapper names are usable identifiers in the
// target language.
func (t Target) Validate() error {
	var errs []error

	if _, err := ParseLanguage(string(t.Language)); err != nil {
		errs = append(errs, err)
	}
	if !catalog.IsIdentifier(t.Namespace) {
		errs = append(errs, fmt.Errorf("namespace %q is not a valid identifier", t.Namespace))
	} else if t.Language == LanguageGo && !isLowerPackageName(t.Namespace) {
		errs = append(errs, fmt.Errorf("go package name %q must be lowercase letters and digits", t.Namespace))
	}
	if !catalog.IsIdentifier(t.Enum) {
		errs = append(errs, fmt.Errorf("enum name %q is not a valid identifier", t.Enum))
	}
	if t.Namespace == t.Enum {
		errs = append(errs, fmt.Errorf("namespace and enum name are both %q", t.Enum))
	}
	if t.Generator == "" {
		errs = append(errs, errors.New("generator name is required"))
	}
	if containsNewline(t.Generator) || containsNewline(t.Purpose) {
		errs = append(errs, errors.New("header lines must not contain newlines"))
	}
	for _, word := range Keywords(t.Language) {
		if t.Namespace == word || t.Enum == word {
			errs = append(errs, fmt.Errorf("%q is a %s keyword", word, t.Language))
		}
	}
	if t.Language == LanguageGo {
		for _, word := range goPredeclared {
			if t.Enum == word {
				errs = append(errs, fmt.Errorf("enum name %q shadows a predeclared Go identifier", word))
			}
		}
	}

	return errors.Join(errs...)
}

// ReservedWords returns the identifiers an enumerant may not take: the
// language keywords plus the namespace and enum names themselves. For
// Go the predeclared identifiers are reserved too, since a constant
// named int would shadow the enum's underlying type.
func (t Target) ReservedWords() []string {
	keywords := Keywords(t.Language)
	reserved := make([]string, 0, len(keywords)+len(goPredeclared)+2)
	reserved = append(reserved, keywords...)
	if t.Language == LanguageGo {
		reserved = append(reserved, goPredeclared...)
	}
	return append(reserved, t.Namespace, t.Enum)
}

// Keywords returns the reserved words of language.
func Keywords(language Language) []string {
	switch language {
	case LanguageGo:
		return goKeywords
	default:
		return cppKeywords
	}
}

var cppKeywords = []string{
	"alignas", "alignof", "and", "and_eq", "asm", "auto", "bitand", "bitor",
	"bool", "break", "case", "catch", "char", "char8_t", "char16_t", "char32_t",
	"class", "compl", "concept", "const", "consteval", "constexpr", "constinit",
	"const_cast", "continue", "co_await", "co_return", "co_yield", "decltype",
	"default", "delete", "do", "double", "dynamic_cast", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend", "goto",
	"if", "inline", "int", "long", "mutable", "namespace", "new", "noexcept",
	"not", "not_eq", "nullptr", "operator", "or", "or_eq", "private",
	"protected", "public", "register", "reinterpret_cast", "requires",
	"return", "short", "signed", "sizeof", "static", "static_assert",
	"static_cast", "struct", "switch", "template", "this", "thread_local",
	"throw", "true", "try", "typedef", "typeid", "typename", "union",
	"unsigned", "using", "virtual", "void", "volatile", "wchar_t", "while",
	"xor", "xor_eq",
}

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",
}

// goPredeclared is the Go universe block.
var goPredeclared = []string{
	"any", "bool", "byte", "comparable", "complex64", "complex128", "error",
	"float32", "float64", "int", "int8", "int16", "int32", "int64", "rune",
	"string", "uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
	"true", "false", "iota", "nil",
	"append", "cap", "clear", "close", "complex", "copy", "delete", "imag",
	"len", "make", "max", "min", "new", "panic", "print", "println", "real",
	"recover",
}

func isLowerPackageName(name string) bool {
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z') && !(c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func containsNewline(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' || s[i] == '\r' {
			return true
		}
	}
	return false
}
