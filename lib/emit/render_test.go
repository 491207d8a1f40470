// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bureau-foundation/protogen/lib/catalog"
)

var sampleEntries = []catalog.Entry{
	{Key: "iron-plate", Identifier: "IronPlate", Ordinal: 0},
	{Key: "copper-ore", Identifier: "CopperOre", Ordinal: 1},
	{Key: "2nd-tier", Identifier: "_2ndTier", Ordinal: 2},
}

func TestRenderCPP(t *testing.T) {
	got, err := Render(sampleEntries, DefaultTarget())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := `// Code generated by protogen. DO NOT EDIT.
// It contains the prototype names from the Factorio data.raw table.

namespace ComputerPlaysFactorio {
enum FactorioEntity {
    IronPlate = 0,
    CopperOre = 1,
    _2ndTier = 2,
};
}
`
	if string(got) != want {
		t.Errorf("Render output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderGo(t *testing.T) {
	target := DefaultTarget()
	target.Language = LanguageGo
	target.Namespace = "prototypes"
	target.Enum = "Entity"

	got, err := Render(sampleEntries, target)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "// Code generated by protogen. DO NOT EDIT.\n" +
		"// It contains the prototype names from the Factorio data.raw table.\n" +
		"\n" +
		"package prototypes\n" +
		"\n" +
		"type Entity int\n" +
		"\n" +
		"const (\n" +
		"\tIronPlate Entity = 0\n" +
		"\tCopperOre Entity = 1\n" +
		"\t_2ndTier Entity = 2\n" +
		")\n"
	if string(got) != want {
		t.Errorf("Render output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	got, err := Render(nil, DefaultTarget())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(got), "enum FactorioEntity {\n};\n}\n") {
		t.Errorf("empty enum not rendered:\n%s", got)
	}
}

func TestRenderWithoutPurpose(t *testing.T) {
	target := DefaultTarget()
	target.Purpose = ""

	got, err := Render(sampleEntries[:1], target)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.HasPrefix(string(got), "// Code generated by protogen. DO NOT EDIT.\n\nnamespace") {
		t.Errorf("unexpected header:\n%s", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	first, err := Render(sampleEntries, DefaultTarget())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(sampleEntries, DefaultTarget())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two renders of the same entries differ")
	}
}

func TestRenderRejectsBadEntries(t *testing.T) {
	tests := map[string][]catalog.Entry{
		"invalid identifier": {{Key: "a", Identifier: "1a", Ordinal: 0}},
		"duplicate":          {{Key: "a", Identifier: "A", Ordinal: 0}, {Key: "b", Identifier: "A", Ordinal: 1}},
		"out of order":       {{Key: "a", Identifier: "A", Ordinal: 1}},
	}
	for name, entries := range tests {
		if _, err := Render(entries, DefaultTarget()); err == nil {
			t.Errorf("%s: Render accepted %+v", name, entries)
		}
	}
}

func TestTargetValidate(t *testing.T) {
	if err := DefaultTarget().Validate(); err != nil {
		t.Fatalf("DefaultTarget().Validate(): %v", err)
	}

	mutations := map[string]func(*Target){
		"bad language":      func(t *Target) { t.Language = "rust" },
		"bad namespace":     func(t *Target) { t.Namespace = "Computer Plays" },
		"bad enum":          func(t *Target) { t.Enum = "9Entity" },
		"same names":        func(t *Target) { t.Enum = t.Namespace },
		"keyword enum":      func(t *Target) { t.Enum = "class" },
		"no generator":      func(t *Target) { t.Generator = "" },
		"multiline purpose": func(t *Target) { t.Purpose = "one\ntwo" },
		"go predeclared enum": func(t *Target) {
			t.Language = LanguageGo
			t.Namespace = "prototypes"
			t.Enum = "int"
		},
		"go upper package": func(t *Target) {
			t.Language = LanguageGo
			t.Namespace = "Prototypes"
		},
	}
	for name, mutate := range mutations {
		target := DefaultTarget()
		mutate(&target)
		if err := target.Validate(); err == nil {
			t.Errorf("%s: Validate accepted %+v", name, target)
		}
	}
}

func TestReservedWords(t *testing.T) {
	reserved := DefaultTarget().ReservedWords()
	for _, want := range []string{"class", "enum", "ComputerPlaysFactorio", "FactorioEntity"} {
		found := false
		for _, word := range reserved {
			if word == want {
				found = true
			}
		}
		if !found {
			t.Errorf("ReservedWords missing %q", want)
		}
	}
}

func TestReservedWordsGoPredeclared(t *testing.T) {
	target := DefaultTarget()
	target.Language = LanguageGo
	target.Namespace = "prototypes"
	target.Enum = "Entity"

	entries, err := catalog.Identifiers(
		[]string{"int", "nil", "Entity"},
		catalog.Options{Casing: catalog.CasingNone, Reserved: target.ReservedWords()},
	)
	if err != nil {
		t.Fatalf("Identifiers: %v", err)
	}
	got, err := Render(entries, target)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"\tint_ Entity = 0\n", "\tnil_ Entity = 1\n", "\tEntity_ Entity = 2\n"} {
		if !strings.Contains(string(got), want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if cpp := DefaultTarget().ReservedWords(); containsWord(cpp, "nil") {
		t.Error("C++ reserved words include the Go predeclared nil")
	}
}

func containsWord(words []string, word string) bool {
	for _, candidate := range words {
		if candidate == word {
			return true
		}
	}
	return false
}

func TestParseLanguage(t *testing.T) {
	for input, want := range map[string]Language{"": LanguageCPP, "cpp": LanguageCPP, "go": LanguageGo} {
		got, err := ParseLanguage(input)
		if err != nil || got != want {
			t.Errorf("ParseLanguage(%q) = %q, %v; want %q", input, got, err, want)
		}
	}
	if _, err := ParseLanguage("c"); err == nil {
		t.Error("ParseLanguage(c) accepted an unknown language")
	}
}
