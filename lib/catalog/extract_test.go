// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/bureau-foundation/protogen/lib/payload"
)

func decode(t *testing.T, text string) payload.Value {
	t.Helper()
	value, err := payload.Decode([]byte(text))
	if err != nil {
		t.Fatalf("Decode(%q): %v", text, err)
	}
	return value
}

func identifiers(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, entry := range entries {
		result[i] = entry.Identifier
	}
	return result
}

func TestExtractDefaultRules(t *testing.T) {
	root := decode(t, `{"iron-plate": {}, "copper-ore": {}, "2nd-tier": {}}`)

	entries, err := Extract(root, Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []Entry{
		{Key: "iron-plate", Identifier: "IronPlate", Ordinal: 0},
		{Key: "copper-ore", Identifier: "CopperOre", Ordinal: 1},
		{Key: "2nd-tier", Identifier: "_2ndTier", Ordinal: 2},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestExtractCollisionSuffix(t *testing.T) {
	root := decode(t, `{"a-b": 1, "a b": 2, "a.b": 3}`)

	entries, err := Extract(root, Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got, want := identifiers(entries), []string{"AB", "AB_2", "AB_3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("identifiers = %v, want %v", got, want)
	}
	for i, entry := range entries {
		if entry.Ordinal != i {
			t.Errorf("entries[%d].Ordinal = %d", i, entry.Ordinal)
		}
	}
	if entries[1].Key != "a b" {
		t.Errorf("entries[1].Key = %q, want %q", entries[1].Key, "a b")
	}
}

func TestExtractCasingNone(t *testing.T) {
	root := decode(t, `{"iron-plate": 0, "2nd-tier": 0, "a-b": 0, "a_b": 0, "a_b_2": 0}`)

	entries, err := Extract(root, Options{Casing: CasingNone})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := []string{"iron_plate", "_2nd_tier", "a_b", "a_b_2", "a_b_2_2"}
	if got := identifiers(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("identifiers = %v, want %v", got, want)
	}
}

func TestExtractReservedWords(t *testing.T) {
	root := decode(t, `{"class": 0, "enum": 0, "Class": 0}`)

	entries, err := Extract(root, Options{Casing: CasingNone, Reserved: []string{"class", "enum"}})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if got, want := identifiers(entries), []string{"class_", "enum_", "Class"}; !reflect.DeepEqual(got, want) {
		t.Errorf("identifiers = %v, want %v", got, want)
	}
}

func TestExtractEmptyCatalog(t *testing.T) {
	entries, err := Extract(decode(t, `{}`), Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}

func TestExtractNotObject(t *testing.T) {
	for _, text := range []string{`[]`, `[{"a": 1}]`, `"text"`, `42`, `null`, `true`} {
		_, err := Extract(decode(t, text), Options{})

		var decodeError *payload.DecodeError
		if !errors.As(err, &decodeError) {
			t.Errorf("Extract(%s) error = %v, want *payload.DecodeError", text, err)
			continue
		}
		if decodeError.Kind != payload.KindNotObject {
			t.Errorf("Extract(%s) Kind = %v, want not an object", text, decodeError.Kind)
		}
	}
}

func TestExtractSelect(t *testing.T) {
	root := decode(t, `{"item": {"iron-plate": {}, "wood": {}}, "recipe": {"gear": {}}}`)

	entries, err := Extract(root, Options{Select: []string{"item"}})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got, want := identifiers(entries), []string{"IronPlate", "Wood"}; !reflect.DeepEqual(got, want) {
		t.Errorf("identifiers = %v, want %v", got, want)
	}
}

func TestExtractSelectErrors(t *testing.T) {
	root := decode(t, `{"item": {"wood": 1}}`)

	for _, path := range [][]string{{"missing"}, {"item", "wood"}, {"item", "wood", "deeper"}} {
		_, err := Extract(root, Options{Select: path})
		var decodeError *payload.DecodeError
		if !errors.As(err, &decodeError) || decodeError.Kind != payload.KindNotObject {
			t.Errorf("Select %v: error = %v, want not-an-object DecodeError", path, err)
		}
	}
}

func TestExtractEmptyKey(t *testing.T) {
	_, err := Extract(decode(t, `{"a": 1, "": 2}`), Options{})

	var decodeError *payload.DecodeError
	if !errors.As(err, &decodeError) || decodeError.Kind != payload.KindEmptyKey {
		t.Fatalf("error = %v, want empty-key DecodeError", err)
	}
	if !errors.Is(err, payload.ErrDecode) {
		t.Error("empty-key error does not match payload.ErrDecode")
	}
}

func TestIdentifiersAttemptBudget(t *testing.T) {
	keys := []string{"x"}
	for i := 2; i <= 4; i++ {
		keys = append(keys, "x_"+strconv.Itoa(i))
	}
	keys = append(keys, "x")

	_, err := Identifiers(keys, Options{Casing: CasingNone, MaxAttempts: 3})

	var duplicateError *DuplicateIdentifierError
	if !errors.As(err, &duplicateError) {
		t.Fatalf("error = %v, want *DuplicateIdentifierError", err)
	}
	if duplicateError.Key != "x" || duplicateError.Attempts != 3 {
		t.Errorf("error = %+v", duplicateError)
	}

	entries, err := Identifiers(keys, Options{Casing: CasingNone, MaxAttempts: 4})
	if err != nil {
		t.Fatalf("Identifiers with budget 4: %v", err)
	}
	if got := entries[len(entries)-1].Identifier; got != "x_5" {
		t.Errorf("last identifier = %q, want %q", got, "x_5")
	}
}

func TestExtractDeterministic(t *testing.T) {
	root := decode(t, `{"b": 0, "a": 0, "a-": 0, "a_": 0, "ß": 0}`)

	first, err := Extract(root, Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Extract(root, Options{})
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d: %v, want %v", i, again, first)
		}
	}
}
