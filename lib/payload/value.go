// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which variant a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// Value is a decoded structured value. The zero Value is null.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	text    string
	items   []Value
	object  *Object
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Number returns a number value holding the literal text n.
func Number(n json.Number) Value { return Value{kind: KindNumber, number: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Array returns an array value. The slice is not copied.
func Array(items []Value) Value { return Value{kind: KindArray, items: items} }

// ObjectValue wraps an object. A nil object is treated as empty.
func ObjectValue(object *Object) Value {
	if object == nil {
		object = NewObject()
	}
	return Value{kind: KindObject, object: object}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and true if v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.boolean, v.kind == KindBool }

// AsNumber returns the number literal and true if v is a number.
func (v Value) AsNumber() (json.Number, bool) { return v.number, v.kind == KindNumber }

// AsString returns the text and true if v is a string.
func (v Value) AsString() (string, bool) { return v.text, v.kind == KindString }

// AsArray returns the elements and true if v is an array.
func (v Value) AsArray() ([]Value, bool) { return v.items, v.kind == KindArray }

// AsObject returns the object and true if v is an object.
func (v Value) AsObject() (*Object, bool) { return v.object, v.kind == KindObject }

// Object is an ordered mapping from unique string keys to values.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set stores value under key. A new key is appended to the key order;
// an existing key keeps its position and has its value replaced.
func (o *Object) Set(key string, value Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Keys returns the keys in first-seen order. The caller must not
// modify the returned slice.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of distinct keys.
func (o *Object) Len() int {
	return len(o.keys)
}
