// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
)

// MaxDepth bounds array and object nesting. The payload comes from an
// untrusted stream and the decoder is recursive.
const MaxDepth = 512

// ErrDecode matches every [*DecodeError] under errors.Is.
var ErrDecode = errors.New("payload decode error")

// ErrorKind classifies a [DecodeError].
type ErrorKind int

const (
	// KindSyntax is any violation of the JSON grammar: unterminated
	// strings, mismatched brackets, invalid numbers, trailing bytes,
	// excessive nesting, empty input.
	KindSyntax ErrorKind = iota + 1

	// KindNotObject means the value that should hold the catalog is
	// not an object.
	KindNotObject

	// KindEmptyKey means a catalog key is the empty string.
	KindEmptyKey
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindNotObject:
		return "not an object"
	case KindEmptyKey:
		return "empty key"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// DecodeError reports a payload that is not a well-formed catalog.
type DecodeError struct {
	Kind ErrorKind

	// Offset is the byte offset within the payload where the problem
	// was detected, or -1 when not applicable.
	Offset int64

	// Detail is a human-readable description.
	Detail string

	// Err is the underlying parser error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	message := "payload " + e.Kind.String()
	if e.Detail != "" {
		message += ": " + e.Detail
	}
	if e.Offset >= 0 {
		message += fmt.Sprintf(" (offset %d)", e.Offset)
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

// Is reports whether target is [ErrDecode].
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Options controls decoding.
type Options struct {
	// Lenient strips // and /* */ comments and trailing commas before
	// parsing.
	Lenient bool
}

// Decode parses data as strict JSON.
func Decode(data []byte) (Value, error) {
	return DecodeWith(data, Options{})
}

// DecodeWith parses data according to options.
func DecodeWith(data []byte, options Options) (Value, error) {
	// encoding/json would replace invalid bytes with U+FFFD, which can
	// merge distinct keys.
	if offset := invalidUTF8(data); offset >= 0 {
		return Value{}, &DecodeError{
			Kind:   KindSyntax,
			Offset: int64(offset),
			Detail: "invalid UTF-8",
		}
	}
	if options.Lenient {
		data = jsonc.ToJSON(data)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	parser := &parser{decoder: decoder}
	value, err := parser.value(0)
	if err != nil {
		return Value{}, err
	}

	// Anything but whitespace after the top-level value is an error.
	token, err := decoder.Token()
	if err == nil {
		return Value{}, &DecodeError{
			Kind:   KindSyntax,
			Offset: decoder.InputOffset(),
			Detail: fmt.Sprintf("trailing data after top-level value (%v)", describe(token)),
		}
	}
	if !errors.Is(err, io.EOF) {
		return Value{}, syntaxError(decoder, err)
	}

	return value, nil
}

// invalidUTF8 returns the offset of the first byte that is not part of
// a valid UTF-8 sequence, or -1.
func invalidUTF8(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return -1
}

type parser struct {
	decoder *json.Decoder
}

func (p *parser) value(depth int) (Value, error) {
	token, err := p.decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, &DecodeError{
				Kind:   KindSyntax,
				Offset: p.decoder.InputOffset(),
				Detail: "unexpected end of payload",
			}
		}
		return Value{}, syntaxError(p.decoder, err)
	}
	return p.fromToken(token, depth)
}

func (p *parser) fromToken(token json.Token, depth int) (Value, error) {
	switch typed := token.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(typed), nil
	case json.Number:
		return Number(typed), nil
	case string:
		return String(typed), nil
	case json.Delim:
		if depth >= MaxDepth {
			return Value{}, &DecodeError{
				Kind:   KindSyntax,
				Offset: p.decoder.InputOffset(),
				Detail: fmt.Sprintf("nesting exceeds %d levels", MaxDepth),
			}
		}
		switch typed {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		}
	}
	// json.Decoder never yields a closing delimiter here without
	// first reporting a syntax error, but treat it as one anyway.
	return Value{}, &DecodeError{
		Kind:   KindSyntax,
		Offset: p.decoder.InputOffset(),
		Detail: fmt.Sprintf("unexpected %v", describe(token)),
	}
}

func (p *parser) object(depth int) (Value, error) {
	object := NewObject()
	for p.decoder.More() {
		keyToken, err := p.decoder.Token()
		if err != nil {
			return Value{}, syntaxError(p.decoder, err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return Value{}, &DecodeError{
				Kind:   KindSyntax,
				Offset: p.decoder.InputOffset(),
				Detail: fmt.Sprintf("object key is %v", describe(keyToken)),
			}
		}

		value, err := p.value(depth)
		if err != nil {
			return Value{}, err
		}
		object.Set(key, value)
	}
	if err := p.closing('}'); err != nil {
		return Value{}, err
	}
	return ObjectValue(object), nil
}

func (p *parser) array(depth int) (Value, error) {
	items := []Value{}
	for p.decoder.More() {
		value, err := p.value(depth)
		if err != nil {
			return Value{}, err
		}
		items = append(items, value)
	}
	if err := p.closing(']'); err != nil {
		return Value{}, err
	}
	return Array(items), nil
}

func (p *parser) closing(want json.Delim) error {
	token, err := p.decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &DecodeError{
				Kind:   KindSyntax,
				Offset: p.decoder.InputOffset(),
				Detail: fmt.Sprintf("unexpected end of payload, want %q", rune(want)),
			}
		}
		return syntaxError(p.decoder, err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != want {
		return &DecodeError{
			Kind:   KindSyntax,
			Offset: p.decoder.InputOffset(),
			Detail: fmt.Sprintf("got %v, want %q", describe(token), rune(want)),
		}
	}
	return nil
}

// syntaxError wraps a json package error, preferring the offset the
// json package reports.
func syntaxError(decoder *json.Decoder, err error) *DecodeError {
	offset := decoder.InputOffset()
	var jsonSyntax *json.SyntaxError
	if errors.As(err, &jsonSyntax) {
		offset = jsonSyntax.Offset
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return &DecodeError{Kind: KindSyntax, Offset: offset, Detail: "unexpected end of payload", Err: err}
	}
	return &DecodeError{Kind: KindSyntax, Offset: offset, Err: err}
}

func describe(token json.Token) string {
	switch typed := token.(type) {
	case nil:
		return "null"
	case json.Delim:
		return fmt.Sprintf("%q", rune(typed))
	case string:
		return fmt.Sprintf("string %q", typed)
	case json.Number:
		return "number " + typed.String()
	default:
		return fmt.Sprintf("%T %v", token, token)
	}
}
