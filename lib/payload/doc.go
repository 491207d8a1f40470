// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload decodes the catalog payload into a generic [Value]
// tree that preserves object key order.
//
// encoding/json's map[string]any loses key order, and the order of the
// top-level keys is exactly what the generated enumeration must follow,
// so the decoder walks the token stream itself and builds ordered
// [Object]s. Numbers keep their literal text as [encoding/json.Number].
//
// Duplicate keys within one object keep the position of their first
// occurrence; the value of the last occurrence wins.
//
// The grammar is strict JSON. [Options.Lenient] additionally accepts
// comments and trailing commas (stripped with github.com/tidwall/jsonc
// before parsing), which is convenient for hand-written fixture captures
// but never enabled for real process output by default.
//
// Every failure is a [*DecodeError]; errors.Is(err, [ErrDecode]) holds
// for all of them.
package payload
