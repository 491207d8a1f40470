// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides protogen's CBOR encoding configuration.
//
// The generated source file is the primary artifact; CBOR is used for
// the machine-readable sidecars next to it (the catalog manifest). The
// encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. The same
// catalog therefore always produces byte-identical sidecars, which
// keeps them diffable and lets a regeneration be compared byte for
// byte with the previous run.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Sidecar types use `cbor` struct tags with short keys; they are never
// serialized as JSON.
package codec
