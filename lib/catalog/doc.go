// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog turns the decoded payload into an ordered list of
// code identifiers, one per catalog key.
//
// [Extract] selects the catalog object (the payload root, or the object
// reached through [Options.Select]), reads its keys in payload order,
// and sanitizes each key:
//
//  1. every code point outside [A-Za-z0-9_] becomes one underscore,
//  2. the configured [Casing] is applied,
//  3. an empty result becomes "_" and a leading digit gets a "_" prefix,
//  4. a reserved word of the target language gets a "_" suffix,
//  5. a collision with an earlier identifier gets the first free
//     suffix among _2, _3, ... up to [Options.MaxAttempts] candidates.
//
// Casing runs before the digit guard so that PascalCase, which drops
// underscores, cannot strip the guard back off: "2nd-tier" becomes
// "_2ndTier".
//
// The result is deterministic: the same keys and options always
// produce the same identifiers, in the same order.
package catalog
