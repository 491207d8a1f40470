// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"strconv"
	"strings"
)

// Frame returns payload preceded by the DATA marker and its decimal
// byte length.
func Frame(payload string) string {
	return FrameWithMarker("DATA", payload)
}

// FrameWithMarker is [Frame] with a custom marker.
func FrameWithMarker(marker, payload string) string {
	return marker + strconv.Itoa(len(payload)) + " " + payload
}

// FramedCapture wraps a framed payload in engine log lines, matching
// the shape of a real headless run of the dump mod.
func FramedCapture(payload string) []byte {
	var builder strings.Builder
	builder.WriteString("   0.000 2026-10-14 12:00:00; Factorio 2.0.15 (build 79870, linux64, headless)\n")
	builder.WriteString("   0.012 Operating system: Linux\n")
	builder.WriteString("   0.480 Loading mod core 0.0.0 (data.lua)\n")
	builder.WriteString("   0.531 Loading mod base 2.0.15 (data.lua)\n")
	builder.WriteString("   1.204 Script @__dataScraper__/data-final-fixes.lua:3: ")
	builder.WriteString(Frame(payload))
	builder.WriteString("\n")
	builder.WriteString("   1.205 Error ModManager.cpp:1733: Data dump complete\n")
	return []byte(builder.String())
}

// CatalogPayload returns a JSON object with one empty-object member per
// key, in the given order.
func CatalogPayload(keys ...string) string {
	var builder strings.Builder
	builder.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(strconv.Quote(key))
		builder.WriteString(`: {"type": "item"}`)
	}
	builder.WriteByte('}')
	return builder.String()
}
