// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scan locates a length-framed payload inside a raw capture of
// an external process's combined output stream.
//
// The frame format is a fixed marker, an ASCII decimal length, a single
// space, and exactly that many payload bytes:
//
//	...arbitrary log output...DATA1234 {"item": ...}...more log output...
//
// [Locate] matches the first occurrence of [DefaultMarker]. A capture
// that prints the marker as incidental log text before the real frame
// will be misread; avoiding that is the producer's responsibility.
//
// Failures are [ErrMarkerNotFound] when the marker is absent and a
// [*FramingError] (matching [ErrFramingLength] under errors.Is) for
// every malformed or out-of-range length field.
//
// This package has no dependencies on other protogen packages.
package scan
