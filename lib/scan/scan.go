// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scan

import (
	"bytes"
	"errors"
	"fmt"
	"math"
)

// DefaultMarker is the byte sequence the dump mod prints in front of
// the length field.
const DefaultMarker = "DATA"

// ErrMarkerNotFound is returned when the marker does not occur anywhere
// in the capture.
var ErrMarkerNotFound = errors.New("payload marker not found")

// ErrFramingLength matches every [*FramingError] under errors.Is.
var ErrFramingLength = errors.New("malformed payload length")

// Reason classifies a framing failure.
type Reason int

const (
	// ReasonNoDigits means the byte after the marker is not a digit
	// (or the capture ends right after the marker).
	ReasonNoDigits Reason = iota + 1

	// ReasonUnterminated means the capture ends inside the digit run.
	ReasonUnterminated

	// ReasonBadTerminator means the digit run ended with a byte other
	// than a single ASCII space.
	ReasonBadTerminator

	// ReasonOverflow means the declared length does not fit in an int.
	ReasonOverflow

	// ReasonTruncated means fewer than the declared number of bytes
	// follow the space.
	ReasonTruncated
)

// String returns a short human-readable description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNoDigits:
		return "no length digits after marker"
	case ReasonUnterminated:
		return "length field not terminated by a space"
	case ReasonBadTerminator:
		return "length field terminated by a non-space byte"
	case ReasonOverflow:
		return "declared length overflows"
	case ReasonTruncated:
		return "payload shorter than declared length"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// FramingError describes a malformed or out-of-range length field.
type FramingError struct {
	Reason Reason

	// MarkerOffset is the byte offset of the marker in the capture.
	MarkerOffset int

	// Declared is the parsed length, valid for ReasonTruncated.
	Declared int

	// Available is the number of bytes that follow the space, valid
	// for ReasonTruncated.
	Available int
}

func (e *FramingError) Error() string {
	if e.Reason == ReasonTruncated {
		return fmt.Sprintf("framing error at offset %d: %s (declared %d bytes, %d available)",
			e.MarkerOffset, e.Reason, e.Declared, e.Available)
	}
	return fmt.Sprintf("framing error at offset %d: %s", e.MarkerOffset, e.Reason)
}

// Is reports whether target is [ErrFramingLength].
func (e *FramingError) Is(target error) bool {
	return target == ErrFramingLength
}

// Frame is the location of a payload within a capture.
type Frame struct {
	// MarkerOffset is where the marker starts.
	MarkerOffset int

	// Start and End delimit the payload: capture[Start:End].
	Start int
	End   int

	// DeclaredLength is the value of the length field. Always equal
	// to End-Start for a Frame returned without error.
	DeclaredLength int
}

// Payload returns the payload bytes of the frame within capture. The
// returned slice aliases capture.
func (f Frame) Payload(capture []byte) []byte {
	return capture[f.Start:f.End]
}

// Locate finds the first [DefaultMarker] frame in capture.
func Locate(capture []byte) (Frame, error) {
	return LocateMarker(capture, []byte(DefaultMarker))
}

// LocateMarker finds the first frame introduced by marker in capture.
// An empty marker is rejected with [ErrMarkerNotFound] since it would
// match at offset zero of any input.
func LocateMarker(capture []byte, marker []byte) (Frame, error) {
	if len(marker) == 0 {
		return Frame{}, fmt.Errorf("%w: empty marker", ErrMarkerNotFound)
	}

	markerOffset := bytes.Index(capture, marker)
	if markerOffset < 0 {
		return Frame{}, fmt.Errorf("%w: %q", ErrMarkerNotFound, marker)
	}

	position := markerOffset + len(marker)
	digitsStart := position
	declared := 0
	for position < len(capture) && isDigit(capture[position]) {
		digit := int(capture[position] - '0')
		if declared > (math.MaxInt-digit)/10 {
			return Frame{}, &FramingError{Reason: ReasonOverflow, MarkerOffset: markerOffset}
		}
		declared = declared*10 + digit
		position++
	}

	if position == digitsStart {
		return Frame{}, &FramingError{Reason: ReasonNoDigits, MarkerOffset: markerOffset}
	}
	if position == len(capture) {
		return Frame{}, &FramingError{Reason: ReasonUnterminated, MarkerOffset: markerOffset}
	}
	if capture[position] != ' ' {
		return Frame{}, &FramingError{Reason: ReasonBadTerminator, MarkerOffset: markerOffset}
	}

	start := position + 1
	available := len(capture) - start
	if declared > available {
		return Frame{}, &FramingError{
			Reason:       ReasonTruncated,
			MarkerOffset: markerOffset,
			Declared:     declared,
			Available:    available,
		}
	}

	return Frame{
		MarkerOffset:   markerOffset,
		Start:          start,
		End:            start + declared,
		DeclaredLength: declared,
	}, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
