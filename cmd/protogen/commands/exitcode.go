// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/capture"
	"github.com/bureau-foundation/protogen/lib/catalog"
	"github.com/bureau-foundation/protogen/lib/emit"
	"github.com/bureau-foundation/protogen/lib/generate"
	"github.com/bureau-foundation/protogen/lib/payload"
	"github.com/bureau-foundation/protogen/lib/scan"
)

// Exit statuses, one per failure kind.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitLaunch    = 3
	ExitNoMarker  = 4
	ExitFraming   = 5
	ExitDecode    = 6
	ExitDuplicate = 7
	ExitWrite     = 8
	ExitStale     = 9
)

// ExitCode classifies err into an exit status.
func ExitCode(err error) int {
	var (
		usageError     *cli.UsageError
		launchError    *capture.LaunchError
		duplicateError *catalog.DuplicateIdentifierError
		writeError     *emit.WriteError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageError):
		return ExitUsage
	case errors.As(err, &launchError):
		return ExitLaunch
	case errors.Is(err, scan.ErrMarkerNotFound):
		return ExitNoMarker
	case errors.Is(err, scan.ErrFramingLength):
		return ExitFraming
	case errors.Is(err, payload.ErrDecode):
		return ExitDecode
	case errors.As(err, &duplicateError):
		return ExitDuplicate
	case errors.As(err, &writeError):
		return ExitWrite
	case errors.Is(err, generate.ErrStale):
		return ExitStale
	default:
		return ExitFailure
	}
}
