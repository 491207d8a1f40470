// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bureau-foundation/protogen/lib/capture"
	"github.com/bureau-foundation/protogen/lib/catalog"
	"github.com/bureau-foundation/protogen/lib/digest"
	"github.com/bureau-foundation/protogen/lib/emit"
	"github.com/bureau-foundation/protogen/lib/manifest"
	"github.com/bureau-foundation/protogen/lib/payload"
	"github.com/bureau-foundation/protogen/lib/scan"
)

// ErrStale is wrapped by the error Run returns in check mode when a
// generated file is missing or out of date.
var ErrStale = errors.New("generated file is out of date")

// Options configures one pipeline run.
type Options struct {
	// Output is the path of the generated source file. Required by Run.
	Output string

	// Manifest, when set, is where the CBOR manifest is written.
	Manifest string

	// SaveCapture, when set, receives the raw capture before it is
	// parsed, so a failing run can be replayed.
	SaveCapture string

	// Marker overrides [scan.DefaultMarker].
	Marker string

	Decode  payload.Options
	Catalog catalog.Options
	Target  emit.Target

	// Check compares instead of writing.
	Check bool
}

// Result describes a completed run.
type Result struct {
	Frame   scan.Frame
	Entries []catalog.Entry

	// Artifact is the rendered source file.
	Artifact []byte

	PayloadDigest  digest.Digest
	ArtifactDigest digest.Digest

	// Changed reports whether Artifact differs from the file that was
	// at Output before the run (true when there was none).
	Changed bool

	// Manifest is the manifest built for the run, nil when
	// Options.Manifest is empty.
	Manifest *manifest.Manifest
}

// Build turns a raw capture into a rendered artifact without touching
// the filesystem.
func Build(raw []byte, options Options, logger *slog.Logger) (*Result, error) {
	logger = orDiscard(logger)

	marker := options.Marker
	if marker == "" {
		marker = scan.DefaultMarker
	}
	frame, err := scan.LocateMarker(raw, []byte(marker))
	if err != nil {
		return nil, err
	}
	body := frame.Payload(raw)
	logger.Debug("located payload",
		"marker_offset", frame.MarkerOffset,
		"declared_length", frame.DeclaredLength,
	)

	root, err := payload.DecodeWith(body, options.Decode)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded payload", "kind", root.Kind().String(), "lenient", options.Decode.Lenient)

	catalogOptions := options.Catalog
	catalogOptions.Reserved = append(append([]string(nil), catalogOptions.Reserved...), options.Target.ReservedWords()...)
	entries, err := catalog.Extract(root, catalogOptions)
	if err != nil {
		return nil, err
	}
	logger.Debug("extracted catalog", "entries", len(entries), "select", options.Catalog.Select)

	artifact, err := emit.Render(entries, options.Target)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Frame:          frame,
		Entries:        entries,
		Artifact:       artifact,
		PayloadDigest:  digest.Sum(body),
		ArtifactDigest: digest.Sum(artifact),
	}
	if options.Manifest != "" {
		result.Manifest = manifest.Build(entries, options.Target, result.PayloadDigest)
	}
	logger.Debug("rendered artifact",
		"language", string(options.Target.Language),
		"bytes", len(artifact),
		"digest", result.ArtifactDigest.Short(),
	)
	return result, nil
}

// Run executes the full pipeline against provider.
func Run(ctx context.Context, provider capture.Provider, options Options, logger *slog.Logger) (*Result, error) {
	logger = orDiscard(logger)
	if options.Output == "" {
		return nil, errors.New("generate: output path is required")
	}

	raw, err := provider.Capture(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("captured output", "source", provider.Describe(), "bytes", len(raw))

	if options.SaveCapture != "" {
		if err := capture.Save(options.SaveCapture, raw); err != nil {
			return nil, err
		}
		logger.Debug("saved capture", "path", options.SaveCapture)
	}

	result, err := Build(raw, options, logger)
	if err != nil {
		return nil, err
	}

	previous, err := os.ReadFile(options.Output)
	switch {
	case err == nil:
		result.Changed = !bytes.Equal(previous, result.Artifact)
	case errors.Is(err, os.ErrNotExist):
		result.Changed = true
	case options.Check:
		return nil, &emit.WriteError{Op: "read", Path: options.Output, Err: err}
	default:
		// The install below reports the real failure, if any.
		previous = nil
		result.Changed = true
	}

	if options.Check {
		if err := checkFiles(result, previous, options); err != nil {
			return result, err
		}
		logger.Info("generated files are up to date",
			"output", options.Output,
			"entries", len(result.Entries),
		)
		return result, nil
	}

	// The manifest goes first: a failed manifest write leaves the previous
	// pair in place, and a failed artifact write leaves a manifest whose
	// artifact digest no longer matches, which check mode reports as stale.
	if result.Manifest != nil {
		if err := manifest.Write(options.Manifest, result.Manifest); err != nil {
			return nil, err
		}
	}
	if err := emit.WriteFile(options.Output, result.Artifact); err != nil {
		return nil, err
	}

	logger.Info("generated prototype enum",
		"output", options.Output,
		"entries", len(result.Entries),
		"changed", result.Changed,
		"payload_digest", result.PayloadDigest.Short(),
	)
	return result, nil
}

// checkFiles reports ErrStale when the artifact or manifest on disk
// differs from result.
func checkFiles(result *Result, previous []byte, options Options) error {
	if previous == nil {
		return fmt.Errorf("%s does not exist: %w", options.Output, ErrStale)
	}
	if digest.Sum(previous) != result.ArtifactDigest {
		return fmt.Errorf("%s differs from the catalog: %w", options.Output, ErrStale)
	}
	if result.Manifest == nil {
		return nil
	}

	want, err := manifest.Marshal(result.Manifest)
	if err != nil {
		return err
	}
	have, err := os.ReadFile(options.Manifest)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s does not exist: %w", options.Manifest, ErrStale)
	}
	if err != nil {
		return &emit.WriteError{Op: "read", Path: options.Manifest, Err: err}
	}
	if !bytes.Equal(have, want) {
		return fmt.Errorf("%s differs from the catalog: %w", options.Manifest, ErrStale)
	}
	return nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
