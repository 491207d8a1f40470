// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/protogen/lib/emit"
)

// Compression identifies how a saved capture is stored.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// DetectCompression inspects the leading bytes of a saved capture.
func DetectCompression(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// CompressionForPath picks the storage format for a capture file from
// its extension: ".zst" and ".zstd" for zstd, ".lz4" for lz4, anything
// else plain.
func CompressionForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// File reads a capture saved on disk.
type File struct {
	Path string
}

// Describe implements [Provider].
func (f File) Describe() string {
	return f.Path
}

// Capture reads and, if needed, decompresses the file.
func (f File) Capture(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LaunchError{Source: f.Path, ExitCode: -1, Err: err}
	}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &LaunchError{Source: f.Path, ExitCode: -1, Err: err}
	}

	decoded, err := Decompress(data)
	if err != nil {
		return nil, &LaunchError{Source: f.Path, ExitCode: -1, Err: err}
	}
	return decoded, nil
}

// Decompress returns data unchanged when it is a plain capture and the
// decompressed bytes otherwise.
func Decompress(data []byte) ([]byte, error) {
	switch DetectCompression(data) {
	case CompressionZstd:
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decoder: %w", err)
		}
		defer decoder.Close()
		decoded, err := decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return decoded, nil

	case CompressionLZ4:
		decoded, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return decoded, nil

	default:
		return data, nil
	}
}

// Compress encodes a capture for storage.
func Compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone, "":
		return data, nil

	case CompressionZstd:
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd encoder: %w", err)
		}
		defer encoder.Close()
		return encoder.EncodeAll(data, nil), nil

	case CompressionLZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported compression %q", compression)
	}
}

// Save writes a capture to path for later replay, compressed according
// to [CompressionForPath]. The write is atomic; failures are
// [*emit.WriteError].
func Save(path string, data []byte) error {
	encoded, err := Compress(data, CompressionForPath(path))
	if err != nil {
		return err
	}
	return emit.WriteFile(path, encoded)
}
