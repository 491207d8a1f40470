// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/protogen/cmd/protogen/cli"
	"github.com/bureau-foundation/protogen/lib/capture"
	"github.com/bureau-foundation/protogen/lib/catalog"
	"github.com/bureau-foundation/protogen/lib/generate"
)

const keysUsage = "protogen keys [flags] <capture-file>"

func keysCommand(stdout io.Writer) *cli.Command {
	var flags pipelineFlags

	return &cli.Command{
		Name:    "keys",
		Summary: "List the catalog keys in a saved capture",
		Description: `Print one row per catalog key in payload order: its ordinal, the key
as the game reported it, and the identifier it is generated as.
Identifiers that needed a suffix to stay unique, or a trailing
underscore to avoid a reserved word, are highlighted on terminals.`,
		Usage: keysUsage,
		Flags: func() *pflag.FlagSet {
			return flags.newFlagSet("keys", flagGroups{})
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			path, err := existingFile(args, "capture file", keysUsage)
			if err != nil {
				return err
			}
			cfg, err := flags.resolve()
			if err != nil {
				return err
			}
			options, err := flags.options(cfg)
			if err != nil {
				return err
			}

			raw, err := capture.File{Path: path}.Capture(ctx)
			if err != nil {
				return err
			}
			result, err := generate.Build(raw, options, logger)
			if err != nil {
				return err
			}
			return writeKeyTable(stdout, result.Entries, options.Catalog.Casing)
		},
	}
}

// writeKeyTable prints entries as aligned columns. Widths are measured
// in terminal cells so wide runes in keys and styled headers line up.
func writeKeyTable(w io.Writer, entries []catalog.Entry, casing catalog.Casing) error {
	renderer := lipgloss.NewRenderer(w)
	headerStyle := renderer.NewStyle().Bold(true)
	adjustedStyle := renderer.NewStyle().Foreground(lipgloss.Color("3"))

	header := []string{"ORDINAL", "KEY", "IDENTIFIER"}
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		identifier := entry.Identifier
		if identifier != catalog.Sanitize(entry.Key, casing) {
			identifier = adjustedStyle.Render(identifier)
		}
		rows[i] = []string{strconv.Itoa(entry.Ordinal), entry.Key, identifier}
	}

	widths := make([]int, len(header))
	for column, title := range header {
		widths[column] = ansi.StringWidth(title)
	}
	for _, row := range rows {
		for column, cell := range row {
			widths[column] = max(widths[column], ansi.StringWidth(cell))
		}
	}

	styledHeader := make([]string, len(header))
	for column, title := range header {
		styledHeader[column] = headerStyle.Render(title)
	}

	var builder strings.Builder
	writeRow(&builder, styledHeader, widths)
	for _, row := range rows {
		writeRow(&builder, row, widths)
	}
	_, err := io.WriteString(w, builder.String())
	if err != nil {
		return fmt.Errorf("writing key table: %w", err)
	}
	return nil
}

func writeRow(builder *strings.Builder, cells []string, widths []int) {
	for column, cell := range cells {
		builder.WriteString(cell)
		if column == len(cells)-1 {
			break
		}
		builder.WriteString(strings.Repeat(" ", widths[column]-ansi.StringWidth(cell)+2))
	}
	builder.WriteByte('\n')
}
