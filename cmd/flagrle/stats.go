package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dargueta/flagrle"
	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

// fileStats is one row of the `stats` report.
type fileStats struct {
	File           string  `csv:"file"`
	OriginalSize   int     `csv:"original_size"`
	CompressedSize int     `csv:"compressed_size"`
	Ratio          float64 `csv:"ratio"`
	FlagByte       int     `csv:"flag_byte"`
	TextSafe       bool    `csv:"text_safe"`
	Escaped        bool    `csv:"escaped"`
	Tokens         int     `csv:"tokens"`
	Literals       int     `csv:"literals"`
}

func (state *appState) printStats(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return flagrle.ErrInvalidArgument.WithMessage("stats needs at least one FILE")
	}

	cfg, err := state.config.withFlags(ctx)
	if err != nil {
		return err
	}

	var result *multierror.Error
	rows := make([]*fileStats, 0, ctx.Args().Len())
	for _, path := range ctx.Args().Slice() {
		row, err := collectStats(path, cfg.Options)
		if err != nil {
			state.logger.Warn().Err(err).Str("file", path).Msg("skipping file")
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		state.logger.Debug().
			Str("file", path).
			Int("tokens", row.Tokens).
			Float64("ratio", row.Ratio).
			Msg("collected stats")
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		if err := gocsv.Marshal(rows, ctx.App.Writer); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return result.ErrorOrNil()
}

// collectStats compresses the file at `path`, checks that it decompresses to
// the original, and reports on the compressed form.
func collectStats(path string, options flagrle.Options) (*fileStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	compressed, err := flagrle.Compress(data, options)
	if err != nil {
		return nil, err
	}

	restored, err := flagrle.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(data, restored) {
		return nil, fmt.Errorf("round trip produced different data (%d bytes, expected %d)",
			len(restored), len(data))
	}

	info, err := flagrle.Inspect(compressed)
	if err != nil {
		return nil, err
	}

	ratio := 1.0
	if len(data) > 0 {
		ratio = float64(len(compressed)) / float64(len(data))
	}
	return &fileStats{
		File:           path,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
		Ratio:          ratio,
		FlagByte:       int(info.FlagByte),
		TextSafe:       info.TextSafe,
		Escaped:        info.Escaped(),
		Tokens:         info.Tokens,
		Literals:       info.Literals,
	}, nil
}
