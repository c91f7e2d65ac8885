package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dargueta/flagrle"
	"github.com/dargueta/flagrle/utilities/compression"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %s\n", err.Error())
		os.Exit(1)
	}
}

// appState is filled in before any command runs.
type appState struct {
	config Config
	logger zerolog.Logger
}

var optionFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "text-safe",
		Aliases: []string{"t"},
		Usage:   "use printable text-safe tokens",
	},
	&cli.UintFlag{
		Name:  "flag",
		Usage: "flag byte value to mark runs with (0 picks one automatically)",
	},
	&cli.StringFlag{
		Name:  "flag-char",
		Usage: "single character to mark runs with",
	},
}

var gzipFlag = &cli.BoolFlag{
	Name:    "gzip",
	Aliases: []string{"z"},
	Usage:   "gzip the run-length encoded data",
}

func newApp(stdout, stderr io.Writer) *cli.App {
	state := &appState{logger: zerolog.Nop()}

	return &cli.App{
		Name:      "flagrle",
		Usage:     "Compress files dominated by long runs of repeated bytes",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load defaults from a TOML file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or disabled",
			},
		},
		Before: func(ctx *cli.Context) error {
			cfg, err := loadConfig(ctx.String("config"))
			if err != nil {
				return err
			}
			cfg.LogLevel, err = resolveLevel(cfg.LogLevel, ctx.String("log-level"))
			if err != nil {
				return err
			}
			state.config = cfg
			state.logger = newLogger(stderr, cfg.LogLevel)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file",
				ArgsUsage: "INPUT OUTPUT",
				Flags:     append(append([]cli.Flag{}, optionFlags...), gzipFlag),
				Action:    state.compressFile,
			},
			{
				Name:      "decompress",
				Usage:     "Expand a compressed file",
				ArgsUsage: "INPUT OUTPUT",
				Flags:     []cli.Flag{gzipFlag},
				Action:    state.decompressFile,
			},
			{
				Name:      "stats",
				Usage:     "Print a CSV report of how well files compress",
				ArgsUsage: "FILE...",
				Flags:     optionFlags,
				Action:    state.printStats,
			},
		},
	}
}

func (state *appState) compressFile(ctx *cli.Context) error {
	cfg, err := state.config.withFlags(ctx)
	if err != nil {
		return err
	}

	return state.transformFile(ctx, "compress", func(input io.Reader, output io.Writer) (int64, error) {
		if cfg.Gzip {
			return compression.CompressImageWithOptions(input, output, cfg.Options)
		}
		return compression.CompressStream(input, output, cfg.Options)
	})
}

func (state *appState) decompressFile(ctx *cli.Context) error {
	cfg, err := state.config.withFlags(ctx)
	if err != nil {
		return err
	}

	return state.transformFile(ctx, "decompress", func(input io.Reader, output io.Writer) (int64, error) {
		if cfg.Gzip {
			return compression.DecompressImage(input, output)
		}
		return compression.DecompressStream(input, output)
	})
}

type transformFunc func(input io.Reader, output io.Writer) (int64, error)

// transformFile runs `transform` from the file named by the first argument into
// the one named by the second.
func (state *appState) transformFile(ctx *cli.Context, operation string, transform transformFunc) error {
	if ctx.Args().Len() != 2 {
		return flagrle.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("%s needs exactly two arguments: INPUT OUTPUT", operation))
	}
	sourceFilePath := ctx.Args().Get(0)
	outputFilePath := ctx.Args().Get(1)

	sourceFile, err := os.Open(sourceFilePath)
	if err != nil {
		return fmt.Errorf("failed to open file for reading: `%v`: %w", sourceFilePath, err)
	}
	defer sourceFile.Close()

	outFile, err := os.Create(outputFilePath)
	if err != nil {
		return fmt.Errorf("failed to open file for writing: `%v`: %w", outputFilePath, err)
	}

	nWritten, err := transform(sourceFile, outFile)
	if closeErr := outFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		state.logger.Error().Err(err).Str("input", sourceFilePath).Msgf("%s failed", operation)
		return err
	}

	state.logger.Info().
		Str("input", sourceFilePath).
		Str("output", outputFilePath).
		Int64("bytes_written", nWritten).
		Msgf("%s finished", operation)
	return nil
}
