package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dargueta/flagrle"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Config holds the settings shared by every command.
type Config struct {
	Options  flagrle.Options
	Gzip     bool
	LogLevel zerolog.Level
}

func DefaultConfig() Config {
	return Config{
		Options:  flagrle.DefaultOptions,
		LogLevel: zerolog.InfoLevel,
	}
}

type fileConfig struct {
	TextSafe bool   `toml:"text_safe"`
	FlagByte int    `toml:"flag_byte"`
	FlagChar string `toml:"flag_char"`
	Gzip     bool   `toml:"gzip"`
	LogLevel string `toml:"log_level"`
}

// loadConfig reads a TOML configuration file. Keys missing from the file keep
// their defaults. An empty path gives the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return Config{}, flagrle.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("unknown keys in %s: %s", path, strings.Join(keys, ", ")),
		)
	}

	if meta.IsDefined("text_safe") {
		cfg.Options.TextSafe = raw.TextSafe
	}
	if meta.IsDefined("gzip") {
		cfg.Gzip = raw.Gzip
	}

	if meta.IsDefined("flag_byte") && meta.IsDefined("flag_char") {
		return Config{}, flagrle.ErrInvalidArgument.WithMessage(
			"flag_byte and flag_char can't both be set")
	}
	if meta.IsDefined("flag_byte") {
		if raw.FlagByte < 0 || raw.FlagByte > 255 {
			return Config{}, flagrle.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("flag_byte must be in [0, 255], got %d", raw.FlagByte))
		}
		cfg.Options.FlagByte = byte(raw.FlagByte)
	}
	if meta.IsDefined("flag_char") {
		flag, err := flagrle.FlagByteFromChar(raw.FlagChar)
		if err != nil {
			return Config{}, err
		}
		cfg.Options.FlagByte = flag
	}

	if meta.IsDefined("log_level") {
		level, err := parseLevel(raw.LogLevel)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

// withFlags returns a copy of the configuration with any options given on the
// command line applied on top.
func (cfg Config) withFlags(ctx *cli.Context) (Config, error) {
	if ctx.IsSet("text-safe") {
		cfg.Options.TextSafe = ctx.Bool("text-safe")
	}
	if ctx.IsSet("gzip") {
		cfg.Gzip = ctx.Bool("gzip")
	}

	if ctx.IsSet("flag") && ctx.IsSet("flag-char") {
		return Config{}, flagrle.ErrInvalidArgument.WithMessage(
			"--flag and --flag-char can't both be given")
	}
	if ctx.IsSet("flag") {
		value := ctx.Uint("flag")
		if value > 255 {
			return Config{}, flagrle.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("--flag must be in [0, 255], got %d", value))
		}
		cfg.Options.FlagByte = byte(value)
	}
	if ctx.IsSet("flag-char") {
		flag, err := flagrle.FlagByteFromChar(ctx.String("flag-char"))
		if err != nil {
			return Config{}, err
		}
		cfg.Options.FlagByte = flag
	}
	return cfg, nil
}
