package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dargueta/flagrle"
	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "FLAGRLE_LOG_LEVEL"
	EnvLogNoColor = "FLAGRLE_LOG_NOCOLOR"
)

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	noColor, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvLogNoColor)))
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "flagrle").Logger()
}

// resolveLevel picks the log level: the command-line flag wins over the
// environment, which wins over the configuration file.
func resolveLevel(configured zerolog.Level, flagValue string) (zerolog.Level, error) {
	if strings.TrimSpace(flagValue) != "" {
		return parseLevel(flagValue)
	}
	if env := os.Getenv(EnvLogLevel); strings.TrimSpace(env) != "" {
		return parseLevel(env)
	}
	return configured, nil
}

func parseLevel(raw string) (zerolog.Level, error) {
	switch value := strings.ToLower(strings.TrimSpace(raw)); value {
	case "warning":
		return zerolog.WarnLevel, nil
	case "off", "none":
		return zerolog.Disabled, nil
	default:
		level, err := zerolog.ParseLevel(value)
		if err != nil || value == "" {
			return zerolog.NoLevel, flagrle.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("unrecognized log level %q", raw))
		}
		return level, nil
	}
}
