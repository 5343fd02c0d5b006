// Package logger holds the process-wide zap logger of the conjugador
// binaries.
package logger

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger. It discards everything until Initialize
	// is called.
	Logger *zap.SugaredLogger

	// JSONOutput records whether Initialize chose structured output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the global logger. jsonOutput selects production
// JSON logs; otherwise a console encoder is used. Both write to stderr so
// that stdout stays free for command output. level is a zap level name
// such as "debug" or "warn"; "" means info.
func Initialize(jsonOutput bool, level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	JSONOutput = jsonOutput

	var z *zap.Logger
	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		z, err = cfg.Build()
		if err != nil {
			return errors.Wrap(err, "building json logger")
		}
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.EncodeCaller = nil
		z = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.AddSync(os.Stderr),
			lvl,
		))
	}
	Logger = z.Sugar()
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, errors.WithHint(
			errors.Wrapf(err, "log level %q", level),
			"use debug, info, warn or error",
		)
	}
	return lvl, nil
}

// Desugar returns the structured logger behind Logger, for libraries that
// take a *zap.Logger.
func Desugar() *zap.Logger {
	return Logger.Desugar()
}

// Cleanup flushes buffered entries. Call it before the process exits.
func Cleanup() {
	_ = Logger.Sync()
}
