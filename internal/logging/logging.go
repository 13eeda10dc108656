// SPDX-License-Identifier: MIT
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction
type Options struct {
	Level string // debug, info, warn, error
	File  string // optional output path; stderr when empty
}

// New builds a production zap logger with the requested level and output.
// Unknown levels fall back to info.
func New(opts Options) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logLevel := zap.InfoLevel
	if opts.Level != "" {
		if err := logLevel.UnmarshalText([]byte(opts.Level)); err != nil {
			logLevel = zap.InfoLevel
		}
	}
	zapConfig.Level = zap.NewAtomicLevelAt(logLevel)

	if opts.File != "" {
		zapConfig.OutputPaths = []string{opts.File}
		zapConfig.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := zapConfig.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
