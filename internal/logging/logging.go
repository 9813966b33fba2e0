// Package logging provides the debug tracer shared by cmd/readwln and
// cmd/writewln. It wraps zap the way turtacn-KeyIP-Intelligence's CLI
// logging layer does: a console encoder to stderr, silent unless -d is
// set. Only the writer/reader's debug trace calls go through here —
// returned errors are plain Go errors (internal/wlnerr), never logged as
// a substitute for being returned.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a sugared logger writing to stderr. debug selects
// zapcore.DebugLevel (trace-level parser/writer state transitions);
// otherwise only warnings and above are emitted.
func New(debug bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than fail the CLI over a
		// logging misconfiguration.
		logger = zap.NewNop()
	}
	return logger.Sugar()
}
