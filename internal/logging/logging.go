// Package logging wires the engine's structured logging. All packages log
// through logr; zap provides the backing implementation.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logr's V().
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Log is the package-global logger for code without a context to thread one
// through. Defaults to a production zap logger; replaced by SetLogger.
var Log = NewLogger(INFO)

// SetLogger replaces the package-global logger.
func SetLogger(l logr.Logger) {
	Log = l
}

// NewLogger returns a zap-backed logr.Logger at the given verbosity.
func NewLogger(verbosity int) logr.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	zl, err := cfg.Build()
	if err != nil {
		// Config above is static; Build only fails on invalid sink paths.
		panic(err)
	}
	return zapr.NewLogger(zl)
}

// NewTestLogger installs a development logger for test suites and returns it.
func NewTestLogger() logr.Logger {
	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	l := zapr.NewLogger(zl)
	SetLogger(l)
	return l
}
