// Package logging provides logging helpers.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// New returns a console logger writing to w at the given level.
//
// Levels are colored only when w is a terminal.
func New(level zap.AtomicLevel, w zapcore.WriteSyncer) *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if isTerminal(w) {
		config.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.Lock(w), level)

	return zap.New(core, zap.AddCaller())
}

// Stderr returns a logger writing to the standard error at the given level.
func Stderr(level zap.AtomicLevel) *zap.Logger {
	return New(level, os.Stderr)
}

// isTerminal reports whether w is backed by a terminal.
func isTerminal(w zapcore.WriteSyncer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
