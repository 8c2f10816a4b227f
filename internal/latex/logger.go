// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It is a no-op logger unless SetLogger
// installed another one.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger replaces the package logger used by transcoders created without
// WithLogger. Call it before creating transcoders.
func SetLogger(l *zap.Logger) {
	logger = l
}
