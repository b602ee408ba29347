// Package xzap is a thin wrapper over zap shared by the binaries, so the
// rest of the code logs through one configured instance.
package xzap

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// SetUp builds the global logger. Level is one of debug/info/warn/error,
// anything else falls back to info.
func SetUp(level string) error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	global = l
	mu.Unlock()
	return nil
}

// WithContext returns the configured logger. The context is accepted for
// parity with call sites that carry request scope; nothing is extracted
// from it yet.
func WithContext(ctx context.Context) *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = global.Sync()
}
