package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	debug bool
)

func init() {
	Init(os.Getenv("ENVIRONMENT"))
}

// Init rebuilds the process logger. Development environments get a console
// encoder and debug output; everything else gets JSON at info level.
func Init(environment string) {
	var cfg zap.Config
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}

	mu.Lock()
	sugar = base.Sugar()
	debug = environment == "development"
	mu.Unlock()
}

// Use swaps in an existing zap logger, mostly for tests.
func Use(l *zap.Logger) {
	mu.Lock()
	sugar = l.WithOptions(zap.AddCallerSkip(1)).Sugar()
	mu.Unlock()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Info(format string, v ...interface{}) {
	current().Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	current().Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	mu.RLock()
	enabled := debug
	mu.RUnlock()
	if enabled {
		current().Debugf(format, v...)
	}
}

func Warn(format string, v ...interface{}) {
	current().Warnf(format, v...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = current().Sync()
}

// LogSnapshotError records a persistence failure that must not abort the caller.
func LogSnapshotError(key, action string, err error) {
	Warn("Snapshot error: action=%s, key=%s, error=%v", action, key, err)
}
