package logger

import (
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init builds the process-wide logger. Development config in debug mode,
// production config otherwise.
func Init(ginMode string) error {
	var (
		base *zap.Logger
		err  error
	)
	if ginMode == "release" {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	log = base.Sugar()
	return nil
}

// L returns the shared logger, falling back to a no-op logger so tests
// don't have to call Init.
func L() *zap.SugaredLogger {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return log
}

// Sync flushes buffered log entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
