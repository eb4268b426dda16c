package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns the production JSON logger.
func New() (*zap.Logger, error) {
	return build(false)
}

// NewDebug returns a human-readable development logger with debug level enabled.
func NewDebug() (*zap.Logger, error) {
	return build(true)
}

func build(debug bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if debug {
		log, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.DisableStacktrace = true
		log, err = cfg.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}
	return log.Named("minard"), nil
}
