package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// NewNamed creates a named zap logger. Development environments get the
// human-readable development config, everything else gets the production
// JSON config.
func NewNamed(env, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if env == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log.Named(name), nil
}
