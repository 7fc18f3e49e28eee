package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewNamed builds the service logger: production JSON config in any
// deployed environment, human-readable development config otherwise.
func NewNamed(env, service string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log.Named(service), nil
}
