package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init installs the global zap logger: JSON for production, console otherwise.
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)
	switch environment {
	case "production", "prod":
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(l)

	return nil
}
