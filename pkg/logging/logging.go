package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger *zap.Logger

// DefaultLevel is the production log level when none is configured.
const DefaultLevel = "warn"

// Setup builds the global logger. Debug selects zap's development config and
// ignores level; otherwise level ("debug", "info", "warn", "error") applies to
// the production config.
func Setup(debug bool, level, appName, appVersion string) error {
	var err error
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		if level == "" {
			level = DefaultLevel
		}
		lvl, parseErr := zapcore.ParseLevel(level)
		if parseErr != nil {
			return fmt.Errorf("invalid log level %q: %w", level, parseErr)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}
