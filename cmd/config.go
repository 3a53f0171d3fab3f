package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"codebundle/pkg/bundle"
	"codebundle/pkg/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config keys. Flags bound to a key take precedence over CODEBUNDLE_<KEY>
// environment variables, which take precedence over the config file.
const (
	keyOutput           = "output"
	keyNote             = "note"
	keySort             = "sort"
	keyRemoveEmptyLines = "remove_empty_lines"
	keyAuthor           = "author"
	keyLogLevel         = "log_level"
	keyDebug            = "debug"
)

// initConfig reads the config file and environment, then rebuilds the logger
// from the resolved settings.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.v
	v.SetFs(a.fs)

	v.SetDefault(keyOutput, bundle.DefaultOutput)
	v.SetDefault(keyNote, false)
	v.SetDefault(keySort, bundle.SortTokenNone)
	v.SetDefault(keyRemoveEmptyLines, false)
	v.SetDefault(keyAuthor, "")
	v.SetDefault(keyLogLevel, logging.DefaultLevel)
	v.SetDefault(keyDebug, false)

	if err := v.BindPFlag(keyDebug, cmd.Root().PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.SetConfigName(".codebundle")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("CODEBUNDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			a.logger.Error("Failed to read config file", zap.Error(err))
			return fmt.Errorf("failed to read config file: %w", err)
		}
		a.logger.Debug("No config file found, using defaults and flags")
	} else {
		a.logger.Debug("Using config file", zap.String("file", v.ConfigFileUsed()))
	}

	if a.setupLogger != nil {
		logger, err := a.setupLogger(v.GetBool(keyDebug), v.GetString(keyLogLevel))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		a.logger = logger
	}
	return nil
}
