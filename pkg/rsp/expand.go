package rsp

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Expand replaces every "@path" argument with the arguments stored in the
// response file at path. Response files are split like a shell command line:
// quotes group words and '#' starts a comment. Expansion is not recursive.
func Expand(fsys afero.Fs, args []string, logger *zap.Logger) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) < 2 || !strings.HasPrefix(arg, "@") {
			out = append(out, arg)
			continue
		}

		path := arg[1:]
		content, err := afero.ReadFile(fsys, path)
		if err != nil {
			logger.Error("Failed to read response file", zap.String("path", path), zap.Error(err))
			return nil, fmt.Errorf("failed to read response file %s: %w", path, err)
		}

		words, err := shlex.Split(string(content))
		if err != nil {
			logger.Error("Failed to parse response file", zap.String("path", path), zap.Error(err))
			return nil, fmt.Errorf("failed to parse response file %s: %w", path, err)
		}
		logger.Debug("Expanded response file", zap.String("path", path), zap.Strings("args", words))
		out = append(out, words...)
	}
	return out, nil
}
