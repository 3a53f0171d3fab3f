// Package rsp writes and expands response files: text files holding a
// command line that can be replayed with "@path".
package rsp

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultFile is the response file written by the interactive command.
const DefaultFile = "command.rsp"

// Answers are the values gathered for one bundle invocation.
type Answers struct {
	Output           string
	Language         string
	Note             bool
	Sort             string
	RemoveEmptyLines bool
	Author           string
}

// Format renders answers as a single "bundle" command line. Values are
// double-quoted; empty optional values and false switches are left out. The
// language is always written since bundle requires it.
func Format(a Answers) string {
	parts := []string{"bundle"}
	if a.Output != "" {
		parts = append(parts, "--output", quote(a.Output))
	}
	parts = append(parts, "--language", quote(a.Language))
	if a.Note {
		parts = append(parts, "--note")
	}
	if a.Sort != "" {
		parts = append(parts, "--sort", quote(a.Sort))
	}
	if a.RemoveEmptyLines {
		parts = append(parts, "--remove-empty-lines")
	}
	if a.Author != "" {
		parts = append(parts, "--author", quote(a.Author))
	}
	return strings.Join(parts, " ")
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quote(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}

// Write stores the formatted answers in path, replacing any existing file.
func Write(fsys afero.Fs, path string, a Answers, logger *zap.Logger) error {
	line := Format(a)
	if err := afero.WriteFile(fsys, path, []byte(line), 0o644); err != nil {
		logger.Error("Failed to write response file", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to write response file %s: %w", path, err)
	}
	logger.Debug("Wrote response file", zap.String("path", path), zap.String("command", line))
	return nil
}
