// Package ignore decides which discovered paths are left out of a bundle.
package ignore

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultFragments are the directory-name fragments excluded from every bundle.
// Matching is a case-insensitive substring test against the whole path, so a
// directory called "sobin" is excluded just like "bin".
var DefaultFragments = []string{"bin", "debug", "obj", ".git"}

// Matcher reports whether a path contains one of its fragments.
type Matcher struct {
	fragments []string    // Lower-cased fragments.
	logger    *zap.Logger // Optional logger for debug information.
}

// NewMatcher initializes a Matcher over the given fragments with an optional logger.
func NewMatcher(logger *zap.Logger, fragments ...string) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}
	for _, f := range fragments {
		if f == "" {
			continue
		}
		m.fragments = append(m.fragments, strings.ToLower(f))
	}
	return m
}

// Default returns a Matcher over DefaultFragments.
func Default(logger *zap.Logger) *Matcher {
	return NewMatcher(logger, DefaultFragments...)
}

// Fragments returns the lower-cased fragments the matcher tests for.
func (m *Matcher) Fragments() []string {
	out := make([]string, len(m.fragments))
	copy(out, m.fragments)
	return out
}

// MatchesPath checks if the path contains any fragment.
func (m *Matcher) MatchesPath(path string) bool {
	matches, _ := m.MatchesPathWithFragment(path)
	return matches
}

// MatchesPathWithFragment checks if the path contains any fragment and returns
// the first fragment found.
func (m *Matcher) MatchesPathWithFragment(path string) (bool, string) {
	lower := strings.ToLower(filepath.ToSlash(path))
	for _, f := range m.fragments {
		if strings.Contains(lower, f) {
			m.logger.Debug("Path matches excluded fragment",
				zap.String("path", path),
				zap.String("fragment", f))
			return true, f
		}
	}
	return false, ""
}
