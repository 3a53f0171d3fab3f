// Package bundle concatenates the source files of a directory tree into one
// output file: discovery, language filtering, ordering, deduplication and
// emission run in that order.
package bundle

import (
	"io"

	"codebundle/pkg/ignore"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Bundler runs bundle requests against one root directory.
type Bundler struct {
	fs        afero.Fs
	root      string
	languages LanguageMap
	exclude   *ignore.Matcher
	out       io.Writer // Operator-facing messages (warnings).
	logger    *zap.Logger
}

// Option customises a Bundler.
type Option func(*Bundler)

// WithLanguages replaces the default language table.
func WithLanguages(m LanguageMap) Option {
	return func(b *Bundler) { b.languages = m }
}

// WithExcluder replaces the default exclusion matcher.
func WithExcluder(m *ignore.Matcher) Option {
	return func(b *Bundler) { b.exclude = m }
}

// WithOutput sets where operator warnings are printed.
func WithOutput(w io.Writer) Option {
	return func(b *Bundler) { b.out = w }
}

// New creates a Bundler that discovers files under root on fsys.
func New(fsys afero.Fs, root string, logger *zap.Logger, opts ...Option) *Bundler {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Bundler{
		fs:        fsys,
		root:      root,
		languages: DefaultLanguages,
		out:       io.Discard,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.exclude == nil {
		b.exclude = ignore.Default(logger)
	}
	return b
}
