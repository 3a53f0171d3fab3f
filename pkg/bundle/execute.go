// File: pkg/bundle/execute.go
package bundle

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var warnColor = color.New(color.FgYellow)

// Run executes one bundle request: discovery, language filtering, ordering,
// deduplication and emission. The language is validated before anything is
// read or written.
func (b *Bundler) Run(req Request) (Result, error) {
	startTime := time.Now()
	if req.Output == "" {
		req.Output = DefaultOutput
	}
	logger := b.logger.With(zap.String("language", req.Language), zap.String("output", req.Output))
	logger.Debug("Starting bundle run", zap.String("root", b.root), zap.String("sort", req.Sort))

	if _, err := FilterByLanguage(nil, req.Language, b.languages); err != nil {
		logger.Error("Rejected bundle request", zap.Stringer("kind", KindOf(err)), zap.Error(err))
		return Result{}, err
	}

	mode, ok := ParseSortMode(req.Sort)
	if !ok {
		warnColor.Fprintf(b.out, "Invalid sort option %q. Defaulting to '%s' (by name).\n", req.Sort, SortTokenName)
		logger.Warn("Invalid sort option, sorting by name", zap.String("sort", req.Sort))
	}

	discovered, err := b.Discover()
	if err != nil {
		logger.Error("Failed to discover files", zap.Stringer("kind", KindOf(err)), zap.Error(err))
		return Result{}, err
	}

	files, err := FilterByLanguage(discovered, req.Language, b.languages)
	if err != nil {
		return Result{}, err
	}
	files = b.withoutOutput(files, req.Output)
	files = Dedupe(Order(files, mode))
	logger.Debug("Selected files", zap.Int("discovered", len(discovered)), zap.Int("selected", len(files)), zap.Stringer("sortMode", mode))

	n, err := b.Emit(files, req)
	if err != nil {
		logger.Error("Failed to write bundle", zap.Stringer("kind", KindOf(err)), zap.Int("written", n), zap.Error(err))
		return Result{Output: req.Output, Files: n}, fmt.Errorf("failed to write bundle: %w", err)
	}

	logger.Info("Bundle written", zap.Int("files", n), zap.Duration("elapsed", time.Since(startTime)))
	return Result{Output: req.Output, Files: n}, nil
}

// withoutOutput drops the bundle's own output path from files so a rerun never
// reads the file it is about to truncate. Both the output and the discovered
// paths are relative to the working directory, so they are compared in
// absolute form.
func (b *Bundler) withoutOutput(files []string, output string) []string {
	target := absPath(output)
	kept := files[:0:0]
	for _, f := range files {
		if absPath(f) == target {
			b.logger.Debug("Skipping bundle output file", zap.String("filePath", f))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// String formats the result as the confirmation shown to the operator.
func (r Result) String() string {
	return fmt.Sprintf("Successfully bundled %d file(s) into %s.", r.Files, r.Output)
}
