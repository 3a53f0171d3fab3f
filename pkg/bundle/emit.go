// File: pkg/bundle/emit.go
package bundle

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Emit writes the bundle for files to req.Output and returns the number of
// files written. The output is created or truncated. A failure part way
// through leaves whatever was already written, flushed and closed.
func (b *Bundler) Emit(files []string, req Request) (n int, err error) {
	b.logger.Debug("Writing bundle", zap.String("output", req.Output), zap.Int("files", len(files)))

	outFile, err := b.fs.Create(req.Output)
	if err != nil {
		return 0, classifyIO("create output", req.Output, err, KindDirectoryNotFound)
	}
	writer := bufio.NewWriter(outFile)
	defer func() {
		if flushErr := writer.Flush(); flushErr != nil {
			err = multierr.Append(err, writeFailed(req.Output, flushErr))
		}
		if closeErr := outFile.Close(); closeErr != nil {
			err = multierr.Append(err, &Error{Kind: KindUnclassified, Op: "close output", Arg: req.Output, Err: closeErr})
		}
	}()

	if req.Author != "" {
		if err := writeLine(writer, req.Author); err != nil {
			return 0, writeFailed(req.Output, err)
		}
	}

	for _, path := range files {
		if req.Note {
			if err := writeLine(writer, filepath.Join(filepath.Dir(path), filepath.Base(path))); err != nil {
				return n, writeFailed(req.Output, err)
			}
		}

		content, err := afero.ReadFile(b.fs, path)
		if err != nil {
			return n, classifyIO("read", path, err, KindUnclassified)
		}

		text := string(content)
		if req.RemoveEmptyLines {
			text = RemoveEmptyLines(text)
		}

		if err := writeLine(writer, text); err != nil {
			return n, writeFailed(req.Output, err)
		}
		if err := writeLine(writer, ""); err != nil {
			return n, writeFailed(req.Output, err)
		}
		n++
		b.logger.Debug("Added file to bundle", zap.String("filePath", path), zap.Int("contentSizeBytes", len(content)))
	}

	return n, nil
}

func writeFailed(output string, err error) error {
	return classifyIO("write output", output, err, KindUnclassified)
}

// RemoveEmptyLines drops every line that is exactly empty. Lines holding only
// whitespace are kept.
func RemoveEmptyLines(text string) string {
	lines := strings.Split(text, lineEnding)
	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, lineEnding)
}

func writeLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	_, err := w.WriteString(lineEnding)
	return err
}
