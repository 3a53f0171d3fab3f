// File: pkg/bundle/traversal.go
package bundle

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Discover walks the root directory and returns every file whose path is not
// excluded, in lexical order within each directory.
func (b *Bundler) Discover() ([]string, error) {
	b.logger.Debug("Starting file discovery", zap.String("root", b.root))

	info, err := b.fs.Stat(b.root)
	if err != nil {
		return nil, classifyIO("discover", b.root, err, KindDirectoryNotFound)
	}
	if !info.IsDir() {
		return nil, &Error{Kind: KindDirectoryNotFound, Op: "discover", Arg: b.root, Err: errNotDirectory}
	}

	var files []string
	err = afero.Walk(b.fs, b.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			b.logger.Debug("Error accessing path during discovery", zap.String("path", path), zap.Error(err))
			return err
		}

		if path == b.root {
			return nil
		}

		if info.IsDir() {
			if b.exclude.MatchesPath(path) {
				b.logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if b.exclude.MatchesPath(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, classifyIO("discover", b.root, err, KindDirectoryNotFound)
	}

	b.logger.Debug("Completed file discovery", zap.Int("files", len(files)))
	return files, nil
}
