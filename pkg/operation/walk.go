// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 filter decides which walked paths are processed. Patterns are doublestar
// globs matched against slash separated paths relative to the walk root.
type filter struct {
	include []string
	exclude []string
	logger  *zerolog.Logger
}

func matchAny(logger *zerolog.Logger, patterns []string, rel string) (string, bool) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return pattern, true
		}
	}
	return "", false
}

// skipDir reports whether a directory is excluded and should be pruned
func (f *filter) skipDir(rel string) bool {
	if pattern, ok := matchAny(f.logger, f.exclude, rel); ok {
		f.logger.Debug().Str("dir", rel).Str("pattern", pattern).Msg("directory excluded by pattern")
		return true
	}
	return false
}

// keepFile reports whether a file passes the include and exclude patterns
func (f *filter) keepFile(rel string) bool {
	if pattern, ok := matchAny(f.logger, f.exclude, rel); ok {
		f.logger.Debug().Str("file", rel).Str("pattern", pattern).Msg("file excluded by pattern")
		return false
	}
	if len(f.include) == 0 {
		return true
	}
	if _, ok := matchAny(f.logger, f.include, rel); ok {
		return true
	}
	f.logger.Debug().Str("file", rel).Msg("file not matched by any include pattern")
	return false
}

// 📂 collectFiles returns every regular file under root that passes the
// filter. Symlinks to regular files are kept, symlinked directories are not
// descended into, and special files are skipped.
func collectFiles(ctx context.Context, root string, f *filter) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &FileError{Op: "walk", Path: path, Err: err}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &FileError{Op: "walk", Path: path, Err: err}
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != root && f.skipDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !f.keepFile(rel) {
			return nil
		}

		regular, err := isRegularFile(path, d)
		if err != nil {
			return &FileError{Op: "stat", Path: path, Err: err}
		}
		if !regular {
			f.logger.Debug().Str("file", path).Str("mode", d.Type().String()).Msg("skipping non-regular file")
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// isRegularFile follows symlinks. A dangling symlink is not a regular file.
func isRegularFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
