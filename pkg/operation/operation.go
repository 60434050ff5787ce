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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/kwdrepl/pkg/config"
	"github.com/walteh/kwdrepl/pkg/rule"
	"github.com/walteh/kwdrepl/pkg/status"
	"github.com/walteh/kwdrepl/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains everything a run needs
type Options struct {
	// Path is the file or directory to process
	Path string
	// Rules are applied in order to every line of every file
	Rules rule.Set
	// Log writes one record per replacement to the logger in the context
	Log bool
	// Include and Exclude are doublestar globs relative to Path. They only
	// apply when Path is a directory.
	Include []string
	Exclude []string
	// Parallel is the number of files processed at once; <= 1 is sequential
	Parallel int
	// Atomic writes through a temp file and rename instead of in place
	Atomic bool
	// KeepGoing processes the remaining files after a failure
	KeepGoing bool
	// DryRun computes and logs replacements without writing
	DryRun bool
	// Reporter tracks per-file results. A fresh status.Manager is used when nil.
	Reporter status.StatusReporter
}

// 🔍 Validate checks the options without touching the file system
func (o Options) Validate() error {
	if o.Path == "" {
		return errors.Errorf("%w: path is required", rule.ErrConfiguration)
	}
	if len(o.Rules) == 0 {
		return errors.Errorf("%w: at least one rule is required", rule.ErrConfiguration)
	}
	if err := o.Rules.Validate(); err != nil {
		return err
	}
	if o.Parallel < 0 {
		return errors.Errorf("%w: parallel must not be negative, got %d", rule.ErrConfiguration, o.Parallel)
	}
	if err := config.ValidatePatterns(o.Include); err != nil {
		return err
	}
	return config.ValidatePatterns(o.Exclude)
}

// 🚀 Run applies the rules to Path. A regular file is processed directly, a
// directory is walked recursively and every file in it is processed.
//
// Configuration problems, including a path that is neither a file nor a
// directory, are reported before any file is read. After that, unless
// KeepGoing is set, the first failing file stops the run; files already
// rewritten stay rewritten. The summary is returned even when err != nil.
func Run(ctx context.Context, opts Options) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	files, err := resolveFiles(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", opts.Path).
		Int("files", len(files)).
		Int("rules", len(opts.Rules)).
		Int("parallel", opts.Parallel).
		Bool("atomic", opts.Atomic).
		Bool("dry_run", opts.DryRun).
		Msg("processing files")

	mgr := status.New(logger)
	var reporter status.StatusReporter = mgr
	if opts.Reporter != nil {
		reporter = opts.Reporter
	}
	e := &engine{
		files:    mgr,
		reporter: reporter,
		replacer: text.NewLineReplacer(),
		rules:    opts.Rules,
		log:      opts.Log,
		atomic:   opts.Atomic,
		dryRun:   opts.DryRun,
	}

	reporter.StartOperation(ctx, len(files))

	runner := NewRunner(logger, opts.Parallel, opts.KeepGoing)
	err = runner.Run(ctx, files, func(ctx context.Context, path string) error {
		_, err := e.apply(ctx, path)
		return err
	})

	summary := reporter.Summary()
	return &summary, err
}

// resolveFiles turns the root path into the list of files to process
func resolveFiles(ctx context.Context, opts Options) ([]string, error) {
	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, &PathError{Path: opts.Path, Err: err}
	}

	switch {
	case info.Mode().IsRegular():
		return []string{opts.Path}, nil
	case info.IsDir():
		return walkRoot(ctx, opts)
	default:
		return nil, &PathError{Path: opts.Path}
	}
}

// walkRoot collects the files of a directory root. WalkDir does not descend
// into a symlinked root, so the link is resolved first and the collected
// paths are put back under opts.Path.
func walkRoot(ctx context.Context, opts Options) ([]string, error) {
	target, err := filepath.EvalSymlinks(opts.Path)
	if err != nil {
		return nil, &PathError{Path: opts.Path, Err: err}
	}

	files, err := collectFiles(ctx, target, &filter{
		include: opts.Include,
		exclude: opts.Exclude,
		logger:  zerolog.Ctx(ctx),
	})
	if err != nil {
		return nil, err
	}

	if target == opts.Path {
		return files, nil
	}

	zerolog.Ctx(ctx).Debug().Str("path", opts.Path).Str("target", target).Msg("walking resolved root")

	for i, file := range files {
		rel, err := filepath.Rel(target, file)
		if err != nil {
			return nil, &FileError{Op: "walk", Path: file, Err: err}
		}
		files[i] = filepath.Join(opts.Path, rel)
	}
	return files, nil
}
