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
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/kwdrepl/pkg/log"
	"github.com/walteh/kwdrepl/pkg/rule"
	"github.com/walteh/kwdrepl/pkg/status"
	"github.com/walteh/kwdrepl/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📄 ApplyRules rewrites a single file in place. When logRecords is set every
// replacement is written to the logger found in ctx (see log.NewContext), or
// to os.Stdout when ctx carries none.
//
// The write truncates the file and is not atomic; use Run with
// Options.Atomic for a temp-file-and-rename write.
func ApplyRules(ctx context.Context, path string, rules rule.Set, logRecords bool) (status.FileResult, error) {
	if err := rules.Validate(); err != nil {
		return status.FileResult{Path: path}, err
	}

	if _, ok := log.Lookup(ctx); logRecords && !ok {
		ctx = log.NewContext(ctx, log.New(os.Stdout, os.Stderr, *zerolog.Ctx(ctx)))
	}

	mgr := status.New(zerolog.Ctx(ctx))
	e := &engine{
		files:    mgr,
		reporter: mgr,
		replacer: text.NewLineReplacer(),
		rules:    rules,
		log:      logRecords,
	}
	return e.apply(ctx, path)
}

// ⚙️ engine runs the read, transform and write of one file
type engine struct {
	files    status.FileManager
	reporter status.StatusReporter
	replacer text.TextReplacer
	rules    rule.Set
	log      bool
	atomic   bool
	dryRun   bool
}

// apply processes path and tracks the outcome
func (e *engine) apply(ctx context.Context, path string) (status.FileResult, error) {
	res, err := e.process(ctx, path)
	if err != nil {
		res.Status = status.StatusFailed
		res.Error = err
	}
	e.reporter.TrackFile(ctx, res)
	return res, err
}

func (e *engine) process(ctx context.Context, path string) (status.FileResult, error) {
	res := status.FileResult{Path: path}

	content, err := e.files.ReadFile(ctx, path)
	if err != nil {
		return res, &FileError{Op: "read", Path: path, Err: err}
	}

	result, err := e.replacer.ReplaceText(ctx, bytes.NewReader(content), e.rules)
	if err != nil {
		if errors.Is(err, text.ErrInvalidEncoding) {
			return res, &FileError{Op: "decode", Path: path, Err: err}
		}
		return res, errors.Errorf("replacing text in %s: %w", path, err)
	}

	res.Replacements = result.ReplacementCount

	if e.log && len(result.Records) > 0 {
		for i := range result.Records {
			result.Records[i].Path = path
		}
		log.FromContext(ctx).LogReplacements(ctx, result.Records)
	}

	switch {
	case !result.WasModified:
		res.Status = status.StatusUnchanged
		return res, nil
	case e.dryRun:
		res.Status = status.StatusPreviewed
		return res, nil
	}

	write := e.files.WriteFile
	if e.atomic {
		write = e.files.WriteFileAtomic
	}
	if err := write(ctx, path, result.ModifiedContent); err != nil {
		return res, &FileError{Op: "write", Path: path, Err: err}
	}

	res.Status = status.StatusModified
	return res, nil
}
