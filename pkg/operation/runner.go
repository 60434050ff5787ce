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
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/kwdrepl/pkg/log"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner calls a function once per file, one at a time or on a bounded
// number of goroutines.
type Runner struct {
	logger    *zerolog.Logger
	parallel  int
	keepGoing bool
}

// 🏗️ NewRunner creates a new runner. parallel <= 1 runs files sequentially.
// Without keepGoing the first error stops the run.
func NewRunner(logger *zerolog.Logger, parallel int, keepGoing bool) *Runner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{
		logger:    logger,
		parallel:  parallel,
		keepGoing: keepGoing,
	}
}

// 🏃 Run executes fn for every file
func (r *Runner) Run(ctx context.Context, files []string, fn func(ctx context.Context, path string) error) error {
	r.logger.Debug().
		Int("files", len(files)).
		Int("parallel", r.parallel).
		Bool("keep_going", r.keepGoing).
		Msg("running")

	if r.parallel > 1 {
		return r.runAsync(ctx, files, fn)
	}
	return r.runSync(ctx, files, fn)
}

// 🔄 runSync processes files in order
func (r *Runner) runSync(ctx context.Context, files []string, fn func(ctx context.Context, path string) error) error {
	var errs []error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation cancelled: %w", err)
		}
		if err := fn(ctx, file); err != nil {
			if !r.keepGoing {
				return err
			}
			log.FromContext(ctx).Warningf("continuing after failure: %v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ⚡ runAsync processes files on up to r.parallel goroutines. A failure
// cancels the group: files already started finish, no new file starts.
func (r *Runner) runAsync(ctx context.Context, files []string, fn func(ctx context.Context, path string) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)

	var (
		mu   sync.Mutex
		errs []error
	)

	for _, file := range files {
		if gctx.Err() != nil {
			break
		}
		file := file
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if err := fn(gctx, file); err != nil {
				if !r.keepGoing {
					return err
				}
				log.FromContext(gctx).Warningf("continuing after failure: %v", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Errorf("operation cancelled: %w", err)
	}
	return errors.Join(errs...)
}
