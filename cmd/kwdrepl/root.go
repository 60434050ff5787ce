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

package main

import (
	"context"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/kwdrepl/pkg/config"
	"github.com/walteh/kwdrepl/pkg/log"
	"github.com/walteh/kwdrepl/pkg/operation"
	"github.com/walteh/kwdrepl/pkg/rule"
	"github.com/walteh/kwdrepl/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎮 Handler holds the parsed flags and the output streams of one invocation
type Handler struct {
	logRecords bool
	delimiter  string
	rulesFile  string
	include    []string
	exclude    []string
	parallel   int
	atomic     bool
	keepGoing  bool
	dryRun     bool
	summary    bool
	debug      bool

	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
}

// 🌳 newRootCommand builds the kwdrepl command bound to h
func newRootCommand(h *Handler) *cobra.Command {
	info := readVersionInfo()

	cmd := &cobra.Command{
		Use:   "kwdrepl [flags] <path> <keywords> <replacements>",
		Short: "Replace keywords in a file or directory tree, in place",
		Long: `kwdrepl rewrites every file under <path> (or <path> itself when it is a
file), replacing each keyword with the replacement at the same position.

Keywords and replacements are separated by "~" (see --delimiter), so
"foo~bar" "baz~qux" replaces foo with baz, then bar with qux. Rules run
in order on each line and a later rule sees the output of the earlier ones.

With --rules, the rules come from a .yaml, .yml, .hcl or .json file and
only <path> is given on the command line.`,
		Example: `  kwdrepl ./src oldName newName
  kwdrepl --log ./docs 'colour~grey' 'color~gray'
  kwdrepl --rules rules.yaml --exclude '.git' .`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			want := 3
			if h.rulesFile != "" {
				want = 1
			}
			if len(args) != want {
				return errors.Errorf("%w: expected %d arguments, got %d", rule.ErrConfiguration, want, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Run(cmd.Context(), args)
		},
	}

	cmd.SetVersionTemplate(formatVersion(info))
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.Errorf("%w: %s", rule.ErrConfiguration, err.Error())
	})

	flags := cmd.Flags()
	flags.BoolVarP(&h.logRecords, "log", "l", false, "print one line per replacement to stdout")
	flags.StringVar(&h.delimiter, "delimiter", rule.DefaultDelimiter, "separator between keywords and between replacements")
	flags.StringVarP(&h.rulesFile, "rules", "r", "", "load rules from a .yaml, .yml, .hcl or .json file")
	flags.StringArrayVarP(&h.include, "include", "i", nil, "only process files matching this glob (repeatable)")
	flags.StringArrayVarP(&h.exclude, "exclude", "e", nil, "skip files and directories matching this glob (repeatable)")
	flags.IntVarP(&h.parallel, "parallel", "j", 1, "number of files processed at once")
	flags.BoolVar(&h.atomic, "atomic", false, "write through a temporary file and rename")
	flags.BoolVar(&h.keepGoing, "keep-going", false, "continue with the remaining files after a failure")
	flags.BoolVarP(&h.dryRun, "dry-run", "n", false, "compute and log replacements without writing")
	flags.BoolVar(&h.summary, "summary", false, "print per-file results and totals to stderr")
	flags.BoolVarP(&h.debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// 🔧 setupLogging builds the zerolog logger and the replacement logger and
// stores both in the context
func (h *Handler) setupLogging(ctx context.Context) (context.Context, *zerolog.Logger) {
	level := zerolog.InfoLevel
	if h.debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: h.stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	h.logger = log.New(h.stdout, h.stderr, zlog)

	ctx = zlog.WithContext(ctx)
	ctx = log.NewContext(ctx, h.logger)
	return ctx, &zlog
}

// 📚 loadRules returns the rules and globs from either the rule file or the
// positional arguments. Globs from the file come before the flag globs.
func (h *Handler) loadRules(ctx context.Context, args []string) (rule.Set, []string, []string, error) {
	if h.rulesFile == "" {
		rules, err := rule.Parse(args[1], args[2], h.delimiter)
		if err != nil {
			return nil, nil, nil, err
		}
		return rules, h.include, h.exclude, nil
	}

	cfg, err := config.Load(ctx, h.rulesFile)
	if err != nil {
		return nil, nil, nil, err
	}
	include := append(append([]string{}, cfg.Include...), h.include...)
	exclude := append(append([]string{}, cfg.Exclude...), h.exclude...)
	return cfg.Rules, include, exclude, nil
}

// 🏃 Run performs one invocation
func (h *Handler) Run(ctx context.Context, args []string) error {
	ctx, zlog := h.setupLogging(ctx)

	rules, include, exclude, err := h.loadRules(ctx, args)
	if err != nil {
		return err
	}

	zlog.Debug().
		Int("rules", len(rules)).
		Strs("include", include).
		Strs("exclude", exclude).
		Msg("rules loaded")

	mgr := status.New(zlog)
	summary, runErr := operation.Run(ctx, operation.Options{
		Path:      args[0],
		Rules:     rules,
		Log:       h.logRecords,
		Include:   include,
		Exclude:   exclude,
		Parallel:  h.parallel,
		Atomic:    h.atomic,
		KeepGoing: h.keepGoing,
		DryRun:    h.dryRun,
		Reporter:  mgr,
	})

	if h.summary && summary != nil {
		results := mgr.Results()
		sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

		reporter := status.NewReporter(h.stderr)
		reporter.ReportFiles(results)
		reporter.ReportSummary(*summary)
	}

	return runErr
}
