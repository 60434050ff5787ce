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

// Command kwdrepl replaces keywords in a file or in every file of a directory
// tree, in place.
package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/kwdrepl/pkg/log"
	"github.com/walteh/kwdrepl/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

const (
	exitOK            = 0
	exitFailure       = 1
	exitConfiguration = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// 🚀 run executes the command line and maps the outcome to an exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	h := &Handler{stdout: stdout, stderr: stderr}

	cmd := newRootCommand(h)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	logger := h.logger
	if logger == nil {
		logger = log.New(stdout, stderr, zerolog.Nop())
	}
	logger.Error(err.Error())

	if errors.Is(err, rule.ErrConfiguration) {
		return exitConfiguration
	}
	return exitFailure
}
