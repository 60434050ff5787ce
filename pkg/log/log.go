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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/kwdrepl/pkg/text"
)

var (
	pathColor    = color.New(color.Bold)
	searchColor  = color.New(color.FgRed)
	replaceColor = color.New(color.FgGreen)
	ordinalColor = color.New(color.Faint)
)

// 🎯 Logger writes replacement records to the console and mirrors them to zerolog.
// Records go to console, warnings and errors go to diag.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	diag    io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console, diag io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		diag:    diag,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, io.Discard, zerolog.Nop())
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, or a discarding logger if none was set
func FromContext(ctx context.Context) *Logger {
	logger, ok := Lookup(ctx)
	if !ok {
		return Discard()
	}
	return logger
}

// Lookup returns the logger stored in ctx, if any.
func Lookup(ctx context.Context) (*Logger, bool) {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	return logger, ok
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// formatRecord renders a record in the same shape as text.Record.String,
// with color when the console supports it.
func formatRecord(rec text.Record) string {
	return fmt.Sprintf("%s:%d:%d: replaced %s with %s %s",
		pathColor.Sprint(rec.Path),
		rec.Line,
		rec.Column,
		searchColor.Sprint(rec.Search),
		replaceColor.Sprint(rec.Replace),
		ordinalColor.Sprintf("(%d)", rec.Ordinal))
}

// 📝 LogReplacements writes the records as one contiguous block
func (l *Logger) LogReplacements(ctx context.Context, records []text.Record) {
	if len(records) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, rec := range records {
		fmt.Fprintln(l.console, formatRecord(rec))

		l.zlog.Debug().
			Str("file", rec.Path).
			Int("line", rec.Line).
			Int("column", rec.Column).
			Str("search", rec.Search).
			Str("replace", rec.Replace).
			Int("rule", rec.Ordinal).
			Msg("replaced")
	}
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}
