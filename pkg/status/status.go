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

package status

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what happened to a file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // Replacements were written back
	StatusUnchanged            // Nothing matched, file left alone
	StatusPreviewed            // Replacements found but not written (dry run)
	StatusFailed               // Reading, decoding or writing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPreviewed:
		return "previewed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the outcome of processing one file
type FileResult struct {
	Path         string     // Path as handed to the engine
	Status       FileStatus // What happened
	Replacements int        // Number of replacements made
	Error        error      // Failure, when Status is StatusFailed
}

// 📈 Summary totals a run
type Summary struct {
	Files        int
	Modified     int
	Unchanged    int
	Previewed    int
	Failed       int
	Replacements int
}

// 💾 FileManager handles the file system side of a rewrite
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile truncates and rewrites path in place. Not atomic.
	WriteFile(ctx context.Context, path string, content []byte) error

	// WriteFileAtomic writes a sibling temp file and renames it over path.
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 📈 StatusReporter tracks per-file results
type StatusReporter interface {
	StartOperation(ctx context.Context, total int)
	TrackFile(ctx context.Context, result FileResult)
	Results() []FileResult
	Summary() Summary
}

var (
	_ FileManager    = (*Manager)(nil)
	_ StatusReporter = (*Manager)(nil)
)

// 🔧 Manager implements both FileManager and StatusReporter
type Manager struct {
	logger    *zerolog.Logger
	formatter FileFormatter

	mu      sync.Mutex
	results []FileResult

	// Progress tracking
	total     int
	processed int
}

// 🏭 New creates a new status manager
func New(logger *zerolog.Logger) *Manager {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Manager{
		logger:    logger,
		formatter: NewDefaultFileFormatter(),
	}
}

// FileManager interface implementation

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	// mode only applies when the file has vanished since it was read
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	// Rename would replace a symlink with a regular file
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return errors.Errorf("resolving file: %w", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tempPath)
	}

	if _, err := tmp.Write(content); err != nil {
		cleanup()
		return errors.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		cleanup()
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, target); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// StatusReporter interface implementation

func (m *Manager) StartOperation(ctx context.Context, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.processed = 0
	m.results = make([]FileResult, 0, total)
	m.logger.Debug().Int("total", total).Msg(m.formatter.FormatProgress(0, total))
}

func (m *Manager) TrackFile(ctx context.Context, result FileResult) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = append(m.results, result)
	m.processed++

	event := m.logger.Debug()
	if result.Error != nil {
		event = m.logger.Error().Err(result.Error)
	}
	event.
		Str("path", result.Path).
		Str("status", result.Status.String()).
		Int("replacements", result.Replacements).
		Int("processed", m.processed).
		Int("total", m.total).
		Msg(m.formatter.FormatFileResult(result))
}

// Results returns the tracked results in the order they finished.
func (m *Manager) Results() []FileResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]FileResult, len(m.results))
	copy(out, m.results)
	return out
}

func (m *Manager) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s Summary
	for _, r := range m.results {
		s.Files++
		s.Replacements += r.Replacements
		switch r.Status {
		case StatusModified:
			s.Modified++
		case StatusUnchanged:
			s.Unchanged++
		case StatusPreviewed:
			s.Previewed++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
