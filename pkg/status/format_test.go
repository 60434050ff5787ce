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
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter(t *testing.T) {
	f := NewDefaultFileFormatter()

	tests := []struct {
		name   string
		result FileResult
		want   string
	}{
		{
			name:   "modified",
			result: FileResult{Path: "a.txt", Status: StatusModified, Replacements: 2},
			want:   "📝 Modified a.txt (2 replacements)",
		},
		{
			name:   "modified_single",
			result: FileResult{Path: "a.txt", Status: StatusModified, Replacements: 1},
			want:   "📝 Modified a.txt (1 replacement)",
		},
		{
			name:   "previewed",
			result: FileResult{Path: "a.txt", Status: StatusPreviewed, Replacements: 3},
			want:   "👀 Would modify a.txt (3 replacements)",
		},
		{
			name:   "unchanged",
			result: FileResult{Path: "b.txt", Status: StatusUnchanged},
			want:   "👍 Unchanged b.txt",
		},
		{
			name:   "failed",
			result: FileResult{Path: "c.txt", Status: StatusFailed, Error: errors.New("permission denied")},
			want:   "❌ Failed c.txt: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.FormatFileResult(tt.result))
		})
	}
}

func TestDefaultFileFormatter_Progress(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "⏳ Progress: 1/4 (25%)", f.FormatProgress(1, 4))
	assert.Equal(t, "✅ Progress: 4/4 (100%)", f.FormatProgress(4, 4))
	assert.Equal(t, "✅ Progress: 0/0 (0%)", f.FormatProgress(0, 0))
}

func TestDefaultFileFormatter_Summary(t *testing.T) {
	f := NewDefaultFileFormatter()
	assert.Equal(t, "0 replacements in 0 files", f.FormatSummary(Summary{}))
	assert.Equal(t, "3 replacements in 2 files, 1 modified, 1 unchanged",
		f.FormatSummary(Summary{Files: 2, Modified: 1, Unchanged: 1, Replacements: 3}))
	assert.Equal(t, "1 replacement in 1 file, 1 would change",
		f.FormatSummary(Summary{Files: 1, Previewed: 1, Replacements: 1}))
	assert.Equal(t, "0 replacements in 1 file, 1 failed",
		f.FormatSummary(Summary{Files: 1, Failed: 1}))
}

func TestFormatFileLine(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	got := FormatFileLine(FileResult{Path: "a.txt", Status: StatusModified, Replacements: 2})
	assert.Equal(t, "    ⟳ a.txt                               modified   2", got)

	got = FormatFileLine(FileResult{Path: "b.txt", Status: StatusUnchanged})
	assert.Equal(t, "    - b.txt                               unchanged  0", got)
}

func TestReporter(t *testing.T) {
	color.NoColor = true
	pterm.DisableStyling()
	defer func() {
		color.NoColor = false
		pterm.EnableStyling()
	}()

	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.ReportFiles([]FileResult{
		{Path: "a.txt", Status: StatusModified, Replacements: 1},
		{Path: "b.txt", Status: StatusFailed, Error: errors.New("boom")},
	})
	r.ReportSummary(Summary{Files: 2, Modified: 1, Failed: 1, Replacements: 1})

	out := buf.String()
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "1 replacement in 2 files, 1 modified, 1 failed")

	buf.Reset()
	r.ReportSummary(Summary{Files: 1, Unchanged: 1})
	assert.Contains(t, buf.String(), "0 replacements in 1 file, 1 unchanged")
}
