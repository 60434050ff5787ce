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
	"fmt"
)

// FileFormatter defines how file results and progress should be formatted
type FileFormatter interface {
	// FormatFileResult formats a per-file message
	FormatFileResult(result FileResult) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatSummary formats the totals of a run
	FormatSummary(summary Summary) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileResult formats a per-file message with emojis
func (f *DefaultFileFormatter) FormatFileResult(result FileResult) string {
	switch result.Status {
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s (%s)", result.Path, plural(result.Replacements, "replacement"))
	case StatusPreviewed:
		return fmt.Sprintf("👀 Would modify %s (%s)", result.Path, plural(result.Replacements, "replacement"))
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s: %v", result.Path, result.Error)
	default:
		return fmt.Sprintf("👍 Unchanged %s", result.Path)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatSummary formats the totals of a run
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	msg := fmt.Sprintf("%s in %s", plural(s.Replacements, "replacement"), plural(s.Files, "file"))
	if s.Modified > 0 {
		msg += fmt.Sprintf(", %d modified", s.Modified)
	}
	if s.Previewed > 0 {
		msg += fmt.Sprintf(", %d would change", s.Previewed)
	}
	if s.Unchanged > 0 {
		msg += fmt.Sprintf(", %d unchanged", s.Unchanged)
	}
	if s.Failed > 0 {
		msg += fmt.Sprintf(", %d failed", s.Failed)
	}
	return msg
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
