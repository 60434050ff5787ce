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

package text

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/walteh/kwdrepl/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidEncoding is returned when content is not valid UTF-8.
var ErrInvalidEncoding = errors.Base("content is not valid UTF-8")

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// Records lists every replacement in the order it was made
	Records []Record

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	ReplaceText(ctx context.Context, content io.Reader, rules rule.Set) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules rule.Set) error
}

var _ TextReplacer = (*LineReplacer)(nil)

// LineReplacer implements TextReplacer one line at a time with ReplaceContent
type LineReplacer struct{}

// NewLineReplacer creates a new LineReplacer
func NewLineReplacer() *LineReplacer {
	return &LineReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *LineReplacer) ReplaceText(ctx context.Context, content io.Reader, rules rule.Set) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	if !utf8.Valid(originalContent) {
		return nil, errors.WithStack(ErrInvalidEncoding)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("replacing text: %w", err)
	}

	modified, records := ReplaceContent(string(originalContent), rules)

	result := &ReplacementResult{
		OriginalContent:  originalContent,
		ModifiedContent:  originalContent,
		Records:          records,
		ReplacementCount: len(records),
	}

	// a replacement may write back exactly what it matched
	if len(records) > 0 && modified != string(originalContent) {
		result.WasModified = true
		result.ModifiedContent = []byte(modified)
	}

	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *LineReplacer) ValidateRules(rules rule.Set) error {
	return rules.Validate()
}
