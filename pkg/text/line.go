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
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/walteh/kwdrepl/pkg/rule"
)

// 📝 Record describes one substitution
type Record struct {
	Path    string // File the line belongs to
	Line    int    // 1-based line number
	Column  int    // 0-based offset of the match, in characters
	Search  string // Matched text
	Replace string // Text written in its place
	Ordinal int    // 1-based position of the rule in the set
}

// String renders the record as "path:line:column: replaced search with replace (ordinal)".
func (r Record) String() string {
	return fmt.Sprintf("%s:%d:%d: replaced %s with %s (%d)", r.Path, r.Line, r.Column, r.Search, r.Replace, r.Ordinal)
}

// ✂️ SplitLines splits s after every "\n". Each line keeps its terminator, so
// strings.Join(SplitLines(s), "") == s. The last line has no terminator when
// s does not end with one.
func SplitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// 🔄 ReplaceLine applies the rules to a single line, in order. Each rule sees
// the line as left by the rules before it.
//
// Within one rule the scan resumes right after the inserted replacement, so
// text produced by a rule is never matched again by that same rule. The
// returned records carry Column, Search, Replace and Ordinal; Path and Line
// are left for the caller.
func ReplaceLine(line string, rules rule.Set) (string, []Record) {
	var records []Record
	for i, r := range rules {
		var recs []Record
		line, recs = replaceAll(line, r, rules.Ordinal(i))
		records = append(records, recs...)
	}
	return line, records
}

// replaceAll is a find-at-or-after-cursor loop. Since the cursor always lands
// past the replacement, the untouched tail of the line is all that is ever
// searched, which lets the output be built in one pass.
func replaceAll(line string, r rule.Rule, ordinal int) (string, []Record) {
	if r.Search == "" {
		return line, nil
	}

	var (
		b       strings.Builder
		records []Record
		column  int
		rest    = line
	)

	for {
		idx := strings.Index(rest, r.Search)
		if idx < 0 {
			break
		}

		column += utf8.RuneCountInString(rest[:idx])
		records = append(records, Record{
			Column:  column,
			Search:  r.Search,
			Replace: r.Replace,
			Ordinal: ordinal,
		})

		b.WriteString(rest[:idx])
		b.WriteString(r.Replace)
		column += utf8.RuneCountInString(r.Replace)
		rest = rest[idx+len(r.Search):]
	}

	if records == nil {
		return line, nil
	}

	b.WriteString(rest)
	return b.String(), records
}

// 📄 ReplaceContent splits content into lines, runs ReplaceLine on each and
// joins the result back with the original terminators. Records get their
// 1-based line number.
func ReplaceContent(content string, rules rule.Set) (string, []Record) {
	if content == "" {
		return content, nil
	}

	var (
		b       strings.Builder
		records []Record
	)
	b.Grow(len(content))

	for n, line := range SplitLines(content) {
		out, recs := ReplaceLine(line, rules)
		for i := range recs {
			recs[i].Line = n + 1
		}
		records = append(records, recs...)
		b.WriteString(out)
	}

	return b.String(), records
}
