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
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 10 // Width for status text
)

// 🎯 FormatFileLine formats a file result as an aligned, colored line
func FormatFileLine(result FileResult) string {
	var prefix string
	switch result.Status {
	case StatusModified:
		prefix = color.YellowString("⟳")
	case StatusPreviewed:
		prefix = color.CyanString("~")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, result.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, result.Status.String())

	return fmt.Sprintf("%s%s %s %s %d",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		result.Replacements,
	)
}

// 📢 Reporter prints results for the user
type Reporter struct {
	out       io.Writer
	formatter FileFormatter
}

// 🏭 NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:       out,
		formatter: NewDefaultFileFormatter(),
	}
}

// 📝 ReportFiles prints one aligned line per result
func (r *Reporter) ReportFiles(results []FileResult) {
	for _, res := range results {
		fmt.Fprintln(r.out, FormatFileLine(res))
	}
}

// 📊 ReportSummary prints the totals of a run
func (r *Reporter) ReportSummary(s Summary) {
	msg := r.formatter.FormatSummary(s)
	switch {
	case s.Failed > 0:
		pterm.Error.WithWriter(r.out).Println(msg)
	case s.Modified == 0 && s.Previewed == 0:
		pterm.Info.WithWriter(r.out).Println(msg)
	default:
		pterm.Success.WithWriter(r.out).Println(msg)
	}
}
