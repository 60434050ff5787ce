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

// Package rule defines the ordered search/replace pairs applied by kwdrepl.
package rule

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultDelimiter separates keywords (and replacements) on the command line.
const DefaultDelimiter = "~"

// ErrConfiguration is matched by every error caused by bad input rather than
// by a failing filesystem.
var ErrConfiguration = errors.Base("configuration error")

// 🔄 Rule is a single literal substitution
type Rule struct {
	Search  string `json:"search" yaml:"search"`
	Replace string `json:"replace" yaml:"replace"`
}

// String returns the rule as "search -> replace".
func (r Rule) String() string {
	return fmt.Sprintf("%q -> %q", r.Search, r.Replace)
}

// 📚 Set is an ordered list of rules. Position i has ordinal i+1.
type Set []Rule

// Ordinal returns the 1-based position of the rule at index i.
func (s Set) Ordinal(i int) int {
	return i + 1
}

// Validate checks that every rule has a non-empty search term.
func (s Set) Validate() error {
	for i, r := range s {
		if r.Search == "" {
			return errors.Errorf("%w: rule %d: search term is empty", ErrConfiguration, s.Ordinal(i))
		}
	}
	return nil
}

// 🔪 Parse splits keywords and replacements on delim and pairs them up by
// position. The counts must match.
func Parse(keywords, replacements, delim string) (Set, error) {
	if delim == "" {
		return nil, errors.Errorf("%w: delimiter is empty", ErrConfiguration)
	}

	searches := strings.Split(keywords, delim)
	replaces := strings.Split(replacements, delim)

	if len(searches) != len(replaces) {
		return nil, errors.Errorf("%w: got %d keywords but %d replacements; the number of keywords and replacements must be the same",
			ErrConfiguration, len(searches), len(replaces))
	}

	set := make(Set, len(searches))
	for i := range searches {
		set[i] = Rule{Search: searches[i], Replace: replaces[i]}
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}
