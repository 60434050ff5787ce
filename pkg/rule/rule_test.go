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

package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		keywords     string
		replacements string
		delim        string
		want         Set
		wantError    string
	}{
		{
			name:         "single_pair",
			keywords:     "foo",
			replacements: "bar",
			delim:        DefaultDelimiter,
			want:         Set{{Search: "foo", Replace: "bar"}},
		},
		{
			name:         "multiple_pairs_keep_order",
			keywords:     "ab~x",
			replacements: "x~y",
			delim:        DefaultDelimiter,
			want: Set{
				{Search: "ab", Replace: "x"},
				{Search: "x", Replace: "y"},
			},
		},
		{
			name:         "dollar_is_not_a_delimiter",
			keywords:     "a$b",
			replacements: "c$d",
			delim:        DefaultDelimiter,
			want:         Set{{Search: "a$b", Replace: "c$d"}},
		},
		{
			name:         "empty_replacement_allowed",
			keywords:     "foo~bar",
			replacements: "~baz",
			delim:        DefaultDelimiter,
			want: Set{
				{Search: "foo", Replace: ""},
				{Search: "bar", Replace: "baz"},
			},
		},
		{
			name:         "custom_delimiter",
			keywords:     "a,b",
			replacements: "1,2",
			delim:        ",",
			want: Set{
				{Search: "a", Replace: "1"},
				{Search: "b", Replace: "2"},
			},
		},
		{
			name:         "count_mismatch",
			keywords:     "a~b",
			replacements: "x",
			delim:        DefaultDelimiter,
			wantError:    "got 2 keywords but 1 replacements",
		},
		{
			name:         "empty_search_term",
			keywords:     "a~",
			replacements: "x~y",
			delim:        DefaultDelimiter,
			wantError:    "rule 2: search term is empty",
		},
		{
			name:         "empty_keywords",
			keywords:     "",
			replacements: "x",
			delim:        DefaultDelimiter,
			wantError:    "rule 1: search term is empty",
		},
		{
			name:         "empty_delimiter",
			keywords:     "a",
			replacements: "b",
			delim:        "",
			wantError:    "delimiter is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.keywords, tt.replacements, tt.delim)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				assert.True(t, errors.Is(err, ErrConfiguration), "error should be a configuration error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_Validate(t *testing.T) {
	require.NoError(t, Set{}.Validate(), "empty set is valid")
	require.NoError(t, Set{{Search: "a", Replace: ""}}.Validate(), "empty replacement is valid")

	err := Set{{Search: "a"}, {Search: "", Replace: "b"}}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestSet_Ordinal(t *testing.T) {
	s := Set{{Search: "a"}, {Search: "a"}}
	assert.Equal(t, 1, s.Ordinal(0))
	assert.Equal(t, 2, s.Ordinal(1), "duplicate rules keep their own position")
}
