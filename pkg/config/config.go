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

package config

import (
	"context"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/kwdrepl/pkg/rule"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for rule file parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config is the content of a rule file
type Config struct {
	Rules   rule.Set `json:"rules" yaml:"rules"`                         // Ordered replacement rules
	Include []string `json:"include,omitempty" yaml:"include,omitempty"` // Globs of files to process
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"` // Globs of files and directories to skip
}

// 🎯 Load reads and validates a rule file. The format is picked from the
// file extension. Every failure wraps rule.ErrConfiguration.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading rule file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: reading rule file: %s", rule.ErrConfiguration, err.Error())
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w: no parser found for file: %s", rule.ErrConfiguration, path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		if errors.Is(err, rule.ErrConfiguration) {
			return nil, errors.Errorf("parsing rule file %s: %w", path, err)
		}
		return nil, errors.Errorf("%w: parsing rule file %s: %s", rule.ErrConfiguration, path, err.Error())
	}

	logger.Debug().Int("rules", len(cfg.Rules)).Msg("loaded rule file")

	return cfg, nil
}

// 🔍 Validate checks that there is at least one rule, that every rule has a
// search term and that every glob is well formed.
func (cfg *Config) Validate() error {
	if len(cfg.Rules) == 0 {
		return errors.Errorf("%w: no rules defined", rule.ErrConfiguration)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return err
	}
	return ValidatePatterns(append(append([]string{}, cfg.Include...), cfg.Exclude...))
}

// ValidatePatterns checks every pattern with doublestar.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("%w: invalid glob pattern %q", rule.ErrConfiguration, pattern)
		}
	}
	return nil
}
