// Package config holds the resolved configuration for a run. The CLI is the
// only producer: it loads optional YAML defaults, overlays command-line
// flags, and validates the result before the core ever sees it.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	lserrors "git.home.luguber.info/inful/linesort/internal/errors"
	"git.home.luguber.info/inful/linesort/internal/ordering"
)

// Options is the fully resolved run configuration.
type Options struct {
	// Ordering
	Reverse    bool   `yaml:"reverse"`
	IgnoreCase bool   `yaml:"ignore_case"`
	Natural    bool   `yaml:"natural"`
	Locale     string `yaml:"locale,omitempty"` // BCP 47 tag; selects locale collation
	Unique     bool   `yaml:"unique"`

	// Shuffle mode, mutually exclusive with the ordering fields above.
	Shuffle bool   `yaml:"shuffle"`
	Seed    *int64 `yaml:"seed,omitempty"` // nil: nondeterministic

	// Input handling
	Trim      bool   `yaml:"trim"`
	SkipBlank bool   `yaml:"skip_blank"`
	KeepGoing bool   `yaml:"keep_going"`
	Encoding  string `yaml:"encoding,omitempty"`

	// Output handling
	ForceFlush bool `yaml:"force_flush"`
}

// Load returns Options populated from the YAML defaults file at path, or
// zero-valued defaults when path is empty. A .env file in the working
// directory is applied first, and environment variables are expanded inside
// the YAML content before parsing.
func Load(path string) (*Options, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	opts := &Options{Encoding: "utf-8"}
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, lserrors.ConfigLoadFailed(path, err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), opts); err != nil {
		return nil, lserrors.ConfigLoadFailed(path, fmt.Errorf("failed to unmarshal defaults: %w", err))
	}
	if opts.Encoding == "" {
		opts.Encoding = "utf-8"
	}
	return opts, nil
}

// Validate rejects configurations the core must never receive.
func (o *Options) Validate() error {
	if o.Shuffle {
		if o.Reverse || o.IgnoreCase || o.Natural || o.Unique || o.Locale != "" {
			return lserrors.ValidationFailed("shuffle cannot be combined with ordering or unique flags")
		}
	} else if o.Seed != nil {
		return lserrors.ValidationFailed("seed is only meaningful together with shuffle")
	}
	if o.Locale != "" && o.Natural {
		return lserrors.ValidationFailed("locale collation already orders digit runs numerically; drop natural")
	}
	return nil
}

// Kind resolves the ordering flags to a base comparator kind.
func (o *Options) Kind() ordering.Kind {
	switch {
	case o.Locale != "":
		return ordering.LocaleLogical
	case o.Natural && o.IgnoreCase:
		return ordering.NaturalCaseInsensitive
	case o.Natural:
		return ordering.Natural
	case o.IgnoreCase:
		return ordering.CaseInsensitive
	default:
		return ordering.Lexicographic
	}
}

// Policy builds the ordering policy the run's store is governed by.
func (o *Options) Policy() (ordering.Policy, error) {
	if o.Locale != "" {
		p, err := ordering.NewLocale(o.Locale, o.IgnoreCase, o.Reverse)
		if err != nil {
			return ordering.Policy{}, lserrors.ValidationFailed(err.Error())
		}
		return p, nil
	}
	return ordering.New(o.Kind(), o.Reverse), nil
}
