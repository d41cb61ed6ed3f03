// Package config collects the key pattern used to line up gene names
// between two tables. Values come from, lowest priority first,
// built in defaults, an optional YAML file, GENEEXPR_ environment
// variables and finally command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/andrew-torda/geneexpr/pkg/table"
)

// The pattern which was always used for Catharanthus roseus gene ids
// in the translated table.
const (
	DefaultPattern     = "CRO_T"
	DefaultReplacement = "CRO_"
)

// EnvPrefix is stripped from environment variables, so
// GENEEXPR_PATTERN sets pattern.
const EnvPrefix = "GENEEXPR_"

// Flag names, shared with the command line tools.
const (
	FlagPattern     = "pattern"
	FlagReplacement = "replacement"
)

// Pattern is a regular expression and the literal text which replaces
// each match in a key.
type Pattern struct {
	Pattern     string `koanf:"pattern"`
	Replacement string `koanf:"replacement"`
}

// Validate checks the fields we cannot do without. An empty pattern
// would match between every character of every key, so it is refused
// as a bad pattern.
func (p *Pattern) Validate() error {
	if p.Pattern == "" {
		return &table.PatternError{Pattern: p.Pattern, Err: errors.New("key pattern is required")}
	}
	return nil
}

// AddFlags puts the pattern flags into a flag set.
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagPattern, "p", DefaultPattern, "regular expression to replace in secondary keys")
	fs.StringP(FlagReplacement, "r", DefaultReplacement, "literal replacement for the pattern")
}

// Load builds a Pattern. cfgFile may be empty. flags may be nil and
// only flags which were really set on the command line count.
func Load(cfgFile string, flags *pflag.FlagSet) (*Pattern, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"pattern":     DefaultPattern,
		"replacement": DefaultReplacement,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// GENEEXPR_REPLACEMENT -> replacement
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			switch f.Name {
			case FlagPattern, FlagReplacement:
				return f.Name, posflag.FlagVal(flags, f)
			}
			return "", nil
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var p Pattern
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
