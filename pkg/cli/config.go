// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/cli/cliflags"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// configFile is the schema of the --config YAML file. Every key supplies
// the default of the flag of the same meaning; flags given on the command
// line or through the environment take precedence.
type configFile struct {
	Format         *string `yaml:"format"`
	Verbosity      *int    `yaml:"verbosity"`
	NoColor        *bool   `yaml:"no-color"`
	RedactableLogs *bool   `yaml:"redactable-logs"`
	Seed           *uint64 `yaml:"seed"`
	SortAlgorithm  *string `yaml:"sort-algorithm"`
	ValueType      *string `yaml:"value-type"`
}

// loadConfigFile reads and validates the YAML file at path. Unknown keys
// are rejected.
func loadConfigFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration file")
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*configFile, error) {
	var cfg configFile
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parsing configuration file")
	}
	return &cfg, nil
}

// configSetting pairs a flag with the value the file supplies for it.
type configSetting struct {
	flag  cliflags.FlagInfo
	value string
}

// settings lists the values present in the file, in a stable order.
func (cfg *configFile) settings() []configSetting {
	var out []configSetting
	add := func(flag cliflags.FlagInfo, value string) {
		out = append(out, configSetting{flag: flag, value: value})
	}
	if cfg.Format != nil {
		add(cliflags.Format, *cfg.Format)
	}
	if cfg.Verbosity != nil {
		add(cliflags.Verbosity, strconv.Itoa(*cfg.Verbosity))
	}
	if cfg.NoColor != nil {
		add(cliflags.NoColor, strconv.FormatBool(*cfg.NoColor))
	}
	if cfg.RedactableLogs != nil {
		add(cliflags.RedactableLogs, strconv.FormatBool(*cfg.RedactableLogs))
	}
	if cfg.Seed != nil {
		add(cliflags.Seed, strconv.FormatUint(*cfg.Seed, 10))
	}
	if cfg.SortAlgorithm != nil {
		add(cliflags.SortAlgorithm, *cfg.SortAlgorithm)
	}
	if cfg.ValueType != nil {
		add(cliflags.ValueType, *cfg.ValueType)
	}
	return out
}

// apply sets every flag of fs the file supplies a value for, unless it was
// already set. Settings for flags the command does not have are ignored.
func (cfg *configFile) apply(fs *pflag.FlagSet) error {
	for _, s := range cfg.settings() {
		f := fs.Lookup(s.flag.Name)
		if f == nil || f.Changed {
			continue
		}
		if err := fs.Set(s.flag.Name, s.value); err != nil {
			return errors.Wrapf(err, "configuration key for --%s", s.flag.Name)
		}
	}
	return nil
}
