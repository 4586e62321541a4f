// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cliflags holds the names, environment variables and help text
// of the linear command-line flags.
package cliflags

import (
	"fmt"
	"strings"
)

// FlagInfo contains the static information for a CLI flag and helper
// to format the description.
type FlagInfo struct {
	// Name of the flag as used on the command line.
	Name string

	// Shorthand is the short form of the flag (optional).
	Shorthand string

	// EnvVar is the name of the environment variable through which the flag
	// value can be controlled (optional).
	EnvVar string

	// Description of the flag.
	Description string
}

// Usage returns the description, followed by the environment variable
// that controls the flag when there is one.
func (f FlagInfo) Usage() string {
	s := strings.TrimSpace(f.Description)
	if f.EnvVar != "" {
		s += fmt.Sprintf("\nEnvironment variable: %s", f.EnvVar)
	}
	return s
}

// Flags shared by every command.
var (
	Config = FlagInfo{
		Name:        "config",
		EnvVar:      "LINEAR_CONFIG",
		Description: `Path to a YAML file supplying defaults for the other flags.`,
	}

	Format = FlagInfo{
		Name:        "format",
		EnvVar:      "LINEAR_FORMAT",
		Description: `Selects how results are displayed: table, tsv, csv, records or yaml.`,
	}

	Verbosity = FlagInfo{
		Name:        "verbosity",
		Shorthand:   "v",
		Description: `Log verbosity level. Higher levels print more detail to stderr.`,
	}

	NoColor = FlagInfo{
		Name:        "no-color",
		EnvVar:      "NO_COLOR",
		Description: `Disable colors in log output even on a terminal.`,
	}

	RedactableLogs = FlagInfo{
		Name: "redactable-logs",
		Description: `
Keep redaction markers around input values in log output, so that the
logs can later be stripped of user data.`,
	}

	ValueType = FlagInfo{
		Name: "value-type",
		Description: `
How to interpret the input values: int, string, or auto. With auto, the
values are integers when every one of them parses as an integer.`,
	}
)

// Flags specific to individual commands.
var (
	SortAlgorithm = FlagInfo{
		Name:        "algorithm",
		EnvVar:      "LINEAR_SORT_ALGORITHM",
		Description: `Sorting algorithm: merge, bubble or selection.`,
	}

	Descending = FlagInfo{
		Name:        "descending",
		Description: `Sort from largest to smallest.`,
	}

	K = FlagInfo{
		Name:        "k",
		Shorthand:   "k",
		Description: `Number of values (topk) or rank of the distinct value (distinct).`,
	}

	With = FlagInfo{
		Name:        "with",
		Description: `Comma-separated values of the second operand.`,
	}

	Seed = FlagInfo{
		Name:        "seed",
		EnvVar:      "LINEAR_SEED",
		Description: `Seed for the random generator. Zero picks a seed from the clock.`,
	}

	Size = FlagInfo{
		Name:        "size",
		Description: `Number of values to generate.`,
	}

	Min = FlagInfo{
		Name:        "min",
		Description: `Smallest value to generate, inclusive.`,
	}

	Max = FlagInfo{
		Name:        "max",
		Description: `Largest value to generate, inclusive.`,
	}

	Capacity = FlagInfo{
		Name:        "capacity",
		Description: `Fixed capacity of the container. Zero sizes it to the input.`,
	}

	Pop = FlagInfo{
		Name:        "pop",
		Description: `Number of values to pop once every input value is pushed.`,
	}

	Dequeue = FlagInfo{
		Name:        "dequeue",
		Description: `Number of values to dequeue once every input value is enqueued.`,
	}

	Middle = FlagInfo{
		Name:        "middle",
		Description: `Insert each value in the middle of the list instead of at the back.`,
	}

	Random = FlagInfo{
		Name:        "random",
		Description: `Insert each value before a randomly chosen node.`,
	}

	Reversed = FlagInfo{
		Name:        "reversed",
		Description: `Print the list from back to front.`,
	}
)
