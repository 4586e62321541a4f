// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"github.com/cockroachdb/errors"
)

// cliContext holds the configuration of one invocation of the linear
// command. Flags write directly into it; the configuration file fills in
// whatever the flags left unset.
type cliContext struct {
	// configFile is the --config path. Empty means no file.
	configFile string

	// tableDisplayFormat indicates how to format result tables.
	tableDisplayFormat tableDisplayFormat

	// verbosity, noColor and redactableLogs configure pkg/util/log.
	verbosity      int
	noColor        bool
	redactableLogs bool

	// valueType selects how positional values are parsed.
	valueType valueType

	// restoreLogs undoes the logging configuration installed for this
	// invocation.
	restoreLogs func()

	arrayCtx arrayContext
	stackCtx stackContext
	queueCtx queueContext
	listCtx  listContext
}

// arrayContext captures the flags of the array subcommands.
type arrayContext struct {
	sortAlgorithm sortAlgorithm
	descending    bool
	topK          int
	distinctK     int
	with          []string
	seed          uint64
	size          int
	min, max      int
}

// stackContext captures the flags of the stack subcommands.
type stackContext struct {
	capacity int
	pop      int
}

// queueContext captures the flags of the queue subcommands.
type queueContext struct {
	dequeue int
}

// listContext captures the flags of the list subcommands.
type listContext struct {
	middle   bool
	random   bool
	seed     uint64
	reversed bool
}

// setCLIDefaults resets the context to the built-in defaults, before flags
// and the configuration file are applied.
func (c *cliContext) setCLIDefaults() {
	*c = cliContext{
		tableDisplayFormat: tableDisplayTable,
		valueType:          valueTypeAuto,
	}
	c.arrayCtx.sortAlgorithm = sortMerge
	c.arrayCtx.size = 10
	c.arrayCtx.max = 100
}

// sortAlgorithm identifies one of the array sorting routines.
type sortAlgorithm int

const (
	sortMerge sortAlgorithm = iota
	sortBubble
	sortSelection
)

var sortAlgorithmNames = map[sortAlgorithm]string{
	sortMerge:     "merge",
	sortBubble:    "bubble",
	sortSelection: "selection",
}

// Type implements the pflag.Value interface.
func (a *sortAlgorithm) Type() string { return "string" }

// String implements the pflag.Value interface.
func (a *sortAlgorithm) String() string { return sortAlgorithmNames[*a] }

// Set implements the pflag.Value interface.
func (a *sortAlgorithm) Set(s string) error {
	for k, name := range sortAlgorithmNames {
		if name == s {
			*a = k
			return nil
		}
	}
	return errors.Newf("invalid sort algorithm %q (possible values: merge, bubble, selection)", s)
}

// valueType identifies how positional values are parsed.
type valueType int

const (
	valueTypeAuto valueType = iota
	valueTypeInt
	valueTypeString
)

var valueTypeNames = map[valueType]string{
	valueTypeAuto:   "auto",
	valueTypeInt:    "int",
	valueTypeString: "string",
}

// Type implements the pflag.Value interface.
func (v *valueType) Type() string { return "string" }

// String implements the pflag.Value interface.
func (v *valueType) String() string { return valueTypeNames[*v] }

// Set implements the pflag.Value interface.
func (v *valueType) Set(s string) error {
	for k, name := range valueTypeNames {
		if name == s {
			*v = k
			return nil
		}
	}
	return errors.Newf("invalid value type %q (possible values: auto, int, string)", s)
}
