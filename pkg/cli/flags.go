// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/cli/cliflags"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
// This allows an arbitrary number of pre-run functions with ordering based
// on the order in which AddPersistentPreRunE is called.
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

// envVarAnnotation is the flag annotation naming the environment variable
// that supplies the flag's value.
const envVarAnnotation = "linear_env_var"

// setFlagFromEnv records the flag's environment variable. The value is read
// by applyEnvVars once the command line has been parsed, so that a malformed
// value is reported like any other flag error.
func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if err := f.SetAnnotation(flagInfo.Name, envVarAnnotation, []string{flagInfo.EnvVar}); err != nil {
			panic(err)
		}
	}
}

// applyEnvVars sets every flag of fs that was not given on the command line
// from its environment variable. Empty variables count as unset.
func applyEnvVars(fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		envVars := f.Annotations[envVarAnnotation]
		if len(envVars) == 0 {
			return
		}
		value, set := os.LookupEnv(envVars[0])
		if !set || value == "" {
			return
		}
		if setErr := fs.Set(f.Name, value); setErr != nil {
			err = errors.Wrapf(setErr, "environment variable %s", envVars[0])
		}
	})
	return err
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// Uint64Flag creates a uint64 flag and registers it with the FlagSet.
func Uint64Flag(f *pflag.FlagSet, valPtr *uint64, flagInfo cliflags.FlagInfo, defaultVal uint64) {
	f.Uint64VarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// StringSliceFlag creates a comma-separated string list flag and registers
// it with the FlagSet.
func StringSliceFlag(f *pflag.FlagSet, valPtr *[]string, flagInfo cliflags.FlagInfo) {
	f.StringSliceVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, nil, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// registerGlobalFlags adds the flags shared by every command to the root.
func (c *cliContext) registerGlobalFlags(root *cobra.Command) {
	pf := root.PersistentFlags()
	StringFlag(pf, &c.configFile, cliflags.Config, "")
	VarFlag(pf, &c.tableDisplayFormat, cliflags.Format)
	IntFlag(pf, &c.verbosity, cliflags.Verbosity, 0)
	BoolFlag(pf, &c.noColor, cliflags.NoColor, false)
	BoolFlag(pf, &c.redactableLogs, cliflags.RedactableLogs, false)
	VarFlag(pf, &c.valueType, cliflags.ValueType)
}
