// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package cli implements the linear command-line interface, which runs
// container operations on values given as arguments.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/cli/clierror"
	"github.com/cockroachdb/linear/pkg/cli/exit"
	"github.com/cockroachdb/linear/pkg/util/log"
	"github.com/spf13/cobra"
)

// buildTag is set at link time with -ldflags "-X".
var buildTag = "dev"

// Main is the entry point for the linear binary.
func Main() {
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "help")
	}
	exit.WithCode(doMain(os.Args[1:]))
}

func doMain(args []string) exit.Code {
	err := Run(args)
	if err == nil {
		return exit.Success()
	}
	_ = clierror.CheckAndMaybeLog(err, log.Logf)
	return clierror.GetExitCode(err)
}

// Run executes the command line given by args.
func Run(args []string) error {
	return runWithIO(context.Background(), args, os.Stdout, os.Stderr)
}

func runWithIO(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root, c := newCLI()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer c.restoreLogConfig()
	return root.ExecuteContext(ctx)
}

// newCLI assembles the command tree around a fresh context.
func newCLI() (*cobra.Command, *cliContext) {
	c := &cliContext{}
	c.setCLIDefaults()

	root := &cobra.Command{
		Use:   "linear [command] (flags)",
		Short: "linear container command-line interface",
		Long: `
Run array, stack, queue and linked list operations on the values given as
arguments and print the results.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})
	c.registerGlobalFlags(root)
	AddPersistentPreRunE(root, c.applyConfig)

	root.AddCommand(
		c.newArrayCmd(),
		c.newStackCmd(),
		c.newQueueCmd(),
		c.newListCmd(),

		newVersionCmd(),
	)
	return root, c
}

// applyConfig fills in flags from the environment and the configuration
// file, in that order of precedence, and then installs the logging
// configuration. It runs after flag parsing.
func (c *cliContext) applyConfig(cmd *cobra.Command, _ []string) error {
	if err := applyEnvVars(cmd.Flags()); err != nil {
		return clierror.NewError(err, exit.CommandLineFlagError())
	}
	if c.configFile != "" {
		cfg, err := loadConfigFile(c.configFile)
		if err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
		if err := cfg.apply(cmd.Flags()); err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
	}
	c.restoreLogs = log.ApplyConfig(log.Config{
		Verbosity:  c.verbosity,
		NoColor:    c.noColor,
		Redactable: c.redactableLogs,
		Output:     cmd.ErrOrStderr(),
	})
	log.VEventf(cmd.Context(), 2, "configuration: format=%s value-type=%s",
		&c.tableDisplayFormat, &c.valueType)
	return nil
}

func (c *cliContext) restoreLogConfig() {
	if c.restoreLogs != nil {
		c.restoreLogs()
		c.restoreLogs = nil
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "output version information",
		Long: `
Output build version information.
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Build Tag:   %s\n", buildTag)
			fmt.Fprintf(w, "Platform:    %s %s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "Go Version:  %s\n", runtime.Version())
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(w, "Module:      %s %s\n", info.Main.Path, info.Main.Version)
			}
		},
	}
}

func init() {
	cobra.EnableCommandSorting = false
}

// usageAndErr informs the user about the usage of the command
// and returns an error. This ensures that the top-level command
// has a suitable exit status.
func usageAndErr(cmd *cobra.Command, args []string) error {
	if err := cmd.Usage(); err != nil {
		return err
	}
	if len(args) == 0 {
		return clierror.NewError(
			errors.Newf("missing sub-command for %q", cmd.CommandPath()), exit.CommandLineFlagError())
	}
	return clierror.NewError(
		errors.Newf("unknown sub-command: %q", strings.Join(args, " ")), exit.CommandLineFlagError())
}
