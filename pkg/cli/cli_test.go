// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/cli/clierror"
	"github.com/cockroachdb/linear/pkg/cli/exit"
	"github.com/cockroachdb/linear/pkg/util/linear"
	"github.com/stretchr/testify/require"
)

// TestDataDriven runs the scripts under testdata. Commands:
//
//	config
//	<yaml>
//	----
//
// writes the input to a file whose path replaces $CONFIG in later commands,
// and
//
//	exec
//	<command line>
//	----
//
// runs the command line and prints its standard output, followed by the
// error and exit code if it failed.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		configPath := filepath.Join(t.TempDir(), "linear.yaml")
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "config":
				require.NoError(t, os.WriteFile(configPath, []byte(d.Input), 0644))
				return ""

			case "exec":
				args := strings.Fields(strings.ReplaceAll(d.Input, "$CONFIG", configPath))
				var stdout, stderr bytes.Buffer
				err := runWithIO(context.Background(), args, &stdout, &stderr)
				if err == nil {
					return stdout.String()
				}
				return fmt.Sprintf("%serror (exit %s): %v\n", stdout.String(), clierror.GetExitCode(err), err)

			default:
				d.Fatalf(t, "unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

func TestExitCodes(t *testing.T) {
	run := func(args ...string) error {
		var stdout, stderr bytes.Buffer
		return runWithIO(context.Background(), args, &stdout, &stderr)
	}

	require.Equal(t, exit.Success(), clierror.GetExitCode(run("array", "sort", "3", "1")))

	err := run("array", "sort", "--algorithm=quick", "3", "1")
	require.Equal(t, exit.CommandLineFlagError(), clierror.GetExitCode(err))

	err = run("array", "sort")
	require.True(t, errors.Is(err, linear.ErrEmpty))
	require.Equal(t, exit.InvalidInput(), clierror.GetExitCode(err))

	err = run("stack", "push", "--capacity=1", "a", "b")
	require.True(t, errors.Is(err, linear.ErrCapacityExceeded))
	require.Equal(t, exit.InvalidInput(), clierror.GetExitCode(err))

	err = run("array", "sort", "--value-type=int", "1", "x")
	require.Equal(t, exit.InvalidInput(), clierror.GetExitCode(err))

	err = run("array")
	require.Equal(t, exit.CommandLineFlagError(), clierror.GetExitCode(err))
}

func TestVerboseLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runWithIO(context.Background(),
		[]string{"--verbosity=1", "--format=tsv", "array", "sort", "--algorithm=bubble", "2", "1"},
		&stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "value\n1\n2\n", stdout.String())
	require.Regexp(t, `^I\d{6} \d\d:\d\d:\d\d\.\d{6} array\.go:\d+  \[cmd=sort\] sorting 2 values with bubble sort\n$`,
		stderr.String())

	stdout.Reset()
	stderr.Reset()
	require.NoError(t, runWithIO(context.Background(),
		[]string{"--format=tsv", "array", "sort", "2", "1"}, &stdout, &stderr))
	require.Empty(t, stderr.String())
}

func TestEnvironmentVariables(t *testing.T) {
	run := func(args ...string) (string, error) {
		var stdout, stderr bytes.Buffer
		err := runWithIO(context.Background(), args, &stdout, &stderr)
		return stdout.String(), err
	}

	t.Setenv("LINEAR_FORMAT", "tsv")
	out, err := run("array", "sort", "3", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "value\n1\n2\n3\n", out)

	// The command line beats the environment.
	out, err = run("--format=records", "array", "sort", "3", "1", "2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "-[ RECORD 1 ]\n"), out)

	// The environment beats the configuration file.
	configPath := filepath.Join(t.TempDir(), "linear.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: records\n"), 0644))
	out, err = run("--config="+configPath, "array", "sort", "3", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "value\n1\n2\n3\n", out)

	// A malformed value is a flag error, not a crash.
	t.Setenv("LINEAR_FORMAT", "bogus")
	_, err = run("array", "sort", "3", "1", "2")
	require.Error(t, err)
	require.Equal(t, exit.CommandLineFlagError(), clierror.GetExitCode(err))
	require.Contains(t, err.Error(), "environment variable LINEAR_FORMAT")
	require.Contains(t, err.Error(), `invalid argument "bogus" for "--format" flag`)

	// Empty counts as unset.
	t.Setenv("LINEAR_FORMAT", "")
	t.Setenv("LINEAR_SEED", "-1")
	_, err = run("array", "random", "--size=2")
	require.Equal(t, exit.CommandLineFlagError(), clierror.GetExitCode(err))
	require.Contains(t, err.Error(), "environment variable LINEAR_SEED")
}

func TestConfigFile(t *testing.T) {
	cfg, err := parseConfig([]byte("format: csv\nverbosity: 2\nseed: 7\n"))
	require.NoError(t, err)
	var names []string
	for _, s := range cfg.settings() {
		names = append(names, s.flag.Name+"="+s.value)
	}
	require.Equal(t, []string{"format=csv", "verbosity=2", "seed=7"}, names)

	_, err = parseConfig([]byte("colour: true\n"))
	require.Error(t, err)
}

func TestValueTypeResolve(t *testing.T) {
	for _, tc := range []struct {
		vt     valueType
		groups [][]string
		exp    bool
	}{
		{valueTypeAuto, [][]string{{"1", "-2"}, {"3"}}, true},
		{valueTypeAuto, [][]string{{"1", "-2"}, {"x"}}, false},
		{valueTypeAuto, nil, true},
		{valueTypeInt, [][]string{{"x"}}, true},
		{valueTypeString, [][]string{{"1"}}, false},
	} {
		got, err := tc.vt.resolve(tc.groups...)
		require.NoError(t, err)
		require.Equal(t, tc.exp, got, "%s %v", &tc.vt, tc.groups)
	}
}
