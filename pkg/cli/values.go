// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"cmp"
	"context"
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/linear/pkg/cli/clierror"
	"github.com/cockroachdb/linear/pkg/cli/exit"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/cobra"
)

// resultSet is the tabular output of a command.
type resultSet struct {
	cols []string
	rows [][]string
}

// op is a command implementation for one element type. vals are the
// positional values and with the values of the --with flag, if any.
type op[T cmp.Ordered] func(ctx context.Context, c *cliContext, vals, with []T) (resultSet, error)

// runWithValues returns a cobra RunE that parses the positional values
// according to --value-type and runs the matching implementation.
func (c *cliContext) runWithValues(
	intOp op[int], stringOp op[string],
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := logtags.AddTag(cmd.Context(), "cmd", cmd.Name())
		with := c.arrayCtx.with
		asInts, err := c.valueType.resolve(args, with)
		if err != nil {
			return err
		}

		var res resultSet
		if asInts {
			ints, err := parseInts(args)
			if err != nil {
				return err
			}
			withInts, err := parseInts(with)
			if err != nil {
				return err
			}
			res, err = intOp(ctx, c, ints, withInts)
			if err != nil {
				return err
			}
		} else {
			res, err = stringOp(ctx, c, args, with)
			if err != nil {
				return err
			}
		}
		return printQueryOutput(cmd.OutOrStdout(), res.cols, res.rows, c.tableDisplayFormat)
	}
}

// resolve reports whether the values should be parsed as integers.
func (v valueType) resolve(groups ...[]string) (bool, error) {
	switch v {
	case valueTypeInt:
		return true, nil
	case valueTypeString:
		return false, nil
	case valueTypeAuto:
		for _, g := range groups {
			for _, s := range g {
				if _, err := strconv.Atoi(s); err != nil {
					return false, nil
				}
			}
		}
		return true, nil
	default:
		return false, errors.AssertionFailedf("unknown value type %d", v)
	}
}

func parseInts(vals []string) ([]int, error) {
	out := make([]int, len(vals))
	for i, s := range vals {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, clierror.NewError(
				errors.Wrapf(err, "value %d", i+1), exit.InvalidInput())
		}
		out[i] = n
	}
	return out, nil
}

// valueRows renders one value per row.
func valueRows[T any](vals []T) resultSet {
	rows := make([][]string, len(vals))
	for i, v := range vals {
		rows[i] = []string{fmt.Sprint(v)}
	}
	return resultSet{cols: []string{"value"}, rows: rows}
}
