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
	"time"

	"github.com/cockroachdb/linear/pkg/cli/cliflags"
	"github.com/cockroachdb/linear/pkg/util/humanizeutil"
	"github.com/cockroachdb/linear/pkg/util/linear/dynarray"
	"github.com/cockroachdb/linear/pkg/util/log"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

// quadraticSortThreshold is the input size above which sorting with a
// quadratic algorithm earns a warning.
const quadraticSortThreshold = 10000

var quadraticSortWarning = log.Every(time.Minute)

func (c *cliContext) newArrayCmd() *cobra.Command {
	arrayCmd := &cobra.Command{
		Use:   "array [command]",
		Short: "run operations on a fixed-capacity array",
		Long: `
Load the positional values into a fixed-capacity array and run one operation
on it. The array is sized to the input; operations that need an element
fail on empty input.
`,
		RunE: usageAndErr,
	}

	sortCmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "sort the values",
		RunE:  c.runWithValues(arraySort[int], arraySort[string]),
	}
	VarFlag(sortCmd.Flags(), &c.arrayCtx.sortAlgorithm, cliflags.SortAlgorithm)
	BoolFlag(sortCmd.Flags(), &c.arrayCtx.descending, cliflags.Descending, false)

	dedupeCmd := &cobra.Command{
		Use:   "dedupe [values...]",
		Short: "drop repeated values, keeping first occurrences",
		RunE:  c.runWithValues(arrayDedupe[int], arrayDedupe[string]),
	}

	freqCmd := &cobra.Command{
		Use:   "freq [values...]",
		Short: "count the occurrences of every distinct value",
		RunE:  c.runWithValues(arrayFreq[int], arrayFreq[string]),
	}

	topkCmd := &cobra.Command{
		Use:   "topk [values...]",
		Short: "list the k most frequent values",
		Long: `
List the k most frequent values, most frequent first. Values that occur
equally often are listed in order of first appearance.
`,
		RunE: c.runWithValues(arrayTopK[int], arrayTopK[string]),
	}
	IntFlag(topkCmd.Flags(), &c.arrayCtx.topK, cliflags.K, 1)

	distinctCmd := &cobra.Command{
		Use:   "distinct [values...]",
		Short: "list the values that occur exactly once",
		Long: `
List the values that occur exactly once, in order of appearance. With --k,
print only the k-th such value, or nothing if there are fewer than k.
`,
		RunE: c.runWithValues(arrayDistinct[int], arrayDistinct[string]),
	}
	IntFlag(distinctCmd.Flags(), &c.arrayCtx.distinctK, cliflags.K, 0)

	reverseCmd := &cobra.Command{
		Use:   "reverse [values...]",
		Short: "reverse the values",
		RunE:  c.runWithValues(arrayReverse[int], arrayReverse[string]),
	}

	unionCmd := &cobra.Command{
		Use:   "union [values...] --with=v1,v2,...",
		Short: "merge two arrays, dropping values already present",
		RunE:  c.runWithValues(arraySetOp[int](setUnion), arraySetOp[string](setUnion)),
	}
	intersectCmd := &cobra.Command{
		Use:   "intersect [values...] --with=v1,v2,...",
		Short: "list the values of the second array also present in the first",
		RunE: c.runWithValues(
			arraySetOp[int](setIntersect), arraySetOp[string](setIntersect)),
	}
	concatCmd := &cobra.Command{
		Use:   "concat [values...] --with=v1,v2,...",
		Short: "append the second array to the first",
		RunE:  c.runWithValues(arraySetOp[int](setConcat), arraySetOp[string](setConcat)),
	}
	for _, cmd := range []*cobra.Command{unionCmd, intersectCmd, concatCmd} {
		StringSliceFlag(cmd.Flags(), &c.arrayCtx.with, cliflags.With)
	}

	randomCmd := &cobra.Command{
		Use:   "random",
		Short: "generate an array of random integers",
		Args:  cobra.NoArgs,
		RunE:  c.runArrayRandom,
	}
	{
		f := randomCmd.Flags()
		Uint64Flag(f, &c.arrayCtx.seed, cliflags.Seed, 0)
		IntFlag(f, &c.arrayCtx.size, cliflags.Size, c.arrayCtx.size)
		IntFlag(f, &c.arrayCtx.min, cliflags.Min, c.arrayCtx.min)
		IntFlag(f, &c.arrayCtx.max, cliflags.Max, c.arrayCtx.max)
	}

	arrayCmd.AddCommand(
		sortCmd,
		dedupeCmd,
		freqCmd,
		topkCmd,
		distinctCmd,
		reverseCmd,
		unionCmd,
		intersectCmd,
		concatCmd,
		randomCmd,
	)
	return arrayCmd
}

func arraySort[T cmp.Ordered](
	ctx context.Context, c *cliContext, vals, _ []T,
) (resultSet, error) {
	a := dynarray.FromSlice(vals)
	less := dynarray.Ascending[T]()
	if c.arrayCtx.descending {
		less = dynarray.Descending[T]()
	}
	algo := c.arrayCtx.sortAlgorithm
	log.VEventf(ctx, 1, "sorting %d values with %s sort", a.Len(), &algo)
	if algo != sortMerge && a.Len() > quadraticSortThreshold && quadraticSortWarning.ShouldLog() {
		log.Warningf(ctx, "%s sort of %s values is quadratic; consider --%s=merge",
			&algo, humanizeutil.Count(int64(a.Len())), cliflags.SortAlgorithm.Name)
	}

	var err error
	switch algo {
	case sortBubble:
		err = a.BubbleSort(less)
	case sortSelection:
		err = a.SelectionSort(less)
	default:
		err = a.MergeSort(less)
	}
	if err != nil {
		return resultSet{}, err
	}
	return valueRows(a.ToSlice()), nil
}

func arrayDedupe[T cmp.Ordered](
	ctx context.Context, _ *cliContext, vals, _ []T,
) (resultSet, error) {
	a := dynarray.FromSlice(vals)
	if err := a.RemoveDuplicates(); err != nil {
		return resultSet{}, err
	}
	log.VEventf(ctx, 1, "removed %d duplicates", len(vals)-a.Len())
	return valueRows(a.ToSlice()), nil
}

func arrayFreq[T cmp.Ordered](
	_ context.Context, _ *cliContext, vals, _ []T,
) (resultSet, error) {
	freqs, err := dynarray.FrequencyMap(dynarray.FromSlice(vals))
	if err != nil {
		return resultSet{}, err
	}
	res := resultSet{cols: []string{"value", "count"}}
	freqs.Ascend(func(f dynarray.Frequency[T]) bool {
		res.rows = append(res.rows, []string{fmt.Sprint(f.Value), humanizeutil.Count(int64(f.Count))})
		return true
	})
	return res, nil
}

func arrayTopK[T cmp.Ordered](
	_ context.Context, c *cliContext, vals, _ []T,
) (resultSet, error) {
	top, err := dynarray.FromSlice(vals).TopKFrequent(c.arrayCtx.topK)
	if err != nil {
		return resultSet{}, err
	}
	res := resultSet{cols: []string{"rank", "value"}}
	for i, v := range top {
		res.rows = append(res.rows, []string{strconv.Itoa(i + 1), fmt.Sprint(v)})
	}
	return res, nil
}

func arrayDistinct[T cmp.Ordered](
	ctx context.Context, c *cliContext, vals, _ []T,
) (resultSet, error) {
	a := dynarray.FromSlice(vals)
	if k := c.arrayCtx.distinctK; k != 0 {
		cur, err := a.KthDistinct(k)
		if err != nil {
			return resultSet{}, err
		}
		if !cur.Valid() {
			log.VEventf(ctx, 1, "fewer than %d distinct values", k)
			return valueRows[T](nil), nil
		}
		v, err := cur.Get()
		if err != nil {
			return resultSet{}, err
		}
		return valueRows([]T{v}), nil
	}

	curs, err := a.DistinctAll()
	if err != nil {
		return resultSet{}, err
	}
	out := make([]T, 0, len(curs))
	for _, cur := range curs {
		v, err := cur.Get()
		if err != nil {
			return resultSet{}, err
		}
		out = append(out, v)
	}
	return valueRows(out), nil
}

func arrayReverse[T cmp.Ordered](
	_ context.Context, _ *cliContext, vals, _ []T,
) (resultSet, error) {
	a := dynarray.FromSlice(vals)
	if err := a.Reverse(); err != nil {
		return resultSet{}, err
	}
	return valueRows(a.ToSlice()), nil
}

// setOp identifies one of the two-operand array operations.
type setOp int

const (
	setUnion setOp = iota
	setIntersect
	setConcat
)

func arraySetOp[T cmp.Ordered](which setOp) op[T] {
	return func(ctx context.Context, _ *cliContext, vals, with []T) (resultSet, error) {
		a, b := dynarray.FromSlice(vals), dynarray.FromSlice(with)
		var res *dynarray.Array[T]
		var err error
		switch which {
		case setUnion:
			res, err = a.Union(b)
		case setIntersect:
			res, err = a.Intersect(b)
		default:
			res, err = a.Concat(b)
		}
		if err != nil {
			return resultSet{}, err
		}
		log.VEventf(ctx, 1, "result has %d values, capacity %d", res.Len(), res.Cap())
		return valueRows(res.ToSlice()), nil
	}
}

func (c *cliContext) runArrayRandom(cmd *cobra.Command, _ []string) error {
	ctx := logtags.AddTag(cmd.Context(), "cmd", cmd.Name())
	seed := c.arrayCtx.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.VEventf(ctx, 1, "random seed %d", seed)
	rng := rand.New(rand.NewSource(seed))
	a, err := dynarray.NewRandom(rng, c.arrayCtx.size, c.arrayCtx.min, c.arrayCtx.max)
	if err != nil {
		return err
	}
	res := valueRows(a.ToSlice())
	return printQueryOutput(cmd.OutOrStdout(), res.cols, res.rows, c.tableDisplayFormat)
}
