// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"cmp"
	"context"
	"time"

	"github.com/cockroachdb/linear/pkg/cli/cliflags"
	"github.com/cockroachdb/linear/pkg/util/linear/linkedlist"
	"github.com/cockroachdb/linear/pkg/util/linear/queue"
	"github.com/cockroachdb/linear/pkg/util/linear/stack"
	"github.com/cockroachdb/linear/pkg/util/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func (c *cliContext) newStackCmd() *cobra.Command {
	stackCmd := &cobra.Command{
		Use:   "stack [command]",
		Short: "run operations on a fixed-capacity stack",
		RunE:  usageAndErr,
	}
	pushCmd := &cobra.Command{
		Use:   "push [values...]",
		Short: "push the values, then pop --pop of them",
		Long: `
Push the values in order onto a stack, pop --pop values, and print what
remains from the top down. With --capacity, pushing onto a full stack fails.
`,
		RunE: c.runWithValues(stackPush[int], stackPush[string]),
	}
	IntFlag(pushCmd.Flags(), &c.stackCtx.capacity, cliflags.Capacity, 0)
	IntFlag(pushCmd.Flags(), &c.stackCtx.pop, cliflags.Pop, 0)
	stackCmd.AddCommand(pushCmd)
	return stackCmd
}

func stackPush[T cmp.Ordered](
	ctx context.Context, c *cliContext, vals, _ []T,
) (resultSet, error) {
	capacity := c.stackCtx.capacity
	if capacity == 0 {
		capacity = len(vals)
	}
	s, err := stack.New[T](capacity)
	if err != nil {
		return resultSet{}, err
	}
	for _, v := range vals {
		if err := s.Push(v); err != nil {
			return resultSet{}, err
		}
	}
	for i := 0; i < c.stackCtx.pop; i++ {
		v, err := s.Pop()
		if err != nil {
			return resultSet{}, err
		}
		log.VEventf(ctx, 1, "popped %v", v)
	}
	if s.Empty() {
		return valueRows[T](nil), nil
	}
	top, err := s.TopN(s.Len())
	if err != nil {
		return resultSet{}, err
	}
	return valueRows(top), nil
}

func (c *cliContext) newQueueCmd() *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue [command]",
		Short: "run operations on a singly-linked queue",
		RunE:  usageAndErr,
	}
	enqueueCmd := &cobra.Command{
		Use:   "enqueue [values...]",
		Short: "enqueue the values, then dequeue --dequeue of them",
		Long: `
Enqueue the values in order, dequeue --dequeue values, and print what
remains from the front to the back.
`,
		RunE: c.runWithValues(queueEnqueue[int], queueEnqueue[string]),
	}
	IntFlag(enqueueCmd.Flags(), &c.queueCtx.dequeue, cliflags.Dequeue, 0)
	queueCmd.AddCommand(enqueueCmd)
	return queueCmd
}

func queueEnqueue[T cmp.Ordered](
	ctx context.Context, c *cliContext, vals, _ []T,
) (resultSet, error) {
	q := queue.New[T]()
	for _, v := range vals {
		q.Enqueue(v)
	}
	for i := 0; i < c.queueCtx.dequeue; i++ {
		v, err := q.Dequeue()
		if err != nil {
			return resultSet{}, err
		}
		log.VEventf(ctx, 1, "dequeued %v", v)
	}
	return valueRows(q.ToSlice()), nil
}

func (c *cliContext) newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list [command]",
		Short: "run operations on a doubly-linked list",
		RunE:  usageAndErr,
	}
	buildCmd := &cobra.Command{
		Use:   "build [values...]",
		Short: "build a list from the values",
		Long: `
Insert the values one at a time, at the back of the list by default, in the
middle with --middle, or before a random node with --random.
`,
		RunE: c.runWithValues(listBuild[int], listBuild[string]),
	}
	{
		f := buildCmd.Flags()
		BoolFlag(f, &c.listCtx.middle, cliflags.Middle, false)
		BoolFlag(f, &c.listCtx.random, cliflags.Random, false)
		Uint64Flag(f, &c.listCtx.seed, cliflags.Seed, 0)
		BoolFlag(f, &c.listCtx.reversed, cliflags.Reversed, false)
		buildCmd.MarkFlagsMutuallyExclusive(cliflags.Middle.Name, cliflags.Random.Name)
	}
	listCmd.AddCommand(buildCmd)
	return listCmd
}

func listBuild[T cmp.Ordered](
	ctx context.Context, c *cliContext, vals, _ []T,
) (resultSet, error) {
	var rng *rand.Rand
	if c.listCtx.random {
		seed := c.listCtx.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		log.VEventf(ctx, 1, "random seed %d", seed)
		rng = rand.New(rand.NewSource(seed))
	}

	l := linkedlist.New[T]()
	for _, v := range vals {
		switch {
		case c.listCtx.middle:
			l.PushMiddle(v)
		case rng != nil:
			l.PushRandom(rng, v)
		default:
			l.PushBack(v)
		}
	}
	if c.listCtx.reversed {
		return valueRows(l.ToSliceReversed()), nil
	}
	return valueRows(l.ToSlice()), nil
}
