package testbench

import (
	"context"
	"time"

	"github.com/i5heu/GoSeqLists/internal/list"
	"github.com/i5heu/GoSeqLists/internal/queue"
)

// Config is only about workload size: how many elements one batch pushes
// before draining, or how long the lists handed to partition are.
type Config struct {
	NumElements int
}

// Result counts what one timed run did.
type Result struct {
	Operations int64         // pushes + pops, or partitions
	Elements   int64         // elements that went through the container
	Mismatches int64         // elements popped in the wrong order
	Elapsed    time.Duration // measured wall time
}

// RunTimedTest fills the queue with cfg.NumElements values and drains it
// again, over and over, until testDuration expires. The deadline is only
// checked between batches so that no batch is cut short. Every popped value
// is compared against the order it was pushed in.
func RunTimedTest[T comparable, Q queue.QueueValidationInterface[T]](
	q Q,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) Result {
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	values := generate(cfg.NumElements, valueGenerator)
	var res Result
	start := time.Now()
	for ctx.Err() == nil {
		for _, v := range values {
			q.Push(v)
		}
		for _, want := range values {
			got, ok := q.PopFront()
			if !ok || got != want {
				res.Mismatches++
			}
		}
		res.Operations += 2 * int64(len(values))
		res.Elements += int64(len(values))
	}
	res.Elapsed = time.Since(start)
	return res
}

// RunTimedStackTest is RunTimedTest for LIFO containers: values must come
// back in reverse push order.
func RunTimedStackTest[T comparable, S list.StackValidationInterface[T]](
	s S,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
) Result {
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	values := generate(cfg.NumElements, valueGenerator)
	var res Result
	start := time.Now()
	for ctx.Err() == nil {
		for _, v := range values {
			s.Push(v)
		}
		for i := len(values) - 1; i >= 0; i-- {
			got, ok := s.Pop()
			if !ok || got != values[i] {
				res.Mismatches++
			}
		}
		res.Operations += 2 * int64(len(values))
		res.Elements += int64(len(values))
	}
	res.Elapsed = time.Since(start)
	return res
}

// RunTimedPartitionTest builds a list of cfg.NumElements values with build,
// partitions it and releases the result, until testDuration expires. Results
// that break the partition predicate count as mismatches. Building and
// releasing are part of the measured time.
func RunTimedPartitionTest[T any, L list.ListValidationInterface[T, L]](
	build func([]T) L,
	cfg Config,
	testDuration time.Duration,
	valueGenerator func(int) T,
	cmp func(a, b T) int,
) Result {
	ctx, cancel := context.WithTimeout(context.Background(), testDuration)
	defer cancel()

	values := generate(cfg.NumElements, valueGenerator)
	var res Result
	start := time.Now()
	for ctx.Err() == nil {
		out := build(values).PartitionFunc(cmp)
		if len(values) > 0 && !list.IsPartitioned(out.All(), values[0], cmp) {
			res.Mismatches++
		}
		out.Release()
		res.Operations++
		res.Elements += int64(len(values))
	}
	res.Elapsed = time.Since(start)
	return res
}

func generate[T any](n int, valueGenerator func(int) T) []T {
	values := make([]T, n)
	for i := range values {
		values[i] = valueGenerator(i)
	}
	return values
}
