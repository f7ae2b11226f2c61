package main

import (
	"os"
	"strconv"
	"testing"
)

// getEnvInt reads an integer from an environment variable with a default value.
func getEnvInt(name string, defaultVal int) int {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return defaultVal
}

// Test size configuration via environment variables:
//
//	FIFO_TEST_SIZE - elements per ordering test (default: 10000)
func getTestSize() int {
	return getEnvInt("FIFO_TEST_SIZE", 10000)
}

// TestStrictFIFOOrderingWithWrapAround keeps the queue short while the total
// number of elements is large, so the ring buffer wraps many times and grows
// while wrapped.
func TestStrictFIFOOrderingWithWrapAround(t *testing.T) {
	withAllImplementations(t, workloadQueue, []string{"FIFO"}, func(t *testing.T, impl Implementation) {
		logTestStart(t, "StrictFIFOOrderingWithWrapAround", impl)
		q := impl.newQueue()
		n := getTestSize()

		next := 0
		window := 1
		for pushed := 0; pushed < n; {
			for i := 0; i < window && pushed < n; i++ {
				q.Push(pushed)
				pushed++
			}
			// Leave part of the window queued so head keeps moving.
			for q.Len() > window/2 {
				got, ok := q.PopFront()
				if !ok {
					t.Fatalf("pop failed with %d queued", q.Len())
				}
				if got != next {
					t.Fatalf("FIFO violation: expected %d, got %d", next, got)
				}
				next++
			}
			window = window%61 + 3
		}
		for q.Len() > 0 {
			got, _ := q.PopFront()
			if got != next {
				t.Fatalf("FIFO violation while draining: expected %d, got %d", next, got)
			}
			next++
		}
		if next != n {
			t.Fatalf("received %d of %d elements", next, n)
		}
	})
}

// TestNoLostMessagesSingleThread checks that every pushed value comes back
// exactly once.
func TestNoLostMessagesSingleThread(t *testing.T) {
	withAllImplementations(t, workloadQueue, nil, func(t *testing.T, impl Implementation) {
		logTestStart(t, "NoLostMessagesSingleThread", impl)
		q := impl.newQueue()
		n := getTestSize()

		for i := 0; i < n; i++ {
			q.Push(i)
		}
		seen := make([]bool, n)
		for {
			v, ok := q.PopFront()
			if !ok {
				break
			}
			if v < 0 || v >= n {
				t.Fatalf("popped value %d was never pushed", v)
			}
			if seen[v] {
				t.Fatalf("value %d popped twice", v)
			}
			seen[v] = true
		}
		for i, ok := range seen {
			if !ok {
				t.Fatalf("value %d lost", i)
			}
		}
	})
}

// TestRepeatedFillAndDrain tests multiple complete fill/drain cycles.
func TestRepeatedFillAndDrain(t *testing.T) {
	withAllImplementations(t, workloadQueue, []string{"FIFO"}, func(t *testing.T, impl Implementation) {
		logTestStart(t, "RepeatedFillAndDrain", impl)
		const batch = 100
		const cycles = 10
		q := impl.newQueue()

		for cycle := 0; cycle < cycles; cycle++ {
			for i := 0; i < batch; i++ {
				q.Push(cycle*batch + i)
			}
			for i := 0; i < batch; i++ {
				got, ok := q.PopFront()
				if !ok {
					t.Fatalf("Cycle %d: failed to pop at position %d", cycle, i)
				}
				if got != cycle*batch+i {
					t.Fatalf("Cycle %d: FIFO violation at %d: got %d", cycle, i, got)
				}
			}
			if q.Len() != 0 {
				t.Fatalf("Cycle %d: queue not empty after drain", cycle)
			}
		}
	})
}

// TestPeekMatchesPop makes sure PeekFront never disagrees with the next
// PopFront.
func TestPeekMatchesPop(t *testing.T) {
	withAllImplementations(t, workloadQueue, nil, func(t *testing.T, impl Implementation) {
		q := impl.newQueue()
		for i := 0; i < 500; i++ {
			q.Push(i)
			if i%3 == 2 {
				peeked, _ := q.PeekFront()
				popped, _ := q.PopFront()
				if peeked != popped {
					t.Fatalf("peek returned %d but pop returned %d", peeked, popped)
				}
			}
		}
	})
}

func BenchmarkFIFOThroughput(b *testing.B) {
	for _, impl := range getImplementations() {
		if impl.workload() != workloadQueue {
			continue
		}
		b.Run(impl.name, func(b *testing.B) {
			q := impl.newQueue()
			for i := 0; i < b.N; i++ {
				q.Push(i)
				q.PopFront()
			}
		})
	}
}
