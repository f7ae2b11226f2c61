package main

import (
	"cmp"
	"math/rand/v2"
	"time"

	"github.com/i5heu/GoSeqLists/internal/list"
	"github.com/i5heu/GoSeqLists/internal/testbench"
	"github.com/i5heu/GoSeqLists/pkg/buffered"
	"github.com/i5heu/GoSeqLists/pkg/cirlist"
	"github.com/i5heu/GoSeqLists/pkg/linkedlist"
	"github.com/i5heu/GoSeqLists/pkg/linkedqueue"
	"github.com/i5heu/GoSeqLists/pkg/seqlist"
	"github.com/i5heu/GoSeqLists/pkg/seqqueue"
	"github.com/i5heu/GoSeqLists/pkg/stack"
)

// Workload names as they appear in the JSON report.
const (
	workloadQueue     = "queue"
	workloadStack     = "stack"
	workloadPartition = "partition"
)

type benchQueue = interface {
	Push(int)
	PopFront() (int, bool)
	PeekFront() (int, bool)
	Len() int
}

type benchStack = interface {
	Push(int)
	Pop() (int, bool)
	Peek() (int, bool)
	Len() int
}

type partitionRunner = func(cfg testbench.Config, d time.Duration) testbench.Result

// Implementation describes one container under test. Exactly one of
// newQueue, newStack and partition is set; it decides the workload.
type Implementation struct {
	name        string
	description string
	pkgName     string
	authors     []string
	features    []string
	newQueue    func() benchQueue
	newStack    func() benchStack
	partition   partitionRunner
}

func (impl Implementation) workload() string {
	switch {
	case impl.newQueue != nil:
		return workloadQueue
	case impl.newStack != nil:
		return workloadStack
	default:
		return workloadPartition
	}
}

// run executes one timed iteration of the implementation's workload.
func (impl Implementation) run(cfg testbench.Config, d time.Duration) testbench.Result {
	switch impl.workload() {
	case workloadQueue:
		return testbench.RunTimedTest(impl.newQueue(), cfg, d, sequence)
	case workloadStack:
		return testbench.RunTimedStackTest(impl.newStack(), cfg, d, sequence)
	default:
		return impl.partition(cfg, d)
	}
}

func sequence(i int) int { return i }

// partitionWith wraps RunTimedPartitionTest for one list layout. Values are
// drawn from a fixed seed so every layout partitions the same input.
func partitionWith[L list.ListValidationInterface[int, L]](build func([]int) L) partitionRunner {
	return func(cfg testbench.Config, d time.Duration) testbench.Result {
		r := rand.New(rand.NewPCG(1, uint64(cfg.NumElements)))
		return testbench.RunTimedPartitionTest(build, cfg, d,
			func(int) int { return r.IntN(1 << 20) },
			cmp.Compare[int],
		)
	}
}

var authors = []string{"Mia Heidenstedt <heidenstedt.org>"}

// getImplementations enumerates every container the bench knows about.
func getImplementations() []Implementation {
	return []Implementation{
		{
			name:        "SeqQueue",
			pkgName:     "seqqueue",
			description: "Ring buffer with power-of-two capacity and masked indices; grows by doubling and unwraps in place.",
			authors:     authors,
			features:    []string{"FIFO", "Contiguous"},
			newQueue:    func() benchQueue { return seqqueue.New[int]() },
		},
		{
			name:        "LinkedQueue",
			pkgName:     "linkedqueue",
			description: "Singly linked list with head and tail links, nodes kept in an index arena.",
			authors:     authors,
			features:    []string{"FIFO", "Linked"},
			newQueue:    func() benchQueue { return linkedqueue.New[int]() },
		},
		{
			name:        "Golang Buffered Channel",
			pkgName:     "buffered",
			description: "Baseline: a buffered channel that is swapped for a bigger one when full.",
			authors:     authors,
			features:    []string{"FIFO", "Channel"},
			newQueue:    func() benchQueue { return buffered.New[int](1) },
		},
		{
			name:        "SeqStack",
			pkgName:     "stack",
			description: "Stack on a dynamic array; the top is the last slot.",
			authors:     authors,
			features:    []string{"LIFO", "Contiguous"},
			newStack:    func() benchStack { return stack.NewSeq[int]() },
		},
		{
			name:        "LinkedStack",
			pkgName:     "stack",
			description: "Stack on a circular doubly linked list; the top is the tail of the ring.",
			authors:     authors,
			features:    []string{"LIFO", "Linked"},
			newStack:    func() benchStack { return stack.NewLinked[int]() },
		},
		{
			name:        "SeqList",
			pkgName:     "seqlist",
			description: "In-place Hoare partition around the first element.",
			authors:     authors,
			features:    []string{"Partition", "Contiguous"},
			partition:   partitionWith(func(v []int) *seqlist.SeqList[int] { return seqlist.Of(v...) }),
		},
		{
			name:        "LinkedList",
			pkgName:     "linkedlist",
			description: "Stable partition by relinking nodes into two chains and splicing them.",
			authors:     authors,
			features:    []string{"Partition", "Linked", "Stable"},
			partition:   partitionWith(func(v []int) *linkedlist.LinkedList[int] { return linkedlist.Of(v...) }),
		},
		{
			name:        "CirList",
			pkgName:     "cirlist",
			description: "Partition by moving nodes into two rings and concatenating them in O(1).",
			authors:     authors,
			features:    []string{"Partition", "Linked"},
			partition:   partitionWith(func(v []int) *cirlist.CirList[int] { return cirlist.Of(v...) }),
		},
	}
}
