package main

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/i5heu/GoSeqLists/internal/numread"
	"github.com/i5heu/GoSeqLists/pkg/cirlist"
	"github.com/i5heu/GoSeqLists/pkg/linkedlist"
	"github.com/i5heu/GoSeqLists/pkg/seqlist"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run partitions the numbers read from r with every list layout around the
// first number and prints each result.
func run(r io.Reader, w io.Writer) error {
	values, err := numread.Floats(r)
	if err != nil {
		return err
	}

	seq := seqlist.Of(values...).PartitionFunc(cmp.Compare[float64])
	defer seq.Release()
	linked := linkedlist.Of(values...).PartitionFunc(cmp.Compare[float64])
	defer linked.Release()
	cir := cirlist.Of(values...).PartitionFunc(cmp.Compare[float64])
	defer cir.Release()

	fmt.Fprintln(w, "Sequential List:")
	printFloats(w, seq.All())
	fmt.Fprintln(w, "Singly Linked List:")
	printFloats(w, linked.All())
	fmt.Fprintln(w, "Circular Doubly Linked List:")
	printFloats(w, cir.All())
	return nil
}

func printFloats(w io.Writer, seq iter.Seq[float64]) {
	for v := range seq {
		fmt.Fprintf(w, "%.3e ", v)
	}
	fmt.Fprint(w, "\n\n")
}
