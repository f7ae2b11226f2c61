package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"sort"
	"strings"

	"github.com/i5heu/GoSeqLists/internal/numread"
	"github.com/i5heu/GoSeqLists/pkg/cirlist"
	"github.com/i5heu/GoSeqLists/pkg/linkedlist"
	"github.com/i5heu/GoSeqLists/pkg/seqlist"
)

var (
	errInvalidInput = errors.New("invalid input")
	errEmptyList    = errors.New("empty list")
	errArgs         = errors.New("invalid args")
)

// list is what the statistics need from a layout.
type list interface {
	All() iter.Seq[int32]
	Release()
}

var layouts = map[string]func([]int32) list{
	"sequential":    func(v []int32) list { return seqlist.Of(v...) },
	"singly_linked": func(v []int32) list { return linkedlist.Of(v...) },
	"circular":      func(v []int32) list { return cirlist.Of(v...) },
}

func layoutNames() string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// Stats summarises a list of integers.
type Stats struct {
	Min, Max int32
	Avg      float64
}

func (s Stats) String() string {
	return fmt.Sprintf("min: %d, max: %d, avg: %g", s.Min, s.Max, s.Avg)
}

// computeStats walks seq once. It returns false for an empty sequence.
func computeStats(seq iter.Seq[int32]) (Stats, bool) {
	var s Stats
	var sum int64
	n := 0
	for v := range seq {
		if n == 0 || v < s.Min {
			s.Min = v
		}
		if n == 0 || v > s.Max {
			s.Max = v
		}
		sum += int64(v)
		n++
	}
	if n == 0 {
		return Stats{}, false
	}
	s.Avg = float64(sum) / float64(n)
	return s, true
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("liststats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var implementation string
	usage := fmt.Sprintf("List implementation: %s", layoutNames())
	fs.StringVar(&implementation, "i", "", usage)
	fs.StringVar(&implementation, "implementation", "", usage)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: liststats -i/--implementation <name> < numbers")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	s, err := stats(implementation, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errArgs) {
			fs.Usage()
		}
		return 1
	}
	fmt.Fprintln(stdout, s)
	return 0
}

func stats(implementation string, r io.Reader) (Stats, error) {
	if implementation == "" {
		return Stats{}, fmt.Errorf("%w: specify the implementation using -i", errArgs)
	}
	build, ok := layouts[implementation]
	if !ok {
		return Stats{}, fmt.Errorf("%w: no list implementation %q", errArgs, implementation)
	}

	values, err := numread.Ints(r)
	if err != nil {
		return Stats{}, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	l := build(values)
	defer l.Release()

	s, ok := computeStats(l.All())
	if !ok {
		return Stats{}, errEmptyList
	}
	return s, nil
}
