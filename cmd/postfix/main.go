package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/i5heu/GoSeqLists/internal/postfix"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run converts each expression given as arguments, or each line of stdin
// when there are none. It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("postfix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	evaluate := fs.Bool("eval", true, "Also evaluate each expression")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: postfix [-eval=false] [expression ...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	exprs := fs.Args()
	if len(exprs) == 0 {
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := sc.Err(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", errors.Wrap(err, "reading input"))
			return 1
		}
	}

	status := 0
	for _, expr := range exprs {
		if err := convert(stdout, expr, *evaluate); err != nil {
			reportError(stderr, expr, err)
			status = 1
		}
	}
	return status
}

func convert(w io.Writer, expr string, evaluate bool) error {
	tokens, err := postfix.ToPostfix(expr)
	if err != nil {
		return err
	}
	defer tokens.Release()

	fmt.Fprintln(w, postfix.Format(tokens.All()))
	if !evaluate {
		return nil
	}
	v, err := postfix.Evaluate(tokens.All())
	if err != nil {
		return errors.Wrapf(err, "evaluating %q", expr)
	}
	fmt.Fprintf(w, "= %s\n", strconv.FormatFloat(v, 'g', -1, 64))
	return nil
}

// reportError prints err and, when it has a position, a caret under the
// offending byte.
func reportError(w io.Writer, expr string, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var exprErr *postfix.ExprError
	if errors.As(err, &exprErr) {
		fmt.Fprintf(w, "  %s\n  %s^\n", expr, strings.Repeat(" ", exprErr.Pos))
	}
}
