// Package numread reads whitespace separated numbers from a stream.
package numread

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrInvalidNumber is wrapped by every error about a token that does not parse.
var ErrInvalidNumber = errors.New("invalid number")

// Read splits r into whitespace separated words and parses each with parse.
// It stops at the first word that does not parse.
func Read[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []T
	for sc.Scan() {
		v, err := parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w %q after %d values", ErrInvalidNumber, sc.Text(), len(out))
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return out, nil
}

// Ints reads base-10 integers that fit in 32 bits.
func Ints(r io.Reader) ([]int32, error) {
	return Read(r, func(s string) (int32, error) {
		v, err := strconv.ParseInt(s, 10, 32)
		return int32(v), err
	})
}

// Floats reads 64-bit floating point numbers.
func Floats(r io.Reader) ([]float64, error) {
	return Read(r, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}
