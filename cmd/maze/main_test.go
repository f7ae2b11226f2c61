package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const corridor = `3 4
1 1 3 4
0 0 0 1
1 1 0 1
1 1 0 0
`

const corridorSolved = `######
#<─┐##
###│##
###└>#
######
steps: 5
`

const walledOff = `2 3
1 1 2 3
0 1 0
0 1 0
`

func TestSolvableMaze(t *testing.T) {
	for name := range algorithms {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run([]string{"-a", name}, strings.NewReader(corridor), &out, &errOut)
			require.Equal(t, 0, code, errOut.String())
			require.Equal(t, corridorSolved, out.String())
		})
	}
}

func TestUnsolvableMaze(t *testing.T) {
	for name := range algorithms {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run([]string{"--algorithm", name}, strings.NewReader(walledOff), &out, &errOut)
			require.Equal(t, 1, code)
			require.Empty(t, out.String())
			require.Equal(t, "Error: no path from entry to exit\n", errOut.String())
		})
	}
}

func TestBFSFindsShortestPath(t *testing.T) {
	// DFS tries right before down, so it goes round the whole board.
	m, err := parseMaze(strings.NewReader("2 3\n1 1 2 1\n0 0 0\n0 0 0\n"))
	require.NoError(t, err)

	dfs, ok := m.solveDFS()
	require.True(t, ok)
	require.True(t, m.isSolved(dfs))
	require.Len(t, dfs, 6)

	bfs, ok := m.solveBFS()
	require.True(t, ok)
	require.True(t, m.isSolved(bfs))
	require.Equal(t, []coord{{1, 1}, {2, 1}}, bfs)
}

func TestEntryIsExit(t *testing.T) {
	m, err := parseMaze(strings.NewReader("1 1\n1 1 1 1\n0\n"))
	require.NoError(t, err)
	for name, search := range algorithms {
		path, ok := search(m)
		require.True(t, ok, name)
		require.Equal(t, []coord{{1, 1}}, path, name)
	}
}

func TestIsSolved(t *testing.T) {
	m, err := parseMaze(strings.NewReader(corridor))
	require.NoError(t, err)

	require.True(t, m.isSolved([]coord{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}, {3, 4}}))
	require.False(t, m.isSolved(nil))
	require.False(t, m.isSolved([]coord{{1, 1}, {1, 3}, {2, 3}, {3, 3}, {3, 4}}), "gap")
	require.False(t, m.isSolved([]coord{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}, {3, 4}}), "wall")
	require.False(t, m.isSolved([]coord{{1, 2}, {1, 3}, {2, 3}, {3, 3}, {3, 4}}), "wrong start")
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
		want  string
		usage bool
	}{
		{"unknown algorithm", []string{"-a", "astar"}, corridor, `invalid args: no algorithm "astar"`, true},
		{"not a number", nil, "2 x", "invalid input", false},
		{"missing header", nil, "2 2\n1 1", "invalid input: missing size", false},
		{"bad size", nil, "0 3\n1 1 1 1\n", "invalid input: size 0x3", false},
		{"too few cells", nil, "2 2\n1 1 2 2\n0 0 0\n", "invalid input: expected 4 cells, got 3", false},
		{"bad cell", nil, "1 2\n1 1 1 2\n0 2\n", "invalid input: cell 1,2 is 2", false},
		{"exit off board", nil, "1 2\n1 1 1 3\n0 0\n", "invalid input: 1,3 is off the board", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(tc.args, strings.NewReader(tc.stdin), &out, &errOut)
			require.Equal(t, 1, code)
			require.Contains(t, errOut.String(), tc.want)
			require.Equal(t, tc.usage, strings.Contains(errOut.String(), "Usage: maze"))
			require.Empty(t, out.String())
		})
	}
}

func TestHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run([]string{"-h"}, strings.NewReader(""), &out, &errOut))
	require.Contains(t, errOut.String(), "Usage: maze")
}
