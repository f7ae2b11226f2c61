package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/i5heu/GoSeqLists/internal/numread"
	"github.com/i5heu/GoSeqLists/pkg/seqqueue"
	"github.com/i5heu/GoSeqLists/pkg/stack"
)

var (
	errInvalidInput = errors.New("invalid input")
	errNoPath       = errors.New("no path from entry to exit")
	errArgs         = errors.New("invalid args")
)

const (
	open = 0
	wall = 1
)

type coord struct{ row, col int }

func (c coord) add(d coord) coord { return coord{c.row + d.row, c.col + d.col} }

// directions is the order in which neighbours are tried: up, right, down, left.
var directions = [...]coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// maze is a board of open and wall cells surrounded by a border of walls.
// Rows and columns of the input are numbered from 1, so they index the board
// directly.
type maze struct {
	board       [][]int32
	entry, exit coord
}

// parseMaze reads "height width", then "entryRow entryCol exitRow exitCol",
// then height rows of width cells, 0 for open and 1 for wall.
func parseMaze(r io.Reader) (*maze, error) {
	values, err := numread.Ints(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidInput, err)
	}
	if len(values) < 6 {
		return nil, fmt.Errorf("%w: missing size or entry and exit", errInvalidInput)
	}
	height, width := int(values[0]), int(values[1])
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", errInvalidInput, height, width)
	}
	cells := values[6:]
	if len(cells) != height*width {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", errInvalidInput, height*width, len(cells))
	}

	m := &maze{
		board: make([][]int32, height+2),
		entry: coord{int(values[2]), int(values[3])},
		exit:  coord{int(values[4]), int(values[5])},
	}
	for i := range m.board {
		row := make([]int32, width+2)
		for j := range row {
			row[j] = wall
		}
		if i > 0 && i <= height {
			for j, c := range cells[(i-1)*width : i*width] {
				if c != open && c != wall {
					return nil, fmt.Errorf("%w: cell %d,%d is %d", errInvalidInput, i, j+1, c)
				}
				row[j+1] = c
			}
		}
		m.board[i] = row
	}
	for _, c := range []coord{m.entry, m.exit} {
		if c.row < 1 || c.row > height || c.col < 1 || c.col > width {
			return nil, fmt.Errorf("%w: %d,%d is off the board", errInvalidInput, c.row, c.col)
		}
		m.board[c.row][c.col] = open
	}
	return m, nil
}

func (m *maze) isOpen(c coord) bool { return m.board[c.row][c.col] == open }

func (m *maze) grid() [][]bool {
	g := make([][]bool, len(m.board))
	for i := range g {
		g[i] = make([]bool, len(m.board[i]))
	}
	return g
}

// step is a cell on the search frontier and how many of its neighbours
// have been tried.
type step struct {
	at    coord
	tried int
}

// solveDFS walks depth first. The stack holds the current path from the
// entry; its top is advanced in place one neighbour at a time and popped
// once every neighbour has been tried.
func (m *maze) solveDFS() ([]coord, bool) {
	s := stack.NewSeq[step]()
	defer s.List().Release()
	visited := m.grid()
	visited[m.entry.row][m.entry.col] = true
	s.Push(step{at: m.entry})
	for {
		top, ok := s.PeekMut()
		if !ok {
			return nil, false
		}
		if top.at == m.exit {
			break
		}
		if top.tried == len(directions) {
			s.Pop()
			continue
		}
		next := top.at.add(directions[top.tried])
		// Push may move the stack, so top is not used after it.
		top.tried++
		if m.isOpen(next) && !visited[next.row][next.col] {
			visited[next.row][next.col] = true
			s.Push(step{at: next})
		}
	}

	path := make([]coord, 0, s.Len())
	for st := range s.List().All() {
		path = append(path, st.at)
	}
	return path, true
}

// solveBFS walks breadth first and so finds a shortest path. The front of
// the queue is expanded in place like the top of the DFS stack.
func (m *maze) solveBFS() ([]coord, bool) {
	q := seqqueue.New[step]()
	defer q.Release()
	seen := m.grid()
	prev := make(map[coord]coord)
	seen[m.entry.row][m.entry.col] = true
	q.Push(step{at: m.entry})
	for {
		front, ok := q.PeekFrontMut()
		if !ok {
			return nil, false
		}
		if front.at == m.exit {
			break
		}
		if front.tried == len(directions) {
			q.PopFront()
			continue
		}
		from := front.at
		next := from.add(directions[front.tried])
		front.tried++
		if m.isOpen(next) && !seen[next.row][next.col] {
			seen[next.row][next.col] = true
			prev[next] = from
			q.Push(step{at: next})
		}
	}

	var path []coord
	for c := m.exit; c != m.entry; c = prev[c] {
		path = append(path, c)
	}
	path = append(path, m.entry)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// isSolved reports whether path runs from entry to exit through open,
// adjacent cells.
func (m *maze) isSolved(path []coord) bool {
	if len(path) == 0 || path[0] != m.entry || path[len(path)-1] != m.exit {
		return false
	}
	for i, c := range path {
		if !m.isOpen(c) {
			return false
		}
		if i > 0 {
			d := coord{c.row - path[i-1].row, c.col - path[i-1].col}
			if d.row*d.row+d.col*d.col != 1 {
				return false
			}
		}
	}
	return true
}

// render draws the board with the path traced in box drawing characters.
func (m *maze) render(path []coord) string {
	out := make([][]rune, len(m.board))
	for i, row := range m.board {
		out[i] = make([]rune, len(row))
		for j, c := range row {
			out[i][j] = '.'
			if c == wall {
				out[i][j] = '#'
			}
		}
	}
	for i := 1; i < len(path)-1; i++ {
		c := path[i]
		out[c.row][c.col] = pathRune(c, path[i-1], path[i+1])
	}
	out[m.entry.row][m.entry.col] = '<'
	out[m.exit.row][m.exit.col] = '>'

	var b strings.Builder
	for _, row := range out {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// pathRune picks the character joining c to its neighbours a and b.
func pathRune(c, a, b coord) rune {
	var up, down, left, right bool
	for _, n := range []coord{a, b} {
		switch {
		case n.row < c.row:
			up = true
		case n.row > c.row:
			down = true
		case n.col < c.col:
			left = true
		default:
			right = true
		}
	}
	switch {
	case up && down:
		return '│'
	case left && right:
		return '─'
	case up && right:
		return '└'
	case up && left:
		return '┘'
	case down && right:
		return '┌'
	default:
		return '┐'
	}
}

var algorithms = map[string]func(*maze) ([]coord, bool){
	"dfs": (*maze).solveDFS,
	"bfs": (*maze).solveBFS,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var algorithm string
	usage := "Search algorithm: bfs, dfs"
	fs.StringVar(&algorithm, "a", "dfs", usage)
	fs.StringVar(&algorithm, "algorithm", "dfs", usage)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: maze [-a/--algorithm dfs|bfs] < board")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	out, err := solve(algorithm, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errArgs) {
			fs.Usage()
		}
		return 1
	}
	fmt.Fprint(stdout, out)
	return 0
}

func solve(algorithm string, r io.Reader) (string, error) {
	search, ok := algorithms[algorithm]
	if !ok {
		return "", fmt.Errorf("%w: no algorithm %q", errArgs, algorithm)
	}
	m, err := parseMaze(r)
	if err != nil {
		return "", err
	}
	path, ok := search(m)
	if !ok {
		return "", errNoPath
	}
	if !m.isSolved(path) {
		return "", fmt.Errorf("%s returned a broken path", algorithm)
	}
	return fmt.Sprintf("%ssteps: %d\n", m.render(path), len(path)-1), nil
}
