// Package postfix converts infix arithmetic to postfix notation and evaluates
// the result.
//
// Expressions consist of unsigned decimal numbers, the operators + - * /,
// parentheses and whitespace. Operators of equal precedence associate to the
// left.
package postfix

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"

	"github.com/i5heu/GoSeqLists/pkg/seqlist"
	"github.com/i5heu/GoSeqLists/pkg/stack"
)

var (
	ErrIllegalChar          = errors.New("illegal character")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrNumberTooLarge       = errors.New("number too large")
	ErrMalformed            = errors.New("malformed postfix expression")
	ErrDivisionByZero       = errors.New("division by zero")
)

// Operator is one of '+', '-', '*' or '/'.
type Operator byte

const (
	Add      Operator = '+'
	Subtract Operator = '-'
	Multiply Operator = '*'
	Divide   Operator = '/'
)

func (op Operator) precedence() int {
	switch op {
	case Multiply, Divide:
		return 2
	default:
		return 1
	}
}

func (op Operator) String() string { return string(op) }

// Token is a number or an operator of a postfix expression. Op is zero for
// numbers.
type Token struct {
	Op  Operator
	Num uint64
}

// Number returns a number token.
func Number(n uint64) Token { return Token{Num: n} }

// Op returns an operator token.
func Op(op Operator) Token { return Token{Op: op} }

// IsNumber reports whether t is a number.
func (t Token) IsNumber() bool { return t.Op == 0 }

func (t Token) String() string {
	if t.IsNumber() {
		return strconv.FormatUint(t.Num, 10)
	}
	return t.Op.String()
}

// ExprError locates a conversion error. Pos is the byte offset in the input.
type ExprError struct {
	Err error
	Pos int
}

func (e *ExprError) Error() string { return fmt.Sprintf("%v at position %d", e.Err, e.Pos) }
func (e *ExprError) Unwrap() error { return e.Err }

// pending is an entry of the operator stack: an operator or an open
// parenthesis remembered by position.
type pending struct {
	op    Operator
	paren bool
	pos   int
}

// ToPostfix converts an infix expression with the shunting-yard algorithm.
// The operator stack is a SeqStack and the output a SeqList.
func ToPostfix(s string) (*seqlist.SeqList[Token], error) {
	out := seqlist.New[Token]()
	ops := stack.NewSeq[pending]()

	for pos := 0; pos < len(s); {
		c := s[pos]
		switch {
		case isDigit(c):
			end := pos + 1
			for end < len(s) && isDigit(s[end]) {
				end++
			}
			n, err := strconv.ParseUint(s[pos:end], 10, 64)
			if err != nil {
				return nil, &ExprError{Err: ErrNumberTooLarge, Pos: pos}
			}
			out.Push(Number(n))
			pos = end
			continue
		case c == '(':
			ops.Push(pending{paren: true, pos: pos})
		case c == ')':
			if !closeParenthesis(ops, out) {
				return nil, &ExprError{Err: ErrUnmatchedParenthesis, Pos: pos}
			}
		case c == '+' || c == '-' || c == '*' || c == '/':
			pushOperator(ops, Operator(c), out)
		case c < 0x80 && unicode.IsSpace(rune(c)):
		default:
			return nil, &ExprError{Err: ErrIllegalChar, Pos: pos}
		}
		pos++
	}

	for {
		p, ok := ops.Pop()
		if !ok {
			break
		}
		if p.paren {
			return nil, &ExprError{Err: ErrUnmatchedParenthesis, Pos: p.pos}
		}
		out.Push(Op(p.op))
	}
	return out, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// closeParenthesis pops operators to out up to the matching open parenthesis
// and reports whether there was one.
func closeParenthesis(ops *stack.SeqStack[pending], out *seqlist.SeqList[Token]) bool {
	for {
		p, ok := ops.Pop()
		if !ok {
			return false
		}
		if p.paren {
			return true
		}
		out.Push(Op(p.op))
	}
}

// pushOperator moves every stacked operator that binds at least as tight as
// op to out, then stacks op.
func pushOperator(ops *stack.SeqStack[pending], op Operator, out *seqlist.SeqList[Token]) {
	for {
		top, ok := ops.Peek()
		if !ok || top.paren || top.op.precedence() < op.precedence() {
			break
		}
		out.Push(Op(top.op))
		ops.Pop()
	}
	ops.Push(pending{op: op})
}

// Format joins tokens with single spaces.
func Format(tokens iter.Seq[Token]) string {
	var b strings.Builder
	for t := range tokens {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Evaluate computes a postfix expression on a LinkedStack of operands.
func Evaluate(tokens iter.Seq[Token]) (float64, error) {
	operands := stack.NewLinked[float64]()
	defer operands.Release()

	for t := range tokens {
		if t.IsNumber() {
			operands.Push(float64(t.Num))
			continue
		}
		rhs, ok1 := operands.Pop()
		lhs, ok2 := operands.Pop()
		if !ok1 || !ok2 {
			return 0, fmt.Errorf("%w: operator %s lacks operands", ErrMalformed, t.Op)
		}
		var v float64
		switch t.Op {
		case Add:
			v = lhs + rhs
		case Subtract:
			v = lhs - rhs
		case Multiply:
			v = lhs * rhs
		case Divide:
			if rhs == 0 {
				return 0, ErrDivisionByZero
			}
			v = lhs / rhs
		default:
			return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformed, byte(t.Op))
		}
		operands.Push(v)
	}

	if operands.Len() != 1 {
		return 0, fmt.Errorf("%w: %d values left on the stack", ErrMalformed, operands.Len())
	}
	v, _ := operands.Pop()
	return v, nil
}

// Calculate converts s and evaluates it.
func Calculate(s string) (float64, error) {
	tokens, err := ToPostfix(s)
	if err != nil {
		return 0, err
	}
	return Evaluate(tokens.All())
}
