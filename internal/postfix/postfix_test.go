package postfix

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		expr    string
		want    []Token
		wantErr error
		pos     int
	}{
		{expr: "1 +1", want: []Token{Number(1), Number(1), Op(Add)}},
		{expr: "a", wantErr: ErrIllegalChar, pos: 0},
		{expr: "1+2*3", want: []Token{Number(1), Number(2), Number(3), Op(Multiply), Op(Add)}},
		{expr: "(( 1 + 2 ) * 3)", want: []Token{Number(1), Number(2), Op(Add), Number(3), Op(Multiply)}},
		{expr: "(1+1", wantErr: ErrUnmatchedParenthesis, pos: 0},
		{expr: "1+1)", wantErr: ErrUnmatchedParenthesis, pos: 3},
		{expr: "1 + 1 + 1", want: []Token{Number(1), Number(1), Op(Add), Number(1), Op(Add)}},
		{expr: "1 + (2 + 3)", want: []Token{Number(1), Number(2), Number(3), Op(Add), Op(Add)}},
		{expr: "8 - 2 - 1", want: []Token{Number(8), Number(2), Op(Subtract), Number(1), Op(Subtract)}},
		{expr: "12*34/5", want: []Token{Number(12), Number(34), Op(Multiply), Number(5), Op(Divide)}},
		{expr: "", want: nil},
		{expr: "1 + 2 ^ 3", wantErr: ErrIllegalChar, pos: 6},
		{expr: "1 + é", wantErr: ErrIllegalChar, pos: 4},
		{expr: "99999999999999999999999", wantErr: ErrNumberTooLarge, pos: 0},
	}

	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := ToPostfix(tc.expr)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var exprErr *ExprError
				require.True(t, errors.As(err, &exprErr))
				require.Equal(t, tc.pos, exprErr.Pos)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, slices.Collect(got.All()))
		})
	}
}

func TestMultiDigitNumbers(t *testing.T) {
	got, err := ToPostfix("123 4567")
	require.NoError(t, err)
	require.Equal(t, []Token{Number(123), Number(4567)}, slices.Collect(got.All()))
}

func TestFormat(t *testing.T) {
	got, err := ToPostfix("(1 + 2) * 30")
	require.NoError(t, err)
	require.Equal(t, "1 2 + 30 *", Format(got.All()))
	require.Equal(t, "", Format(slices.Values([]Token(nil))))
}

func TestErrorMessage(t *testing.T) {
	_, err := ToPostfix("1+1)")
	require.EqualError(t, err, "unmatched parenthesis at position 3")
}

func TestEvaluate(t *testing.T) {
	cases := map[string]float64{
		"1 + 1":           2,
		"1+2*3":           7,
		"(( 1 + 2 ) * 3)": 9,
		"8 - 2 - 1":       5,
		"7 / 2":           3.5,
		"2 * (3 + 4) - 5": 9,
	}
	for expr, want := range cases {
		got, err := Calculate(expr)
		require.NoError(t, err, expr)
		require.Equal(t, want, got, expr)
	}
}

func TestEvaluateErrors(t *testing.T) {
	_, err := Calculate("1 / (2 - 2)")
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Calculate("")
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Evaluate(slices.Values([]Token{Number(1), Op(Add)}))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Evaluate(slices.Values([]Token{Number(1), Number(2)}))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Calculate("(1")
	require.ErrorIs(t, err, ErrUnmatchedParenthesis)
}
