package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPlainAlternation(t *testing.T) {
	f := Select[string]("Tristate", Constant("true"), Constant("false"))

	v, ok := f.Match(View("true"))
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = f.Match(View("maybe"))
	assert.False(t, ok)
}

func buildArithmetic() (expr, term, factor *Fragment[int64]) {
	expr = NewFragment[int64]("Expr")
	term = NewFragment[int64]("Term")
	factor = NewFragment[int64]("Factor")

	Handle3(expr, func(l int64, _ string, r int64) int64 { return l + r }, expr, Char('+'), term)
	Handle3(expr, func(l int64, _ string, r int64) int64 { return l - r }, expr, Char('-'), term)
	Handle1(expr, func(t int64) int64 { return t }, term)

	Handle3(term, func(l int64, _ string, r int64) int64 { return l * r }, term, Char('*'), factor)
	Handle3(term, func(l int64, _ string, r int64) int64 { return l / r }, term, Char('/'), factor)
	Handle1(term, func(f int64) int64 { return f }, factor)

	Handle1(factor, func(n int64) int64 { return n }, Integer())
	Handle3(factor, func(_ string, e int64, _ string) int64 { return e }, Char('('), expr, Char(')'))

	return expr, term, factor
}

func TestLeftRecursiveArithmetic(t *testing.T) {
	expr, _, _ := buildArithmetic()

	cases := []struct {
		input string
		want  int64
	}{
		{"1+2+3", 6},
		{"2*3+4", 10},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-2-3", 5},
		{"(1+(2+3))*2", 12},
	}
	for _, c := range cases {
		v, ok := expr.Match(View(c.input))
		require.True(t, ok, "input %q should match", c.input)
		assert.Equal(t, c.want, v, "input %q", c.input)
	}
}

func TestLeftRecursiveArithmeticConsumePrefix(t *testing.T) {
	expr, _, _ := buildArithmetic()
	p := expr.Consume(View("1+2+rest"))
	assert.True(t, p.Ok)
	assert.Equal(t, 3, p.Length)
	assert.EqualValues(t, 3, p.Value)
}

func TestPipeCounterLeftRecursion(t *testing.T) {
	counter := NewFragment[int64]("PipeCounter")
	Handle2(counter, func(n int64, _ string) int64 { return n + 1 }, counter, Char('|'))
	Handle1(counter, func(_ string) int64 { return 0 }, Constant(""))

	v, ok := counter.Match(View(""))
	require.True(t, ok)
	assert.EqualValues(t, 0, v)

	v, ok = counter.Match(View("||||"))
	require.True(t, ok)
	assert.EqualValues(t, 4, v)
}

func TestWeightBreaksTiesAmongFullMatches(t *testing.T) {
	f := NewFragment[string]("Ambiguous")
	Handle1(f, func(s string) string { return "low:" + s }, Constant("x"), 0)
	Handle1(f, func(s string) string { return "high:" + s }, Constant("x"), 5)

	v, ok := f.Match(View("x"))
	require.True(t, ok)
	assert.Equal(t, "high:x", v)
}

func TestSelfOnlySlotRejectedAtConstruction(t *testing.T) {
	f := NewFragment[string]("Bad")
	assert.Panics(t, func() {
		Handle1(f, func(s string) string { return s }, f)
	})
}

func TestRequestReportsPosition(t *testing.T) {
	f := NewFragment[string]("Line")
	Handle1(f, func(s string) string { return s }, Constant("hi"))

	buf := "first\nsecond\nhi"
	v := View(buf)
	afterSecondLine := v.Substr(len("first\nsecond\n"))

	result, err := f.Request(afterSecondLine)
	require.NoError(t, err)
	require.True(t, result.Ok)
	assert.Equal(t, 3, result.Position.Line)
	assert.Equal(t, 1, result.Position.Column)
}

func TestNoExecuteDefinitionErrorIsRecovered(t *testing.T) {
	f := NewFragment[string]("NoAction")
	Handle1[string, string](f, nil, Constant("x"))

	_, err := f.SafeConsume(View("x"))
	require.Error(t, err)
	var target *NoExecuteDefinitionError
	assert.ErrorAs(t, err, &target)
}

func TestValidateCatchesUnboundActionUpfront(t *testing.T) {
	f := NewFragment[string]("NoAction")
	Handle1[string, string](f, nil, Constant("x"))

	err := Validate(f)
	require.Error(t, err)
}

func TestNullReferenceErrorIsRecovered(t *testing.T) {
	f := NewFragment[string]("Panics")
	var nilPtr *int
	Handle1(f, func(s string) string {
		return s + string(rune(*nilPtr))
	}, Constant("x"))

	_, err := f.SafeConsume(View("x"))
	require.Error(t, err)
	var target *NullReferenceError
	assert.ErrorAs(t, err, &target)
}
