package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crikka/combi"
)

func TestArithmetic(t *testing.T) {
	expr, _, _ := Arithmetic()

	v, ok := expr.Match(combi.View("2+3*4"))
	require.True(t, ok)
	assert.EqualValues(t, 14, v)
}

func TestArithmeticWithWhitespace(t *testing.T) {
	expr, _, _ := ArithmeticWithWhitespace()

	v, ok := expr.Match(combi.View(" 2 + 3 * 4 "))
	require.True(t, ok)
	assert.EqualValues(t, 14, v)
}

func TestTristate(t *testing.T) {
	f := Tristate()
	v, ok := f.Match(combi.View("maybe"))
	require.True(t, ok)
	assert.Equal(t, "maybe", v)

	_, ok = f.Match(combi.View("nope"))
	assert.False(t, ok)
}

func TestPipeCounter(t *testing.T) {
	f := PipeCounter()
	v, ok := f.Match(combi.View("|||"))
	require.True(t, ok)
	assert.EqualValues(t, 3, v)
}

func TestFourDigitCode(t *testing.T) {
	m := FourDigitCode()
	p := m.Consume(combi.View("123456"))
	require.True(t, p.Ok)
	assert.Equal(t, 4, p.Length)
}
