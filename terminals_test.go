package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	m := Constant("foo")
	p := m.Consume(View("foobar"))
	assert.True(t, p.Ok)
	assert.Equal(t, 3, p.Length)
	assert.Equal(t, "foo", p.Value)

	assert.False(t, m.Consume(View("bar")).Ok)

	_, ok := m.Match(View("foo"))
	assert.True(t, ok)
	_, ok = m.Match(View("foobar"))
	assert.False(t, ok)
}

func TestChar(t *testing.T) {
	m := Char('x')
	assert.Equal(t, 1, m.ExactSize())
	p := m.Consume(View("xyz"))
	assert.True(t, p.Ok)
	assert.Equal(t, "x", p.Value)
}

func TestAnyOf(t *testing.T) {
	m := AnyOf("abc")
	assert.True(t, m.Consume(View("b")).Ok)
	assert.False(t, m.Consume(View("d")).Ok)
	assert.False(t, m.Consume(View("")).Ok)
}

func TestAnyIn(t *testing.T) {
	m := AnyIn('0', '9')
	assert.True(t, m.Consume(View("5")).Ok)
	assert.False(t, m.Consume(View("a")).Ok)
}

func TestInteger(t *testing.T) {
	m := Integer()
	p := m.Consume(View("123abc"))
	assert.True(t, p.Ok)
	assert.Equal(t, 3, p.Length)
	assert.EqualValues(t, 123, p.Value)

	assert.False(t, m.Consume(View("abc")).Ok)

	overflow := "99999999999999999999999999"
	assert.False(t, m.Consume(View(overflow)).Ok)
}
