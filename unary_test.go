package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotIsZeroWidth(t *testing.T) {
	m := Not[string](Constant("a"))
	p := m.Consume(View("bcd"))
	assert.True(t, p.Ok)
	assert.Equal(t, 0, p.Length)

	assert.False(t, m.Consume(View("abc")).Ok)
}

func TestPlusRequiresAtLeastOne(t *testing.T) {
	m := Plus[string](Digit())
	assert.False(t, m.Consume(View("abc")).Ok)

	p := m.Consume(View("123abc"))
	assert.True(t, p.Ok)
	assert.Equal(t, 3, p.Length)
	assert.Equal(t, []string{"1", "2", "3"}, p.Value)
}

func TestStarAlwaysSucceeds(t *testing.T) {
	m := Star[string](Digit())
	p := m.Consume(View("abc"))
	assert.True(t, p.Ok)
	assert.Equal(t, 0, p.Length)
	assert.Nil(t, p.Value)

	p = m.Consume(View("123abc"))
	assert.True(t, p.Ok)
	assert.Equal(t, 3, p.Length)
}

func TestOptionalC(t *testing.T) {
	m := OptionalC[string](Constant("x"))

	p := m.Consume(View("xy"))
	assert.True(t, p.Ok)
	assert.True(t, p.Value.Present)
	assert.Equal(t, "x", p.Value.Value)

	p = m.Consume(View("y"))
	assert.True(t, p.Ok)
	assert.False(t, p.Value.Present)
	assert.Equal(t, 0, p.Length)
}

func TestStartWith(t *testing.T) {
	m := StartWith[string](Constant("ab"))
	p := m.Consume(View("abcdef"))
	assert.True(t, p.Ok)
	assert.Equal(t, 2, p.Length)
	assert.Equal(t, "ab", p.Value)
}

func TestEndWith(t *testing.T) {
	m := EndWith[string](Constant("ef"))
	p := m.Consume(View("abcdef"))
	assert.True(t, p.Ok)
	assert.Equal(t, 2, p.Length)
	assert.Equal(t, "ef", p.Value)
}

func TestRepeat(t *testing.T) {
	m := Repeat(4, Digit())
	p := m.Consume(View("1234567"))
	assert.True(t, p.Ok)
	assert.Equal(t, 4, p.Length)
	assert.Equal(t, []string{"1", "2", "3", "4"}, p.Value)

	assert.False(t, m.Consume(View("12")).Ok)
}

func TestWord(t *testing.T) {
	m := Word[string](Digit())
	p := m.Consume(View("123abc"))
	assert.True(t, p.Ok)
	assert.Equal(t, "123", p.Value)
}
