package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrTriesLeftThenRight(t *testing.T) {
	m := Or[string, string](Constant("cat"), Constant("dog"))
	assert.True(t, m.Consume(View("cat")).Ok)
	assert.True(t, m.Consume(View("dog")).Ok)
	assert.False(t, m.Consume(View("bird")).Ok)
}

func TestAndRequiresEqualLength(t *testing.T) {
	m := And[string, string](Word[string](Digit()), Constant("123"))
	p := m.Consume(View("123"))
	assert.True(t, p.Ok)
	assert.Equal(t, 3, p.Length)

	// "1234" has Word(Digit) consume 4 but Constant("123") consume 3: dismatch.
	m2 := And[string, string](Word[string](Digit()), Constant("123"))
	assert.False(t, m2.Consume(View("1234")).Ok)
}

func TestRangeIsStartAndEnd(t *testing.T) {
	m := Range[string, string](Constant("ab"), Constant("ab"))
	p := m.Consume(View("ab"))
	assert.True(t, p.Ok)
	assert.Equal(t, 2, p.Length)
}
