package combi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringViewBasics(t *testing.T) {
	v := View("hello world")
	assert.Equal(t, 11, v.Size())
	assert.False(t, v.Empty())
	assert.Equal(t, byte('h'), v.ByteAt(0))
	assert.True(t, v.HasPrefix("hello"))
	assert.False(t, v.HasPrefix("world"))
	assert.Equal(t, "hello world", v.String())
}

func TestStringViewSubstr(t *testing.T) {
	v := View("hello world")
	assert.Equal(t, "world", v.Substr(6).String())
	assert.Equal(t, "hello", v.Substr(0, 5).String())
	assert.True(t, v.Substr(11).Empty())
}

func TestStringViewEquals(t *testing.T) {
	v := View("abc")
	assert.True(t, v.Equals("abc"))
	assert.False(t, v.Equals("ab"))
	assert.False(t, v.Equals("abcd"))
}
