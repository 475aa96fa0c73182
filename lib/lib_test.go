package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crikka/combi"
)

func TestIdentifier(t *testing.T) {
	m := Identifier()
	p := m.Consume(combi.View("_foo123 bar"))
	require.True(t, p.Ok)
	assert.Equal(t, "_foo123", p.Value)
}

func TestIdentifierMustStartWithLetterOrUnderscore(t *testing.T) {
	m := Identifier()
	assert.False(t, m.Consume(combi.View("123abc")).Ok)
}

func TestSignedInteger(t *testing.T) {
	m := SignedInteger()

	v, ok := m.Match(combi.View("42"))
	require.True(t, ok)
	assert.EqualValues(t, 42, v)

	v, ok = m.Match(combi.View("-42"))
	require.True(t, ok)
	assert.EqualValues(t, -42, v)
}

func TestSkipWhitespace(t *testing.T) {
	s := SkipWhitespace()
	length, ok := s.Try(combi.View("   x"))
	assert.True(t, ok)
	assert.Equal(t, 1, length)
}
