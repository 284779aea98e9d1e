package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparator(t *testing.T) {
	for _, s := range []string{" ", "\t", "\x0c", "\x0b"} {
		rest, ok := Separator(s)
		require.True(t, ok, "%q should be a separator", s)
		assert.Equal(t, "", rest)
	}
	_, ok := Separator("\n")
	assert.False(t, ok, "line ending is not a separator")
}

func TestLineEnding(t *testing.T) {
	rest, ok := LineEnding("\r\nfoo")
	require.True(t, ok)
	assert.Equal(t, "foo", rest)

	rest, ok = LineEnding("\rfoo")
	require.True(t, ok)
	assert.Equal(t, "foo", rest)
}

func TestComment(t *testing.T) {
	tests := []struct{ in, rest string }{
		{"# comment\nfoo", "\nfoo"},
		{"// comment\nfoo", "\nfoo"},
		{"# comment to EOF", ""},
		{"/* block\ncomment */foo", "foo"},
	}
	for _, tt := range tests {
		rest, ok := Comment(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.rest, rest)
	}
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	rest, ok := Comment("/* outer /* inner */ trailing */")
	require.True(t, ok)
	assert.Equal(t, " trailing */", rest)
}

func TestSCPadAndWCPad(t *testing.T) {
	rest, ok := SCPad(" ")
	require.True(t, ok)
	assert.Equal(t, "", rest)

	rest, ok = SCPad("# comment\n")
	require.True(t, ok)
	assert.Equal(t, "\n", rest)

	rest, ok = WCPad("\n")
	require.True(t, ok)
	assert.Equal(t, "", rest)
}

func TestTerminator(t *testing.T) {
	tests := []struct{ in, rest string }{
		{";", ""},
		{"; \r", " \r"},
		{"\r", ""},
		{"\n", ""},
	}
	for _, tt := range tests {
		rest, ok := Terminator(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.rest, rest)
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct{ in, value, rest string }{
		{"foo", "foo", ""},
		{"foo_bar", "foo_bar", ""},
		{"foo_bar_123_", "foo_bar_123_", ""},
		{"тест", "тест", ""},
		{"_тест", "_тест", ""},
		{"_", "_", ""},
		{"foo(1)", "foo", "(1)"},
	}
	for _, tt := range tests {
		value, rest, ok := Identifier(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, tt.value, value)
		assert.Equal(t, tt.rest, rest)
	}
}

func TestIdentifierRejectsEmpty(t *testing.T) {
	_, _, ok := Identifier("")
	assert.False(t, ok)
}

func TestIdentifierAcceptsDigitsInIsolation(t *testing.T) {
	// Digits are alphanumeric, so the identifier recognizer alone accepts a
	// bare digit run; it is the Symbol dispatch order (number before
	// identifier) that keeps "123" from actually tokenizing as an
	// identifier (see operator.go's Symbol function).
	value, rest, ok := Identifier("123")
	require.True(t, ok)
	assert.Equal(t, "123", value)
	assert.Equal(t, "", rest)
}
