package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io-lang/ioparse/ast"
)

func TestMonoQuote(t *testing.T) {
	tests := []struct{ in, want, rest string }{
		{`"test"`, "test", ""},
		{`"\n"`, "\n", ""},
		{`"hello, \"world\""`, `hello, "world"`, ""},
		{`""`, "", ""},
		{`"test"` + `trailing`, "test", "trailing"},
	}
	for _, tt := range tests {
		sym, rest, err := Quote(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, ast.Quote, sym.Kind)
		assert.Equal(t, tt.want, sym.QuoteText)
		assert.Equal(t, tt.rest, rest)
	}
}

func TestTripleQuote(t *testing.T) {
	sym, rest, err := Quote(`""""""`)
	require.NoError(t, err)
	assert.Equal(t, "", sym.QuoteText)
	assert.Equal(t, "", rest)

	sym, rest, err = Quote(`"""Hello, world!"""`)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", sym.QuoteText)
	assert.Equal(t, "", rest)

	multi := "\"\"\"This is a \"test\" test,\n    hello!\"\"\""
	sym, _, err = Quote(multi)
	require.NoError(t, err)
	assert.Equal(t, "This is a \"test\" test,\n    hello!", sym.QuoteText)
}

func TestQuoteEscapeTable(t *testing.T) {
	tests := []struct{ in, want string }{
		{`"\a"`, "\x07"},
		{`"\b"`, "\x08"},
		{`"\e"`, "\x1b"},
		{`"\f"`, "\x0c"},
		{`"\r"`, "\r"},
		{`"\t"`, "\t"},
		{`"\v"`, "\x0b"},
		{`"\\"`, "\\"},
		{`"\'"`, "'"},
		{`"\0"`, "\x00"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\U00000041"`, "A"},
	}
	for _, tt := range tests {
		sym, _, err := Quote(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, sym.QuoteText)
	}
}

func TestQuoteNewlineInMonoQuoteIsHardFailure(t *testing.T) {
	_, _, err := Quote("\"a\nb\"")
	require.Error(t, err)
	assert.NotEqual(t, ErrNoMatch, err)
}

func TestQuoteUnterminatedIsHardFailure(t *testing.T) {
	_, _, err := Quote(`"unterminated`)
	require.Error(t, err)
	assert.NotEqual(t, ErrNoMatch, err)
}

func TestQuoteMalformedHexEscapeIsHardFailure(t *testing.T) {
	_, _, err := Quote(`"\xZZ"`)
	require.Error(t, err)
	assert.NotEqual(t, ErrNoMatch, err)
}

func TestQuoteNoLeadingQuoteIsRecoverable(t *testing.T) {
	_, rest, err := Quote("foo")
	assert.Equal(t, ErrNoMatch, err)
	assert.Equal(t, "foo", rest)
}

func TestTripleQuotePreferredOverMonoQuote(t *testing.T) {
	sym, rest, err := Quote(`"""abc"""def`)
	require.NoError(t, err)
	assert.Equal(t, "abc", sym.QuoteText)
	assert.Equal(t, "def", rest)
}
