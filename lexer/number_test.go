package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/io-lang/ioparse/ast"
)

func TestNumberHex(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
		rest string
	}{
		{"0x1234", 0x1234, ""},
		{"0Xabcd", 0xabcd, ""},
		{"0x1a2b3c4d foo", 0x1a2b3c4d, " foo"},
	}
	for _, tt := range tests {
		sym, rest, ok := Number(tt.in)
		require.True(t, ok, tt.in)
		assert.Equal(t, ast.Number, sym.Kind)
		assert.True(t, sym.NumberValue.IsHex)
		assert.Equal(t, tt.want, sym.NumberValue.Hex)
		assert.Equal(t, tt.rest, rest)
	}
}

func TestNumberDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		rest string
	}{
		{"42", 42.0, ""},
		{"3.1415", 3.1415, ""},
		{"123.456e+10", 1234560000000.0, ""},
		{"0.5e-3", 0.0005, ""},
		{"-2.5e-3", -0.0025, ""},
		{".5", 0.5, ""},
		{"5.", 5.0, ""},
		{"42 foo", 42.0, " foo"},
	}
	for _, tt := range tests {
		sym, rest, ok := Number(tt.in)
		require.True(t, ok, tt.in)
		assert.False(t, sym.NumberValue.IsHex)
		assert.InDelta(t, tt.want, sym.NumberValue.Dec, 1e-9)
		assert.Equal(t, tt.rest, rest)
	}
}

func TestNumberRejectsNonNumeric(t *testing.T) {
	_, _, ok := Number("foo")
	assert.False(t, ok)
	_, _, ok = Number(".")
	assert.False(t, ok)
	_, _, ok = Number("-")
	assert.False(t, ok)
}

func TestHexPreferredOverDecimal(t *testing.T) {
	sym, rest, ok := Number("0x10")
	require.True(t, ok)
	assert.True(t, sym.NumberValue.IsHex)
	assert.Equal(t, uint64(16), sym.NumberValue.Hex)
	assert.Equal(t, "", rest)
}
