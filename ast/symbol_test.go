package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Symbol
		equal bool
	}{
		{"identical identifiers", NewIdentifier("foo"), NewIdentifier("foo"), true},
		{"different identifiers", NewIdentifier("foo"), NewIdentifier("bar"), false},
		{"identical hex numbers", NewHexNumber(0xFF), NewHexNumber(0xFF), true},
		{"hex vs decimal with same magnitude", NewHexNumber(10), NewDecimalNumber(10), false},
		{"operator equal ignores precedence", NewOperator("+", 3), NewOperator("+", 99), true},
		{"operator different symbol", NewOperator("+", 3), NewOperator("-", 3), false},
		{"identical quotes", NewQuote("hi"), NewQuote("hi"), true},
		{"different kinds never equal", NewIdentifier("x"), NewQuote("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestSymbolIsOperator(t *testing.T) {
	assert.True(t, NewOperator("+", 3).IsOperator())
	assert.False(t, NewIdentifier("+").IsOperator())
}
