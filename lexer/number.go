// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"strconv"
	"strings"

	"github.com/io-lang/ioparse/ast"
)

// Number recognizes a numeric literal, hex forms tried first: "0x"/"0X"
// followed by one or more hex digits, parsed as an unsigned 64-bit integer;
// otherwise a decimal float in one of the forms ".digits[exp]",
// "digits[.digits]exp", "digits.[digits]", or bare "digits", with an
// optional leading sign.
func Number(s string) (value ast.Symbol, rest string, ok bool) {
	if v, r, ok := hexNumber(s); ok {
		return v, r, true
	}
	return decimalNumber(s)
}

func hexNumber(s string) (ast.Symbol, string, bool) {
	var body string
	switch {
	case strings.HasPrefix(s, "0x"):
		body = s[2:]
	case strings.HasPrefix(s, "0X"):
		body = s[2:]
	default:
		return ast.Symbol{}, s, false
	}
	n := 0
	for n < len(body) && isHexDigit(body[n]) {
		n++
	}
	if n == 0 {
		return ast.Symbol{}, s, false
	}
	v, err := strconv.ParseUint(body[:n], 16, 64)
	if err != nil {
		return ast.Symbol{}, s, false
	}
	return ast.NewHexNumber(v), body[n:], true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func decimalNumber(s string) (ast.Symbol, string, bool) {
	n := 0
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	digitsBefore := 0
	for n < len(s) && isDigit(s[n]) {
		n++
		digitsBefore++
	}
	digitsAfter := 0
	if n < len(s) && s[n] == '.' {
		n++
		for n < len(s) && isDigit(s[n]) {
			n++
			digitsAfter++
		}
	}
	if digitsBefore == 0 && digitsAfter == 0 {
		return ast.Symbol{}, s, false
	}
	// exponent
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		expDigits := 0
		for m < len(s) && isDigit(s[m]) {
			m++
			expDigits++
		}
		if expDigits > 0 {
			n = m
		}
	}
	literal := s[:n]
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return ast.Symbol{}, s, false
	}
	return ast.NewDecimalNumber(v), s[n:], true
}
