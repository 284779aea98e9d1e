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
	"github.com/io-lang/ioparse/ast"
	"github.com/io-lang/ioparse/optable"
)

// Operator recognizes an operator token by consulting tbl, trying table
// entries in longest-first order so "::=" wins over ":=" and "<<=" over
// "<<" (§4.1). The matched text becomes the returned symbol's handle; it is
// not a fresh allocation, it's a slice of the input s.
func Operator(tbl *optable.Table, s string) (value ast.Symbol, rest string, ok bool) {
	entry, rest, ok := tbl.MatchLongestPrefix(s)
	if !ok {
		return ast.Symbol{}, s, false
	}
	return ast.NewOperator(entry.Symbol, entry.Precedence), rest, true
}

// Symbol dispatches to quote | operator | number | identifier, tried in
// that order (§4.1's "Symbol dispatch"): operator must precede number so a
// leading "-" isn't swallowed by the decimal recognizer ahead of
// subtraction contexts, and number must precede identifier so "123" does
// not tokenize as an identifier.
func Symbol(tbl *optable.Table, s string) (value ast.Symbol, rest string, err error) {
	if sym, rest, err := Quote(s); err == nil {
		return sym, rest, nil
	} else if err != ErrNoMatch {
		return ast.Symbol{}, s, err
	}

	if sym, rest, ok := Operator(tbl, s); ok {
		return sym, rest, nil
	}

	if sym, rest, ok := Number(s); ok {
		return sym, rest, nil
	}

	if text, rest, ok := Identifier(s); ok {
		return ast.NewIdentifier(text), rest, nil
	}

	return ast.Symbol{}, s, ErrNoMatch
}
