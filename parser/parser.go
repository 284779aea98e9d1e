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

// Package parser composes the lexical recognizers in the lexer package into
// the grammar described in §4.2:
//
//	program       := (wcpad* message_chain wcpad*)*            EOF
//	message_chain := message+ terminator?
//	message       := scpad* symbol scpad? arguments?
//	arguments     := '(' arg_list (',' wcpad*)? ')'
//	               | '[' arg_list ']'
//	               | '{' arg_list '}'
//	arg_list      := argument (',' argument)*                  (may be empty)
//	argument      := wcpad* message_chain+ wcpad*
//
// The parser is greedy and fully consuming: Parse fails if any input
// remains after the final chain. There is no error recovery; the first
// hard failure aborts the parse and is reported with its source position.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/io-lang/ioparse/ast"
	"github.com/io-lang/ioparse/lexer"
	"github.com/io-lang/ioparse/optable"
	"github.com/io-lang/ioparse/reporter"
)

// categorizeSymbolError attaches a Category to a hard failure surfaced from
// lexer.Symbol, so that a CategorizedError is always what reaches the
// reporter rather than a bare error for quote and escape failures.
func categorizeSymbolError(err error) error {
	switch {
	case errors.Is(err, lexer.ErrInvalidEscape):
		return newCategorizedError(CategoryInvalidEscape, err)
	case errors.Is(err, lexer.ErrUnterminatedQuote):
		return newCategorizedError(CategoryUnterminatedQuote, err)
	default:
		return err
	}
}

// Option configures a Parse call.
type Option func(*config)

type config struct {
	table *optable.Table
}

// WithOperatorTable overrides the operator table consulted while lexing
// operator tokens. Defaults to optable.Global(), the process-wide table
// described in §4.4.
func WithOperatorTable(t *optable.Table) Option {
	return func(c *config) { c.table = t }
}

func newConfig(opts ...Option) *config {
	c := &config{table: optable.Global()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse runs the grammar over src and returns the message chains found, in
// source order, plus whatever text remains. On success rest is always
// empty: the parser is fully consuming. A hard failure is returned as a
// reporter.ErrorWithPos identifying the offending position.
func Parse(src string, opts ...Option) (rest string, chains []*ast.MessageChain, err error) {
	cfg := newConfig(opts...)

	chains, failRest, perr := parseProgram(cfg.table, src)
	if perr != nil {
		return src, nil, reporter.Error(posAt(src, failRest), perr)
	}
	if failRest != "" {
		trailing := newCategorizedError(CategoryTrailingInput, fmt.Errorf("unexpected input after last message chain"))
		return failRest, chains, reporter.Error(posAt(src, failRest), trailing)
	}
	return "", chains, nil
}

func parseProgram(tbl *optable.Table, s string) (chains []*ast.MessageChain, rest string, err error) {
	rest = lexer.ManyWCPad(s)
	for {
		chain, rest2, ok, cerr := parseMessageChain(tbl, rest)
		if cerr != nil {
			return nil, rest2, cerr
		}
		if !ok {
			break
		}
		chains = append(chains, chain)
		rest = lexer.ManyWCPad(rest2)
	}
	return chains, rest, nil
}

// parseMessageChain implements `message_chain := message+ terminator?`.
func parseMessageChain(tbl *optable.Table, s string) (chain *ast.MessageChain, rest string, ok bool, err error) {
	msg, rest, ok, err := parseMessage(tbl, s)
	if err != nil {
		return nil, rest, false, err
	}
	if !ok {
		return nil, s, false, nil
	}
	chain = ast.NewMessageChain(msg)
	for {
		msg2, rest2, ok2, err2 := parseMessage(tbl, rest)
		if err2 != nil {
			return nil, rest2, false, err2
		}
		if !ok2 {
			break
		}
		chain.Append(msg2)
		rest = rest2
	}
	if rest2, ok := lexer.Terminator(rest); ok {
		rest = rest2
	}
	return chain, rest, true, nil
}

// parseMessage implements `message := scpad* symbol scpad? arguments?`.
func parseMessage(tbl *optable.Table, s string) (msg *ast.Message, rest string, ok bool, err error) {
	rest = lexer.ManySCPad(s)

	sym, rest2, serr := lexer.Symbol(tbl, rest)
	if serr == lexer.ErrNoMatch {
		return nil, s, false, nil
	}
	if serr != nil {
		return nil, rest2, false, categorizeSymbolError(serr)
	}
	msg = ast.NewMessage(sym)
	rest = rest2

	// scpad? — at most one separator-or-comment unit may sit between the
	// symbol and an opening argument bracket; a newline here starts a new
	// message instead (§4.2).
	if rest3, ok := lexer.SCPad(rest); ok {
		rest = rest3
	}

	args, rest4, ok, aerr := parseArguments(tbl, rest)
	if aerr != nil {
		return nil, rest4, false, aerr
	}
	if ok {
		msg.Args = args
		rest = rest4
	}
	return msg, rest, true, nil
}

// parseArguments implements the `arguments` production, dispatching on the
// opening bracket.
func parseArguments(tbl *optable.Table, s string) (args []*ast.Argument, rest string, ok bool, err error) {
	switch {
	case strings.HasPrefix(s, "("):
		args, rest, err := parseArgList(tbl, s[1:])
		if err != nil {
			return nil, rest, false, err
		}
		if strings.HasPrefix(rest, ",") {
			rest = lexer.ManyWCPad(rest[1:])
		}
		if !strings.HasPrefix(rest, ")") {
			return nil, rest, false, newCategorizedError(CategoryUnclosedBracket, fmt.Errorf("expected ')' to close argument list"))
		}
		return args, rest[1:], true, nil

	case strings.HasPrefix(s, "["):
		args, rest, err := parseArgList(tbl, s[1:])
		if err != nil {
			return nil, rest, false, err
		}
		if strings.HasPrefix(rest, ",") {
			return nil, rest, false, newCategorizedError(CategoryUnexpectedComma, fmt.Errorf("trailing comma not allowed in '[' argument list"))
		}
		if !strings.HasPrefix(rest, "]") {
			return nil, rest, false, newCategorizedError(CategoryUnclosedBracket, fmt.Errorf("expected ']' to close argument list"))
		}
		return args, rest[1:], true, nil

	case strings.HasPrefix(s, "{"):
		args, rest, err := parseArgList(tbl, s[1:])
		if err != nil {
			return nil, rest, false, err
		}
		if strings.HasPrefix(rest, ",") {
			return nil, rest, false, newCategorizedError(CategoryUnexpectedComma, fmt.Errorf("trailing comma not allowed in '{' argument list"))
		}
		if !strings.HasPrefix(rest, "}") {
			return nil, rest, false, newCategorizedError(CategoryUnclosedBracket, fmt.Errorf("expected '}' to close argument list"))
		}
		return args, rest[1:], true, nil

	default:
		return nil, s, false, nil
	}
}

// parseArgList implements `arg_list := argument (',' argument)*`, which may
// be empty. The trailing-comma extension (round brackets only) is handled
// by the caller, parseArguments, since it is not part of arg_list itself.
func parseArgList(tbl *optable.Table, s string) (args []*ast.Argument, rest string, err error) {
	arg, rest, ok, aerr := parseArgument(tbl, s)
	if aerr != nil {
		return nil, rest, aerr
	}
	if !ok {
		return nil, s, nil
	}
	args = append(args, arg)
	for strings.HasPrefix(rest, ",") {
		next, rest2, ok2, aerr2 := parseArgument(tbl, rest[1:])
		if aerr2 != nil {
			return nil, rest2, aerr2
		}
		if !ok2 {
			// Leave the comma unconsumed: it's either a trailing comma
			// (caller's call, and only legal for round brackets) or two
			// consecutive commas, which is never legal.
			break
		}
		args = append(args, next)
		rest = rest2
	}
	return args, rest, nil
}

// parseArgument implements `argument := wcpad* message_chain+ wcpad*`.
func parseArgument(tbl *optable.Table, s string) (arg *ast.Argument, rest string, ok bool, err error) {
	rest = lexer.ManyWCPad(s)

	chain, rest2, ok, cerr := parseMessageChain(tbl, rest)
	if cerr != nil {
		return nil, rest2, false, cerr
	}
	if !ok {
		return nil, s, false, nil
	}
	arg = &ast.Argument{Chains: []*ast.MessageChain{chain}}
	rest = rest2

	for {
		chain2, rest3, ok2, cerr2 := parseMessageChain(tbl, rest)
		if cerr2 != nil {
			return nil, rest3, false, cerr2
		}
		if !ok2 {
			break
		}
		arg.Chains = append(arg.Chains, chain2)
		rest = rest3
	}

	rest = lexer.ManyWCPad(rest)
	return arg, rest, true, nil
}

// posAt computes the line/column position in src corresponding to rest
// being whatever remains unconsumed. Hard-failure paths always propagate
// the deepest remaining-text marker rather than resetting to an outer
// caller's input, so this arithmetic is exact regardless of how deep the
// failure occurred.
func posAt(src, rest string) ast.Pos {
	offset := len(src) - len(rest)
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}
	consumed := src[:offset]
	line := 1 + strings.Count(consumed, "\n")
	col := len(consumed) + 1
	if idx := strings.LastIndexByte(consumed, '\n'); idx >= 0 {
		col = len(consumed) - idx
	}
	return ast.Pos{Offset: offset, Line: line, Col: col}
}
