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

// Package ioparse is the front-end of an Io compiler: a text-to-AST
// pipeline that turns Io source into the canonical message-chain form a
// bytecode compiler (an external collaborator, out of scope here) would
// consume. Parse ties together the three stages described in §2 of the
// design this package implements: the grammar parser (package parser,
// itself built on the lexical recognizers in package lexer) produces a
// flat vector of surface-order message chains, and the operator
// restructurer (package restructure) reshapes each chain independently
// into evaluation order using the shared operator table (package
// optable).
package ioparse

import (
	"context"

	"github.com/io-lang/ioparse/ast"
	"github.com/io-lang/ioparse/optable"
	"github.com/io-lang/ioparse/parser"
	"github.com/io-lang/ioparse/restructure"
)

// Option configures a Parse call. Parse passes the configured settings on
// to the parser and restructurer stages as their own options.
type Option func(*config)

type config struct {
	table          *optable.Table
	maxParallelism int
}

// WithOperatorTable overrides the operator table consulted by both the
// lexer (to tokenize operator symbols) and the restructurer (to look up
// their precedence). Defaults to optable.Global(), the process-wide table
// described in §4.4.
func WithOperatorTable(t *optable.Table) Option {
	return func(c *config) { c.table = t }
}

// WithMaxParallelism bounds how many top-level chains the restructuring
// stage processes concurrently (§5, §9: parallelism is a policy decision
// of the caller). Pass 1 to force serial restructuring for short scripts.
func WithMaxParallelism(n int) Option {
	return func(c *config) { c.maxParallelism = n }
}

func newConfig(opts ...Option) *config {
	c := &config{table: optable.Global()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse runs the full front-end pipeline over src: grammar parsing
// followed by operator restructuring. On success rest is always empty
// (the parser is fully consuming, per §6); the returned chains are in
// source order and fully restructured, ready for a bytecode compiler to
// walk. A hard failure during parsing is returned as a
// reporter.ErrorWithPos and aborts before restructuring ever runs, since
// restructuring assumes its input is already a valid AST (§7).
func Parse(ctx context.Context, src string, opts ...Option) (rest string, chains []*ast.MessageChain, err error) {
	cfg := newConfig(opts...)

	rest, chains, err = parser.Parse(src, parser.WithOperatorTable(cfg.table))
	if err != nil {
		return rest, nil, err
	}

	chains, err = restructure.Chains(ctx, chains,
		restructure.WithOperatorTable(cfg.table),
		restructure.WithMaxParallelism(cfg.maxParallelism))
	if err != nil {
		return rest, nil, err
	}
	return rest, chains, nil
}

// AddOperator registers a user-defined operator on the process-wide
// operator table (§6: "a public add-operator entry point accepts any
// value satisfying the operator contract"). A symbol already present in
// the table is a silent no-op, per §4.4.
func AddOperator(symbol string, precedence int) {
	optable.Global().Add(symbol, precedence)
}
