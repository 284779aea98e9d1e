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

// Package restructure implements the operator restructurer described in
// §4.3: it reshapes a flat, surface-order message chain such as
// `1 + 2 * 3 >> 4` into the nested operator form `1 +(2 *(3)) >>(4)` that
// the downstream bytecode compiler requires.
//
// Restructuring happens in two passes per chain, both described in §4.3:
// a desugar pass that folds any message immediately following an operator
// into that operator's first argument, and a precedence-climbing pass that
// nests tighter-binding operators into looser ones using the operator
// table's precedence numbers. The restructurer cannot fail: its
// input is always a syntactically valid chain produced by the parser, so a
// panic here would indicate an invariant violation rather than a user
// error (§7).
package restructure

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/io-lang/ioparse/ast"
	"github.com/io-lang/ioparse/optable"
)

// Option configures a Chains call.
type Option func(*config)

type config struct {
	table          *optable.Table
	maxParallelism int
}

// WithOperatorTable overrides the operator table consulted for precedence
// lookups during the fold step. Defaults to optable.Global().
func WithOperatorTable(t *optable.Table) Option {
	return func(c *config) { c.table = t }
}

// WithMaxParallelism bounds how many top-level chains are restructured
// concurrently (§5: "chains are disjoint and the operator table is
// read-only during this stage, [so] top-level chains may be restructured
// in parallel by a worker pool"). Zero or negative selects
// min(runtime.NumCPU(), runtime.GOMAXPROCS(-1)), mirroring how the
// teacher's Compiler.MaxParallelism resolves its default worker count.
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

func resolveParallelism(n int) int {
	if n > 0 {
		return n
	}
	par := runtime.GOMAXPROCS(-1)
	if cpus := runtime.NumCPU(); par > cpus {
		par = cpus
	}
	if par < 1 {
		par = 1
	}
	return par
}

// Chain restructures a single message chain in place and returns it, for
// callers that already have exactly one chain and don't need the worker
// pool (§9: "short scripts should restructure serially... a policy
// decision of the caller, not a hard-wired behavior").
func Chain(c *ast.MessageChain, opts ...Option) *ast.MessageChain {
	cfg := newConfig(opts...)
	return restructureChain(cfg.table, c)
}

// Chains restructures every chain in the slice, in source order, optionally
// spreading the independent per-chain work across a worker pool bounded by
// WithMaxParallelism (§5). Ordering of the returned slice always matches
// the input order regardless of how the work was scheduled. Restructuring
// cannot fail (§7), so this never returns an error from the AST itself;
// the error return exists solely to propagate ctx cancellation from the
// errgroup.
func Chains(ctx context.Context, chains []*ast.MessageChain, opts ...Option) ([]*ast.MessageChain, error) {
	cfg := newConfig(opts...)
	if len(chains) <= 1 {
		for _, c := range chains {
			restructureChain(cfg.table, c)
		}
		return chains, nil
	}

	par := resolveParallelism(cfg.maxParallelism)
	if par == 1 || len(chains) < 2 {
		for _, c := range chains {
			restructureChain(cfg.table, c)
		}
		return chains, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(par)
	for _, c := range chains {
		c := c
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			restructureChain(cfg.table, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chains, nil
}

// restructureChain runs both passes of §4.3 over c and returns it, mutated
// in place.
func restructureChain(tbl *optable.Table, c *ast.MessageChain) *ast.MessageChain {
	desugared := desugar(c.Messages)
	climbed := climb(tbl, desugared)
	c.Messages = climbed
	return c
}

// desugar implements Pass 1 (§4.3): walk left to right maintaining one
// operator buffer of length 0 or 1. A non-operator message folds into the
// buffered operator's first argument if one is pending, else it is
// appended to the output directly. An operator message flushes whatever
// was previously buffered, then takes its place. At the end of the chain
// the buffer is flushed once more.
func desugar(msgs []*ast.Message) []*ast.Message {
	var out []*ast.Message
	var pending *ast.Message

	flush := func() {
		if pending != nil {
			out = append(out, pending)
			pending = nil
		}
	}

	for _, m := range msgs {
		if m.Symbol.IsOperator() {
			flush()
			pending = m
			continue
		}
		if pending != nil {
			ast.PushToFirstArg(pending, m)
			continue
		}
		out = append(out, m)
	}
	flush()
	return out
}

// stackEntry pairs a buffered operator message with the precedence it
// binds at, resolved once when it is pushed so the fold loop below never
// has to re-query the table mid-walk.
type stackEntry struct {
	msg        *ast.Message
	precedence int
}

// climb implements Pass 2 (§4.3), precedence-climbing over the desugared
// output: non-operators are emitted straight through; an operator whose
// precedence is numerically greater (looser binding) than the stack top's
// folds the stack first, then is pushed; otherwise it is pushed directly.
// Lower precedence number binds tighter; equal precedences never fold,
// which preserves left-to-right evaluation order for same-precedence
// operators. Whatever is left on the stack after the final fold — one
// entry, or several when an entry does not bind tighter than the one below
// it — is appended to the output in stack order.
func climb(tbl *optable.Table, msgs []*ast.Message) []*ast.Message {
	var out []*ast.Message
	var stack []stackEntry

	// fold pops the stack while its top binds tighter than the element
	// below it, pushing each popped operator into the first argument of
	// the element that remains below — §4.3's Fold procedure, verbatim.
	fold := func() {
		for len(stack) >= 2 {
			top := stack[len(stack)-1]
			below := stack[len(stack)-2]
			if top.precedence >= below.precedence {
				break
			}
			stack = stack[:len(stack)-1]
			ast.PushToFirstArg(below.msg, top.msg)
		}
	}

	for _, m := range msgs {
		if !m.Symbol.IsOperator() {
			out = append(out, m)
			continue
		}
		prec := precedenceOf(tbl, m.Symbol)
		if len(stack) > 0 && prec > stack[len(stack)-1].precedence {
			fold()
		}
		stack = append(stack, stackEntry{msg: m, precedence: prec})
	}

	fold()
	for _, e := range stack {
		out = append(out, e.msg)
	}
	return out
}

// precedenceOf resolves an operator symbol's binding strength from tbl,
// falling back to the precedence it already carries from lexing if the
// table has no entry for it (which happens when the chain was lexed
// against a different table, or built directly with ast.NewOperator;
// Add never removes entries).
func precedenceOf(tbl *optable.Table, sym ast.Symbol) int {
	if prec, ok := tbl.Lookup(sym.OperatorValue.Text); ok {
		return prec
	}
	return sym.OperatorValue.Precedence
}
