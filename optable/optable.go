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

// Package optable is the process-wide operator table described in §4.4:
// a registry mapping operator symbols to precedence, consulted both by the
// lexer (to greedily tokenize an operator, longest-symbol-first) and by the
// restructurer (to look up an already-tokenized operator's precedence).
//
// Io lets user code register new operators at runtime, so the table cannot
// be fixed at parser-construction time; it is mutated rarely (defaults at
// startup, occasional user additions) and read on every operator token, so
// reads must not block each other. The entries are kept in an adaptive
// radix tree (as the teacher's linker package keeps its package symbol
// trie), guarded by a single RWMutex exactly as §4.4 and §5 prescribe.
package optable

import (
	"math"
	"sort"
	"sync"
	"unicode"
	"unicode/utf8"

	art "github.com/plar/go-adaptive-radix-tree"
)

// Entry is a single operator table row: a textual symbol and the
// precedence it binds at (smaller number = tighter binding).
type Entry struct {
	Symbol     string
	Precedence int
}

// Table is a concurrency-safe registry of operator entries. The zero value
// is not usable; construct one with New, or use the process-wide instance
// returned by Global.
type Table struct {
	mu      sync.RWMutex
	tree    art.Tree
	maxLen  int
	symbols map[string]struct{}
}

// New builds an empty operator table.
func New() *Table {
	return &Table{tree: art.New(), symbols: make(map[string]struct{})}
}

// NewDefault builds a table pre-populated with Io's default operators
// (§4.4), at their default precedences.
func NewDefault() *Table {
	t := New()
	for _, e := range defaultEntries {
		t.Add(e.Symbol, e.Precedence)
	}
	return t
}

// Add performs an idempotent insertion by symbol: if the symbol is already
// present, the call is a silent no-op (§4.4, §6: "symbol conflicts are
// silent no-ops").
func (t *Table) Add(symbol string, precedence int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.symbols[symbol]; exists {
		return
	}
	t.tree.Insert(art.Key(symbol), precedence)
	t.symbols[symbol] = struct{}{}
	if len(symbol) > t.maxLen {
		t.maxLen = len(symbol)
	}
}

// Lookup finds an entry by its exact symbol, used by the restructurer when
// it needs an already-tokenized operator's precedence.
func (t *Table) Lookup(symbol string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, found := t.tree.Search(art.Key(symbol))
	if !found {
		return 0, false
	}
	return v.(int), true
}

// MatchLongestPrefix scans input for the longest operator symbol that is a
// prefix of it, trying table entries in longest-first order (§4.1's
// "Operator token" recognizer): this is what makes "::=" win over ":=" and
// "<<=" win over "<<" rather than the shorter symbol stealing the match.
// Returns the matched Entry and the remaining input after it, or ok=false
// if no operator in the table prefixes input.
func (t *Table) MatchLongestPrefix(input string) (entry Entry, rest string, ok bool) {
	t.mu.RLock()
	maxLen := t.maxLen
	t.mu.RUnlock()

	limit := maxLen
	if limit > len(input) {
		limit = len(input)
	}
	for l := limit; l >= 1; l-- {
		candidate := input[:l]
		if prec, found := t.Lookup(candidate); found {
			if isWordSymbol(candidate) && continuesWord(input[l:]) {
				// "and"/"or"/"return" style operators must not steal the
				// leading bytes of a longer identifier, e.g. "android".
				continue
			}
			return Entry{Symbol: candidate, Precedence: prec}, input[l:], true
		}
	}
	return Entry{}, input, false
}

// isWordSymbol reports whether every rune in symbol is a valid identifier
// constituent, meaning it needs a word-boundary check (the keyword-style
// operators "and", "or", "return"); punctuation operators like "+" or "::="
// never need one since their characters can't be part of an identifier, so
// matching them never splits one.
func isWordSymbol(symbol string) bool {
	for _, r := range symbol {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func continuesWord(rest string) bool {
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// All returns every entry currently in the table, sorted longest-symbol
// first then lexically, matching the iteration order the lexer relies on.
func (t *Table) All() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entries := make([]Entry, 0, len(t.symbols))
	for sym := range t.symbols {
		prec, _ := t.tree.Search(art.Key(sym))
		entries = append(entries, Entry{Symbol: sym, Precedence: prec.(int)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Symbol) != len(entries[j].Symbol) {
			return len(entries[i].Symbol) > len(entries[j].Symbol)
		}
		return entries[i].Symbol < entries[j].Symbol
	})
	return entries
}

var (
	globalOnce sync.Once
	global     *Table
)

// Global returns the process-wide operator table, lazily populated with
// Io's default operators on first call.
func Global() *Table {
	globalOnce.Do(func() { global = NewDefault() })
	return global
}

// ReturnPrecedence is the precedence assigned to the `return` keyword
// operator: higher than any other, so it always folds last (§4.4).
const ReturnPrecedence = math.MaxInt

var defaultEntries = []Entry{
	{"?", 0},
	{"@", 0},
	{"@@", 0},
	{"**", 1},
	{"%", 2},
	{"*", 2},
	{"/", 2},
	{"+", 3},
	{"-", 3},
	{"<<", 4},
	{">>", 4},
	{"<", 5},
	{"<=", 5},
	{">", 5},
	{">=", 5},
	{"!=", 6},
	{"==", 6},
	{"&", 7},
	{"^", 8},
	{"|", 9},
	{"&&", 10},
	{"and", 10},
	{"||", 11},
	{"or", 11},
	{"..", 12},
	{"=", 13},
	{":=", 13},
	{"::=", 13},
	{"%=", 13},
	{"*=", 13},
	{"/=", 13},
	{"+=", 13},
	{"-=", 13},
	{"<<=", 13},
	{">>=", 13},
	{"&=", 13},
	{"^=", 13},
	{"|=", 13},
	{"return", ReturnPrecedence},
}
