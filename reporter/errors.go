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

// Package reporter carries the error shapes produced by a hard parse
// failure (§7 of the design this package implements): syntactically
// impossible input such as an unterminated string, a newline inside a
// mono-quote, or a malformed numeric escape. Recoverable mismatches (a
// recognizer failing to match at a given position) never reach this
// package; they are handled by trying alternatives one level up.
package reporter

import (
	"errors"
	"fmt"

	"github.com/io-lang/ioparse/ast"
)

// ErrInvalidSyntax is a sentinel error wrapped by every hard parse failure,
// so callers can errors.Is against it regardless of the specific message.
var ErrInvalidSyntax = errors.New("invalid Io syntax")

// ErrorWithPos is an error about Io source that adds the position in the
// input that caused it.
type ErrorWithPos interface {
	error
	// Position returns the source position that caused the underlying error.
	Position() ast.Pos
	// Unwrap returns the underlying error, and also ErrInvalidSyntax via
	// errors.Is.
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos ast.Pos, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos ast.Pos, format string, args ...interface{}) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        ast.Pos
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) Position() ast.Pos {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return fmt.Errorf("%w: %w", ErrInvalidSyntax, e.underlying)
}

var _ ErrorWithPos = errorWithPos{}

// Handler accumulates the outcome of a unit of work that can report errors.
// This front-end does not recover from hard failures (spec Non-goals: no
// incremental/error-recovering parsing), so a Handler here only ever holds
// zero or one error — but it is kept as a distinct type, following the
// teacher's reporter.Handler, because the downstream bytecode compiler
// collects diagnostics from multiple pipeline stages through the same
// shape.
type Handler struct {
	err error
}

// NewHandler returns a Handler with no error recorded yet.
func NewHandler() *Handler {
	return &Handler{}
}

// HandleError records err if no error has been recorded yet, and returns it.
func (h *Handler) HandleError(err error) error {
	if h.err == nil {
		h.err = err
	}
	return err
}

// Error returns the first error recorded, or nil.
func (h *Handler) Error() error {
	return h.err
}
