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

// Package lexer holds the lexical recognizers described in §4.1: small
// functions of the form `text -> (remaining_text, value) | failure`. Every
// recognizer here leaves input untouched on a non-match, so callers can try
// alternatives freely (the recoverable-mismatch half of §7's error model).
// Only the quote recognizers can hard-fail, via ErrNoMatch vs. a real error.
package lexer

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoMatch is returned by a fallible recognizer (currently only Quote)
// when the input simply isn't the production it recognizes, as opposed to
// being a malformed instance of it. Callers try the next alternative on
// ErrNoMatch and abort the parse on any other error.
var ErrNoMatch = errors.New("lexer: no match")

// IsSeparator reports whether r is a separator: space, tab, form-feed, or
// vertical tab. A separator is never a terminator.
func IsSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\x0c', '\x0b':
		return true
	default:
		return false
	}
}

// Separator consumes exactly one separator character.
func Separator(s string) (rest string, ok bool) {
	if s == "" {
		return s, false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !IsSeparator(r) {
		return s, false
	}
	return s[size:], true
}

// LineEnding consumes one line ending: "\n", "\r\n", or a lone "\r".
func LineEnding(s string) (rest string, ok bool) {
	switch {
	case strings.HasPrefix(s, "\r\n"):
		return s[2:], true
	case strings.HasPrefix(s, "\n"):
		return s[1:], true
	case strings.HasPrefix(s, "\r"):
		return s[1:], true
	default:
		return s, false
	}
}

// Whitespace consumes one whitespace character: the union of separator and
// line-ending.
func Whitespace(s string) (rest string, ok bool) {
	if rest, ok := LineEnding(s); ok {
		return rest, true
	}
	return Separator(s)
}

// Comment consumes one comment: a line comment introduced by "#" or "//"
// running to (but not including) the next line ending, or a non-nesting
// block comment delimited by "/*" and "*/".
func Comment(s string) (rest string, ok bool) {
	if rest, ok := lineComment(s); ok {
		return rest, true
	}
	return blockComment(s)
}

func lineComment(s string) (rest string, ok bool) {
	var body string
	switch {
	case strings.HasPrefix(s, "#"):
		body = s[1:]
	case strings.HasPrefix(s, "//"):
		body = s[2:]
	default:
		return s, false
	}
	end := strings.IndexAny(body, "\r\n")
	if end < 0 {
		return "", true
	}
	return body[end:], true
}

func blockComment(s string) (rest string, ok bool) {
	if !strings.HasPrefix(s, "/*") {
		return s, false
	}
	body := s[2:]
	end := strings.Index(body, "*/")
	if end < 0 {
		return s, false
	}
	return body[end+2:], true
}

// SCPad (separator-or-comment) consumes one separator or one comment.
func SCPad(s string) (rest string, ok bool) {
	if rest, ok := Separator(s); ok {
		return rest, true
	}
	return Comment(s)
}

// WCPad (whitespace-or-comment) consumes one whitespace character or one
// comment.
func WCPad(s string) (rest string, ok bool) {
	if rest, ok := Whitespace(s); ok {
		return rest, true
	}
	return Comment(s)
}

// ManySCPad consumes zero or more SCPad units.
func ManySCPad(s string) string {
	for {
		rest, ok := SCPad(s)
		if !ok {
			return s
		}
		s = rest
	}
}

// ManyWCPad consumes zero or more WCPad units.
func ManyWCPad(s string) string {
	for {
		rest, ok := WCPad(s)
		if !ok {
			return s
		}
		s = rest
	}
}

// Terminator consumes ";" (optionally preceded by a single separator) or a
// line ending. Either form terminates a chain; the spec leaves the choice
// between them with no semantic effect downstream.
func Terminator(s string) (rest string, ok bool) {
	trimmed, _ := Separator(s)
	if strings.HasPrefix(trimmed, ";") {
		return trimmed[1:], true
	}
	return LineEnding(s)
}

// Identifier consumes the longest run of alphanumeric-or-underscore runes,
// requiring at least one. Non-ASCII letters are accepted, per the host's
// Unicode classification.
func Identifier(s string) (value string, rest string, ok bool) {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isIdentRune(r) {
			break
		}
		n += size
	}
	if n == 0 {
		return "", s, false
	}
	return s[:n], s[n:], true
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
