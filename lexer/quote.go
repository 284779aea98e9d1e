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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/io-lang/ioparse/ast"
)

const tripleQuoteDelim = `"""`

// ErrUnterminatedQuote and ErrInvalidEscape classify the two ways a Quote
// hard failure can happen, so callers can categorize a diagnostic with
// errors.Is instead of matching on message text.
var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrInvalidEscape     = errors.New("invalid escape sequence")
)

// Quote recognizes a string literal, triple-quoted form tried first: a
// verbatim run delimited by `"""`, newlines and all, no escape processing.
// Otherwise a mono-quote delimited by `"`, processed through the escape
// table in decodeEscape. A raw newline inside a mono-quote, or any input that
// opens a quote but never closes it, is a hard failure: once the leading
// quote character is seen, this recognizer is committed and ErrNoMatch is
// no longer a possible outcome.
func Quote(s string) (value ast.Symbol, rest string, err error) {
	if !strings.HasPrefix(s, `"`) {
		return ast.Symbol{}, s, ErrNoMatch
	}
	if strings.HasPrefix(s, tripleQuoteDelim) {
		return triQuote(s)
	}
	return monoQuote(s)
}

func triQuote(s string) (ast.Symbol, string, error) {
	body := s[len(tripleQuoteDelim):]
	end := strings.Index(body, tripleQuoteDelim)
	if end < 0 {
		return ast.Symbol{}, s, fmt.Errorf("unterminated triple-quoted string: %w", ErrUnterminatedQuote)
	}
	content := body[:end]
	rest := body[end+len(tripleQuoteDelim):]
	return ast.NewQuote(content), rest, nil
}

func monoQuote(s string) (ast.Symbol, string, error) {
	body := s[1:]
	var out strings.Builder
	i := 0
	for i < len(body) {
		c := body[i]
		switch c {
		case '"':
			return ast.NewQuote(out.String()), body[i+1:], nil
		case '\n':
			return ast.Symbol{}, body[i:], fmt.Errorf("newline in mono-quoted string literal: %w", ErrUnterminatedQuote)
		case '\\':
			decoded, consumed, err := decodeEscape(body[i+1:])
			if err != nil {
				return ast.Symbol{}, body[i:], err
			}
			out.WriteString(decoded)
			i += 1 + consumed
		default:
			out.WriteByte(c)
			i++
		}
	}
	return ast.Symbol{}, body[i:], fmt.Errorf("unterminated string literal: %w", ErrUnterminatedQuote)
}

// decodeEscape decodes a single escape sequence, the backslash already
// consumed. It returns the decoded text, the number of input bytes the
// escape body consumed (not counting the backslash), and an error for a
// malformed \x, \u, or \U sequence.
func decodeEscape(s string) (decoded string, consumed int, err error) {
	if s == "" {
		return "", 0, fmt.Errorf("unterminated escape sequence: %w", ErrInvalidEscape)
	}
	switch s[0] {
	case 'a':
		return "\x07", 1, nil
	case 'b':
		return "\x08", 1, nil
	case 'e':
		return "\x1b", 1, nil
	case 'f':
		return "\x0c", 1, nil
	case 'n':
		return "\n", 1, nil
	case 'r':
		return "\r", 1, nil
	case 't':
		return "\t", 1, nil
	case 'v':
		return "\x0b", 1, nil
	case '\\':
		return "\\", 1, nil
	case '\'':
		return "'", 1, nil
	case '"':
		return "\"", 1, nil
	case '0':
		return "\x00", 1, nil
	case 'x':
		return decodeHexEscape(s[1:], 2, 'x')
	case 'u':
		return decodeHexEscape(s[1:], 4, 'u')
	case 'U':
		return decodeHexEscape(s[1:], 8, 'U')
	default:
		return string(s[0]), 1, nil
	}
}

func decodeHexEscape(s string, digits int, kind byte) (string, int, error) {
	if len(s) < digits {
		return "", 0, fmt.Errorf("malformed \\%c escape: need %d hex digits: %w", kind, digits, ErrInvalidEscape)
	}
	hex := s[:digits]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", 0, fmt.Errorf("malformed \\%c escape %q: %w: %w", kind, hex, ErrInvalidEscape, err)
	}
	var text string
	if kind == 'x' {
		text = string([]byte{byte(v)})
	} else {
		text = string(rune(v))
	}
	return text, 1 + digits, nil
}
