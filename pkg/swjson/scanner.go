/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package swjson

import (
	"strconv"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokColon
	tokComma
	tokNumber
	tokString
	tokIdent
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	case tokNumber:
		return "number"
	case tokString:
		return "string"
	case tokIdent:
		return "identifier"
	default:
		return "invalid token"
	}
}

type token struct {
	kind tokenKind
	text string // ident and string payload
	num  int64  // number payload
	line int
	col  int
}

// scanner tokenizes the quasi-JSON dialect. Positions are 1-based.
type scanner struct {
	src  []byte
	off  int
	line int
	col  int
}

func newScanner(src []byte) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) errorf(line, col int, format string, args ...any) *ParseError {
	return newParseError(line, col, format, args...)
}

// peek returns the current byte without consuming it, or 0 at EOF.
func (s *scanner) peek() byte {
	if s.off >= len(s.src) {
		return 0
	}

	return s.src[s.off]
}

func (s *scanner) advance() byte {
	c := s.src[s.off]
	s.off++

	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	return c
}

func (s *scanner) skipSpace() {
	for s.off < len(s.src) {
		switch s.src[s.off] {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

// next returns the next token.
func (s *scanner) next() (token, error) {
	s.skipSpace()

	line, col := s.line, s.col

	if s.off >= len(s.src) {
		return token{kind: tokEOF, line: line, col: col}, nil
	}

	c := s.peek()

	switch {
	case c == '{':
		s.advance()

		return token{kind: tokLBrace, line: line, col: col}, nil
	case c == '}':
		s.advance()

		return token{kind: tokRBrace, line: line, col: col}, nil
	case c == '[':
		s.advance()

		return token{kind: tokLBracket, line: line, col: col}, nil
	case c == ']':
		s.advance()

		return token{kind: tokRBracket, line: line, col: col}, nil
	case c == ':':
		s.advance()

		return token{kind: tokColon, line: line, col: col}, nil
	case c == ',':
		s.advance()

		return token{kind: tokComma, line: line, col: col}, nil
	case c == '\'' || c == '"':
		return s.scanString(line, col)
	case c == '-' || isDigit(c):
		return s.scanNumber(line, col)
	case isIdentStart(c):
		return s.scanIdent(line, col)
	default:
		r, _ := utf8.DecodeRune(s.src[s.off:])

		return token{}, s.errorf(line, col, "unexpected character %q", r)
	}
}

func (s *scanner) scanIdent(line, col int) (token, error) {
	start := s.off
	for s.off < len(s.src) && isIdentPart(s.src[s.off]) {
		s.advance()
	}

	return token{kind: tokIdent, text: string(s.src[start:s.off]), line: line, col: col}, nil
}

func (s *scanner) scanNumber(line, col int) (token, error) {
	neg := false
	if s.peek() == '-' {
		neg = true
		s.advance()
	}

	if s.off >= len(s.src) || !isDigit(s.peek()) {
		return token{}, s.errorf(line, col, "malformed number")
	}

	base := 10
	start := s.off

	if s.peek() == '0' && s.off+1 < len(s.src) && (s.src[s.off+1] == 'x' || s.src[s.off+1] == 'X') {
		s.advance()
		s.advance()
		base = 16
		start = s.off

		if s.off >= len(s.src) || !isHexDigit(s.peek()) {
			return token{}, s.errorf(line, col, "malformed hex number")
		}
	}

	for s.off < len(s.src) {
		c := s.peek()
		if base == 16 && isHexDigit(c) || base == 10 && isDigit(c) {
			s.advance()

			continue
		}

		break
	}

	// A letter immediately after the digits means a mistyped literal such
	// as 123abc, not two separate tokens.
	if s.off < len(s.src) && isIdentPart(s.peek()) {
		return token{}, s.errorf(line, col, "malformed number")
	}

	u, err := strconv.ParseUint(string(s.src[start:s.off]), base, 64)
	if err != nil {
		return token{}, s.errorf(line, col, "number out of range")
	}

	if u > 1<<63-1 {
		return token{}, s.errorf(line, col, "number out of range")
	}

	n := int64(u)
	if neg {
		n = -n
	}

	return token{kind: tokNumber, num: n, line: line, col: col}, nil
}

func (s *scanner) scanString(line, col int) (token, error) {
	quote := s.advance()
	buf := make([]byte, 0, 16)

	for {
		if s.off >= len(s.src) {
			return token{}, s.errorf(line, col, "unterminated string")
		}

		c := s.advance()

		switch {
		case c == quote:
			return token{kind: tokString, text: string(buf), line: line, col: col}, nil
		case c == '\\':
			esc, err := s.scanEscape(line, col)
			if err != nil {
				return token{}, err
			}

			buf = utf8.AppendRune(buf, esc)
		default:
			buf = append(buf, c)
		}
	}
}

func (s *scanner) scanEscape(line, col int) (rune, error) {
	if s.off >= len(s.src) {
		return 0, s.errorf(line, col, "unterminated string")
	}

	c := s.advance()

	switch c {
	case '\\', '\'', '"', '/':
		return rune(c), nil
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'u':
		if s.off+4 > len(s.src) {
			return 0, s.errorf(line, col, "truncated unicode escape")
		}

		hex := string(s.src[s.off : s.off+4])

		u, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, s.errorf(line, col, "invalid unicode escape %q", "\\u"+hex)
		}

		for range 4 {
			s.advance()
		}

		return rune(u), nil
	default:
		return 0, s.errorf(s.line, s.col, "unrecognized escape %q", "\\"+string(c))
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
