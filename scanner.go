// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package jot

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Scanner reads lexical tokens from an input string. Each call to Next
// advances the scanner to the next token; the last token of every input is a
// single EndOfInput token, after which Next reports false.
//
// The scanner does not fail: input it cannot lex is reported as Invalid
// tokens carrying whatever prefix of the lexeme was consumed, and scanning
// continues with the following rune. Deciding what to do about an Invalid
// token is the caller's concern.
type Scanner struct {
	src  string
	pos  int // byte offset of the next unread rune
	tok  Token
	done bool // the EndOfInput token has been returned

	// Column tracking. Runes consumed on the current row, 1-based end-of-
	// lexeme columns; see Loc.
	rows int // newlines consumed
	cols int // runes consumed, not counting newlines
	mark int // value of cols when the last newline was consumed
}

// NewScanner constructs a new lexical scanner that consumes input from text.
func NewScanner(text string) *Scanner { return &Scanner{src: text} }

// Next advances s to the next token of the input. It reports false once the
// EndOfInput token has already been returned.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}
	s.trim()

	ch, ok := s.peekRune()
	if !ok {
		s.tok = Token{Kind: EndOfInput, Loc: s.loc()}
		s.done = true
		return true
	}

	switch {
	case ch == '{':
		s.tok = s.single(LBrace)
	case ch == '}':
		s.tok = s.single(RBrace)
	case ch == '[':
		s.tok = s.single(LSquare)
	case ch == ']':
		s.tok = s.single(RSquare)
	case ch == ',':
		s.tok = s.single(Comma)
	case ch == ':':
		s.tok = s.single(Colon)
	case ch == 'n':
		s.tok = s.scanWord(Null, "null")
	case ch == 't':
		s.tok = s.scanWord(True, "true")
	case ch == 'f':
		s.tok = s.scanWord(False, "false")
	case ch == '"':
		s.tok = s.scanString()
	case ch == '-' || isDigit(ch):
		s.tok = s.scanNumber()
	default:
		s.tok = s.single(Invalid)
	}
	return true
}

// Token returns the current token. It is only valid after Next reports true.
func (s *Scanner) Token() Token { return s.tok }

// single consumes one rune and returns it as a token of the given kind.
func (s *Scanner) single(kind Kind) Token {
	ch, _ := s.nextRune()
	return Token{Kind: kind, Text: string(ch), Loc: s.loc()}
}

// scanWord matches word literally rune by rune. A mismatch yields an Invalid
// token carrying the matched prefix.
func (s *Scanner) scanWord(kind Kind, word string) Token {
	var sb strings.Builder
	for _, want := range word {
		ch, ok := s.nextIf(func(r rune) bool { return r == want })
		if !ok {
			return Token{Kind: Invalid, Text: sb.String(), Loc: s.loc()}
		}
		sb.WriteRune(ch)
	}
	return Token{Kind: kind, Text: word, Loc: s.loc()}
}

// scanString consumes a quoted string verbatim, including both quotation
// marks. A backslash and the rune after it are consumed as a unit, so an
// escaped quote does not terminate the string; resolving escapes is left to
// the consumer (see Unquote). If the input ends before the closing quote the
// partial text collected so far is returned as Invalid.
func (s *Scanner) scanString() Token {
	var sb strings.Builder
	open, _ := s.nextRune()
	sb.WriteRune(open)

	var esc bool
	for {
		ch, ok := s.nextRune()
		if !ok {
			return Token{Kind: Invalid, Text: sb.String(), Loc: s.loc()}
		}
		sb.WriteRune(ch)
		if esc {
			esc = false
			continue
		}
		switch ch {
		case '\\':
			esc = true
		case open:
			return Token{Kind: String, Text: sb.String(), Loc: s.loc()}
		}
	}
}

// scanNumber consumes an optionally signed decimal number. A lone "-", a
// second decimal point, or a decimal point without a following digit yields
// Invalid with the text consumed so far. The presence of a decimal point
// selects Float over Integer.
func (s *Scanner) scanNumber() Token {
	var sb strings.Builder
	var isFloat bool

	if ch, ok := s.nextIf(func(r rune) bool { return r == '-' }); ok {
		sb.WriteRune(ch)
		if next, ok := s.peekRune(); !ok || !isDigit(next) {
			return Token{Kind: Invalid, Text: sb.String(), Loc: s.loc()}
		}
	}
	for {
		ch, ok := s.nextIf(func(r rune) bool { return isDigit(r) || r == '.' })
		if !ok {
			break
		}
		sb.WriteRune(ch)
		if ch == '.' {
			if isFloat {
				return Token{Kind: Invalid, Text: sb.String(), Loc: s.loc()}
			}
			d, ok := s.nextIf(isDigit)
			if !ok {
				return Token{Kind: Invalid, Text: sb.String(), Loc: s.loc()}
			}
			sb.WriteRune(d)
			isFloat = true
		}
	}

	kind := Integer
	if isFloat {
		kind = Float
	}
	return Token{Kind: kind, Text: sb.String(), Loc: s.loc()}
}

// trim discards whitespace before the next token. Newlines advance the row
// and reset the column baseline; all other whitespace counts as columns.
func (s *Scanner) trim() {
	for {
		ch, ok := s.peekRune()
		if !ok {
			return
		}
		if ch == '\n' {
			s.pos++
			s.rows++
			s.mark = s.cols
			continue
		}
		if unicode.IsSpace(ch) {
			s.nextRune()
			continue
		}
		return
	}
}

func (s *Scanner) loc() Loc { return Loc{Row: s.rows + 1, Col: s.cols - s.mark + 1} }

func (s *Scanner) peekRune() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return ch, true
}

func (s *Scanner) nextRune() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch, nb := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += nb
	s.cols++
	return ch, true
}

// nextIf consumes and returns the next rune only if it matches f.
func (s *Scanner) nextIf(f func(rune) bool) (rune, bool) {
	ch, ok := s.peekRune()
	if !ok || !f(ch) {
		return 0, false
	}
	return s.nextRune()
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
