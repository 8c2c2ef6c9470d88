// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package ast

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/arvefors/jot"
)

// ErrUnexpectedEOF is reported when the token stream runs out where further
// input was required.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// SyntaxError is the concrete type of errors reported by the parser. Token
// is the token the input was rejected at.
type SyntaxError struct {
	Token jot.Token
}

const syntaxErrorMessage = "invalid JSON syntax"

// Error renders a two-line diagnostic: the message with the offending lexeme
// and its row:col location, then a caret line underlining the lexeme.
func (e *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString(syntaxErrorMessage)
	sb.WriteString(" `")
	sb.WriteString(e.Token.Text)
	sb.WriteString("` at ")
	sb.WriteString(e.Token.Loc.String())
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(syntaxErrorMessage)+2))
	sb.WriteString(strings.Repeat("^", utf8.RuneCountInString(e.Token.Text)))
	return sb.String()
}

// Parse parses text and returns its document tree. An empty (or all
// whitespace) input parses to EndOfInput, not an error; callers that require
// a data value must check for it.
//
// Parsing stops at the first error. There is no recovery: the returned error
// is a *SyntaxError describing the rejected token, or ErrUnexpectedEOF.
func Parse(text string) (Value, error) {
	p := &parser{sc: jot.NewScanner(text)}
	return p.parseValue(topLevel)
}

// A context records the construct enclosing the value being parsed. It
// decides which tokens may legally follow a completed value.
type context byte

const (
	topLevel context = iota // not inside any construct
	inArray                 // between "[" and "]"
	inObject                // between "{" and "}"
)

// A parser consumes tokens from a scanner with one token of lookahead.
type parser struct {
	sc   *jot.Scanner
	tok  jot.Token
	have bool // tok holds an unconsumed token
	done bool // the scanner is exhausted
}

// peek reports the next token without consuming it. It reports false once
// the scanner is exhausted, which can only happen after the EndOfInput token
// itself has been consumed.
func (p *parser) peek() (jot.Token, bool) {
	if p.have {
		return p.tok, true
	}
	if p.done || !p.sc.Next() {
		p.done = true
		return jot.Token{}, false
	}
	p.tok, p.have = p.sc.Token(), true
	return p.tok, true
}

// next consumes and returns the next token.
func (p *parser) next() (jot.Token, bool) {
	tok, ok := p.peek()
	p.have = false
	return tok, ok
}

// parseValue parses a single value, dispatching on the lookahead token. Any
// separator, terminator, or invalid token at the start of a value position
// is a syntax error.
func (p *parser) parseValue(ctx context) (Value, error) {
	tok, ok := p.peek()
	if !ok {
		return EndOfInput{}, nil
	}
	switch tok.Kind {
	case jot.RBrace, jot.RSquare, jot.Comma, jot.Colon, jot.Invalid:
		return nil, &SyntaxError{Token: tok}
	case jot.LBrace:
		return p.parseObject(ctx)
	case jot.LSquare:
		return p.parseArray(ctx)
	case jot.EndOfInput:
		if ctx != topLevel {
			return nil, &SyntaxError{Token: tok}
		}
		p.next()
		return EndOfInput{}, nil
	case jot.Null:
		p.next()
		return p.follow(Null{}, ctx)
	case jot.True:
		p.next()
		return p.follow(Bool(true), ctx)
	case jot.False:
		p.next()
		return p.follow(Bool(false), ctx)
	case jot.Integer:
		p.next()
		z, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Token: tok}
		}
		return p.follow(Integer(z), ctx)
	case jot.Float:
		p.next()
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, &SyntaxError{Token: tok}
		}
		return p.follow(Float(f), ctx)
	case jot.String:
		p.next()
		s, err := jot.Unquote(tok.Text)
		if err != nil {
			return nil, &SyntaxError{Token: tok}
		}
		return p.follow(String(s), ctx)
	default:
		return nil, &SyntaxError{Token: tok}
	}
}

// follow validates the token after a completed value against the enclosing
// context: a comma or the matching closer inside a collection, end of input
// at top level. The token is not consumed, and an error is attributed to it
// rather than to the value it follows.
func (p *parser) follow(v Value, ctx context) (Value, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEOF
	}
	switch tok.Kind {
	case jot.Comma:
		if ctx != topLevel {
			return v, nil
		}
	case jot.RSquare:
		if ctx == inArray {
			return v, nil
		}
	case jot.RBrace:
		if ctx == inObject {
			return v, nil
		}
	case jot.EndOfInput:
		if ctx == topLevel {
			return v, nil
		}
	}
	return nil, &SyntaxError{Token: tok}
}

// parseArray consumes "[", then elements until "]". Commas are consumed and
// otherwise ignored, so separator placement inside the brackets is not
// validated beyond what follow enforces for each element.
func (p *parser) parseArray(ctx context) (Value, error) {
	p.next() // "["
	arr := Array{}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		switch tok.Kind {
		case jot.RSquare:
			p.next()
			return p.follow(arr, ctx)
		case jot.Comma:
			p.next()
			continue
		}
		v, err := p.parseValue(inArray)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// parseObject consumes "{", then members until "}". A single flag tracks
// whether a key or a value is expected: "," resets it to key, ":" toggles it
// to value, and a string seen while a key is expected becomes the pending
// key without recursing. Values are inserted under the pending key; a
// duplicate key silently overwrites the earlier value.
func (p *parser) parseObject(ctx context) (Value, error) {
	p.next() // "{"
	obj := Object{}
	expectKey := true
	var key string
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrUnexpectedEOF
		}
		switch {
		case tok.Kind == jot.RBrace:
			p.next()
			return p.follow(obj, ctx)
		case tok.Kind == jot.Comma:
			if expectKey {
				return nil, &SyntaxError{Token: tok}
			}
			expectKey = true
			p.next()
			continue
		case tok.Kind == jot.Colon:
			if !expectKey {
				return nil, &SyntaxError{Token: tok}
			}
			expectKey = false
			p.next()
			continue
		case tok.Kind == jot.String && expectKey:
			k, err := jot.Unquote(tok.Text)
			if err != nil {
				return nil, &SyntaxError{Token: tok}
			}
			key = k
			p.next()
			continue
		case expectKey:
			return nil, &SyntaxError{Token: tok}
		}
		v, err := p.parseValue(inObject)
		if err != nil {
			return nil, err
		}
		obj[key] = v
	}
}
