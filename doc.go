// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

// Package jot implements a scanner for a practical subset of JSON.
//
// The dialect covers null, true, false, integers, decimal floats, strings
// with `\\` and `\"` escapes, arrays, and objects. Unicode escape sequences
// and exponent notation are deliberately out of scope.
//
// # Scanning
//
// The Scanner type implements a lexical scanner over an in-memory string.
// Construct a scanner and call its Next method to iterate over the stream.
// Tokens are pulled one at a time; the input is never tokenized ahead of
// what the caller has asked for:
//
//	s := jot.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token().Kind)
//	}
//
// The final token of every input is a single EndOfInput token. Lexically
// invalid input is reported in-band as Invalid tokens rather than as errors,
// carrying whatever prefix of the lexeme was consumed; what to do about one
// is the caller's decision.
//
// # Parsing
//
// Package [github.com/arvefors/jot/ast] consumes the token stream and builds
// document trees. Package [github.com/arvefors/jot/document] wraps those
// trees in shape-checked handles for navigation.
package jot
