// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package jot

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid    Kind = iota // invalid token
	LBrace                 // left brace "{"
	RBrace                 // right brace "}"
	LSquare                // left square bracket "["
	RSquare                // right square bracket "]"
	Comma                  // comma ","
	Colon                  // colon ":"
	Integer                // number: integer with no fraction
	Float                  // number with a fraction
	String                 // quoted string
	True                   // constant: true
	False                  // constant: false
	Null                   // constant: null
	EndOfInput             // end of input
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Integer: "integer",
	Float:   "float",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",

	EndOfInput: "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token is a single lexical token of the input. Text is the exact lexeme,
// including the surrounding quotation marks for strings. Tokens are plain
// values; two tokens are the same token exactly when they are equal.
type Token struct {
	Kind Kind
	Text string
	Loc  Loc
}
