// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package jot

import "fmt"

// A Loc describes the location of a token in source text.
//
// Row is the 1-based line number of the last character of the lexeme. Col is
// the 1-based column immediately following that character, counted in runes
// from the start of the row. End-of-lexeme coordinates keep column tracking
// incremental: the scanner never has to remember where a lexeme began.
type Loc struct {
	Row int
	Col int
}

func (l Loc) String() string { return fmt.Sprintf("%d:%d", l.Row, l.Col) }
