// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package document

import (
	"errors"
	"fmt"
)

// Errors reported by handle constructors and accessors. Compare with
// errors.Is. Syntax errors from parsing are reported as *ast.SyntaxError.
var (
	// ErrIncorrectType means the subtree exists but does not have the
	// requested shape or variant.
	ErrIncorrectType = errors.New("incorrect type")

	// ErrKeyNotFound means an object has no member with the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexNotFound means an array index is out of range.
	ErrIndexNotFound = errors.New("index not found")
)

// SourceError is the concrete type of errors reported when a text source
// cannot be read. It wraps the underlying I/O error.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source unavailable: %v", e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
