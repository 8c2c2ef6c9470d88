// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package jot

import (
	"errors"
	"strings"

	"github.com/arvefors/jot/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. Backslashes and double quotation
// marks are escaped, and enclosing quotation marks are added.
func Quote(src string) string {
	var sb strings.Builder
	sb.Grow(len(src) + 2)
	sb.WriteByte('"')
	sb.Write(escape.Quote(mem.S(src)))
	sb.WriteByte('"')
	return sb.String()
}

// Unquote decodes a JSON string value. Double quotation marks are removed,
// and the escape sequences `\\` and `\"` are replaced with their unescaped
// equivalents. Any other backslash sequence passes through unchanged.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	return string(escape.Unquote(mem.S(src[1 : len(src)-1]))), nil
}
