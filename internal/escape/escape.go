// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
//
// The dialect recognizes exactly two escape sequences, `\\` and `\"`. Any
// other backslash sequence is not an escape and passes through unchanged in
// both directions.
package escape

import "go4.org/mem"

// Quote encodes a string to escape characters for inclusion in a JSON string.
// The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b == '"' || b == '\\' {
			buf = append(buf, '\\')
		}
		buf = append(buf, b)
	}
	return buf
}

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// The two recognized escape sequences are replaced with their unescaped
// equivalents; all other input, including unrecognized backslash sequences
// and a trailing lone backslash, is copied through verbatim.
func Unquote(src mem.RO) []byte {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src)
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i)

		if src.Len() >= 2 {
			switch b := src.At(1); b {
			case '"', '\\':
				dec = append(dec, b)
				src = src.SliceFrom(2)
			default:
				dec = append(dec, '\\')
				src = src.SliceFrom(1)
			}
		} else {
			dec = append(dec, '\\')
			src = src.SliceFrom(1)
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec
}
