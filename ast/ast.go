// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

// Package ast defines a document tree for JSON values, and a parser that
// constructs document trees from JSON source.
package ast

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/arvefors/jot"
)

// A Value is an arbitrary JSON value. The concrete type is one of
// EndOfInput, Null, Bool, Integer, Float, String, Array, or Object.
//
// Values are immutable once parsed and may be freely shared; navigating into
// a tree hands out references to subtrees, never copies.
type Value interface {
	// JSON renders the value as JSON source text. The rendering is canonical
	// rather than faithful to the original input: whitespace is not
	// preserved and object keys are emitted in sorted order. Parsing the
	// rendering yields a value structurally equal to the original.
	JSON() string
}

// EndOfInput is the value of an empty input. It is not a data value: it can
// only occur as the root of a parse, never inside an array or object.
type EndOfInput struct{}

// Null represents the null constant.
type Null struct{}

// A Bool is a Boolean constant, true or false.
type Bool bool

// An Integer is an integer value.
type Integer int64

// A Float is a floating-point value.
type Float float64

// A String is a string value. The text is unescaped.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// An Object maps string keys to values. Keys are unique; iteration order is
// not specified.
type Object map[string]Value

func (EndOfInput) JSON() string { return "" }

func (Null) JSON() string { return "null" }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (z Integer) JSON() string { return strconv.FormatInt(int64(z), 10) }

// JSON renders the float in plain decimal notation. A fraction is always
// present, so the rendering lexes as a Float rather than an Integer.
func (f Float) JSON() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (s String) JSON() string { return jot.Quote(string(s)) }

func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range a {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteString("]")
	return sb.String()
}

func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			sb.WriteString(",\n")
		}
		sb.WriteString(jot.Quote(key))
		sb.WriteString(": ")
		sb.WriteString(o[key].JSON())
	}
	sb.WriteString("\n}")
	return sb.String()
}

// Len returns the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the value of the member of o with the given key, or nil.
func (o Object) Find(key string) Value { return o[key] }

// Len returns the number of elements of a.
func (a Array) Len() int { return len(a) }

// Equal reports whether a and b are structurally equal. Arrays are compared
// elementwise in order; objects are compared as mappings.
func Equal(a, b Value) bool {
	switch ta := a.(type) {
	case Array:
		tb, ok := b.(Array)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i, v := range ta {
			if !Equal(v, tb[i]) {
				return false
			}
		}
		return true
	case Object:
		tb, ok := b.(Object)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for key, v := range ta {
			w, ok := tb[key]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
