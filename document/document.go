// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

// Package document wraps parsed JSON trees in shape-checked handles.
//
// A handle pairs a shared reference to a subtree with one of three shapes:
// Object, Array, or Value (any non-collection). Handles only exist for
// subtrees of the matching shape: every constructor and accessor validates
// the shape before handing a handle out, so a shape mismatch is an error at
// the point of access, never a latent mistyped handle.
//
// Accessor errors are local to the failed call and do not invalidate the
// handle; the caller may retry a different accessor on the same handle.
// Subtree handles remain valid after the handles they were obtained from are
// gone: navigation shares the tree, it does not copy it.
package document

import (
	"os"

	"github.com/arvefors/jot/ast"
)

// An Object is a handle on a JSON object.
type Object struct {
	data ast.Object
}

// An Array is a handle on a JSON array.
type Array struct {
	data ast.Array
}

// A Value is a handle on a non-collection JSON value: null, a Boolean, a
// number, a string, or the end-of-input marker of an empty document.
type Value struct {
	data ast.Value
}

// ParseObject parses text whose root is a JSON object.  If the input is not
// syntactically valid the parse error is returned; if it is valid but the
// root is not an object, the error is ErrIncorrectType.
func ParseObject(text string) (Object, error) {
	v, err := ast.Parse(text)
	if err != nil {
		return Object{}, err
	}
	obj, ok := v.(ast.Object)
	if !ok {
		return Object{}, ErrIncorrectType
	}
	return Object{data: obj}, nil
}

// ParseArray parses text whose root is a JSON array.
func ParseArray(text string) (Array, error) {
	v, err := ast.Parse(text)
	if err != nil {
		return Array{}, err
	}
	arr, ok := v.(ast.Array)
	if !ok {
		return Array{}, ErrIncorrectType
	}
	return Array{data: arr}, nil
}

// ParseValue parses text whose root is a non-collection value. An empty
// input is a valid Value; use IsEndOfInput to distinguish it from data.
func ParseValue(text string) (Value, error) {
	v, err := ast.Parse(text)
	if err != nil {
		return Value{}, err
	}
	if !isValue(v) {
		return Value{}, ErrIncorrectType
	}
	return Value{data: v}, nil
}

// LoadObject reads the file at path and parses it as ParseObject does. A
// read failure is reported as a *SourceError.
func LoadObject(path string) (Object, error) {
	text, err := readSource(path)
	if err != nil {
		return Object{}, err
	}
	return ParseObject(text)
}

// LoadArray reads the file at path and parses it as ParseArray does.
func LoadArray(path string) (Array, error) {
	text, err := readSource(path)
	if err != nil {
		return Array{}, err
	}
	return ParseArray(text)
}

// LoadValue reads the file at path and parses it as ParseValue does.
func LoadValue(path string) (Value, error) {
	text, err := readSource(path)
	if err != nil {
		return Value{}, err
	}
	return ParseValue(text)
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &SourceError{Path: path, Err: err}
	}
	return string(data), nil
}

// MustObject is a version of ParseObject that panics on error, for use in
// program initialization and tests.
func MustObject(text string) Object {
	obj, err := ParseObject(text)
	if err != nil {
		panic(err)
	}
	return obj
}

// MustArray is a version of ParseArray that panics on error.
func MustArray(text string) Array {
	arr, err := ParseArray(text)
	if err != nil {
		panic(err)
	}
	return arr
}

// MustValue is a version of ParseValue that panics on error.
func MustValue(text string) Value {
	val, err := ParseValue(text)
	if err != nil {
		panic(err)
	}
	return val
}

// isValue reports whether v has Value shape, meaning any variant except
// object and array.
func isValue(v ast.Value) bool {
	switch v.(type) {
	case ast.Object, ast.Array:
		return false
	}
	return v != nil
}

// Object returns a handle on the object under key. The error is
// ErrKeyNotFound if the key is absent, or ErrIncorrectType if the member is
// not an object.
func (o Object) Object(key string) (Object, error) {
	v, err := o.lookup(key)
	if err != nil {
		return Object{}, err
	}
	sub, ok := v.(ast.Object)
	if !ok {
		return Object{}, ErrIncorrectType
	}
	return Object{data: sub}, nil
}

// Array returns a handle on the array under key.
func (o Object) Array(key string) (Array, error) {
	v, err := o.lookup(key)
	if err != nil {
		return Array{}, err
	}
	sub, ok := v.(ast.Array)
	if !ok {
		return Array{}, ErrIncorrectType
	}
	return Array{data: sub}, nil
}

// Value returns a handle on the non-collection value under key.
func (o Object) Value(key string) (Value, error) {
	v, err := o.lookup(key)
	if err != nil {
		return Value{}, err
	}
	if !isValue(v) {
		return Value{}, ErrIncorrectType
	}
	return Value{data: v}, nil
}

func (o Object) lookup(key string) (ast.Value, error) {
	v, ok := o.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

// Len returns the number of members of the object.
func (o Object) Len() int { return len(o.data) }

// JSON renders the object as canonical JSON text.
func (o Object) JSON() string { return o.data.JSON() }

// Object returns a handle on the object at index i. The error is
// ErrIndexNotFound if i is out of range, or ErrIncorrectType if the element
// is not an object.
func (a Array) Object(i int) (Object, error) {
	v, err := a.index(i)
	if err != nil {
		return Object{}, err
	}
	sub, ok := v.(ast.Object)
	if !ok {
		return Object{}, ErrIncorrectType
	}
	return Object{data: sub}, nil
}

// Array returns a handle on the array at index i.
func (a Array) Array(i int) (Array, error) {
	v, err := a.index(i)
	if err != nil {
		return Array{}, err
	}
	sub, ok := v.(ast.Array)
	if !ok {
		return Array{}, ErrIncorrectType
	}
	return Array{data: sub}, nil
}

// Value returns a handle on the non-collection value at index i.
func (a Array) Value(i int) (Value, error) {
	v, err := a.index(i)
	if err != nil {
		return Value{}, err
	}
	if !isValue(v) {
		return Value{}, ErrIncorrectType
	}
	return Value{data: v}, nil
}

func (a Array) index(i int) (ast.Value, error) {
	if i < 0 || i >= len(a.data) {
		return nil, ErrIndexNotFound
	}
	return a.data[i], nil
}

// Len returns the number of elements of the array.
func (a Array) Len() int { return len(a.data) }

// IsEmpty reports whether the array has no elements.
func (a Array) IsEmpty() bool { return len(a.data) == 0 }

// JSON renders the array as canonical JSON text.
func (a Array) JSON() string { return a.data.JSON() }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	_, ok := v.data.(ast.Null)
	return ok
}

// IsEndOfInput reports whether the value is the root of an empty document.
func (v Value) IsEndOfInput() bool {
	_, ok := v.data.(ast.EndOfInput)
	return ok
}

// Bool returns the Boolean value, or ErrIncorrectType.
func (v Value) Bool() (bool, error) {
	b, ok := v.data.(ast.Bool)
	if !ok {
		return false, ErrIncorrectType
	}
	return bool(b), nil
}

// Str returns the string value, or ErrIncorrectType.
func (v Value) Str() (string, error) {
	s, ok := v.data.(ast.String)
	if !ok {
		return "", ErrIncorrectType
	}
	return string(s), nil
}

// Int64 returns the integer value, or ErrIncorrectType.
func (v Value) Int64() (int64, error) {
	z, ok := v.data.(ast.Integer)
	if !ok {
		return 0, ErrIncorrectType
	}
	return int64(z), nil
}

// Float64 returns the floating-point value, or ErrIncorrectType.
func (v Value) Float64() (float64, error) {
	f, ok := v.data.(ast.Float)
	if !ok {
		return 0, ErrIncorrectType
	}
	return float64(f), nil
}

// JSON renders the value as canonical JSON text.
func (v Value) JSON() string {
	if v.data == nil {
		return ""
	}
	return v.data.JSON()
}
