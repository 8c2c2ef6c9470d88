// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package document_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/arvefors/jot/ast"
	"github.com/arvefors/jot/document"
	"github.com/creachadair/mds/mtest"
)

const testJSON = `{
	"string1" : "string1",
	"string2" : "",
	"null" : null,
	"integer": 1337,
	"float": 1337.0,
	"true": true,
	"false": false,
	"arr1": [],
	"arr2": [null, "hej", 1337, true, false],
	"arr3": [null, "hej", 1337, true, false, [null, "hej", 1337, true, false]]
}`

func TestObjectNavigation(t *testing.T) {
	root := document.MustObject(testJSON)

	checkString := func(key, want string) {
		t.Helper()
		v, err := root.Value(key)
		if err != nil {
			t.Fatalf("Value(%q): unexpected error: %v", key, err)
		}
		got, err := v.Str()
		if err != nil {
			t.Fatalf("Str of %q: unexpected error: %v", key, err)
		}
		if got != want {
			t.Errorf("Str of %q: got %q, want %q", key, got, want)
		}
	}
	checkString("string1", "string1")
	checkString("string2", "")

	if v, err := root.Value("null"); err != nil {
		t.Errorf(`Value("null"): unexpected error: %v`, err)
	} else if !v.IsNull() {
		t.Error(`Value("null"): IsNull is false`)
	}
	if v, _ := root.Value("integer"); v.IsNull() {
		t.Error(`Value("integer"): IsNull is true`)
	}

	v, err := root.Value("integer")
	if err != nil {
		t.Fatalf("Value: unexpected error: %v", err)
	}
	if got, err := v.Int64(); err != nil || got != 1337 {
		t.Errorf("Int64: got %d, %v; want 1337", got, err)
	}

	v, _ = root.Value("float")
	if got, err := v.Float64(); err != nil || got != 1337.0 {
		t.Errorf("Float64: got %v, %v; want 1337", got, err)
	}

	for key, want := range map[string]bool{"true": true, "false": false} {
		v, _ := root.Value(key)
		if got, err := v.Bool(); err != nil || got != want {
			t.Errorf("Bool of %q: got %v, %v; want %v", key, got, err, want)
		}
	}
}

func TestArrayNavigation(t *testing.T) {
	root := document.MustObject(testJSON)

	arr1, err := root.Array("arr1")
	if err != nil {
		t.Fatalf(`Array("arr1"): unexpected error: %v`, err)
	}
	if !arr1.IsEmpty() || arr1.Len() != 0 {
		t.Errorf("arr1: IsEmpty %v, Len %d; want empty", arr1.IsEmpty(), arr1.Len())
	}

	arr2, err := root.Array("arr2")
	if err != nil {
		t.Fatalf(`Array("arr2"): unexpected error: %v`, err)
	}
	if arr2.Len() != 5 || arr2.IsEmpty() {
		t.Fatalf("arr2: Len %d, IsEmpty %v; want 5 elements", arr2.Len(), arr2.IsEmpty())
	}
	if v, _ := arr2.Value(0); !v.IsNull() {
		t.Error("arr2[0]: IsNull is false")
	}
	if v, _ := arr2.Value(1); first(v.Str()) != "hej" {
		t.Errorf("arr2[1]: got %q, want hej", first(v.Str()))
	}
	if v, _ := arr2.Value(2); first(v.Int64()) != 1337 {
		t.Errorf("arr2[2]: got %d, want 1337", first(v.Int64()))
	}
	if v, _ := arr2.Value(3); first(v.Bool()) != true {
		t.Error("arr2[3]: got false, want true")
	}

	// Nested array handles outlive the handle they came from.
	inner, err := func() (document.Array, error) {
		arr3, err := root.Array("arr3")
		if err != nil {
			return document.Array{}, err
		}
		return arr3.Array(5)
	}()
	if err != nil {
		t.Fatalf("arr3[5]: unexpected error: %v", err)
	}
	if inner.Len() != 5 {
		t.Errorf("arr3[5]: Len %d, want 5", inner.Len())
	}
	if v, _ := inner.Value(2); first(v.Int64()) != 1337 {
		t.Errorf("arr3[5][2]: got %d, want 1337", first(v.Int64()))
	}
}

func TestSubObjects(t *testing.T) {
	root := document.MustObject(`{
		"test1": 123,
		"sub_obj": {
			"test2": "abc",
			"testarr1": [{"a":1}, {"b":2}, {"c":3.3}]
		}
	}`)

	if v, _ := root.Value("test1"); first(v.Int64()) != 123 {
		t.Errorf("test1: got %d, want 123", first(v.Int64()))
	}
	sub, err := root.Object("sub_obj")
	if err != nil {
		t.Fatalf(`Object("sub_obj"): unexpected error: %v`, err)
	}
	if v, _ := sub.Value("test2"); first(v.Str()) != "abc" {
		t.Errorf("test2: got %q, want abc", first(v.Str()))
	}
	arr, err := sub.Array("testarr1")
	if err != nil {
		t.Fatalf(`Array("testarr1"): unexpected error: %v`, err)
	}
	for i, key := range []string{"a", "b", "c"} {
		obj, err := arr.Object(i)
		if err != nil {
			t.Fatalf("testarr1[%d]: unexpected error: %v", i, err)
		}
		if _, err := obj.Value(key); err != nil {
			t.Errorf("testarr1[%d].Value(%q): unexpected error: %v", i, key, err)
		}
	}
	if want := 3.3; first(must(must(arr.Object(2)).Value("c")).Float64()) != want {
		t.Errorf("testarr1[2].c: want %v", want)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	root := document.MustObject(`{"n": 1, "xs": [true], "o": {}}`)

	// Absent key.
	if _, err := root.Value("nonesuch"); !errors.Is(err, document.ErrKeyNotFound) {
		t.Errorf("Value(nonesuch): got %v, want ErrKeyNotFound", err)
	}
	// Present key, wrong shape.
	if _, err := root.Object("n"); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("Object(n): got %v, want ErrIncorrectType", err)
	}
	if _, err := root.Array("o"); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("Array(o): got %v, want ErrIncorrectType", err)
	}
	if _, err := root.Value("xs"); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("Value(xs): got %v, want ErrIncorrectType", err)
	}

	// Out-of-range and negative indexes.
	xs, err := root.Array("xs")
	if err != nil {
		t.Fatalf("Array(xs): unexpected error: %v", err)
	}
	if _, err := xs.Value(1); !errors.Is(err, document.ErrIndexNotFound) {
		t.Errorf("xs[1]: got %v, want ErrIndexNotFound", err)
	}
	if _, err := xs.Value(-1); !errors.Is(err, document.ErrIndexNotFound) {
		t.Errorf("xs[-1]: got %v, want ErrIndexNotFound", err)
	}
	if _, err := xs.Object(0); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("xs[0] as object: got %v, want ErrIncorrectType", err)
	}

	// Variant mismatch on a Value handle, and that the handle stays usable
	// after a failed accessor.
	n, err := root.Value("n")
	if err != nil {
		t.Fatalf("Value(n): unexpected error: %v", err)
	}
	if _, err := n.Bool(); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("Bool of integer: got %v, want ErrIncorrectType", err)
	}
	if _, err := n.Str(); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("Str of integer: got %v, want ErrIncorrectType", err)
	}
	if got, err := n.Int64(); err != nil || got != 1 {
		t.Errorf("Int64 after failed accessors: got %d, %v; want 1", got, err)
	}
}

func TestRootShape(t *testing.T) {
	if _, err := document.ParseObject("[1]"); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("ParseObject of array: got %v, want ErrIncorrectType", err)
	}
	if _, err := document.ParseArray(`{"a":1}`); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("ParseArray of object: got %v, want ErrIncorrectType", err)
	}
	if _, err := document.ParseValue("{}"); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("ParseValue of object: got %v, want ErrIncorrectType", err)
	}
	if _, err := document.ParseValue("[]"); !errors.Is(err, document.ErrIncorrectType) {
		t.Errorf("ParseValue of array: got %v, want ErrIncorrectType", err)
	}

	var serr *ast.SyntaxError
	if _, err := document.ParseObject("0}"); !errors.As(err, &serr) {
		t.Errorf("ParseObject(0}): got %v, want SyntaxError", err)
	}
	if _, err := document.ParseValue(`"hej`); !errors.As(err, &serr) {
		t.Errorf(`ParseValue("hej): got %v, want SyntaxError`, err)
	}
}

func TestPlainValues(t *testing.T) {
	if v := document.MustValue("null"); !v.IsNull() {
		t.Error("null: IsNull is false")
	}
	if got := first(document.MustValue("1337").Int64()); got != 1337 {
		t.Errorf("1337: got %d", got)
	}
	if got := first(document.MustValue("1337.1337").Float64()); got != 1337.1337 {
		t.Errorf("1337.1337: got %v", got)
	}
	if got := first(document.MustValue(`"hej"`).Str()); got != "hej" {
		t.Errorf(`"hej": got %q`, got)
	}
	if got := first(document.MustValue("true").Bool()); !got {
		t.Error("true: got false")
	}
	if got := first(document.MustValue(`"a\"b"`).Str()); got != `a"b` {
		t.Errorf(`escaped string: got %q, want a"b`, got)
	}
}

func TestEndOfInput(t *testing.T) {
	v := document.MustValue("")
	if !v.IsEndOfInput() {
		t.Error("empty input: IsEndOfInput is false")
	}
	if v.IsNull() {
		t.Error("empty input: IsNull is true")
	}
	if got := v.JSON(); got != "" {
		t.Errorf("empty input: JSON %#q, want empty", got)
	}
	if v := document.MustValue("null"); v.IsEndOfInput() {
		t.Error("null: IsEndOfInput is true")
	}
}

func TestRendering(t *testing.T) {
	root := document.MustObject(`{"a": 1, "b": [true, null, "x\"y"]}`)

	// The rendering is canonical, not source-faithful, but it re-parses to
	// an equal document.
	text := root.JSON()
	again, err := document.ParseObject(text)
	if err != nil {
		t.Fatalf("Reparse of %#q: unexpected error: %v", text, err)
	}
	if again.JSON() != text {
		t.Errorf("Rendering not stable:\n first: %#q\nsecond: %#q", text, again.JSON())
	}

	arr := document.MustArray(`[1, 2.5, "x"]`)
	if got, want := arr.JSON(), `[1, 2.5, "x"]`; got != want {
		t.Errorf("Array JSON: got %#q, want %#q", got, want)
	}
}

func TestMustPanics(t *testing.T) {
	mtest.MustPanic(t, func() { document.MustObject("[") })
	mtest.MustPanic(t, func() { document.MustArray("{}") })
	mtest.MustPanic(t, func() { document.MustValue("0}") })
}

func TestLoad(t *testing.T) {
	root, err := document.LoadObject("testdata/config.json")
	if err != nil {
		t.Fatalf("LoadObject: unexpected error: %v", err)
	}
	if got := first(must(root.Object("server")).Value("port")); first(got.Int64()) != 8080 {
		t.Errorf("server.port: got %d, want 8080", first(got.Int64()))
	}
	hosts, err := root.Array("hosts")
	if err != nil {
		t.Fatalf("Array(hosts): unexpected error: %v", err)
	}
	if hosts.Len() != 2 {
		t.Errorf("hosts: Len %d, want 2", hosts.Len())
	}

	_, err = document.LoadObject("testdata/nonesuch.json")
	var lerr *document.SourceError
	if !errors.As(err, &lerr) {
		t.Fatalf("LoadObject(nonesuch): got %v, want SourceError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadObject(nonesuch): %v does not wrap fs.ErrNotExist", err)
	}
}

// first discards a trailing error, for assertions whose setup cannot fail.
func first[T any](v T, _ error) T { return v }

// must unwraps (v, err) pairs in fixtures that are known to be valid.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
