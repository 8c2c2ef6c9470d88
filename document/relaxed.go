// Copyright (C) 2025 Axel Arvefors. All Rights Reserved.

package document

import "github.com/tailscale/hujson"

// Standardize rewrites src, which may contain comments and trailing commas,
// into standard JSON suitable for the parser. Input that is already standard
// JSON passes through unchanged apart from the removed decorations.
//
//	obj, err := document.ParseObject(document.MustStandardize(cfg))
func Standardize(src string) (string, error) {
	out, err := hujson.Standardize([]byte(src))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// MustStandardize is a version of Standardize that panics on error.
func MustStandardize(src string) string {
	out, err := Standardize(src)
	if err != nil {
		panic(err)
	}
	return out
}
