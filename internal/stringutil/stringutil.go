package stringutil

import (
	"unicode"
	"unicode/utf8"
)

// LcFirst returns s with its first rune lowercased.
func LcFirst(s string) string {
	r, wid := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}

	return string(unicode.ToLower(r)) + s[wid:]
}

// UcFirst returns s with its first rune uppercased.
func UcFirst(s string) string {
	r, wid := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}

	return string(unicode.ToUpper(r)) + s[wid:]
}

// EqualFoldFirst reports whether a and b are equal, ignoring the case
// of their first rune only.
func EqualFoldFirst(a, b string) bool {
	return LcFirst(a) == LcFirst(b)
}

// CutPrefixFoldFirst removes prefix from s if s starts with it, comparing
// the first rune of both case-insensitively and the rest exactly.
// It never returns an empty remainder: if s equals prefix, ok is false.
func CutPrefixFoldFirst(s, prefix string) (rest string, ok bool) {
	if prefix == "" || len(s) <= len(prefix) {
		return s, false
	}

	if !EqualFoldFirst(s[:len(prefix)], prefix) {
		return s, false
	}

	return s[len(prefix):], true
}

func Contains(slice []string, s string) bool {
	for _, ss := range slice {
		if ss == s {
			return true
		}
	}

	return false
}
