package caption

import "unicode/utf8"

// UTF-8 boundary helpers: spec.md §1 names these as an external
// collaborator ("length, copy, wrap, whitespace"). No example repo
// implements caption-cell-sized (1-4 byte) UTF-8 segmentation with wrap
// accounting, so this is built directly on the standard library's
// unicode/utf8, the idiomatic Go primitive for rune boundaries (see
// SPEC_FULL.md §3).

// utf8CharLen returns the byte length of the first rune in s, or 0 if s is
// empty.
func utf8CharLen(s string) int {
	if s == "" {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// utf8IsSpace reports whether r is caption-whitespace (the ASCII space,
// and the control whitespace runes a caption stream could plausibly
// carry).
func utf8IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// utf8IsSpaceString reports whether s (a single decoded cell character) is
// whitespace.
func utf8IsSpaceString(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && utf8IsSpace(r)
}
