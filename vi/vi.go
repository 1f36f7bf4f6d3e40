// Package vi normalizes Vietnamese text for the lookup tables in package
// canchi and package solarterm, so a name lookup succeeds whether the
// caller's string arrived pre-composed ("Tý") or decomposed into base
// letter plus combining marks, and optionally folds away tone/quality
// diacritics entirely for accent-insensitive matching.
package vi

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// NFC returns s normalized to Unicode Normalization Form C, the form every
// name table in this module is authored in. Use this before comparing a
// caller-supplied string against canchi.Stems, canchi.Branches, or
// solarterm.Terms.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// dStrokeReplacer maps Đ/đ to D/d: that letter's stroke is not a
// combining mark under Unicode decomposition, so NFD alone leaves it
// untouched and it needs an explicit substitution to fold away.
var dStrokeReplacer = strings.NewReplacer("Đ", "D", "đ", "d")

// FoldAccents strips Vietnamese combining diacritics (tone marks and the
// breve/horn/circumflex quality marks) from s, returning the bare Latin
// skeleton. "Tỵ" folds to "Ty", "Thìn" folds to "Thin", "Đông" folds to
// "Dong".
func FoldAccents(s string) (string, error) {
	out, _, err := transform.String(foldTransformer, dStrokeReplacer.Replace(s))
	return out, err
}

// EqualFold reports whether a and b name the same term once both are NFC
// normalized and accent-folded, so "Tý", "ty", and a decomposed "Tý"
// all compare equal.
func EqualFold(a, b string) bool {
	fa, errA := FoldAccents(a)
	fb, errB := FoldAccents(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(NFC(a), NFC(b))
	}
	return strings.EqualFold(fa, fb)
}

// Lookup finds the index of name within table, matching NFC-normalized
// exact form first and falling back to accent-folded, case-insensitive
// comparison. It returns -1 if no entry matches.
func Lookup(table []string, name string) int {
	normalized := NFC(name)
	for i, candidate := range table {
		if candidate == normalized {
			return i
		}
	}
	for i, candidate := range table {
		if EqualFold(candidate, name) {
			return i
		}
	}
	return -1
}
