package domain

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotApplicable is the canonical "not applicable" value. The survey sheet
// spells it several ways; UnifyNA folds them all into this one.
const NotApplicable = "n/a"

var naSynonyms = map[string]struct{}{
	"NI":            {},
	"_inapplicable": {},
	"NA":            {},
	NotApplicable:   {},
}

// UnifyNA maps the survey's "not applicable" spellings to NotApplicable.
// Any other value is returned unchanged.
func UnifyNA(value string) string {
	if _, ok := naSynonyms[value]; ok {
		return NotApplicable
	}
	return value
}

// wordRun matches maximal runs of letters, marks, digits and underscores.
// Everything between runs (spaces, hyphens, slashes, quotes) is kept as is.
var wordRun = regexp.MustCompile(`[\p{L}\p{M}\p{N}_]+`)

// TitleCase capitalizes every word run in s and lowercases the rest of the
// run, so "kuuk THAAYORRE" becomes "Kuuk Thaayorre" and "chi-mwera" becomes
// "Chi-Mwera". Used for display names coming from free-form survey cells.
func TitleCase(s string) string {
	caser := cases.Title(language.Und)
	return wordRun.ReplaceAllStringFunc(s, caser.String)
}
