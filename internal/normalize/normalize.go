// Package normalize canonicalizes company names for cross-dataset matching.
//
// Two company-name strings refer to the same entity iff their normalized
// forms are equal. Normalization is exact-match only: no fuzzy matching and
// no edit-distance tolerance. Swapping in a fuzzier scheme later only
// requires replacing this package behind the same contract.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lower      = cases.Lower(language.Und)
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Name returns the canonical join-key form of a company name: lowercased,
// stripped of everything that is not a word character or whitespace, with
// whitespace runs collapsed to single spaces and the result trimmed.
// Pure and total; empty input yields empty output.
func Name(s string) string {
	s = lower.String(s)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
