// Package match decides whether a guess names the concealed answer.
//
// Both strings are lower-cased and trimmed. Identical results match outright;
// otherwise the Levenshtein distance is turned into a percentage of the longer
// string and compared against Threshold. Lengths and distances are counted in
// runes so accented names are not penalised twice.
package match

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Threshold is the minimum similarity, in percent, for a guess to count
const Threshold = 85.0

// IsMatch reports whether candidate is close enough to secret
func IsMatch(candidate, secret string) bool {
	return Similarity(candidate, secret) >= Threshold
}

// Similarity returns how alike a and b are, from 0 to 100
func Similarity(a, b string) float64 {
	a = normalize(a)
	b = normalize(b)

	if a == b {
		return 100
	}

	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 100
	}

	d := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-d) / float64(maxLen) * 100
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
