package roster

import (
	"regexp"
	"strings"
	"unicode"
)

var nonAlphaNumericRegex = regexp.MustCompile(`[^\p{L}\p{N}\s._-]`)

// NormalizeName strips decoration and collapses whitespace so that "Léo  ⭐"
// and "léo" compare equal once lowercased.
func NormalizeName(name string) string {
	name = nonAlphaNumericRegex.ReplaceAllString(strings.TrimSpace(name), "")

	var result strings.Builder
	prevSpace := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				result.WriteRune(' ')
				prevSpace = true
			}
			continue
		}
		result.WriteRune(r)
		prevSpace = false
	}

	return strings.TrimSpace(result.String())
}

func SimilarityScore(a, b string) float64 {
	a = strings.ToLower(NormalizeName(a))
	b = strings.ToLower(NormalizeName(b))

	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	maxLen := max(len(ra), len(rb))
	return 1.0 - float64(levenshteinDistance(ra, rb))/float64(maxLen)
}

func levenshteinDistance(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
