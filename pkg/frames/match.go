package frames

import (
	"regexp"
	"strings"
)

// matchThreshold is the minimum word overlap for a frame group to count as
// a match for a test title.
const matchThreshold = 3

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Normalize folds a test title into the hyphenated lowercase form used by
// frame filename prefixes.
func Normalize(title string) string {
	return strings.ToLower(strings.Trim(nonAlnum.ReplaceAllString(title, "-"), "-"))
}

// Match returns the prefix of the frame group that best matches the test
// title, or "" when no group shares at least matchThreshold words with it.
// Groups are scanned in insertion order and only a strictly higher score
// replaces the current best, so ties keep the first group encountered.
func Match(title string, groups *Groups) string {
	titleWords := wordSet(Normalize(title))

	var best string
	bestScore := 0
	for _, prefix := range groups.Prefixes() {
		overlap := 0
		for word := range wordSet(strings.ToLower(prefix)) {
			if titleWords[word] {
				overlap++
			}
		}
		if overlap > bestScore {
			bestScore = overlap
			best = prefix
		}
	}

	if bestScore < matchThreshold {
		return ""
	}
	return best
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Split(s, "-") {
		set[w] = true
	}
	return set
}
