package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// lowercases and strips all whitespace so that keyword matching is
// insensitive to the formatting quirks of individual sites
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// CleanText flattens scraped text into a single line bounded by max:
// internal whitespace and newlines collapse to single spaces, single
// quotes are escaped for the seed-file serialization, and anything
// longer than max is cut to max-3 with "..." appended.
func CleanText(text string, max int) string {
	if text == "" {
		return ""
	}
	text = strings.Join(strings.Fields(text), " ")
	text = strings.ReplaceAll(text, "'", "\\'")
	// counted in runes, not bytes, so Greek text is never cut mid-character
	if r := []rune(text); max > 3 && len(r) > max {
		text = string(r[:max-3]) + "..."
	}
	return text
}

// Truncate cuts s at max bytes without the ellipsis marker. Used for
// fields like location where the bound is a storage limit, not a
// presentation choice.
func Truncate(s string, max int) string {
	if r := []rune(s); max >= 0 && len(r) > max {
		return string(r[:max])
	}
	return s
}
