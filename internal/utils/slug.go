package utils

import (
	"strings"
	"unicode"
)

// Slugify turns a tag name into its URL key. Whitespace runs become
// underscores instead of dashes, since plenty of nouns worth tagging
// contain dashes already ("t-shirt", "blu-ray") and underscores keep them
// readable. Everything outside [a-z0-9_-] is dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.TrimSpace(strings.ToLower(name)) {
		switch {
		case unicode.IsSpace(r):
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_':
			b.WriteRune(r)
			lastUnderscore = false
		}
	}
	return strings.TrimRight(b.String(), "_")
}
