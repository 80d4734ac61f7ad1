package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Generate turns a display name into a stable URL-safe identifier:
// lower-case, accents folded to their base letters, whitespace runs
// collapsed to a single underscore, everything else dropped.
// Idempotent, so re-slugging an existing slug is a no-op.
func Generate(text string) string {
	text = strings.ToLower(text)
	text = norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from NFD decomposition
		case unicode.IsSpace(r):
			inSpace = true
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			if inSpace && b.Len() > 0 {
				b.WriteByte('_')
			}
			inSpace = false
			if r > unicode.MaxASCII {
				// letters that do not decompose to ASCII are dropped
				continue
			}
			b.WriteRune(r)
		default:
			// punctuation and symbols are dropped
		}
	}

	return b.String()
}
