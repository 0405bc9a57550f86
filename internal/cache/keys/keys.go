// Package keys builds Redis key names for cached polygon details.
package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

// Details returns the cache key for a region's polygon details. Identifiers
// come from filenames, so they are sanitized for the key text; the xxhash
// suffix keeps keys distinct even when sanitization collapses two ids to the
// same text.
func Details(id string) string {
	idNorm := sanitizeForKey(strings.TrimSpace(id))

	const maxIDTextLen = 160
	if len(idNorm) > maxIDTextLen {
		idNorm = idNorm[:maxIDTextLen]
	}

	sum := xxhash.Sum64String(id)
	return fmt.Sprintf("details:%s:f=%016x", idNorm, sum)
}

func sanitizeForKey(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	for _, r := range s {
		var out rune
		switch {
		case isASCIIWhitespace(r):
			out = '_'
		case isAlphaNum(r) || r == '_' || r == '-' || r == '.':
			out = r
		default:
			// Any other rune (including non-ASCII) becomes '-'
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
	}
	return b.String()
}

func isASCIIWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

func isAlphaNum(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		unicode.IsDigit(r)
}
