package helpers

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"
)

// Slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// SlugWithSuffix appends a short random suffix, used when the plain slug is
// already taken.
func SlugWithSuffix(title string) string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return Slugify(title) + "-" + hex.EncodeToString(b)
}
