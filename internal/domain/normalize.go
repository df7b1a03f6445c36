package domain

import (
	"regexp"
	"strings"
)

var speakerCodeRe = regexp.MustCompile(`^[A-Z]+[0-9]?$`)

// NormalizeSpeakerCode trims and upper-cases a speaker code from a metadata
// file. It returns ok=false for "N/A", empty cells and anything that is not
// a valid code.
func NormalizeSpeakerCode(raw string) (code string, ok bool) {
	code = strings.ToUpper(strings.TrimSpace(raw))
	if code == "" || code == "N/A" {
		return "", false
	}
	if !speakerCodeRe.MatchString(code) {
		return "", false
	}
	return code, true
}

// NormalizeSlug prepares a language slug from a URL or flag for lookup:
// trimmed and lower-cased.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// NormalizeText trims text and compresses runs of spaces into one. Case,
// diacritics, hyphens and apostrophes are preserved. Used for free-text
// fields such as comments and translations.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
