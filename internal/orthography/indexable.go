package orthography

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// creeConsonants are the consonants after which an apostrophe marks an
// elided short i ("tân'si" for "tânisi").
const creeConsonants = "chklmnpstwy"

// ToIndexableForm derives the diacritic-insensitive key used for fuzzy
// matching: NFD decomposition, removal of combining marks (U+0300..U+036F), lower-casing,
// and restoration of elided short i.
//
// The result for a whole transcription equals the space-joined results for
// each of its space-separated runs.
func ToIndexableForm(text string) string {
	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r >= 0x0300 && r <= 0x036F {
			continue
		}
		b.WriteRune(r)
	}

	lowered := strings.ToLower(b.String())
	return restoreShortI(lowered)
}

// restoreShortI replaces an apostrophe that follows a Cree consonant with i.
func restoreShortI(text string) string {
	if !strings.ContainsAny(text, "'’") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	var prev rune
	for _, r := range text {
		if (r == '\'' || r == '’') && prev != 0 && strings.ContainsRune(creeConsonants, prev) {
			b.WriteRune('i')
			prev = 'i'
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// baseRune returns the first rune of the NFD decomposition of r, lower-cased:
// the letter stripped of its diacritics.
func baseRune(r rune) rune {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	decomposed := norm.NFD.Bytes(buf[:n])
	first, _ := utf8.DecodeRune(decomposed)
	return toLowerRune(first)
}

func toLowerRune(r rune) rune {
	s := strings.ToLower(string(r))
	lr, _ := utf8.DecodeRuneInString(s)
	return lr
}
