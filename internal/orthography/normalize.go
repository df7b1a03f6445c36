// Package orthography holds the pure text functions used to store and search
// Cree wordforms written in Standard Roman Orthography (SRO).
// Pure functions: strings in, strings out. No database dependencies.
package orthography

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// macronToCircumflex folds macroned long vowels onto their circumflexed form.
var macronToCircumflex = strings.NewReplacer(
	"ā", "â",
	"ē", "ê",
	"ī", "î",
	"ō", "ô",
)

// Normalize NFC-composes text and trims surrounding whitespace.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// NormalizeSRO prepares a transcription for storage:
//   - NFC composition, trimming, lower-casing
//   - every plain "e" becomes "ê" (SRO has no short e)
//   - macroned vowels are folded to circumflexed vowels
//   - inner whitespace runs collapse to a single ASCII space
//   - spaces around a hyphen between two word characters are removed
//
// NormalizeSRO is idempotent.
func NormalizeSRO(text string) string {
	text = norm.NFC.String(text)
	// Lower-casing can expose a base letter that composes with a following
	// mark (İ + U+0304 lowers to i + U+0304), so compose again before folding.
	text = norm.NFC.String(strings.ToLower(text))
	text = strings.ReplaceAll(text, "e", "ê")
	text = macronToCircumflex.Replace(text)
	text = strings.Join(strings.Fields(text), " ")
	text = collapseHyphens(text)
	return norm.NFC.String(text)
}

// collapseHyphens removes the spaces around a hyphen when the hyphen sits
// between two word characters: "ê - nipât" becomes "ê-nipât".
func collapseHyphens(text string) string {
	if !strings.Contains(text, "-") {
		return text
	}

	runes := []rune(text)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '-' {
			out = append(out, r)
			continue
		}

		// Look back past spaces already emitted.
		back := len(out)
		for back > 0 && out[back-1] == ' ' {
			back--
		}
		// Look ahead past spaces still to come.
		ahead := i + 1
		for ahead < len(runes) && runes[ahead] == ' ' {
			ahead++
		}

		if back > 0 && ahead < len(runes) && isWordRune(out[back-1]) && isWordRune(runes[ahead]) {
			out = append(out[:back], '-')
			i = ahead - 1
			continue
		}
		out = append(out, r)
	}

	return string(out)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
