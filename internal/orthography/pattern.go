package orthography

import (
	"regexp"
	"strings"
)

// vowelClasses widen a base letter to every spelling of it the corpus
// accepts as equivalent.
var vowelClasses = map[rune]string{
	'a': "[aáàâā]",
	'e': "[eéèêē]",
	'i': "[iíìîī]",
	'o': "[oóòôō]",
	'y': "[yý]",
}

// MatchPattern builds the anchored regular expression a non-exact lookup
// uses for term. Every vowel matches any of its diacritic variants and a
// hyphen may appear between any two letters, so "enipat" matches
// "ê-nipât". Hyphens in term itself are optional in the same way.
//
// The pattern is valid for both Go's regexp and PostgreSQL's ~ operator.
func MatchPattern(term string) string {
	term = strings.ToLower(Normalize(term))

	var parts []string
	for _, r := range term {
		if r == '-' {
			continue
		}
		if class, ok := vowelClasses[baseRune(r)]; ok {
			parts = append(parts, class)
			continue
		}
		parts = append(parts, regexp.QuoteMeta(string(r)))
	}

	return "^" + strings.Join(parts, "-?") + "$"
}
