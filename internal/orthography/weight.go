package orthography

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
)

// Edit costs of the fuzzy match weight.
const (
	costFree     = 0.0
	costShortI   = 0.5
	costStandard = 1.0
)

// Weight is a weighted edit distance between a query and a candidate
// wordform. It is deliberately not monotone over plain edit distance:
//   - adding or removing a diacritic is free
//   - swapping the glides y and w is free
//   - inserting h between a vowel and a consonant is free
//   - inserting i between two consonants costs 0.5
//   - every other insertion, deletion or substitution costs 1
//
// Insertions are judged in the context of the string that contains the
// inserted letter, so deleting a preaspiration h from the query is free too.
func Weight(query, candidate string) float64 {
	a := []rune(NormalizeSRO(query))
	b := []rune(NormalizeSRO(candidate))

	prev := make([]float64, len(b)+1)
	curr := make([]float64, len(b)+1)

	for j := 1; j <= len(b); j++ {
		prev[j] = prev[j-1] + insertCost(b, j-1)
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = prev[0] + insertCost(a, i-1)
		for j := 1; j <= len(b); j++ {
			best := prev[j-1] + substituteCost(a[i-1], b[j-1])
			if del := prev[j] + insertCost(a, i-1); del < best {
				best = del
			}
			if ins := curr[j-1] + insertCost(b, j-1); ins < best {
				best = ins
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func substituteCost(x, y rune) float64 {
	bx, by := baseRune(x), baseRune(y)
	if bx == by {
		return costFree
	}
	if (bx == 'y' && by == 'w') || (bx == 'w' && by == 'y') {
		return costFree
	}
	return costStandard
}

// insertCost is the cost of the letter at s[k] appearing in s but not in the
// other string, judged against its neighbours in s.
func insertCost(s []rune, k int) float64 {
	r := baseRune(s[k])
	var before, after rune
	if k > 0 {
		before = baseRune(s[k-1])
	}
	if k+1 < len(s) {
		after = baseRune(s[k+1])
	}

	switch {
	case r == 'h' && isVowel(before) && isConsonant(after):
		return costFree
	case r == 'i' && isConsonant(before) && isConsonant(after):
		return costShortI
	default:
		return costStandard
	}
}

func isVowel(r rune) bool {
	return r != 0 && strings.ContainsRune("aeiou", r)
}

func isConsonant(r rune) bool {
	return r >= 'a' && r <= 'z' && !isVowel(r)
}

// Suggestion is a candidate wordform with its fuzzy match weight.
type Suggestion struct {
	Wordform string
	Weight   float64
}

// Rank orders candidates by ascending Weight against query. Ties are broken
// by descending Jaro-Winkler similarity of the indexable forms, then
// lexicographically. A limit <= 0 returns every candidate.
func Rank(query string, candidates []string, limit int) []Suggestion {
	type scored struct {
		Suggestion
		similarity float64
	}

	queryKey := ToIndexableForm(NormalizeSRO(query))
	seen := make(map[string]bool, len(candidates))
	items := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		items = append(items, scored{
			Suggestion: Suggestion{Wordform: c, Weight: Weight(query, c)},
			similarity: matchr.JaroWinkler(queryKey, ToIndexableForm(c), false),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Weight != items[j].Weight {
			return items[i].Weight < items[j].Weight
		}
		if items[i].similarity != items[j].similarity {
			return items[i].similarity > items[j].similarity
		}
		return items[i].Wordform < items[j].Wordform
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]Suggestion, len(items))
	for i, it := range items {
		out[i] = it.Suggestion
	}
	return out
}
