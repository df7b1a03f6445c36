package domain

import (
	"slices"
	"strings"
)

// MergePolicy says how the values of one phrase field are reconciled when
// phrases are merged.
type MergePolicy int

const (
	// MergeJoin joins distinct trimmed non-empty values with " | ".
	MergeJoin MergePolicy = iota
	// MergeJoinLines joins distinct trimmed non-empty values with newlines.
	MergeJoinLines
	// MergeMin keeps the smallest present value.
	MergeMin
	// MergeUnion keeps every distinct member of the collections.
	MergeUnion
)

// PhraseMergePolicies maps each mergeable phrase field to its policy.
var PhraseMergePolicies = map[string]MergePolicy{
	"field_transcription": MergeJoin,
	"transcription":       MergeJoin,
	"translation":         MergeJoin,
	"stem":                MergeJoin,
	"lexical_category":    MergeJoin,
	"osid":                MergeJoin,
	"comment":             MergeJoin,
	"analysis":            MergeJoinLines,
	"display_order":       MergeMin,
	"semantic_classes":    MergeUnion,
}

// JoinDistinct trims values, drops empty ones and duplicates, and joins the
// rest in first-seen order.
func JoinDistinct(values []string, sep string) string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return strings.Join(out, sep)
}

// MinPresent returns the smallest non-nil value, or nil when all are nil.
func MinPresent(values []*int) *int {
	var best *int
	for _, v := range values {
		if v != nil && (best == nil || *v < *best) {
			n := *v
			best = &n
		}
	}
	return best
}

// Union returns the distinct members of all collections in first-seen order.
func Union(collections ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range collections {
		for _, v := range c {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func mergeStrings(policy MergePolicy, values []string) string {
	if policy == MergeJoinLines {
		return JoinDistinct(values, "\n")
	}
	return JoinDistinct(values, " | ")
}

// DeepMergePhrases reconciles dest with sources field by field according to
// PhraseMergePolicies. Values are taken from dest first, then from sources in
// ascending ID order. The result keeps dest's identity and is normalised.
func DeepMergePhrases(dest *Phrase, sources []*Phrase) Phrase {
	ordered := make([]*Phrase, 0, len(sources)+1)
	ordered = append(ordered, dest)
	rest := slices.Clone(sources)
	slices.SortFunc(rest, func(a, b *Phrase) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	ordered = append(ordered, rest...)

	field := func(get func(*Phrase) string, name string) string {
		values := make([]string, len(ordered))
		for i, p := range ordered {
			values[i] = get(p)
		}
		return mergeStrings(PhraseMergePolicies[name], values)
	}

	merged := *dest
	merged.FieldTranscription = field(func(p *Phrase) string { return p.FieldTranscription }, "field_transcription")
	merged.Transcription = field(func(p *Phrase) string { return p.Transcription }, "transcription")
	merged.Translation = field(func(p *Phrase) string { return p.Translation }, "translation")
	merged.Stem = field(func(p *Phrase) string { return p.Stem }, "stem")
	merged.LexicalCategory = field(func(p *Phrase) string { return p.LexicalCategory }, "lexical_category")
	merged.OSID = field(func(p *Phrase) string { return p.OSID }, "osid")
	merged.Comment = field(func(p *Phrase) string { return p.Comment }, "comment")
	merged.Analysis = field(func(p *Phrase) string { return p.Analysis }, "analysis")

	orders := make([]*int, len(ordered))
	classes := make([][]string, len(ordered))
	for i, p := range ordered {
		orders[i] = p.DisplayOrder
		classes[i] = p.SemanticClasses
	}
	merged.DisplayOrder = MinPresent(orders)
	merged.SemanticClasses = Union(classes...)

	merged.Normalize()
	return merged
}

// AutoMergeable reports whether a group of phrases sharing transcription and
// translation may be merged without an operator: the comment must be equal
// across the group or empty in all but one phrase. Analyses are always
// combinable since the deep merge keeps each one on its own line.
func AutoMergeable(group []*Phrase) bool {
	if len(group) < 2 {
		return false
	}
	return agreeOrSingle(group, func(p *Phrase) string { return p.Comment })
}

func agreeOrSingle(group []*Phrase, get func(*Phrase) string) bool {
	distinct := make(map[string]bool)
	nonEmpty := 0
	for _, p := range group {
		v := strings.TrimSpace(get(p))
		distinct[v] = true
		if v != "" {
			nonEmpty++
		}
	}
	return len(distinct) == 1 || nonEmpty <= 1
}
