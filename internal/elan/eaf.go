// Package elan reads ELAN annotation files and extracts the word and
// sentence segments of each recording session.
package elan

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Tier names recognised in annotation files. Matching is case-sensitive.
const (
	TierCreeWord        = "Cree (word)"
	TierEnglishWord     = "English (word)"
	TierCreeSentence    = "Cree (sentence)"
	TierEnglishSentence = "English (sentence)"
	TierComments        = "Comments"
)

// Interval is one time-aligned annotation.
type Interval struct {
	StartMs int64
	StopMs  int64
	Text    string
}

// Midpoint is halfway between start and stop.
func (iv Interval) Midpoint() int64 {
	return iv.StartMs + (iv.StopMs-iv.StartMs)/2
}

// Covers reports whether ms lies within the interval, bounds included.
func (iv Interval) Covers(ms int64) bool {
	return iv.StartMs <= ms && ms <= iv.StopMs
}

// Document is a parsed annotation file.
type Document struct {
	tiers map[string][]Interval
}

// HasTier reports whether the document declares the tier.
func (d *Document) HasTier(name string) bool {
	_, ok := d.tiers[name]
	return ok
}

// Tier returns the intervals of the named tier sorted by start time. A
// missing tier is empty.
func (d *Document) Tier(name string) []Interval {
	return d.tiers[name]
}

// TierNames lists the tiers of the document.
func (d *Document) TierNames() []string {
	names := make([]string, 0, len(d.tiers))
	for n := range d.tiers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ---------------------------------------------------------------------------
// XML shape
// ---------------------------------------------------------------------------

type eafDocument struct {
	XMLName   xml.Name      `xml:"ANNOTATION_DOCUMENT"`
	TimeSlots []eafTimeSlot `xml:"TIME_ORDER>TIME_SLOT"`
	Tiers     []eafTier     `xml:"TIER"`
}

type eafTimeSlot struct {
	ID    string `xml:"TIME_SLOT_ID,attr"`
	Value *int64 `xml:"TIME_VALUE,attr"`
}

type eafTier struct {
	ID          string          `xml:"TIER_ID,attr"`
	Annotations []eafAnnotation `xml:"ANNOTATION"`
}

type eafAnnotation struct {
	Alignable *eafAlignable `xml:"ALIGNABLE_ANNOTATION"`
	Ref       *eafRef       `xml:"REF_ANNOTATION"`
}

type eafAlignable struct {
	ID    string `xml:"ANNOTATION_ID,attr"`
	Slot1 string `xml:"TIME_SLOT_REF1,attr"`
	Slot2 string `xml:"TIME_SLOT_REF2,attr"`
	Value string `xml:"ANNOTATION_VALUE"`
}

type eafRef struct {
	ID    string `xml:"ANNOTATION_ID,attr"`
	Ref   string `xml:"ANNOTATION_REF,attr"`
	Value string `xml:"ANNOTATION_VALUE"`
}

// ReadFile parses the annotation file at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annotation: %w", err)
	}
	return Parse(data)
}

// Parse parses annotation file content. Reference annotations take the time
// span of the annotation they refer to. Annotations whose time slots are
// unaligned are dropped.
func Parse(data []byte) (*Document, error) {
	var raw eafDocument
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse annotation xml: %w", err)
	}

	slots := make(map[string]int64, len(raw.TimeSlots))
	for _, ts := range raw.TimeSlots {
		if ts.Value != nil {
			slots[ts.ID] = *ts.Value
		}
	}

	type span struct{ start, stop int64 }
	spans := make(map[string]span)
	refs := make(map[string]string)

	for _, tier := range raw.Tiers {
		for _, a := range tier.Annotations {
			switch {
			case a.Alignable != nil:
				start, ok1 := slots[a.Alignable.Slot1]
				stop, ok2 := slots[a.Alignable.Slot2]
				if ok1 && ok2 {
					spans[a.Alignable.ID] = span{start, stop}
				}
			case a.Ref != nil:
				refs[a.Ref.ID] = a.Ref.Ref
			}
		}
	}

	resolve := func(id string) (span, bool) {
		for range len(refs) + 1 {
			if s, ok := spans[id]; ok {
				return s, true
			}
			next, ok := refs[id]
			if !ok {
				return span{}, false
			}
			id = next
		}
		return span{}, false
	}

	doc := &Document{tiers: make(map[string][]Interval, len(raw.Tiers))}
	for _, tier := range raw.Tiers {
		intervals := doc.tiers[tier.ID]
		for _, a := range tier.Annotations {
			var id, value string
			switch {
			case a.Alignable != nil:
				id, value = a.Alignable.ID, a.Alignable.Value
			case a.Ref != nil:
				id, value = a.Ref.ID, a.Ref.Value
			default:
				continue
			}
			s, ok := resolve(id)
			if !ok {
				continue
			}
			intervals = append(intervals, Interval{StartMs: s.start, StopMs: s.stop, Text: strings.TrimSpace(value)})
		}
		sort.SliceStable(intervals, func(i, j int) bool { return intervals[i].StartMs < intervals[j].StartMs })
		if intervals == nil {
			intervals = []Interval{}
		}
		doc.tiers[tier.ID] = intervals
	}

	return doc, nil
}
