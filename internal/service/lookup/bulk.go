package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/orthography"
)

// BulkSearch finds the presentable recordings of every term in the query.
// Exact queries return every match; other queries widen vowels to their
// diacritic variants and return at most cfg.SampleSize recordings per term.
// An unknown language is not an error: every term is reported not found.
func (s *Service) BulkSearch(ctx context.Context, q BulkQuery) (*BulkResult, error) {
	start := time.Now()
	mode := ModeFuzzy
	if q.Exact {
		mode = ModeExact
	}

	terms := distinctTerms(q.Terms)
	result := &BulkResult{MatchedRecordings: []Descriptor{}, NotFound: []string{}}

	lang, err := s.languages.GetBySlug(ctx, q.Language)
	if errors.Is(err, domain.ErrNotFound) {
		result.NotFound = append(result.NotFound, terms...)
		s.metrics.RecordLookup(ctx, mode, 0, len(terms), start)
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup language %q: %w", q.Language, err)
	}

	loader := newSpeakerLoader(s.speakers)
	perTerm := make([][]Descriptor, len(terms))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentTerms)
	for i, term := range terms {
		g.Go(func() error {
			var matches []domain.MatchedRecording
			var err error
			if q.Exact {
				matches, err = s.recordings.FindExact(gctx, lang.ID, orthography.Normalize(term))
			} else {
				matches, err = s.recordings.FindPattern(gctx, lang.ID, orthography.MatchPattern(term))
			}
			if err != nil {
				return fmt.Errorf("match %q: %w", term, err)
			}

			descriptors, err := s.describe(gctx, loader, term, matches, !q.Exact)
			if err != nil {
				return err
			}
			perTerm[i] = descriptors
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matched := 0
	for i, term := range terms {
		if len(perTerm[i]) == 0 {
			result.NotFound = append(result.NotFound, term)
			continue
		}
		matched++
		result.MatchedRecordings = append(result.MatchedRecordings, perTerm[i]...)
	}
	bestFirst(result.MatchedRecordings)

	s.metrics.RecordLookup(ctx, mode, matched, len(result.NotFound), start)
	s.log.DebugContext(ctx, "bulk search",
		slog.String("language", lang.Slug),
		slog.String("mode", mode),
		slog.Int("terms", len(terms)),
		slog.Int("recordings", len(result.MatchedRecordings)),
	)
	return result, nil
}

// SearchIndexable finds the presentable recordings, in any language, whose
// phrase has the same indexable form as one of terms. At most
// cfg.MaxSearchTerms terms are accepted.
func (s *Service) SearchIndexable(ctx context.Context, terms []string) ([]Descriptor, error) {
	start := time.Now()

	if n := countTerms(terms); n > s.cfg.MaxSearchTerms {
		return nil, fmt.Errorf("%d terms, at most %d allowed: %w", n, s.cfg.MaxSearchTerms, domain.ErrTooManyTerms)
	}
	terms = distinctTerms(terms)
	if len(terms) == 0 {
		return []Descriptor{}, nil
	}

	byForm := make(map[string]string, len(terms))
	forms := make([]string, 0, len(terms))
	for _, term := range terms {
		form := orthography.ToIndexableForm(term)
		if _, ok := byForm[form]; ok {
			continue
		}
		byForm[form] = term
		forms = append(forms, form)
	}

	matches, err := s.recordings.FindByFuzzy(ctx, forms)
	if err != nil {
		return nil, fmt.Errorf("match %v: %w", terms, err)
	}

	loader := newSpeakerLoader(s.speakers)
	speakers, err := loadSpeakers(ctx, loader, matches)
	if err != nil {
		return nil, fmt.Errorf("load speakers: %w", err)
	}

	out := []Descriptor{}
	found := make(map[string]bool, len(forms))
	for _, m := range matches {
		sp := speakers[m.Recording.SpeakerCode]
		if !m.Recording.IsPresentable(sp) {
			continue
		}
		term := byForm[orthography.ToIndexableForm(m.RecordedWordform)]
		if term == "" {
			term = m.RecordedWordform
		}
		found[term] = true
		out = append(out, s.descriptor(term, m, sp))
	}
	bestFirst(out)

	s.metrics.RecordLookup(ctx, ModeIndexable, len(found), len(terms)-len(found), start)
	return out, nil
}

// describe turns the matches of one term into descriptors, dropping those
// that are not presentable and sampling when asked to.
func (s *Service) describe(ctx context.Context, loader *speakerLoader, term string, matches []domain.MatchedRecording, sampled bool) ([]Descriptor, error) {
	speakers, err := loadSpeakers(ctx, loader, matches)
	if err != nil {
		return nil, fmt.Errorf("load speakers: %w", err)
	}

	kept := make([]domain.MatchedRecording, 0, len(matches))
	for _, m := range matches {
		if m.Recording.IsPresentable(speakers[m.Recording.SpeakerCode]) {
			kept = append(kept, m)
		}
	}
	if sampled {
		kept = sample(kept, s.cfg.SampleSize)
	}

	out := make([]Descriptor, 0, len(kept))
	for _, m := range kept {
		out = append(out, s.descriptor(term, m, speakers[m.Recording.SpeakerCode]))
	}
	return out, nil
}

func (s *Service) descriptor(term string, m domain.MatchedRecording, sp *domain.Speaker) Descriptor {
	d := Descriptor{
		Wordform:         term,
		RecordedWordform: m.RecordedWordform,
		Speaker:          m.Recording.SpeakerCode,
		RecordingURL:     s.cfg.AudioBaseURL + m.Recording.CompressedAudio,
		IsBest:           m.Recording.IsBest,
	}
	if sp != nil {
		d.SpeakerName = sp.DisplayName()
		d.Anonymous = sp.Anonymous
		if sp.Gender != nil {
			d.Gender = sp.Gender.String()
		}
	}
	return d
}

// distinctTerms trims terms and drops blanks and repeats, keeping order.
// countTerms counts the non-blank terms, repeats included.
func countTerms(terms []string) int {
	n := 0
	for _, t := range terms {
		if strings.TrimSpace(t) != "" {
			n++
		}
	}
	return n
}

func distinctTerms(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func bestFirst(ds []Descriptor) {
	sort.SliceStable(ds, func(i, j int) bool {
		return ds[i].IsBest && !ds[j].IsBest
	})
}
