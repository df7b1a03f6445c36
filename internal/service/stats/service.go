// Package stats summarises the state of a language variant of the corpus.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"golang.org/x/sync/errgroup"

	statsrepo "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres/stats"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

type languageRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Language, error)
}

type statsRepo interface {
	PhraseTotals(ctx context.Context, languageID int64) (statsrepo.PhraseTotals, error)
	DistinctWords(ctx context.Context, languageID int64) (int64, error)
	TotalRecordings(ctx context.Context, languageID int64) (int64, error)
	HumanTouchedPhrases(ctx context.Context, languageID int64) (int64, error)
	HumanTouchedRecordings(ctx context.Context, languageID int64) (int64, error)
	OpenIssues(ctx context.Context, languageID int64) (int64, error)
	RecordingsByQuality(ctx context.Context, languageID int64) (map[domain.Quality]int64, error)
	PhrasesByStatus(ctx context.Context, languageID int64) (map[domain.PhraseStatus]int64, error)
	PhrasesByLength(ctx context.Context, languageID int64) (map[string]int64, error)
}

// maxConcurrentQueries bounds the statistics queries run at once.
const maxConcurrentQueries = 4

// Service computes statistics.
type Service struct {
	languages languageRepo
	stats     statsRepo
	log       *slog.Logger
}

// NewService creates a new statistics service.
func NewService(log *slog.Logger, languages languageRepo, stats statsRepo) *Service {
	return &Service{
		languages: languages,
		stats:     stats,
		log:       log.With("service", "stats"),
	}
}

// ForLanguage computes the statistics of the language with the given slug.
// Buckets with no members are reported as zero.
func (s *Service) ForLanguage(ctx context.Context, slug string) (*domain.LanguageStats, error) {
	lang, err := s.languages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("stats language %q: %w", slug, err)
	}

	out := domain.NewLanguageStats(lang.Slug)
	var (
		totals    statsrepo.PhraseTotals
		byQuality map[domain.Quality]int64
		byStatus  map[domain.PhraseStatus]int64
		byLength  map[string]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)

	g.Go(func() (err error) {
		totals, err = s.stats.PhraseTotals(gctx, lang.ID)
		return wrap("phrase totals", err)
	})
	scalar := func(name string, dest *int64, fn func(context.Context, int64) (int64, error)) {
		g.Go(func() (err error) {
			*dest, err = fn(gctx, lang.ID)
			return wrap(name, err)
		})
	}
	scalar("distinct words", &out.DistinctWords, s.stats.DistinctWords)
	scalar("total recordings", &out.TotalRecordings, s.stats.TotalRecordings)
	scalar("human-touched phrases", &out.HumanTouchedPhrases, s.stats.HumanTouchedPhrases)
	scalar("human-touched recordings", &out.HumanTouchedRecordings, s.stats.HumanTouchedRecordings)
	scalar("open issues", &out.OpenIssues, s.stats.OpenIssues)
	g.Go(func() (err error) {
		byQuality, err = s.stats.RecordingsByQuality(gctx, lang.ID)
		return wrap("recordings by quality", err)
	})
	g.Go(func() (err error) {
		byStatus, err = s.stats.PhrasesByStatus(gctx, lang.ID)
		return wrap("phrases by status", err)
	})
	g.Go(func() (err error) {
		byLength, err = s.stats.PhrasesByLength(gctx, lang.ID)
		return wrap("phrases by length", err)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.TotalPhrases = totals.Total
	out.DistinctTranscriptions = totals.DistinctTranscriptions
	maps.Copy(out.RecordingsByQuality, byQuality)
	maps.Copy(out.PhrasesByStatus, byStatus)
	maps.Copy(out.PhrasesByLength, byLength)

	s.log.DebugContext(ctx, "stats computed",
		slog.String("language", lang.Slug),
		slog.Int64("phrases", out.TotalPhrases),
		slog.Int64("recordings", out.TotalRecordings),
	)
	return out, nil
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
