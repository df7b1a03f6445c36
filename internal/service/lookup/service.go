// Package lookup answers dictionary applications asking which recordings
// exist for a set of wordforms.
package lookup

import (
	"context"
	"log/slog"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/observe"
)

type languageRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Language, error)
}

type recordingFinder interface {
	FindExact(ctx context.Context, languageID int64, transcription string) ([]domain.MatchedRecording, error)
	FindPattern(ctx context.Context, languageID int64, pattern string) ([]domain.MatchedRecording, error)
	FindByFuzzy(ctx context.Context, forms []string) ([]domain.MatchedRecording, error)
}

type speakerRepo interface {
	GetByCodes(ctx context.Context, codes []string) ([]domain.Speaker, error)
}

type phraseRepo interface {
	ListTranscriptions(ctx context.Context, languageID int64) ([]string, error)
}

// Lookup modes, as reported to metrics.
const (
	ModeExact     = "exact"
	ModeFuzzy     = "fuzzy"
	ModeIndexable = "indexable"
)

// maxConcurrentTerms bounds the matching queries one request runs at once.
const maxConcurrentTerms = 4

// BulkQuery asks for the recordings of Terms in the language with slug
// Language.
type BulkQuery struct {
	Language string
	Terms    []string
	Exact    bool
}

// BulkResult is the answer to a BulkQuery. Every term appears either as the
// Wordform of at least one descriptor or in NotFound.
type BulkResult struct {
	MatchedRecordings []Descriptor `json:"matched_recordings"`
	NotFound          []string     `json:"not_found"`
}

// Descriptor describes one presentable recording.
type Descriptor struct {
	// Wordform is the term as requested.
	Wordform         string `json:"wordform"`
	RecordedWordform string `json:"recorded_wordform"`
	Speaker          string `json:"speaker"`
	SpeakerName      string `json:"speaker_name"`
	Gender           string `json:"gender"`
	Anonymous        bool   `json:"anonymous"`
	RecordingURL     string `json:"recording_url"`
	IsBest           bool   `json:"is_best"`
}

// Service runs lookups.
type Service struct {
	languages  languageRepo
	recordings recordingFinder
	speakers   speakerRepo
	phrases    phraseRepo
	metrics    *observe.Metrics
	cfg        config.LookupConfig
	log        *slog.Logger
}

// NewService creates a new lookup service.
func NewService(
	log *slog.Logger,
	languages languageRepo,
	recordings recordingFinder,
	speakers speakerRepo,
	phrases phraseRepo,
	metrics *observe.Metrics,
	cfg config.LookupConfig,
) *Service {
	return &Service{
		languages:  languages,
		recordings: recordings,
		speakers:   speakers,
		phrases:    phrases,
		metrics:    metrics,
		cfg:        cfg,
		log:        log.With("service", "lookup"),
	}
}
