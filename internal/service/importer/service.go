// Package importer turns the segments extracted from a corpus into persisted
// speakers, sessions, phrases and recordings. Re-running an import only
// touches what changed since the previous run.
package importer

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/audio"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/config"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/elan"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/observe"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transcode"
)

type scanner interface {
	Scan(ctx context.Context, root string) iter.Seq2[*elan.Segment, error]
}

type languageRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Language, error)
}

type speakerRepo interface {
	Ensure(ctx context.Context, code string) error
	AddLanguage(ctx context.Context, code string, languageID int64) error
}

type sessionRepo interface {
	Get(ctx context.Context, id domain.SessionID) (*domain.RecordingSession, error)
	Ensure(ctx context.Context, id domain.SessionID, hash string) (bool, error)
	SetHash(ctx context.Context, id domain.SessionID, hash string) error
}

type phraseRepo interface {
	FindByKey(ctx context.Context, key domain.PhraseKey) (*domain.Phrase, error)
	Create(ctx context.Context, p *domain.Phrase) error
}

type recordingRepo interface {
	Get(ctx context.Context, id string) (*domain.Recording, error)
	Create(ctx context.Context, rec *domain.Recording) error
	UpdateImported(ctx context.Context, rec *domain.Recording) error
}

type transcriptionFileRepo interface {
	Get(ctx context.Context, path string) (*domain.TranscriptionFile, error)
	Upsert(ctx context.Context, path, hash string) error
}

type historyLogger interface {
	Log(ctx context.Context, rec domain.HistoryRecord) error
}

type transcoder interface {
	Transcode(ctx context.Context, pcm *audio.PCM, tags transcode.Tags) ([]byte, error)
}

type blobStore interface {
	Exists(key string) bool
	Put(ctx context.Context, key string, data []byte) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repos groups the stores an import writes to.
type Repos struct {
	Languages          languageRepo
	Speakers           speakerRepo
	Sessions           sessionRepo
	Phrases            phraseRepo
	Recordings         recordingRepo
	TranscriptionFiles transcriptionFileRepo
	History            historyLogger
}

// Outcomes of one segment, as counted by Result and the import metrics.
const (
	OutcomeInserted  = "inserted"
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"
)

const defaultRetryDelay = 50 * time.Millisecond

// Result counts what an import run did.
type Result struct {
	Inserted  int
	Updated   int
	Unchanged int
	// Skipped counts units the extractor could not read: directories,
	// annotation files and segments alike.
	Skipped int
	// Failed counts segments that were read but could not be stored.
	Failed int
}

// Service runs imports.
type Service struct {
	scanner    scanner
	repos      Repos
	transcoder transcoder
	blobs      blobStore
	tx         txManager
	metrics    *observe.Metrics
	cfg        config.ImportConfig
	log        *slog.Logger
	retryDelay time.Duration
}

// NewService creates a new import service.
func NewService(
	log *slog.Logger,
	scanner scanner,
	repos Repos,
	transcoder transcoder,
	blobs blobStore,
	tx txManager,
	metrics *observe.Metrics,
	cfg config.ImportConfig,
) *Service {
	return &Service{
		scanner:    scanner,
		repos:      repos,
		transcoder: transcoder,
		blobs:      blobs,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		log:        log.With("service", "importer"),
		retryDelay: defaultRetryDelay,
	}
}
