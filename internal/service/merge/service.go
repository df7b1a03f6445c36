// Package merge folds duplicate phrases into one, moving their recordings
// and issues along.
package merge

import (
	"context"
	"log/slog"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

type phraseRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Phrase, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Phrase, error)
	Update(ctx context.Context, p *domain.Phrase) error
	SetSemanticClasses(ctx context.Context, phraseID int64, classes []string) error
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	DuplicateGroups(ctx context.Context, languageID int64) ([][]int64, error)
}

type recordingRepo interface {
	ReparentPhrase(ctx context.Context, from []int64, to int64) ([]string, error)
}

type issueRepo interface {
	ReparentPhrase(ctx context.Context, from []int64, to int64) (int64, error)
}

type languageRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Language, error)
}

type historyLogger interface {
	LogBatch(ctx context.Context, recs []domain.HistoryRecord) error
}

type txManager interface {
	RunInTxSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service merges phrases.
type Service struct {
	phrases    phraseRepo
	recordings recordingRepo
	issues     issueRepo
	languages  languageRepo
	history    historyLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new merge service.
func NewService(
	log *slog.Logger,
	phrases phraseRepo,
	recordings recordingRepo,
	issues issueRepo,
	languages languageRepo,
	history historyLogger,
	tx txManager,
) *Service {
	return &Service{
		phrases:    phrases,
		recordings: recordings,
		issues:     issues,
		languages:  languages,
		history:    history,
		tx:         tx,
		log:        log.With("service", "merge"),
	}
}
