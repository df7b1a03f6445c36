// Package issue implements the Issue repository using PostgreSQL.
package issue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new issue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const issueColumns = `id, recording_id, phrase_id, suggested_transcription, suggested_translation,
	comment, status, created_at`

const createSQL = `
INSERT INTO issues (recording_id, phrase_id, suggested_transcription, suggested_translation, comment, status)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at`

const listByPhraseSQL = `
SELECT ` + issueColumns + `
FROM issues
WHERE phrase_id = $1
ORDER BY id`

const reparentSQL = `
UPDATE issues SET phrase_id = $2
WHERE phrase_id = ANY($1)`

// Create inserts an issue and fills in its ID and creation time.
func (r *Repo) Create(ctx context.Context, is *domain.Issue) error {
	if is.Status == "" {
		is.Status = domain.IssueStatusOpen
	}
	if !is.Status.IsValid() {
		return domain.NewValidationError("status", "unknown issue status")
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, createSQL, is.RecordingID, is.PhraseID, is.SuggestedTranscription,
		is.SuggestedTranslation, is.Comment, string(is.Status),
	).Scan(&is.ID, &is.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "issue", is.Comment)
	}
	return nil
}

// ListByPhrase returns the issues raised against a phrase.
func (r *Repo) ListByPhrase(ctx context.Context, phraseID int64) ([]domain.Issue, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByPhraseSQL, phraseID)
	if err != nil {
		return nil, fmt.Errorf("list issues by phrase: %w", err)
	}
	defer rows.Close()

	var out []domain.Issue
	for rows.Next() {
		is, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		out = append(out, *is)
	}
	return out, rows.Err()
}

// ReparentPhrase points the issues of the phrases in from at to and returns
// how many moved.
func (r *Repo) ReparentPhrase(ctx context.Context, from []int64, to int64) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, reparentSQL, from, to)
	if err != nil {
		return 0, postgres.MapError(err, "phrase", to)
	}
	return tag.RowsAffected(), nil
}

func scanIssue(row pgx.Row) (*domain.Issue, error) {
	var (
		is     domain.Issue
		status string
	)
	err := row.Scan(&is.ID, &is.RecordingID, &is.PhraseID, &is.SuggestedTranscription,
		&is.SuggestedTranslation, &is.Comment, &status, &is.CreatedAt)
	if err != nil {
		return nil, err
	}
	is.Status = domain.IssueStatus(status)
	return &is, nil
}
