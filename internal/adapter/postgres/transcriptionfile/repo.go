// Package transcriptionfile stores the content hash of each annotation file
// as of its last import.
package transcriptionfile

import (
	"context"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides transcription file persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new transcription file repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const getSQL = `
SELECT path, transcription_hash, updated_at
FROM transcription_files
WHERE path = $1`

const upsertSQL = `
INSERT INTO transcription_files (path, transcription_hash)
VALUES ($1, $2)
ON CONFLICT (path) DO UPDATE SET transcription_hash = EXCLUDED.transcription_hash, updated_at = now()`

// Get returns the stored record for path, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, path string) (*domain.TranscriptionFile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var f domain.TranscriptionFile
	if err := q.QueryRow(ctx, getSQL, path).Scan(&f.Path, &f.Hash, &f.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "transcription_file", path)
	}
	return &f, nil
}

// Upsert records hash as the latest content hash of path.
func (r *Repo) Upsert(ctx context.Context, path, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, upsertSQL, path, hash); err != nil {
		return postgres.MapError(err, "transcription_file", path)
	}
	return nil
}
