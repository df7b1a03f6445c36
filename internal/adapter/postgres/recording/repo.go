// Package recording implements the Recording repository using PostgreSQL.
package recording

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/sessionid"
)

// Repo provides recording persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new recording repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const recordingColumns = `r.id, r.phrase_id, r.speaker_code, r.session_id, r.timestamp_ms,
	r.quality, r.wrong_word, r.wrong_speaker, r.is_user_submitted, r.was_user_submitted,
	r.is_best, r.comment, r.compressed_audio, r.recording_hash, r.created_at, r.updated_at`

const getSQL = `
SELECT ` + recordingColumns + `
FROM recordings r
WHERE r.id = $1`

const listByPhraseSQL = `
SELECT ` + recordingColumns + `
FROM recordings r
WHERE r.phrase_id = $1
ORDER BY r.is_best DESC, r.id`

const createSQL = `
INSERT INTO recordings (id, phrase_id, speaker_code, session_id, timestamp_ms, quality,
	comment, compressed_audio, recording_hash)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING created_at, updated_at`

// The importer may refresh where a recording came from and its audio, but
// never the phrase link or anything a reviewer sets.
const updateImportedSQL = `
UPDATE recordings SET
	speaker_code = $2, session_id = $3, timestamp_ms = $4,
	compressed_audio = $5, recording_hash = $6, updated_at = now()
WHERE id = $1`

const reparentSQL = `
UPDATE recordings SET phrase_id = $2, updated_at = now()
WHERE phrase_id = ANY($1)
RETURNING id`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Get returns the recording with the given fingerprint.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Recording, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rec, err := scanRecording(q.QueryRow(ctx, getSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "recording", id)
	}
	return rec, nil
}

// ListByPhrase returns the recordings of a phrase, best first.
func (r *Repo) ListByPhrase(ctx context.Context, phraseID int64) ([]domain.Recording, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listByPhraseSQL, phraseID)
	if err != nil {
		return nil, fmt.Errorf("list recordings by phrase: %w", err)
	}
	defer rows.Close()

	var out []domain.Recording
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recordings by phrase: %w", err)
	}
	return out, nil
}

// Create inserts a freshly imported recording. Reviewer flags start false.
func (r *Repo) Create(ctx context.Context, rec *domain.Recording) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	quality := rec.Quality
	if quality == "" {
		quality = domain.QualityUnknown
	}

	err := q.QueryRow(ctx, createSQL, rec.ID, rec.PhraseID, rec.SpeakerCode, rec.SessionID.String(),
		rec.TimestampMs, string(quality), rec.Comment, rec.CompressedAudio, rec.RecordingHash,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "recording", rec.ID)
	}
	rec.Quality = quality
	return nil
}

// UpdateImported refreshes the importer-owned columns of an existing
// recording: speaker, session, timestamp, compressed audio and raw audio
// hash.
func (r *Repo) UpdateImported(ctx context.Context, rec *domain.Recording) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, updateImportedSQL, rec.ID, rec.SpeakerCode, rec.SessionID.String(),
		rec.TimestampMs, rec.CompressedAudio, rec.RecordingHash)
	if err != nil {
		return postgres.MapError(err, "recording", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recording %s: %w", rec.ID, domain.ErrNotFound)
	}
	return nil
}

// ReparentPhrase moves every recording of the phrases in from onto to and
// returns the ids of the moved recordings.
func (r *Repo) ReparentPhrase(ctx context.Context, from []int64, to int64) ([]string, error) {
	if len(from) == 0 {
		return []string{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, reparentSQL, from, to)
	if err != nil {
		return nil, postgres.MapError(err, "phrase", to)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, postgres.MapError(err, "phrase", to)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanRecording(row pgx.Row) (*domain.Recording, error) {
	var (
		rec       domain.Recording
		sessionID string
		quality   string
	)
	err := row.Scan(&rec.ID, &rec.PhraseID, &rec.SpeakerCode, &sessionID, &rec.TimestampMs,
		&quality, &rec.WrongWord, &rec.WrongSpeaker, &rec.IsUserSubmitted, &rec.WasUserSubmitted,
		&rec.IsBest, &rec.Comment, &rec.CompressedAudio, &rec.RecordingHash, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Quality = domain.Quality(quality)
	if rec.SessionID, err = sessionid.ParseStrict(sessionID); err != nil {
		return nil, fmt.Errorf("recording %s: %w", rec.ID, err)
	}
	return &rec, nil
}
