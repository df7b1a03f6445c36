// Package session implements the RecordingSession repository using
// PostgreSQL. A session row is keyed by the canonical session id string.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides recording session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `date, time_of_day, location, subsession, session_hash, created_at, updated_at`

const getSQL = `
SELECT ` + sessionColumns + `
FROM recording_sessions
WHERE id = $1`

const ensureSQL = `
INSERT INTO recording_sessions (id, date, time_of_day, location, subsession, session_hash)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`

const setHashSQL = `
UPDATE recording_sessions
SET session_hash = $2, updated_at = now()
WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Get returns the persisted session. A session never imported yields
// domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, id domain.SessionID) (*domain.RecordingSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSession(q.QueryRow(ctx, getSQL, id.String()))
	if err != nil {
		return nil, postgres.MapError(err, "recording_session", id)
	}
	return s, nil
}

// Ensure inserts the session with the given hash unless it already exists.
// It reports whether a row was created.
func (r *Repo) Ensure(ctx context.Context, id domain.SessionID, hash string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, ensureSQL,
		id.String(), id.Date, string(id.TimeOfDay), string(id.Location), toInt32Ptr(id.SubsessionPtr()), hash)
	if err != nil {
		return false, postgres.MapError(err, "recording_session", id)
	}
	return tag.RowsAffected() == 1, nil
}

// SetHash records the metadata hash the session was last imported from.
func (r *Repo) SetHash(ctx context.Context, id domain.SessionID, hash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, setHashSQL, id.String(), hash)
	if err != nil {
		return postgres.MapError(err, "recording_session", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recording_session %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.RecordingSession, error) {
	var (
		date       time.Time
		tod, loc   string
		subsession *int32
		s          domain.RecordingSession
	)
	if err := row.Scan(&date, &tod, &loc, &subsession, &s.SessionHash, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}

	var sub *int
	if subsession != nil {
		n := int(*subsession)
		sub = &n
	}
	s.ID = domain.NewSessionID(date, domain.TimeOfDay(tod), domain.Location(loc), sub)
	return &s, nil
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
