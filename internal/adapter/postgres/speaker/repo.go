// Package speaker implements the Speaker repository using PostgreSQL.
package speaker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides speaker persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new speaker repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const speakerColumns = `s.code, s.full_name, s.gender, s.anonymous, s.created_at,
	ARRAY(SELECT l.slug FROM speaker_languages sl JOIN languages l ON l.id = sl.language_id
	      WHERE sl.speaker_code = s.code ORDER BY l.slug)`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const ensureSQL = `
INSERT INTO speakers (code) VALUES ($1)
ON CONFLICT (code) DO NOTHING`

// Ensure creates a bare speaker row for code unless one exists. Existing
// names, genders and flags are never touched.
func (r *Repo) Ensure(ctx context.Context, code string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, ensureSQL, code); err != nil {
		return postgres.MapError(err, "speaker", code)
	}
	return nil
}

const addLanguageSQL = `
INSERT INTO speaker_languages (speaker_code, language_id) VALUES ($1, $2)
ON CONFLICT (speaker_code, language_id) DO NOTHING`

// AddLanguage links the speaker to a language variant.
func (r *Repo) AddLanguage(ctx context.Context, code string, languageID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)
	if _, err := q.Exec(ctx, addLanguageSQL, code, languageID); err != nil {
		return postgres.MapError(err, "speaker", code)
	}
	return nil
}

const updateSQL = `
UPDATE speakers SET full_name = $2, gender = $3, anonymous = $4
WHERE code = $1`

// Update stores the reviewed metadata of a speaker.
func (r *Repo) Update(ctx context.Context, sp domain.Speaker) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var gender *string
	if sp.Gender != nil {
		g := string(*sp.Gender)
		gender = &g
	}

	tag, err := q.Exec(ctx, updateSQL, sp.Code, sp.FullName, gender, sp.Anonymous)
	if err != nil {
		return postgres.MapError(err, "speaker", sp.Code)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("speaker %s: %w", sp.Code, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

var getSQL = `SELECT ` + speakerColumns + ` FROM speakers s WHERE s.code = $1`

// Get returns the speaker with the given code.
func (r *Repo) Get(ctx context.Context, code string) (*domain.Speaker, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	sp, err := scanSpeaker(q.QueryRow(ctx, getSQL, code))
	if err != nil {
		return nil, postgres.MapError(err, "speaker", code)
	}
	return sp, nil
}

var getByCodesSQL = `SELECT ` + speakerColumns + ` FROM speakers s WHERE s.code = ANY($1) ORDER BY s.code`

// GetByCodes returns the speakers among codes that exist, ordered by code.
func (r *Repo) GetByCodes(ctx context.Context, codes []string) ([]domain.Speaker, error) {
	if len(codes) == 0 {
		return []domain.Speaker{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, getByCodesSQL, codes)
	if err != nil {
		return nil, fmt.Errorf("get speakers by codes: %w", err)
	}
	defer rows.Close()

	speakers := make([]domain.Speaker, 0, len(codes))
	for rows.Next() {
		sp, err := scanSpeaker(rows)
		if err != nil {
			return nil, fmt.Errorf("scan speaker: %w", err)
		}
		speakers = append(speakers, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get speakers by codes: %w", err)
	}
	return speakers, nil
}

func scanSpeaker(row pgx.Row) (*domain.Speaker, error) {
	var (
		sp        domain.Speaker
		gender    *string
		createdAt time.Time
		languages []string
	)
	if err := row.Scan(&sp.Code, &sp.FullName, &gender, &sp.Anonymous, &createdAt, &languages); err != nil {
		return nil, err
	}
	if gender != nil {
		g := domain.Gender(*gender)
		sp.Gender = &g
	}
	sp.CreatedAt = createdAt
	sp.Languages = languages
	if sp.Languages == nil {
		sp.Languages = []string{}
	}
	return &sp, nil
}
