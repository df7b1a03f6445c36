// Package language implements read access to language variants.
package language

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides language lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new language repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const languageColumns = `id, slug, name, family, endonym`

const getBySlugSQL = `SELECT ` + languageColumns + ` FROM languages WHERE slug = $1`

const listSQL = `SELECT ` + languageColumns + ` FROM languages ORDER BY slug`

// GetBySlug returns the language variant with the given slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	l, err := scanLanguage(q.QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "language", slug)
	}
	return l, nil
}

// List returns every language variant ordered by slug.
func (r *Repo) List(ctx context.Context) ([]domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var out []domain.Language
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan language: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func scanLanguage(row pgx.Row) (*domain.Language, error) {
	var l domain.Language
	if err := row.Scan(&l.ID, &l.Slug, &l.Name, &l.Family, &l.Endonym); err != nil {
		return nil, err
	}
	return &l, nil
}
