// Package phrase implements the Phrase repository using PostgreSQL.
package phrase

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo provides phrase persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new phrase repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const phraseColumns = `p.id, p.field_transcription, p.transcription, p.translation, p.kind, p.status,
	p.origin, p.validated, p.fuzzy_transcription, p.analysis, p.stem, p.lexical_category,
	p.osid, p.comment, p.display_order, p.language_id, p.created_at, p.updated_at,
	ARRAY(SELECT c.class FROM phrase_semantic_classes c WHERE c.phrase_id = p.id ORDER BY c.class)`

const findByKeySQL = `
SELECT ` + phraseColumns + `
FROM phrases p
WHERE p.transcription = $1 AND p.translation = $2 AND p.kind = $3 AND p.language_id = $4
ORDER BY p.id
LIMIT 1`

const getByIDSQL = `
SELECT ` + phraseColumns + `
FROM phrases p
WHERE p.id = $1`

const getByIDsSQL = `
SELECT ` + phraseColumns + `
FROM phrases p
WHERE p.id = ANY($1)
ORDER BY p.id`

const createSQL = `
INSERT INTO phrases (field_transcription, transcription, translation, kind, status, origin,
	validated, fuzzy_transcription, analysis, stem, lexical_category, osid, comment,
	display_order, language_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id, created_at, updated_at`

const updateSQL = `
UPDATE phrases SET
	field_transcription = $2, transcription = $3, translation = $4, kind = $5, status = $6,
	origin = $7, validated = $8, fuzzy_transcription = $9, analysis = $10, stem = $11,
	lexical_category = $12, osid = $13, comment = $14, display_order = $15, updated_at = now()
WHERE id = $1
RETURNING updated_at`

const deleteByIDsSQL = `DELETE FROM phrases WHERE id = ANY($1)`

const clearClassesSQL = `DELETE FROM phrase_semantic_classes WHERE phrase_id = $1`

const insertClassSQL = `
INSERT INTO phrase_semantic_classes (phrase_id, class) VALUES ($1, $2)
ON CONFLICT (phrase_id, class) DO NOTHING`

const duplicateGroupsSQL = `
SELECT array_agg(id ORDER BY id)
FROM phrases
WHERE language_id = $1
GROUP BY transcription, translation
HAVING count(*) > 1
ORDER BY min(id)`

const listTranscriptionsSQL = `
SELECT DISTINCT transcription
FROM phrases
WHERE language_id = $1
ORDER BY transcription`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create normalises, validates and inserts p, filling in its ID and
// timestamps.
func (r *Repo) Create(ctx context.Context, p *domain.Phrase) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, createSQL, p.FieldTranscription, p.Transcription, p.Translation,
		string(p.Kind), string(p.Status), p.Origin, p.Validated, p.FuzzyTranscription, p.Analysis,
		p.Stem, p.LexicalCategory, p.OSID, p.Comment, toInt32Ptr(p.DisplayOrder), p.LanguageID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "phrase", p.Transcription)
	}

	if len(p.SemanticClasses) > 0 {
		return r.SetSemanticClasses(ctx, p.ID, p.SemanticClasses)
	}
	return nil
}

// Update normalises, validates and stores every mutable field of p. Semantic
// classes are stored separately through SetSemanticClasses.
func (r *Repo) Update(ctx context.Context, p *domain.Phrase) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	err := q.QueryRow(ctx, updateSQL, p.ID, p.FieldTranscription, p.Transcription, p.Translation,
		string(p.Kind), string(p.Status), p.Origin, p.Validated, p.FuzzyTranscription, p.Analysis,
		p.Stem, p.LexicalCategory, p.OSID, p.Comment, toInt32Ptr(p.DisplayOrder),
	).Scan(&p.UpdatedAt)
	if err != nil {
		return postgres.MapError(err, "phrase", p.ID)
	}
	return nil
}

// DeleteByIDs removes the phrases and returns how many were deleted.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteByIDsSQL, ids)
	if err != nil {
		return 0, postgres.MapError(err, "phrase", ids)
	}
	return tag.RowsAffected(), nil
}

// SetSemanticClasses replaces the semantic classes of a phrase.
func (r *Repo) SetSemanticClasses(ctx context.Context, phraseID int64, classes []string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	batch.Queue(clearClassesSQL, phraseID)
	for _, c := range classes {
		batch.Queue(insertClassSQL, phraseID, c)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range batch.Len() {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "phrase_semantic_class", phraseID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByKey returns the lowest-id phrase matching key, or domain.ErrNotFound.
func (r *Repo) FindByKey(ctx context.Context, key domain.PhraseKey) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPhrase(q.QueryRow(ctx, findByKeySQL, key.Transcription, key.Translation, string(key.Kind), key.LanguageID))
	if err != nil {
		return nil, postgres.MapError(err, "phrase", key.Transcription)
	}
	return p, nil
}

// GetByID returns the phrase with its semantic classes.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Phrase, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	p, err := scanPhrase(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "phrase", id)
	}
	return p, nil
}

// GetByIDs returns the phrases among ids that exist, ordered by id.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Phrase, error) {
	if len(ids) == 0 {
		return []*domain.Phrase{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, getByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get phrases by ids: %w", err)
	}
	defer rows.Close()

	phrases := make([]*domain.Phrase, 0, len(ids))
	for rows.Next() {
		p, err := scanPhrase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phrase: %w", err)
		}
		phrases = append(phrases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get phrases by ids: %w", err)
	}
	return phrases, nil
}

// DuplicateGroups returns the ids of phrases in a language that share the
// exact transcription and translation, one ascending slice per group.
func (r *Repo) DuplicateGroups(ctx context.Context, languageID int64) ([][]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, duplicateGroupsSQL, languageID)
	if err != nil {
		return nil, fmt.Errorf("duplicate phrase groups: %w", err)
	}
	defer rows.Close()

	var groups [][]int64
	for rows.Next() {
		var ids []int64
		if err := rows.Scan(&ids); err != nil {
			return nil, fmt.Errorf("scan duplicate group: %w", err)
		}
		groups = append(groups, ids)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("duplicate phrase groups: %w", err)
	}
	return groups, nil
}

// ListTranscriptions returns the distinct transcriptions of a language.
func (r *Repo) ListTranscriptions(ctx context.Context, languageID int64) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listTranscriptionsSQL, languageID)
	if err != nil {
		return nil, fmt.Errorf("list transcriptions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan transcription: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transcriptions: %w", err)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanPhrase(row pgx.Row) (*domain.Phrase, error) {
	var (
		p            domain.Phrase
		kind, status string
		displayOrder *int32
		classes      []string
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := row.Scan(&p.ID, &p.FieldTranscription, &p.Transcription, &p.Translation, &kind, &status,
		&p.Origin, &p.Validated, &p.FuzzyTranscription, &p.Analysis, &p.Stem, &p.LexicalCategory,
		&p.OSID, &p.Comment, &displayOrder, &p.LanguageID, &createdAt, &updatedAt, &classes)
	if err != nil {
		return nil, err
	}

	p.Kind = domain.Kind(kind)
	p.Status = domain.PhraseStatus(status)
	if displayOrder != nil {
		n := int(*displayOrder)
		p.DisplayOrder = &n
	}
	p.SemanticClasses = classes
	if p.SemanticClasses == nil {
		p.SemanticClasses = []string{}
	}
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	return &p, nil
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
