// Package stats implements the aggregate queries behind per-language corpus
// statistics.
package stats

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo runs statistics queries against PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stats repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// PhraseTotals are the phrase counts of a language.
type PhraseTotals struct {
	Total                  int64
	DistinctTranscriptions int64
}

// ---------------------------------------------------------------------------
// Scalar counts
// ---------------------------------------------------------------------------

// PhraseTotals counts phrases and distinct transcriptions.
func (r *Repo) PhraseTotals(ctx context.Context, languageID int64) (PhraseTotals, error) {
	sb := postgres.Builder().
		Select("count(*)", "count(DISTINCT p.transcription)").
		From("phrases p").
		Where(squirrel.Eq{"p.language_id": languageID})

	var t PhraseTotals
	if err := r.scalar(ctx, sb, &t.Total, &t.DistinctTranscriptions); err != nil {
		return PhraseTotals{}, fmt.Errorf("phrase totals: %w", err)
	}
	return t, nil
}

// DistinctWords counts distinct space-separated tokens across every
// transcription of the language.
func (r *Repo) DistinctWords(ctx context.Context, languageID int64) (int64, error) {
	sb := postgres.Builder().
		Select("count(DISTINCT w.word)").
		From("phrases p").
		CrossJoin("LATERAL regexp_split_to_table(p.transcription, '\\s+') AS w(word)").
		Where(squirrel.Eq{"p.language_id": languageID}).
		Where("w.word <> ''")

	var n int64
	if err := r.scalar(ctx, sb, &n); err != nil {
		return 0, fmt.Errorf("distinct words: %w", err)
	}
	return n, nil
}

// TotalRecordings counts recordings of phrases in the language.
func (r *Repo) TotalRecordings(ctx context.Context, languageID int64) (int64, error) {
	sb := postgres.Builder().
		Select("count(*)").
		From("recordings r").
		Join("phrases p ON p.id = r.phrase_id").
		Where(squirrel.Eq{"p.language_id": languageID})

	var n int64
	if err := r.scalar(ctx, sb, &n); err != nil {
		return 0, fmt.Errorf("total recordings: %w", err)
	}
	return n, nil
}

// HumanTouchedPhrases counts phrases with at least one history record
// authored by a user.
func (r *Repo) HumanTouchedPhrases(ctx context.Context, languageID int64) (int64, error) {
	sb := postgres.Builder().
		Select("count(*)").
		From("phrases p").
		Where(squirrel.Eq{"p.language_id": languageID}).
		Where(humanTouched(domain.EntityTypePhrase, "p.id::text"))

	var n int64
	if err := r.scalar(ctx, sb, &n); err != nil {
		return 0, fmt.Errorf("human touched phrases: %w", err)
	}
	return n, nil
}

// HumanTouchedRecordings counts recordings with at least one history record
// authored by a user.
func (r *Repo) HumanTouchedRecordings(ctx context.Context, languageID int64) (int64, error) {
	sb := postgres.Builder().
		Select("count(*)").
		From("recordings r").
		Join("phrases p ON p.id = r.phrase_id").
		Where(squirrel.Eq{"p.language_id": languageID}).
		Where(humanTouched(domain.EntityTypeRecording, "r.id"))

	var n int64
	if err := r.scalar(ctx, sb, &n); err != nil {
		return 0, fmt.Errorf("human touched recordings: %w", err)
	}
	return n, nil
}

// OpenIssues counts open issues raised against the language's phrases or
// their recordings.
func (r *Repo) OpenIssues(ctx context.Context, languageID int64) (int64, error) {
	sb := postgres.Builder().
		Select("count(*)").
		From("issues i").
		LeftJoin("recordings r ON r.id = i.recording_id").
		Join("phrases p ON p.id = COALESCE(i.phrase_id, r.phrase_id)").
		Where(squirrel.Eq{"i.status": string(domain.IssueStatusOpen), "p.language_id": languageID})

	var n int64
	if err := r.scalar(ctx, sb, &n); err != nil {
		return 0, fmt.Errorf("open issues: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Breakdowns
// ---------------------------------------------------------------------------

// RecordingsByQuality counts recordings per quality value.
func (r *Repo) RecordingsByQuality(ctx context.Context, languageID int64) (map[domain.Quality]int64, error) {
	sb := postgres.Builder().
		Select("r.quality", "count(*)").
		From("recordings r").
		Join("phrases p ON p.id = r.phrase_id").
		Where(squirrel.Eq{"p.language_id": languageID}).
		GroupBy("r.quality")

	groups, err := r.groups(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("recordings by quality: %w", err)
	}
	out := make(map[domain.Quality]int64, len(groups))
	for k, v := range groups {
		out[domain.Quality(k)] = v
	}
	return out, nil
}

// PhrasesByStatus counts phrases per status.
func (r *Repo) PhrasesByStatus(ctx context.Context, languageID int64) (map[domain.PhraseStatus]int64, error) {
	sb := postgres.Builder().
		Select("p.status", "count(*)").
		From("phrases p").
		Where(squirrel.Eq{"p.language_id": languageID}).
		GroupBy("p.status")

	groups, err := r.groups(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("phrases by status: %w", err)
	}
	out := make(map[domain.PhraseStatus]int64, len(groups))
	for k, v := range groups {
		out[domain.PhraseStatus(k)] = v
	}
	return out, nil
}

// PhrasesByLength counts phrases per word-count bucket.
func (r *Repo) PhrasesByLength(ctx context.Context, languageID int64) (map[string]int64, error) {
	sb := postgres.Builder().
		Select(
			"LEAST(COALESCE(array_length(regexp_split_to_array(btrim(p.transcription), '\\s+'), 1), 1), 4)::text AS words",
			"count(*)",
		).
		From("phrases p").
		Where(squirrel.Eq{"p.language_id": languageID}).
		GroupBy("words")

	groups, err := r.groups(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("phrases by length: %w", err)
	}
	out := make(map[string]int64, len(groups))
	for k, v := range groups {
		var n int
		if _, err := fmt.Sscan(k, &n); err != nil {
			return nil, fmt.Errorf("phrases by length: bucket %q: %w", k, err)
		}
		out[domain.LengthBucket(n)] += v
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func humanTouched(entity domain.EntityType, idExpr string) squirrel.Sqlizer {
	return squirrel.Expr(
		"EXISTS (SELECT 1 FROM history h WHERE h.entity_type = ? AND h.entity_id = "+idExpr+" AND h.user_id IS NOT NULL)",
		string(entity),
	)
}

func (r *Repo) scalar(ctx context.Context, sb squirrel.SelectBuilder, dest ...any) error {
	query, args, err := sb.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)
	return q.QueryRow(ctx, query, args...).Scan(dest...)
}

func (r *Repo) groups(ctx context.Context, sb squirrel.SelectBuilder) (map[string]int64, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}
	return out, rows.Err()
}
