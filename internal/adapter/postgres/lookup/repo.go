// Package lookup implements the read-only recording search queries behind
// the bulk lookup service. Only presentable recordings are ever returned.
package lookup

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/adapter/postgres"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Repo runs recording searches against PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lookup repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// presentable mirrors domain.Recording.IsPresentable.
var presentable = squirrel.And{
	squirrel.NotEq{"r.quality": string(domain.QualityBad)},
	squirrel.Expr("NOT r.wrong_word"),
	squirrel.Expr("NOT r.wrong_speaker"),
	squirrel.Expr("NOT r.is_user_submitted"),
	squirrel.Expr("s.gender IS NOT NULL"),
}

func baseQuery() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"r.id", "r.phrase_id", "r.speaker_code", "r.quality",
			"r.wrong_word", "r.wrong_speaker", "r.is_user_submitted", "r.is_best",
			"r.compressed_audio", "p.transcription",
		).
		From("recordings r").
		Join("phrases p ON p.id = r.phrase_id").
		Join("speakers s ON s.code = r.speaker_code").
		Where(presentable).
		OrderBy("r.is_best DESC", "r.id")
}

// FindExact returns presentable recordings of phrases in the language whose
// transcription equals transcription.
func (r *Repo) FindExact(ctx context.Context, languageID int64, transcription string) ([]domain.MatchedRecording, error) {
	return r.find(ctx, baseQuery().Where(squirrel.Eq{
		"p.language_id":   languageID,
		"p.transcription": transcription,
	}))
}

// FindPattern returns presentable recordings of phrases in the language whose
// transcription matches the POSIX regular expression pattern.
func (r *Repo) FindPattern(ctx context.Context, languageID int64, pattern string) ([]domain.MatchedRecording, error) {
	return r.find(ctx, baseQuery().
		Where(squirrel.Eq{"p.language_id": languageID}).
		Where(squirrel.Expr("p.transcription ~ ?", pattern)))
}

// FindByFuzzy returns presentable recordings, across every language, of
// phrases whose indexable form is one of forms.
func (r *Repo) FindByFuzzy(ctx context.Context, forms []string) ([]domain.MatchedRecording, error) {
	if len(forms) == 0 {
		return []domain.MatchedRecording{}, nil
	}
	return r.find(ctx, baseQuery().Where(squirrel.Eq{"p.fuzzy_transcription": forms}))
}

func (r *Repo) find(ctx context.Context, sb squirrel.SelectBuilder) ([]domain.MatchedRecording, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookup query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("lookup recordings: %w", err)
	}
	defer rows.Close()

	out := []domain.MatchedRecording{}
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lookup match: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup recordings: %w", err)
	}
	return out, nil
}

func scanMatch(row pgx.Row) (domain.MatchedRecording, error) {
	var (
		m       domain.MatchedRecording
		quality string
	)
	rec := &m.Recording
	err := row.Scan(&rec.ID, &rec.PhraseID, &rec.SpeakerCode, &quality,
		&rec.WrongWord, &rec.WrongSpeaker, &rec.IsUserSubmitted, &rec.IsBest,
		&rec.CompressedAudio, &m.RecordedWordform)
	if err != nil {
		return m, err
	}
	rec.Quality = domain.Quality(quality)
	return m, nil
}
