package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// AutoMerge deep-merges every set of phrases in the language that share
// transcription and translation and are safe to merge without an operator
// (see domain.AutoMergeable). The phrase with the lowest id is kept. Each
// set is merged in its own transaction; a set that fails is logged and the
// pass moves on.
func (s *Service) AutoMerge(ctx context.Context, languageSlug string, userID *uuid.UUID) (*AutoMergeResult, error) {
	lang, err := s.languages.GetBySlug(ctx, languageSlug)
	if err != nil {
		return nil, fmt.Errorf("automerge language %q: %w", languageSlug, err)
	}

	groups, err := s.phrases.DuplicateGroups(ctx, lang.ID)
	if err != nil {
		return nil, fmt.Errorf("automerge candidates: %w", err)
	}

	result := &AutoMergeResult{Language: lang.Slug, Groups: len(groups)}
	for _, ids := range groups {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		group, err := s.phrases.GetByIDs(ctx, ids)
		if err != nil {
			return result, fmt.Errorf("automerge group %v: %w", ids, err)
		}
		if len(group) < 2 {
			// Merged or deleted since the candidates were listed.
			result.Skipped++
			continue
		}
		if !domain.AutoMergeable(group) {
			result.Skipped++
			s.log.DebugContext(ctx, "automerge: conflicting group", slog.Any("phrases", ids))
			continue
		}

		sources := make([]int64, 0, len(group)-1)
		for _, p := range group[1:] {
			sources = append(sources, p.ID)
		}
		merged, err := s.Merge(ctx, MergeInput{
			Destination: group[0].ID,
			Sources:     sources,
			Deep:        true,
			UserID:      userID,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, err
			}
			result.Failed++
			s.log.ErrorContext(ctx, "automerge group failed",
				slog.Any("phrases", ids),
				slog.String("error", err.Error()),
			)
			continue
		}

		result.Merged++
		result.PhrasesMerged += merged.PhrasesMerged
		result.RecordingsReparented += len(merged.Recordings)
	}

	s.log.InfoContext(ctx, "automerge finished",
		slog.String("language", lang.Slug),
		slog.Int("groups", result.Groups),
		slog.Int("merged", result.Merged),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}
