package merge

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Merge folds the source phrases into the destination inside one
// serialisable transaction: recordings and issues of the sources are moved
// to the destination, the destination's fields are reconciled when Deep is
// set, every change is written to the change log, and the sources are
// deleted. Either all of it commits or none of it does.
func (s *Service) Merge(ctx context.Context, input MergeInput) (*MergeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *MergeResult
	err := s.tx.RunInTxSerializable(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.merge(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "phrases merged",
		slog.Int64("destination", result.Destination),
		slog.Any("sources", input.Sources),
		slog.Bool("deep", input.Deep),
		slog.Int("recordings", len(result.Recordings)),
		slog.Int64("issues", result.IssuesMoved),
	)
	return result, nil
}

// merge runs inside the caller's transaction.
func (s *Service) merge(ctx context.Context, input MergeInput) (*MergeResult, error) {
	dest, err := s.phrases.GetByID(ctx, input.Destination)
	if err != nil {
		return nil, fmt.Errorf("merge destination: %w", err)
	}

	sources, err := s.phrases.GetByIDs(ctx, input.Sources)
	if err != nil {
		return nil, fmt.Errorf("merge sources: %w", err)
	}
	if len(sources) != len(input.Sources) {
		return nil, fmt.Errorf("merge sources %v: %w", missing(input.Sources, sources), domain.ErrNotFound)
	}
	for _, src := range sources {
		if src.LanguageID != dest.LanguageID {
			return nil, domain.NewValidationError("sources",
				fmt.Sprintf("phrase %d is in another language than phrase %d", src.ID, dest.ID))
		}
	}

	moved, err := s.recordings.ReparentPhrase(ctx, input.Sources, dest.ID)
	if err != nil {
		return nil, fmt.Errorf("reparent recordings: %w", err)
	}
	issues, err := s.issues.ReparentPhrase(ctx, input.Sources, dest.ID)
	if err != nil {
		return nil, fmt.Errorf("reparent issues: %w", err)
	}

	history := make([]domain.HistoryRecord, 0, len(moved)+len(sources)+2)
	for _, id := range moved {
		history = append(history, domain.HistoryRecord{
			EntityType: domain.EntityTypeRecording,
			EntityID:   id,
			UserID:     input.UserID,
			Action:     domain.HistoryActionUpdate,
			Changes:    map[string]any{"phrase_id": dest.ID},
		})
	}

	changes := map[string]any{
		"merged": input.Sources,
		"deep":   input.Deep,
	}
	if input.Deep {
		merged := domain.DeepMergePhrases(dest, sources)
		for field, value := range diff(dest, &merged) {
			changes[field] = value
		}
		if err := s.phrases.Update(ctx, &merged); err != nil {
			return nil, fmt.Errorf("update destination: %w", err)
		}
		if !slices.Equal(dest.SemanticClasses, merged.SemanticClasses) {
			if err := s.phrases.SetSemanticClasses(ctx, dest.ID, merged.SemanticClasses); err != nil {
				return nil, fmt.Errorf("update semantic classes: %w", err)
			}
			history = append(history, domain.HistoryRecord{
				EntityType: domain.EntityTypeSemanticClassAnnotation,
				EntityID:   strconv.FormatInt(dest.ID, 10),
				UserID:     input.UserID,
				Action:     domain.HistoryActionUpdate,
				Changes:    map[string]any{"classes": merged.SemanticClasses},
			})
		}
	}
	history = append(history, domain.HistoryRecord{
		EntityType: domain.EntityTypePhrase,
		EntityID:   strconv.FormatInt(dest.ID, 10),
		UserID:     input.UserID,
		Action:     domain.HistoryActionMerge,
		Changes:    changes,
	})
	for _, src := range sources {
		history = append(history, domain.HistoryRecord{
			EntityType: domain.EntityTypePhrase,
			EntityID:   strconv.FormatInt(src.ID, 10),
			UserID:     input.UserID,
			Action:     domain.HistoryActionDelete,
			Changes:    map[string]any{"merged_into": dest.ID},
		})
	}
	if err := s.history.LogBatch(ctx, history); err != nil {
		return nil, fmt.Errorf("log merge: %w", err)
	}

	deleted, err := s.phrases.DeleteByIDs(ctx, input.Sources)
	if err != nil {
		return nil, fmt.Errorf("delete sources: %w", err)
	}

	return &MergeResult{
		Destination:   dest.ID,
		Recordings:    moved,
		IssuesMoved:   issues,
		PhrasesMerged: deleted,
	}, nil
}

func missing(want []int64, got []*domain.Phrase) []int64 {
	found := make(map[int64]bool, len(got))
	for _, p := range got {
		found[p.ID] = true
	}
	var out []int64
	for _, id := range want {
		if !found[id] {
			out = append(out, id)
		}
	}
	return out
}

// diff returns the merged fields whose value changed, keyed by column name.
func diff(before, after *domain.Phrase) map[string]any {
	out := make(map[string]any)
	str := func(name, a, b string) {
		if a != b {
			out[name] = b
		}
	}
	str("field_transcription", before.FieldTranscription, after.FieldTranscription)
	str("transcription", before.Transcription, after.Transcription)
	str("translation", before.Translation, after.Translation)
	str("stem", before.Stem, after.Stem)
	str("lexical_category", before.LexicalCategory, after.LexicalCategory)
	str("osid", before.OSID, after.OSID)
	str("comment", before.Comment, after.Comment)
	str("analysis", before.Analysis, after.Analysis)

	switch {
	case before.DisplayOrder == nil && after.DisplayOrder == nil:
	case before.DisplayOrder == nil || after.DisplayOrder == nil || *before.DisplayOrder != *after.DisplayOrder:
		out["display_order"] = after.DisplayOrder
	}
	return out
}
