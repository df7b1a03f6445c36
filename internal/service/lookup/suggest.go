package lookup

import (
	"context"
	"fmt"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/orthography"
)

const defaultSuggestLimit = 10

// Suggest ranks the transcriptions of the language by their fuzzy match
// weight against query, closest first. A limit <= 0 uses the default.
func (s *Service) Suggest(ctx context.Context, language, query string, limit int) ([]orthography.Suggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	if orthography.Normalize(query) == "" {
		return []orthography.Suggestion{}, nil
	}

	lang, err := s.languages.GetBySlug(ctx, language)
	if err != nil {
		return nil, fmt.Errorf("suggest language %q: %w", language, err)
	}

	candidates, err := s.phrases.ListTranscriptions(ctx, lang.ID)
	if err != nil {
		return nil, fmt.Errorf("suggest candidates: %w", err)
	}

	return orthography.Rank(query, candidates, limit), nil
}
