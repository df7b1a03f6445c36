package lookup

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

const (
	speakerBatch = 100
	speakerWait  = 2 * time.Millisecond
)

type speakerLoader = dataloader.Loader[string, *domain.Speaker]

// newSpeakerLoader creates a loader that resolves speaker codes in batches.
// Must be created per request: the loader caches what it has loaded.
func newSpeakerLoader(repo speakerRepo) *speakerLoader {
	return dataloader.NewBatchedLoader(
		newSpeakersBatchFn(repo),
		dataloader.WithWait[string, *domain.Speaker](speakerWait),
		dataloader.WithBatchCapacity[string, *domain.Speaker](speakerBatch),
	)
}

// newSpeakersBatchFn loads speakers by code. An unknown code resolves to a
// nil speaker, which is never presentable.
func newSpeakersBatchFn(repo speakerRepo) dataloader.BatchFunc[string, *domain.Speaker] {
	return func(ctx context.Context, codes []string) []*dataloader.Result[*domain.Speaker] {
		speakers, err := repo.GetByCodes(ctx, codes)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Speaker], len(codes))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Speaker]{Error: err}
			}
			return results
		}

		byCode := make(map[string]*domain.Speaker, len(speakers))
		for i := range speakers {
			byCode[speakers[i].Code] = &speakers[i]
		}

		results := make([]*dataloader.Result[*domain.Speaker], len(codes))
		for i, code := range codes {
			results[i] = &dataloader.Result[*domain.Speaker]{Data: byCode[code]}
		}
		return results
	}
}

// loadSpeakers resolves the speakers of matches.
func loadSpeakers(ctx context.Context, loader *speakerLoader, matches []domain.MatchedRecording) (map[string]*domain.Speaker, error) {
	seen := make(map[string]bool, len(matches))
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m.Recording.SpeakerCode] {
			seen[m.Recording.SpeakerCode] = true
			codes = append(codes, m.Recording.SpeakerCode)
		}
	}
	if len(codes) == 0 {
		return map[string]*domain.Speaker{}, nil
	}

	speakers, errs := loader.LoadMany(ctx, codes)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[string]*domain.Speaker, len(codes))
	for i, code := range codes {
		out[code] = speakers[i]
	}
	return out, nil
}
