package merge

import (
	"slices"

	"github.com/google/uuid"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// MergeInput names the phrase to keep and the phrases folded into it.
type MergeInput struct {
	Destination int64
	Sources     []int64
	// Deep reconciles the phrase fields as well; otherwise only recordings
	// and issues move and the destination keeps its own values.
	Deep bool
	// UserID is the operator the change log attributes the merge to. Nil for
	// automatic merges.
	UserID *uuid.UUID
}

// Validate checks the input and removes repeated sources.
func (i *MergeInput) Validate() error {
	var errs []domain.FieldError

	if i.Destination <= 0 {
		errs = append(errs, domain.FieldError{Field: "destination", Message: "required"})
	}

	seen := make(map[int64]bool, len(i.Sources))
	sources := make([]int64, 0, len(i.Sources))
	for _, id := range i.Sources {
		switch {
		case id <= 0:
			errs = append(errs, domain.FieldError{Field: "sources", Message: "ids must be positive"})
		case id == i.Destination:
			errs = append(errs, domain.FieldError{Field: "sources", Message: "must not contain the destination"})
		case !seen[id]:
			seen[id] = true
			sources = append(sources, id)
		}
	}
	if len(i.Sources) == 0 {
		errs = append(errs, domain.FieldError{Field: "sources", Message: "at least one required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	slices.Sort(sources)
	i.Sources = sources
	return nil
}

// MergeResult reports what a merge changed.
type MergeResult struct {
	Destination int64 `json:"destination"`
	// Recordings lists the recordings moved to the destination.
	Recordings    []string `json:"recordings"`
	IssuesMoved   int64    `json:"issues_moved"`
	PhrasesMerged int64    `json:"phrases_merged"`
}

// AutoMergeResult summarises an automatic merge pass over a language.
type AutoMergeResult struct {
	Language string `json:"language"`
	// Groups is the number of sets of phrases sharing transcription and
	// translation.
	Groups               int   `json:"groups"`
	Merged               int   `json:"merged"`
	Skipped              int   `json:"skipped"`
	Failed               int   `json:"failed"`
	PhrasesMerged        int64 `json:"phrases_merged"`
	RecordingsReparented int   `json:"recordings_reparented"`
}
