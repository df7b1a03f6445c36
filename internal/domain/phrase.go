package domain

import (
	"strings"
	"time"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/orthography"
)

// Phrase is a word or sentence in one language variant. Recordings of the
// phrase reference it by ID.
type Phrase struct {
	ID int64
	// FieldTranscription is the transcription as originally annotated. It is
	// never edited after import.
	FieldTranscription string
	Transcription      string
	Translation        string
	Kind               Kind
	Status             PhraseStatus
	Origin             string
	Validated          bool
	// FuzzyTranscription is derived from Transcription on every save.
	FuzzyTranscription string
	Analysis           string
	Stem               string
	LexicalCategory    string
	OSID               string
	Comment            string
	DisplayOrder       *int
	LanguageID         int64
	SemanticClasses    []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Normalize brings the stored fields into canonical form before a save:
// the transcription is SRO-normalised and the fuzzy key re-derived.
func (p *Phrase) Normalize() {
	p.Transcription = orthography.NormalizeSRO(p.Transcription)
	p.FuzzyTranscription = orthography.ToIndexableForm(p.Transcription)
	p.Translation = strings.TrimSpace(orthography.Normalize(p.Translation))
	p.Analysis = strings.TrimSpace(p.Analysis)
	p.Comment = strings.TrimSpace(p.Comment)
}

// Validate checks the fields that the database does not constrain.
func (p *Phrase) Validate() error {
	var errs []FieldError
	if p.Transcription == "" {
		errs = append(errs, FieldError{Field: "transcription", Message: "required"})
	}
	if !p.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "kind", Message: "must be word or sentence"})
	}
	if !p.Status.IsValid() {
		errs = append(errs, FieldError{Field: "status", Message: "unknown status"})
	}
	if p.LanguageID == 0 {
		errs = append(errs, FieldError{Field: "language_id", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// WordCount is the number of space-separated words in the transcription.
func (p *Phrase) WordCount() int {
	return len(strings.Fields(p.Transcription))
}

// PhraseKey is the identity the importer uses to find an existing phrase for
// a segment.
type PhraseKey struct {
	Transcription string
	Translation   string
	Kind          Kind
	LanguageID    int64
}
