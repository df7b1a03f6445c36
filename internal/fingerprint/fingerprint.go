// Package fingerprint computes the identity of an extracted recording and
// the content hashes that drive incremental re-import.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/audio"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/elan"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/orthography"
)

// Signature renders the fields that identify a segment. The audio bytes are
// not part of it, so the fingerprint survives re-encoding.
func Signature(seg *elan.Segment) string {
	return fmt.Sprintf("session: %s\nspeaker: %s\ntimestamp: %d\n%s: %s\n\n%s\n",
		seg.Session, seg.Speaker, seg.StartMs, seg.Kind, seg.Transcription, seg.Translation)
}

// Compute is the recording fingerprint: hex SHA-256 of the signature.
func Compute(seg *elan.Segment) string {
	return sum([]byte(Signature(seg)))
}

// RecordingHash hashes the raw samples of a cut clip.
func RecordingHash(pcm *audio.PCM) string {
	return sum(pcm.Bytes())
}

// SessionHash hashes the metadata row a session was imported with.
func SessionHash(meta domain.SessionMetadata) string {
	return sum([]byte(meta.Signature()))
}

// TranscriptionHash hashes the content of an annotation file.
func TranscriptionHash(content []byte) string {
	return sum(content)
}

func sum(b []byte) string {
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}

// ImportRecord is a segment together with everything computed from it before
// the importer consults the database.
type ImportRecord struct {
	Segment *elan.Segment

	Fingerprint       string
	RecordingHash     string
	SessionHash       string
	TranscriptionHash string

	// FieldTranscription is the transcription as typed in the annotation.
	FieldTranscription string
	// Transcription is FieldTranscription in standard orthography.
	Transcription string
	Fuzzy         string
	Translation   string
}

// NewImportRecord fills in the fingerprint and the normalised forms of a
// segment. The session and transcription hashes are computed by the caller,
// once per session and annotation file.
func NewImportRecord(seg *elan.Segment, sessionHash, transcriptionHash string) *ImportRecord {
	transcription := orthography.NormalizeSRO(seg.Transcription)
	return &ImportRecord{
		Segment:            seg,
		Fingerprint:        Compute(seg),
		RecordingHash:      RecordingHash(seg.Audio),
		SessionHash:        sessionHash,
		TranscriptionHash:  transcriptionHash,
		FieldTranscription: strings.TrimSpace(seg.Transcription),
		Transcription:      transcription,
		Fuzzy:              orthography.ToIndexableForm(transcription),
		Translation:        domain.NormalizeText(seg.Translation),
	}
}

// PhraseKey is the lookup key of the phrase the record belongs to.
func (r *ImportRecord) PhraseKey(languageID int64) domain.PhraseKey {
	return domain.PhraseKey{
		Transcription: r.Transcription,
		Translation:   r.Translation,
		Kind:          r.Segment.Kind,
		LanguageID:    languageID,
	}
}
