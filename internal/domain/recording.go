package domain

import "time"

// Recording is one audio clip of a phrase spoken by a speaker. Its ID is the
// 64 hex character fingerprint of the segment it was cut from.
type Recording struct {
	ID          string
	PhraseID    int64
	SpeakerCode string
	SessionID   SessionID
	// TimestampMs is the offset of the clip into the session's master audio.
	TimestampMs int64

	Quality          Quality
	WrongWord        bool
	WrongSpeaker     bool
	IsUserSubmitted  bool
	WasUserSubmitted bool
	IsBest           bool
	Comment          string

	// CompressedAudio is the blob store key of the transcoded clip.
	CompressedAudio string
	// RecordingHash is the SHA-256 of the raw PCM the clip was cut from.
	RecordingHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPresentable reports whether the recording may be served to dictionary
// applications when spoken by sp.
func (r *Recording) IsPresentable(sp *Speaker) bool {
	if r.Quality == QualityBad || r.WrongWord || r.WrongSpeaker || r.IsUserSubmitted {
		return false
	}
	return sp != nil && sp.IsReviewed()
}

// TranscriptionFile records the hash of an annotation file as of its last
// import.
type TranscriptionFile struct {
	Path      string
	Hash      string
	UpdatedAt time.Time
}

// MatchedRecording is a presentable recording found for a lookup term.
type MatchedRecording struct {
	Recording Recording
	// Wordform is the term as requested.
	Wordform string
	// RecordedWordform is the transcription of the phrase the recording is
	// of.
	RecordedWordform string
}
