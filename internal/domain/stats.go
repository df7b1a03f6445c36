package domain

// Phrase length buckets used by LanguageStats.PhrasesByLength.
const (
	LengthOneWord    = "1"
	LengthTwoWords   = "2"
	LengthThreeWords = "3"
	LengthFourPlus   = "4+"
)

// LengthBucket returns the length bucket of a phrase with n words.
func LengthBucket(n int) string {
	switch {
	case n <= 1:
		return LengthOneWord
	case n == 2:
		return LengthTwoWords
	case n == 3:
		return LengthThreeWords
	default:
		return LengthFourPlus
	}
}

// LanguageStats aggregates the persisted state of one language variant.
// Every count is non-negative.
type LanguageStats struct {
	Language               string                 `json:"language"`
	TotalPhrases           int64                  `json:"total_phrases"`
	DistinctTranscriptions int64                  `json:"distinct_transcriptions"`
	DistinctWords          int64                  `json:"distinct_words"`
	HumanTouchedPhrases    int64                  `json:"human_touched_phrases"`
	HumanTouchedRecordings int64                  `json:"human_touched_recordings"`
	TotalRecordings        int64                  `json:"total_recordings"`
	RecordingsByQuality    map[Quality]int64      `json:"recordings_by_quality"`
	PhrasesByLength        map[string]int64       `json:"phrases_by_length"`
	PhrasesByStatus        map[PhraseStatus]int64 `json:"phrases_by_status"`
	OpenIssues             int64                  `json:"open_issues"`
}

// NewLanguageStats returns stats with every bucket present and zero.
func NewLanguageStats(language string) *LanguageStats {
	s := &LanguageStats{
		Language:            language,
		RecordingsByQuality: make(map[Quality]int64),
		PhrasesByLength: map[string]int64{
			LengthOneWord: 0, LengthTwoWords: 0, LengthThreeWords: 0, LengthFourPlus: 0,
		},
		PhrasesByStatus: make(map[PhraseStatus]int64),
	}
	for _, q := range AllQualities() {
		s.RecordingsByQuality[q] = 0
	}
	for _, st := range AllPhraseStatuses() {
		s.PhrasesByStatus[st] = 0
	}
	return s
}
