package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecording_IsPresentable(t *testing.T) {
	t.Parallel()

	reviewed := &Speaker{Code: "ROS", Gender: ptr(GenderFemale)}
	unreviewed := &Speaker{Code: "JER"}

	tests := []struct {
		name    string
		rec     Recording
		speaker *Speaker
		want    bool
	}{
		{name: "good", rec: Recording{Quality: QualityGood}, speaker: reviewed, want: true},
		{name: "unknown", rec: Recording{Quality: QualityUnknown}, speaker: reviewed, want: true},
		{name: "bad", rec: Recording{Quality: QualityBad}, speaker: reviewed, want: false},
		{name: "wrong word", rec: Recording{Quality: QualityGood, WrongWord: true}, speaker: reviewed, want: false},
		{name: "wrong speaker", rec: Recording{Quality: QualityGood, WrongSpeaker: true}, speaker: reviewed, want: false},
		{name: "user submitted", rec: Recording{Quality: QualityGood, IsUserSubmitted: true}, speaker: reviewed, want: false},
		{name: "was user submitted", rec: Recording{Quality: QualityGood, WasUserSubmitted: true}, speaker: reviewed, want: true},
		{name: "speaker without gender", rec: Recording{Quality: QualityGood}, speaker: unreviewed, want: false},
		{name: "no speaker", rec: Recording{Quality: QualityGood}, speaker: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rec.IsPresentable(tt.speaker))
		})
	}
}

func TestPhrase_NormalizeDerivesFuzzy(t *testing.T) {
	t.Parallel()

	p := Phrase{Transcription: "  Ê - NIPĀT ", Translation: " when s/he sleeps "}
	p.Normalize()

	assert.Equal(t, "ê-nipât", p.Transcription)
	assert.Equal(t, "e-nipat", p.FuzzyTranscription)
	assert.Equal(t, "when s/he sleeps", p.Translation)
	assert.Equal(t, 1, p.WordCount())
}

func TestPhrase_Validate(t *testing.T) {
	t.Parallel()

	ok := Phrase{Transcription: "nipâw", Kind: KindWord, Status: PhraseStatusNew, LanguageID: 1}
	assert.NoError(t, ok.Validate())

	bad := Phrase{Kind: "clause", Status: "gone"}
	err := bad.Validate()
	assert.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	if assert.ErrorAs(t, err, &ve) {
		assert.Len(t, ve.Errors, 4)
	}
}

func TestLengthBucket(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LengthOneWord, LengthBucket(0))
	assert.Equal(t, LengthOneWord, LengthBucket(1))
	assert.Equal(t, LengthTwoWords, LengthBucket(2))
	assert.Equal(t, LengthThreeWords, LengthBucket(3))
	assert.Equal(t, LengthFourPlus, LengthBucket(12))
}

func TestSpeaker_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ROS", (&Speaker{Code: "ROS"}).DisplayName())
	assert.Equal(t, "Rose Makinaw", (&Speaker{Code: "ROS", FullName: ptr("Rose Makinaw")}).DisplayName())
}
