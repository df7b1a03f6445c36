package testhelper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Fingerprint returns a deterministic 64 hex character recording id for seed.
func Fingerprint(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// SeedLanguage returns the language with slug, creating it when the
// migrations did not.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, slug string) domain.Language {
	t.Helper()

	l := domain.Language{Slug: slug, Name: slug}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO languages (slug, name) VALUES ($1, $2)
		 ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		 RETURNING id, name`,
		slug, slug,
	).Scan(&l.ID, &l.Name)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage: %v", err)
	}
	return l
}

// SeedSpeaker creates a reviewed speaker with a random code.
func SeedSpeaker(t *testing.T, pool *pgxpool.Pool, gender *domain.Gender) domain.Speaker {
	t.Helper()

	code := randomCode()
	name := "Speaker " + code
	sp := domain.Speaker{Code: code, FullName: &name, Gender: gender, Languages: []string{}}

	var g *string
	if gender != nil {
		s := string(*gender)
		g = &s
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO speakers (code, full_name, gender) VALUES ($1, $2, $3) RETURNING created_at`,
		code, name, g,
	).Scan(&sp.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSpeaker: %v", err)
	}
	return sp
}

// SeedSession creates a recording session on a random day.
func SeedSession(t *testing.T, pool *pgxpool.Pool) domain.SessionID {
	t.Helper()

	day := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, int(uuid.New().ID()%3000))
	sub := int(uuid.New().ID() % 1000)
	id := domain.NewSessionID(day, domain.TimeOfDayMorning, domain.LocationKitchen, &sub)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recording_sessions (id, date, time_of_day, location, subsession, session_hash)
		 VALUES ($1, $2, $3, $4, $5, 'seed') ON CONFLICT (id) DO NOTHING`,
		id.String(), id.Date, string(id.TimeOfDay), string(id.Location), int32(sub),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession: %v", err)
	}
	return id
}

// SeedPhrase creates a word phrase with the given transcription and
// translation. The transcription is stored as given.
func SeedPhrase(t *testing.T, pool *pgxpool.Pool, languageID int64, transcription, translation string) domain.Phrase {
	t.Helper()

	p := domain.Phrase{
		FieldTranscription: transcription,
		Transcription:      transcription,
		Translation:        translation,
		Kind:               domain.KindWord,
		Status:             domain.PhraseStatusNew,
		LanguageID:         languageID,
		SemanticClasses:    []string{},
	}
	p.Normalize()

	err := pool.QueryRow(context.Background(),
		`INSERT INTO phrases (field_transcription, transcription, translation, kind, status, fuzzy_transcription, language_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.FieldTranscription, p.Transcription, p.Translation, string(p.Kind), string(p.Status), p.FuzzyTranscription, languageID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPhrase: %v", err)
	}
	return p
}

// SeedRecording creates a recording of phrase by speaker. mutate may adjust
// the recording before it is inserted.
func SeedRecording(t *testing.T, pool *pgxpool.Pool, phraseID int64, speaker string, session domain.SessionID, mutate func(*domain.Recording)) domain.Recording {
	t.Helper()

	rec := domain.Recording{
		ID:            Fingerprint(uniqueSuffix() + speaker),
		PhraseID:      phraseID,
		SpeakerCode:   speaker,
		SessionID:     session,
		Quality:       domain.QualityUnknown,
		RecordingHash: Fingerprint("pcm" + uniqueSuffix()),
	}
	if mutate != nil {
		mutate(&rec)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO recordings (id, phrase_id, speaker_code, session_id, timestamp_ms, quality,
			wrong_word, wrong_speaker, is_user_submitted, is_best, comment, compressed_audio, recording_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING created_at, updated_at`,
		rec.ID, rec.PhraseID, rec.SpeakerCode, rec.SessionID.String(), rec.TimestampMs, string(rec.Quality),
		rec.WrongWord, rec.WrongSpeaker, rec.IsUserSubmitted, rec.IsBest, rec.Comment, rec.CompressedAudio, rec.RecordingHash,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecording: %v", err)
	}
	return rec
}

// randomCode returns a speaker code of four upper-case letters.
func randomCode() string {
	id := uuid.New()
	code := make([]byte, 4)
	for i := range code {
		code[i] = 'A' + id[i]%26
	}
	return string(code)
}
