package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/elan"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/fingerprint"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/transcode"
)

// Run imports every segment found under root.
//
// A segment is written when its session metadata, its annotation file or its
// audio changed since the last import, or when it was never imported. Units
// the extractor skips and segments that fail to store are logged and counted;
// the run goes on. Two things end it early: cancellation of ctx, and a
// recording that still violates a constraint after one retry, which is
// reported as domain.ErrIntegrity. Either way the counts so far are returned.
//
// Run never deletes rows.
func (s *Service) Run(ctx context.Context, root string) (*Result, error) {
	lang, err := s.repos.Languages.GetBySlug(ctx, s.cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("import language %q: %w", s.cfg.Language, err)
	}

	start := time.Now()
	r := &run{Service: s, lang: lang}

	for seg, err := range s.scanner.Scan(ctx, root) {
		if err != nil {
			var skip *elan.SkipError
			if errors.As(err, &skip) {
				r.skip(ctx, skip)
				continue
			}
			return &r.result, err
		}

		if err := r.segment(ctx, seg); err != nil {
			return &r.result, err
		}
	}

	r.flushFile(ctx)
	r.flushSession(ctx)

	s.log.InfoContext(ctx, "import finished",
		slog.String("root", root),
		slog.String("language", lang.Slug),
		slog.Int("inserted", r.result.Inserted),
		slog.Int("updated", r.result.Updated),
		slog.Int("unchanged", r.result.Unchanged),
		slog.Int("skipped", r.result.Skipped),
		slog.Int("failed", r.result.Failed),
		slog.Duration("duration", time.Since(start)),
	)
	return &r.result, nil
}

// fileState is what the run knows about the annotation file it is reading.
type fileState struct {
	path    string
	hash    string
	changed bool
}

type sessionState struct {
	id      domain.SessionID
	hash    string
	changed bool
}

// run is the state of one Run call. Segments arrive grouped by session and,
// within a session, by annotation file, so only the current file and session
// are tracked. Their hashes are stored when the stream moves past them.
type run struct {
	*Service
	lang    *domain.Language
	result  Result
	file    *fileState
	session *sessionState
}

func (r *run) skip(ctx context.Context, skip *elan.SkipError) {
	r.result.Skipped++
	r.metrics.RecordSkip(ctx, string(skip.Unit))
	r.log.WarnContext(ctx, "skipped",
		slog.String("unit", string(skip.Unit)),
		slog.String("path", skip.Path),
		slog.String("error", skip.Err.Error()),
	)
}

func (r *run) segment(ctx context.Context, seg *elan.Segment) error {
	sess, err := r.enterSession(ctx, seg)
	if err != nil {
		r.fail(ctx, seg, err)
		return nil
	}
	file, err := r.enterFile(ctx, seg.Annotation)
	if err != nil {
		r.fail(ctx, seg, err)
		return nil
	}

	rec := fingerprint.NewImportRecord(seg, sess.hash, file.hash)

	stored, err := r.repos.Recordings.Get(ctx, rec.Fingerprint)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		r.fail(ctx, seg, err)
		return nil
	}
	if !sess.changed && !file.changed && stored != nil && stored.RecordingHash == rec.RecordingHash {
		r.count(ctx, OutcomeUnchanged)
		return nil
	}

	ref, err := r.compress(ctx, rec, stored)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		r.fail(ctx, seg, err)
		return nil
	}

	var outcome string
	err = retry.Do(
		func() error {
			var err error
			outcome, err = r.persist(ctx, rec, ref)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(r.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, domain.ErrAlreadyExists)
		}),
	)
	switch {
	case err == nil:
		r.count(ctx, outcome)
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, domain.ErrAlreadyExists):
		r.count(ctx, OutcomeFailed)
		return fmt.Errorf("%w: recording %s in %s: %v", domain.ErrIntegrity, rec.Fingerprint, annotationPath(seg), err)
	default:
		r.fail(ctx, seg, err)
		return nil
	}
}

func (r *run) count(ctx context.Context, outcome string) {
	switch outcome {
	case OutcomeInserted:
		r.result.Inserted++
	case OutcomeUpdated:
		r.result.Updated++
	case OutcomeUnchanged:
		r.result.Unchanged++
	case OutcomeFailed:
		r.result.Failed++
	}
	r.metrics.RecordSegment(ctx, outcome)
}

func (r *run) fail(ctx context.Context, seg *elan.Segment, err error) {
	r.count(ctx, OutcomeFailed)
	r.log.ErrorContext(ctx, "segment failed",
		slog.String("path", annotationPath(seg)),
		slog.String("transcription", seg.Transcription),
		slog.Int64("start_ms", seg.StartMs),
		slog.String("error", err.Error()),
	)
}

func annotationPath(seg *elan.Segment) string {
	if seg.Annotation == nil {
		return ""
	}
	return seg.Annotation.Path
}

// ---------------------------------------------------------------------------
// Change detection
// ---------------------------------------------------------------------------

func (r *run) enterSession(ctx context.Context, seg *elan.Segment) (*sessionState, error) {
	if r.session != nil && r.session.id == seg.Session {
		return r.session, nil
	}
	r.flushFile(ctx)
	r.flushSession(ctx)

	hash := fingerprint.SessionHash(seg.Metadata)
	stored, err := r.repos.Sessions.Get(ctx, seg.Session)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	r.session = &sessionState{
		id:      seg.Session,
		hash:    hash,
		changed: stored == nil || stored.SessionHash != hash,
	}
	return r.session, nil
}

func (r *run) enterFile(ctx context.Context, af *elan.AnnotationFile) (*fileState, error) {
	if af == nil {
		return &fileState{changed: true}, nil
	}
	if r.file != nil && r.file.path == af.Path {
		return r.file, nil
	}
	r.flushFile(ctx)

	hash := fingerprint.TranscriptionHash(af.Content)
	stored, err := r.repos.TranscriptionFiles.Get(ctx, af.Path)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	r.file = &fileState{
		path:    af.Path,
		hash:    hash,
		changed: stored == nil || stored.Hash != hash,
	}
	return r.file, nil
}

// flushFile stores the hash of the current annotation file. A failure only
// costs a redundant re-import next time, so it is logged and dropped.
func (r *run) flushFile(ctx context.Context) {
	f := r.file
	r.file = nil
	if f == nil || !f.changed || ctx.Err() != nil {
		return
	}
	if err := r.repos.TranscriptionFiles.Upsert(ctx, f.path, f.hash); err != nil {
		r.log.ErrorContext(ctx, "store transcription hash",
			slog.String("path", f.path),
			slog.String("error", err.Error()),
		)
	}
}

func (r *run) flushSession(ctx context.Context) {
	sess := r.session
	r.session = nil
	if sess == nil || !sess.changed || ctx.Err() != nil {
		return
	}
	err := func() error {
		created, err := r.repos.Sessions.Ensure(ctx, sess.id, sess.hash)
		if err != nil || created {
			return err
		}
		return r.repos.Sessions.SetHash(ctx, sess.id, sess.hash)
	}()
	if err != nil {
		r.log.ErrorContext(ctx, "store session hash",
			slog.String("session", sess.id.String()),
			slog.String("error", err.Error()),
		)
	}
}

// ---------------------------------------------------------------------------
// Writing
// ---------------------------------------------------------------------------

// compress transcodes the clip and stores it under the recording
// fingerprint, returning the blob reference. The stored blob is reused when
// the audio hash of the stored recording still matches.
func (r *run) compress(ctx context.Context, rec *fingerprint.ImportRecord, stored *domain.Recording) (string, error) {
	if stored != nil && stored.RecordingHash == rec.RecordingHash &&
		stored.CompressedAudio != "" && r.blobs.Exists(rec.Fingerprint) {
		return stored.CompressedAudio, nil
	}

	seg := rec.Segment
	tags := transcode.Tags{
		Title:        rec.Transcription,
		Artist:       seg.Speaker,
		Album:        seg.Session.String(),
		Language:     r.cfg.LanguageTag,
		CreationTime: seg.Session.Date,
	}

	start := time.Now()
	data, err := r.transcoder.Transcode(ctx, seg.Audio, tags)
	r.metrics.RecordTranscode(ctx, start)
	if err != nil {
		return "", fmt.Errorf("transcode: %w", err)
	}

	ref, err := r.blobs.Put(ctx, rec.Fingerprint, data)
	if err != nil {
		return "", fmt.Errorf("store audio: %w", err)
	}
	return ref, nil
}

// persist writes the recording and whatever it refers to in one
// transaction. The recording is looked up again inside the transaction so
// that a retry after a concurrent insert becomes an update.
//
// The session row is created with an empty hash; the real hash is stored
// once the whole session has been read.
func (r *run) persist(ctx context.Context, rec *fingerprint.ImportRecord, ref string) (string, error) {
	seg := rec.Segment
	var outcome string

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.repos.Speakers.Ensure(ctx, seg.Speaker); err != nil {
			return err
		}
		if err := r.repos.Speakers.AddLanguage(ctx, seg.Speaker, r.lang.ID); err != nil {
			return err
		}
		if _, err := r.repos.Sessions.Ensure(ctx, seg.Session, ""); err != nil {
			return err
		}

		phraseID, err := r.resolvePhrase(ctx, rec)
		if err != nil {
			return err
		}

		existing, err := r.repos.Recordings.Get(ctx, rec.Fingerprint)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if existing == nil {
			recording := &domain.Recording{
				ID:              rec.Fingerprint,
				PhraseID:        phraseID,
				SpeakerCode:     seg.Speaker,
				SessionID:       seg.Session,
				TimestampMs:     seg.StartMs,
				Quality:         seg.Quality,
				Comment:         seg.Comment,
				CompressedAudio: ref,
				RecordingHash:   rec.RecordingHash,
			}
			if err := r.repos.Recordings.Create(ctx, recording); err != nil {
				return err
			}
			outcome = OutcomeInserted
			return r.repos.History.Log(ctx, domain.HistoryRecord{
				EntityType: domain.EntityTypeRecording,
				EntityID:   recording.ID,
				Action:     domain.HistoryActionCreate,
				Changes: map[string]any{
					"phrase_id":    phraseID,
					"speaker":      seg.Speaker,
					"session":      seg.Session.String(),
					"timestamp_ms": seg.StartMs,
					"quality":      string(recording.Quality),
				},
			})
		}

		// The phrase, quality and flags of an existing recording belong to
		// the reviewers.
		existing.SpeakerCode = seg.Speaker
		existing.SessionID = seg.Session
		existing.TimestampMs = seg.StartMs
		existing.CompressedAudio = ref
		existing.RecordingHash = rec.RecordingHash
		if err := r.repos.Recordings.UpdateImported(ctx, existing); err != nil {
			return err
		}
		outcome = OutcomeUpdated
		return r.repos.History.Log(ctx, domain.HistoryRecord{
			EntityType: domain.EntityTypeRecording,
			EntityID:   existing.ID,
			Action:     domain.HistoryActionUpdate,
			Changes: map[string]any{
				"recording_hash":   rec.RecordingHash,
				"compressed_audio": ref,
			},
		})
	})
	return outcome, err
}

// resolvePhrase returns the id of the phrase the record belongs to,
// creating the phrase when none matches.
func (r *run) resolvePhrase(ctx context.Context, rec *fingerprint.ImportRecord) (int64, error) {
	key := rec.PhraseKey(r.lang.ID)

	p, err := r.repos.Phrases.FindByKey(ctx, key)
	if err == nil {
		return p.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	p = &domain.Phrase{
		FieldTranscription: rec.FieldTranscription,
		Transcription:      rec.Transcription,
		Translation:        rec.Translation,
		Kind:               key.Kind,
		Status:             domain.PhraseStatusNew,
		Origin:             r.cfg.Origin,
		LanguageID:         r.lang.ID,
	}
	if err := r.repos.Phrases.Create(ctx, p); err != nil {
		return 0, err
	}
	if err := r.repos.History.Log(ctx, domain.HistoryRecord{
		EntityType: domain.EntityTypePhrase,
		EntityID:   fmt.Sprint(p.ID),
		Action:     domain.HistoryActionCreate,
		Changes: map[string]any{
			"transcription": p.Transcription,
			"translation":   p.Translation,
			"kind":          string(p.Kind),
		},
	}); err != nil {
		return 0, err
	}
	return p.ID, nil
}
