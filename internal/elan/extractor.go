package elan

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/audio"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/sessionid"
)

// Unit names the scope a SkipError discards.
type Unit string

const (
	UnitDirectory  Unit = "directory"
	UnitAnnotation Unit = "annotation"
	UnitSegment    Unit = "segment"
)

// SkipError is yielded by Scan in place of the segments of a unit that could
// not be extracted. Scanning continues with the next unit.
type SkipError struct {
	Path string
	Unit Unit
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skip %s %s: %v", e.Unit, e.Path, e.Err)
}

func (e *SkipError) Unwrap() error { return e.Err }

// AnnotationFile is the raw content of an annotation file. Segments cut
// from the same file share one AnnotationFile.
type AnnotationFile struct {
	Path    string
	Content []byte
}

// Segment is one extracted clip with everything needed to identify and
// persist it. Segments are independent of each other.
type Segment struct {
	Kind          domain.Kind
	Transcription string
	Translation   string
	StartMs       int64
	StopMs        int64
	Speaker       string
	Mic           int
	Session       domain.SessionID
	Metadata      domain.SessionMetadata
	// Audio is mono, cut and peak-normalised.
	Audio      *audio.PCM
	Quality    domain.Quality
	Comment    string
	Annotation *AnnotationFile
}

// Extractor walks a corpus root and yields segments.
type Extractor struct {
	metadata map[domain.SessionID]domain.SessionMetadata
	ident    *sessionid.Identifier
	logger   *slog.Logger
	headroom float64
}

// NewExtractor creates an Extractor for sessions listed in metadata.
func NewExtractor(logger *slog.Logger, ident *sessionid.Identifier, metadata map[domain.SessionID]domain.SessionMetadata) *Extractor {
	return &Extractor{
		metadata: metadata,
		ident:    ident,
		logger:   logger.With("component", "extractor"),
		headroom: audio.DefaultHeadroomDB,
	}
}

// Scan yields the segments of every session directory directly under root,
// directory by directory in name order, annotation file by annotation file,
// words before sentences, each in start-time order.
//
// A unit that cannot be extracted is reported as a *SkipError and scanning
// moves on. Any other error ends the sequence. Scan stops between segments
// when ctx is cancelled, yielding ctx.Err().
func (x *Extractor) Scan(ctx context.Context, root string) iter.Seq2[*Segment, error] {
	return func(yield func(*Segment, error) bool) {
		entries, err := os.ReadDir(root)
		if err != nil {
			yield(nil, fmt.Errorf("read corpus root: %w", err))
			return
		}

		seen := make(map[domain.SessionID]string)

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			name := entry.Name()
			dir := filepath.Join(root, name)

			if x.ident.IsIgnored(name) {
				x.logger.Debug("ignored directory", slog.String("path", dir))
				continue
			}

			sid, err := x.ident.ParseDirectory(name)
			if err != nil {
				if !yield(nil, &SkipError{Path: dir, Unit: UnitDirectory, Err: err}) {
					return
				}
				continue
			}

			if prev, dup := seen[sid]; dup {
				err := fmt.Errorf("%w: %s already read from %s", domain.ErrDuplicateSession, sid, prev)
				if !yield(nil, &SkipError{Path: dir, Unit: UnitDirectory, Err: err}) {
					return
				}
				continue
			}
			seen[sid] = dir

			meta, ok := x.metadata[sid]
			if !ok {
				err := fmt.Errorf("%w: %s", domain.ErrMissingMetadata, sid)
				if !yield(nil, &SkipError{Path: dir, Unit: UnitDirectory, Err: err}) {
					return
				}
				continue
			}

			if !x.scanSession(ctx, dir, meta, yield) {
				return
			}
		}
	}
}

func (x *Extractor) scanSession(ctx context.Context, dir string, meta domain.SessionMetadata, yield func(*Segment, error) bool) bool {
	annotations, err := filepath.Glob(filepath.Join(dir, "*.eaf"))
	if err != nil {
		return yield(nil, &SkipError{Path: dir, Unit: UnitDirectory, Err: err})
	}
	sort.Strings(annotations)

	for _, path := range annotations {
		if err := ctx.Err(); err != nil {
			yield(nil, err)
			return false
		}
		segments, err := x.readAnnotation(path, len(annotations), meta)
		if err != nil {
			if !yield(nil, &SkipError{Path: path, Unit: UnitAnnotation, Err: err}) {
				return false
			}
			continue
		}
		for seg, err := range segments {
			if err == nil {
				if cerr := ctx.Err(); cerr != nil {
					yield(nil, cerr)
					return false
				}
			}
			if !yield(seg, err) {
				return false
			}
		}
	}
	return true
}

// readAnnotation prepares everything an annotation file needs before its
// segments can be cut. Errors here skip the whole file.
func (x *Extractor) readAnnotation(path string, annotationsInSession int, meta domain.SessionMetadata) (iter.Seq2[*Segment, error], error) {
	wavPath, err := ResolveAudio(path)
	if err != nil {
		return nil, err
	}

	mic, err := MicNumber(path, annotationsInSession)
	if err != nil {
		return nil, err
	}

	speaker := meta.SpeakerForMic(mic)
	if speaker == nil {
		return nil, fmt.Errorf("%w: no speaker on mic %d of %s", domain.ErrMissingMetadata, mic, meta.ID)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read annotation: %w", err)
	}
	doc, err := Parse(content)
	if err != nil {
		return nil, err
	}
	if !doc.HasTier(TierEnglishWord) && !doc.HasTier(TierEnglishSentence) {
		return nil, fmt.Errorf("%w: tiers %s", domain.ErrMissingTranslation, strings.Join(doc.TierNames(), ", "))
	}

	wavData, err := os.ReadFile(wavPath)
	if err != nil {
		return nil, fmt.Errorf("read audio %s: %w", wavPath, err)
	}
	pcm, err := audio.Decode(bytes.NewReader(wavData))
	if err != nil {
		return nil, fmt.Errorf("audio %s: %w", wavPath, err)
	}
	master := pcm.Mono()

	file := &AnnotationFile{Path: path, Content: content}
	comments := doc.Tier(TierComments)

	base := Segment{
		Speaker:    *speaker,
		Mic:        mic,
		Session:    meta.ID,
		Metadata:   meta,
		Annotation: file,
	}

	return func(yield func(*Segment, error) bool) {
		groups := []struct {
			kind        domain.Kind
			source      string
			translation string
		}{
			{domain.KindWord, TierCreeWord, TierEnglishWord},
			{domain.KindSentence, TierCreeSentence, TierEnglishSentence},
		}

		for _, g := range groups {
			translations := doc.Tier(g.translation)
			for _, iv := range doc.Tier(g.source) {
				if iv.Text == "" {
					continue
				}
				mid := iv.Midpoint()

				translation, ok := textAt(translations, mid)
				if !ok {
					err := fmt.Errorf("%w: %q at %dms", domain.ErrMissingTranslation, iv.Text, iv.StartMs)
					if !yield(nil, &SkipError{Path: path, Unit: UnitSegment, Err: err}) {
						return
					}
					continue
				}

				clip := master.Cut(iv.StartMs, iv.StopMs)
				if clip.IsEmpty() {
					err := fmt.Errorf("%w: %q at %dms", domain.ErrEmptyAudio, iv.Text, iv.StartMs)
					if !yield(nil, &SkipError{Path: path, Unit: UnitSegment, Err: err}) {
						return
					}
					continue
				}

				seg := base
				seg.Kind = g.kind
				seg.Transcription = iv.Text
				seg.Translation = translation
				seg.StartMs = iv.StartMs
				seg.StopMs = iv.StopMs
				seg.Audio = clip.Normalize(x.headroom)
				seg.Quality, seg.Comment = ParseComment(commentAt(comments, mid))

				if !yield(&seg, nil) {
					return
				}
			}
		}
	}, nil
}

// textAt returns the text of the first interval covering ms.
func textAt(intervals []Interval, ms int64) (string, bool) {
	for _, iv := range intervals {
		if iv.Covers(ms) && iv.Text != "" {
			return iv.Text, true
		}
	}
	return "", false
}

func commentAt(intervals []Interval, ms int64) string {
	text, _ := textAt(intervals, ms)
	return text
}

var qualityKeywordRe = regexp.MustCompile(`(?i)^\s*(good|bad|unknown)\b[\s:,.;-]*`)

// ParseComment splits a Comments tier annotation into a leading quality
// keyword and the remaining free text. Without a keyword the quality is
// unknown.
func ParseComment(text string) (domain.Quality, string) {
	text = strings.TrimSpace(text)
	m := qualityKeywordRe.FindStringSubmatch(text)
	if m == nil {
		return domain.QualityUnknown, text
	}
	return domain.Quality(strings.ToLower(m[1])), strings.TrimSpace(text[len(m[0]):])
}
