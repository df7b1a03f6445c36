// Package metadata reads the session metadata spreadsheet: which speaker sat
// at each microphone, the elicitation topics, and per-row overrides.
// File in, domain.SessionMetadata out. No database dependencies.
package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/sessionid"
)

const minMics = 3

var micColumnRe = regexp.MustCompile(`(?i)^mic\s*(\d+)$`)

// RowError reports a metadata row that was dropped.
type RowError struct {
	Line    int
	Session string
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d (session %q): %v", e.Line, e.Session, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Loader parses metadata files.
type Loader struct {
	ident  *sessionid.Identifier
	logger *slog.Logger
}

// NewLoader creates a Loader that recognises session names with ident.
func NewLoader(logger *slog.Logger, ident *sessionid.Identifier) *Loader {
	return &Loader{
		ident:  ident,
		logger: logger.With("component", "metadata"),
	}
}

// Load reads the metadata file at path. Files ending in .tsv are
// tab-separated; anything else is comma-separated. Dropped rows are logged
// and never abort the load.
func (l *Loader) Load(path string) (map[domain.SessionID]domain.SessionMetadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open metadata: %w", err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}

	sessions, rowErrs, err := l.Parse(f, comma)
	if err != nil {
		return nil, fmt.Errorf("parse metadata %s: %w", path, err)
	}

	for _, re := range rowErrs {
		l.logger.Warn("metadata row dropped",
			slog.String("path", path),
			slog.Int("line", re.Line),
			slog.String("session", re.Session),
			slog.String("error", re.Err.Error()),
		)
	}

	l.logger.Info("metadata loaded",
		slog.String("path", path),
		slog.Int("sessions", len(sessions)),
		slog.Int("dropped", len(rowErrs)),
	)

	return sessions, nil
}

// header holds column positions. Missing optional columns are -1.
type header struct {
	session    int
	override   int
	rapidwords int
	mics       map[int]int // mic number -> column
}

func parseHeader(record []string) (header, error) {
	h := header{session: -1, override: -1, rapidwords: -1, mics: make(map[int]int)}

	for i, col := range record {
		name := strings.TrimSpace(col)
		switch {
		case strings.EqualFold(name, "SESSION"):
			h.session = i
		case strings.EqualFold(name, "RECVAL_OVERRIDE"):
			h.override = i
		case strings.HasPrefix(strings.ToLower(name), "rapidwords section"):
			h.rapidwords = i
		default:
			if m := micColumnRe.FindStringSubmatch(name); m != nil {
				n, _ := strconv.Atoi(m[1])
				h.mics[n] = i
			}
		}
	}

	if h.session < 0 {
		return h, errors.New("header has no SESSION column")
	}
	for n := 1; n <= minMics; n++ {
		if _, ok := h.mics[n]; !ok {
			return h, fmt.Errorf("header has no MIC %d column", n)
		}
	}
	return h, nil
}

// Parse reads metadata rows from r. It returns the sessions that were
// accepted and an error per dropped row. A non-nil error means the file as
// a whole could not be read.
func (l *Loader) Parse(r io.Reader, comma rune) (map[domain.SessionID]domain.SessionMetadata, []*RowError, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	first, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("empty metadata file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	h, err := parseHeader(first)
	if err != nil {
		return nil, nil, err
	}

	sessions := make(map[domain.SessionID]domain.SessionMetadata)
	seenAt := make(map[domain.SessionID]int)
	var rowErrs []*RowError
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				rowErrs = append(rowErrs, &RowError{Line: line, Err: err})
				continue
			}
			return nil, nil, fmt.Errorf("read row: %w", err)
		}

		if isBlank(record) {
			continue
		}

		meta, skip, err := l.parseRow(h, record)
		if skip {
			continue
		}
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Line: line, Session: cell(record, h.session), Err: err})
			continue
		}

		if prev, dup := seenAt[meta.ID]; dup {
			rowErrs = append(rowErrs, &RowError{
				Line:    line,
				Session: meta.OriginalName,
				Err:     fmt.Errorf("%w: %s already defined on line %d", domain.ErrDuplicateSession, meta.ID, prev),
			})
			continue
		}

		seenAt[meta.ID] = line
		sessions[meta.ID] = meta
	}

	return sessions, rowErrs, nil
}

// parseRow converts one record. skip is true when the row asks to be
// skipped.
func (l *Loader) parseRow(h header, record []string) (meta domain.SessionMetadata, skip bool, err error) {
	original := strings.TrimSpace(cell(record, h.session))
	name := original

	if h.override >= 0 {
		if override := strings.TrimSpace(cell(record, h.override)); override != "" {
			rename, opts, _ := strings.Cut(override, "!")
			for _, opt := range strings.Split(opts, ",") {
				if strings.EqualFold(strings.TrimSpace(opt), "skip") {
					return meta, true, nil
				}
			}
			if rename = strings.TrimSpace(rename); rename != "" {
				name = rename
			}
		}
	}

	if name == "" {
		return meta, false, errors.New("empty session name")
	}

	id, err := l.ident.Parse(name)
	if err != nil {
		return meta, false, err
	}

	mics := make(map[int]*string, len(h.mics))
	for n, col := range h.mics {
		raw := cell(record, col)
		code, ok := domain.NormalizeSpeakerCode(raw)
		if !ok {
			if up := strings.ToUpper(strings.TrimSpace(raw)); up != "" && up != "N/A" {
				return meta, false, fmt.Errorf("%w: MIC %d speaker code %q", domain.ErrValidation, n, raw)
			}
			mics[n] = nil
			continue
		}
		mics[n] = &code
	}

	var sections []string
	if h.rapidwords >= 0 {
		sections = ParseRapidWords(cell(record, h.rapidwords))
	}

	return domain.SessionMetadata{
		ID:           id,
		OriginalName: original,
		Mics:         mics,
		RapidWords:   sections,
	}, false, nil
}

// ParseRapidWords splits a comma-separated list of RapidWords sections. An
// entry without a "." inherits the numeric prefix of the previous entry, so
// "1.1, 2, 3" becomes 1.1, 1.2, 1.3.
func ParseRapidWords(raw string) []string {
	var out []string
	prefix := ""
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if i := strings.LastIndex(part, "."); i >= 0 {
			prefix = part[:i+1]
			out = append(out, part)
			continue
		}
		out = append(out, prefix+part)
	}
	return out
}

func cell(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
