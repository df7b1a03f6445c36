package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// SessionID identifies a recording session: the date plus an optional time of
// day, location and subsession number. SessionID is comparable; two values
// are equal iff all four components match, so it can key a map.
type SessionID struct {
	// Date is midnight UTC of the session day.
	Date          time.Time
	TimeOfDay     TimeOfDay
	Location      Location
	Subsession    int
	HasSubsession bool
}

// NewSessionID builds a SessionID, normalising the date to midnight UTC.
// A nil subsession means none was recorded.
func NewSessionID(date time.Time, tod TimeOfDay, loc Location, subsession *int) SessionID {
	id := SessionID{
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		TimeOfDay: tod,
		Location:  loc,
	}
	if subsession != nil {
		id.Subsession = *subsession
		id.HasSubsession = true
	}
	return id
}

// String returns the canonical form YYYY-MM-DD-<AM|PM|__>-<loc|___>-<n|_>.
// It is the primary key of a persisted session.
func (id SessionID) String() string {
	sub := "_"
	if id.HasSubsession {
		sub = strconv.Itoa(id.Subsession)
	}
	return id.Date.Format(time.DateOnly) + "-" + id.TimeOfDay.Code() + "-" + id.Location.Code() + "-" + sub
}

// Filename is the directory name a session is stored under. It round-trips
// through the strict session name grammar.
func (id SessionID) Filename() string {
	return id.String()
}

// SubsessionPtr returns the subsession as a pointer, nil when absent.
func (id SessionID) SubsessionPtr() *int {
	if !id.HasSubsession {
		return nil
	}
	n := id.Subsession
	return &n
}

// IsZero reports whether the id has no date.
func (id SessionID) IsZero() bool {
	return id.Date.IsZero()
}

// RecordingSession is a persisted session together with the hash of the
// metadata row it was last imported from.
type RecordingSession struct {
	ID          SessionID
	SessionHash string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SessionMetadata is one row of the session metadata file.
type SessionMetadata struct {
	ID SessionID
	// OriginalName is the SESSION column before any override.
	OriginalName string
	// Mics maps 1-indexed microphone numbers to speaker codes. A nil code
	// means the channel was not assigned.
	Mics map[int]*string
	// RapidWords lists the elicitation topic sections, e.g. "1.1", "1.2".
	RapidWords []string
}

// SpeakerForMic returns the speaker code assigned to the microphone, or nil.
func (m SessionMetadata) SpeakerForMic(mic int) *string {
	if m.Mics == nil {
		return nil
	}
	return m.Mics[mic]
}

// Signature is a stable text rendering of the row, hashed to detect changes
// in session metadata between imports.
func (m SessionMetadata) Signature() string {
	mics := make([]int, 0, len(m.Mics))
	for mic := range m.Mics {
		mics = append(mics, mic)
	}
	slices.Sort(mics)

	var b strings.Builder
	fmt.Fprintf(&b, "session: %s\n", m.ID)
	for _, mic := range mics {
		code := "N/A"
		if c := m.Mics[mic]; c != nil {
			code = *c
		}
		fmt.Fprintf(&b, "mic %d: %s\n", mic, code)
	}
	fmt.Fprintf(&b, "rapidwords: %s\n", strings.Join(m.RapidWords, ", "))
	return b.String()
}
