package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryRecord is one row of the change log kept for phrases, recordings and
// semantic class annotations. Records written by the importer have no user;
// records written by an operator carry the operator's id.
type HistoryRecord struct {
	ID         int64
	EntityType EntityType
	EntityID   string
	UserID     *uuid.UUID
	Action     HistoryAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// Issue is a report raised against a recording or phrase.
type Issue struct {
	ID                     int64
	RecordingID            *string
	PhraseID               *int64
	SuggestedTranscription *string
	SuggestedTranslation   *string
	Comment                string
	Status                 IssueStatus
	CreatedAt              time.Time
}
