package domain

import "strings"

// Kind distinguishes single words from example sentences.
type Kind string

const (
	KindWord     Kind = "word"
	KindSentence Kind = "sentence"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindWord, KindSentence:
		return true
	}
	return false
}

// PhraseStatus tracks how far a phrase has progressed through validation.
type PhraseStatus string

const (
	PhraseStatusNew              PhraseStatus = "new"
	PhraseStatusAutoStandardized PhraseStatus = "auto-standardized"
	PhraseStatusStandardized     PhraseStatus = "standardized"
	PhraseStatusLinked           PhraseStatus = "linked"
	PhraseStatusValidated        PhraseStatus = "validated"
	PhraseStatusNeedsReview      PhraseStatus = "needs-review"
	PhraseStatusUserSubmitted    PhraseStatus = "user-submitted"
)

func (s PhraseStatus) String() string { return string(s) }

func (s PhraseStatus) IsValid() bool {
	switch s {
	case PhraseStatusNew, PhraseStatusAutoStandardized, PhraseStatusStandardized,
		PhraseStatusLinked, PhraseStatusValidated, PhraseStatusNeedsReview,
		PhraseStatusUserSubmitted:
		return true
	}
	return false
}

// AllPhraseStatuses lists every status in display order.
func AllPhraseStatuses() []PhraseStatus {
	return []PhraseStatus{
		PhraseStatusNew, PhraseStatusAutoStandardized, PhraseStatusStandardized,
		PhraseStatusLinked, PhraseStatusValidated, PhraseStatusNeedsReview,
		PhraseStatusUserSubmitted,
	}
}

// Quality is the reviewer's verdict on a recording.
type Quality string

const (
	QualityGood    Quality = "good"
	QualityBad     Quality = "bad"
	QualityUnknown Quality = "unknown"
	QualityBlank   Quality = "blank"
)

func (q Quality) String() string { return string(q) }

func (q Quality) IsValid() bool {
	switch q {
	case QualityGood, QualityBad, QualityUnknown, QualityBlank:
		return true
	}
	return false
}

// AllQualities lists every quality value.
func AllQualities() []Quality {
	return []Quality{QualityGood, QualityBad, QualityUnknown, QualityBlank}
}

// TimeOfDay is the half of the day a session was held in. The zero value
// means unknown.
type TimeOfDay string

const (
	TimeOfDayUnknown   TimeOfDay = ""
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
)

func (t TimeOfDay) String() string { return string(t) }

// Code renders the time of day in a session filename.
func (t TimeOfDay) Code() string {
	switch t {
	case TimeOfDayMorning:
		return "AM"
	case TimeOfDayAfternoon:
		return "PM"
	}
	return "__"
}

// ParseTimeOfDay maps "am"/"pm" in any case. ok is false for anything else.
func ParseTimeOfDay(token string) (TimeOfDay, bool) {
	switch strings.ToUpper(token) {
	case "AM":
		return TimeOfDayMorning, true
	case "PM":
		return TimeOfDayAfternoon, true
	}
	return TimeOfDayUnknown, false
}

// Location is the room a session was recorded in. The zero value means
// unknown.
type Location string

const (
	LocationUnknown    Location = ""
	LocationDownstairs Location = "downstairs"
	LocationUpstairs   Location = "upstairs"
	LocationKitchen    Location = "kitchen"
	LocationOffice     Location = "office"
)

func (l Location) String() string { return string(l) }

// Code renders the location in a session filename.
func (l Location) Code() string {
	switch l {
	case LocationDownstairs:
		return "DS"
	case LocationUpstairs:
		return "US"
	case LocationKitchen:
		return "KCH"
	case LocationOffice:
		return "OFF"
	}
	return "___"
}

// ParseLocation maps a location token, case-insensitively.
func ParseLocation(token string) (Location, bool) {
	switch strings.ToUpper(token) {
	case "KCH", "KIT", "KITCHEN":
		return LocationKitchen, true
	case "OFF", "OFFICE":
		return LocationOffice, true
	case "DS", "DOWNSTAIRS":
		return LocationDownstairs, true
	case "US", "UPSTAIRS":
		return LocationUpstairs, true
	}
	return LocationUnknown, false
}

// Gender of a speaker as presented to dictionary applications.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// IssueStatus is the state of a reported issue.
type IssueStatus string

const (
	IssueStatusOpen     IssueStatus = "open"
	IssueStatusResolved IssueStatus = "resolved"
)

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	return s == IssueStatusOpen || s == IssueStatusResolved
}

// EntityType identifies the kind of entity a history record belongs to.
type EntityType string

const (
	EntityTypePhrase                  EntityType = "phrase"
	EntityTypeRecording               EntityType = "recording"
	EntityTypeSemanticClassAnnotation EntityType = "semantic_class_annotation"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypePhrase, EntityTypeRecording, EntityTypeSemanticClassAnnotation:
		return true
	}
	return false
}

// HistoryAction represents the kind of mutation recorded in the change log.
type HistoryAction string

const (
	HistoryActionCreate HistoryAction = "create"
	HistoryActionUpdate HistoryAction = "update"
	HistoryActionMerge  HistoryAction = "merge"
	HistoryActionDelete HistoryAction = "delete"
)

func (a HistoryAction) String() string { return string(a) }

func (a HistoryAction) IsValid() bool {
	switch a {
	case HistoryActionCreate, HistoryActionUpdate, HistoryActionMerge, HistoryActionDelete:
		return true
	}
	return false
}
