package domain

import "time"

// Speaker is a person recorded in the corpus, keyed by a short code such as
// "ROS" or "JER2".
type Speaker struct {
	Code      string
	FullName  *string
	Gender    *Gender
	Anonymous bool
	// Languages are the slugs of the language variants the speaker
	// contributes to.
	Languages []string
	CreatedAt time.Time
}

// DisplayName returns the full name, or the code when no name is recorded.
func (s *Speaker) DisplayName() string {
	if s.FullName != nil && *s.FullName != "" {
		return *s.FullName
	}
	return s.Code
}

// IsReviewed reports whether the speaker's metadata has been filled in. A
// missing gender stands in for "not yet reviewed".
func (s *Speaker) IsReviewed() bool {
	return s.Gender != nil
}
