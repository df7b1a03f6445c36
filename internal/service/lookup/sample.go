package lookup

import (
	"slices"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// sample picks at most n of matches: every best recording first, then one
// recording per speaker in turn, speakers ordered by code, until n are
// chosen. Within a speaker, matches keep their order.
func sample(matches []domain.MatchedRecording, n int) []domain.MatchedRecording {
	if n <= 0 || len(matches) <= n {
		return matches
	}

	out := make([]domain.MatchedRecording, 0, n)
	bySpeaker := make(map[string][]domain.MatchedRecording)
	for _, m := range matches {
		if m.Recording.IsBest {
			if len(out) < n {
				out = append(out, m)
			}
			continue
		}
		bySpeaker[m.Recording.SpeakerCode] = append(bySpeaker[m.Recording.SpeakerCode], m)
	}

	codes := make([]string, 0, len(bySpeaker))
	for code := range bySpeaker {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for len(out) < n {
		picked := false
		for _, code := range codes {
			queue := bySpeaker[code]
			if len(queue) == 0 {
				continue
			}
			out = append(out, queue[0])
			bySpeaker[code] = queue[1:]
			picked = true
			if len(out) == n {
				break
			}
		}
		if !picked {
			break
		}
	}
	return out
}
