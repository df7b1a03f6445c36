package elan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

var (
	// "2015-05-11am-Track 3_001" or "..._Track3_001"
	trackRe = regexp.MustCompile(`(?i)track[ _]?(\d+)_(\d+)$`)
	// "2016-01-13-3"
	dateMicRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[-_](\d+)$`)
)

func stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// MicNumber derives the microphone number from an annotation file name.
// When the name carries no number and the annotation is the only one in its
// session, mic 1 is assumed.
func MicNumber(annotationPath string, annotationsInSession int) (int, error) {
	name := stem(annotationPath)

	if m := trackRe.FindStringSubmatch(name); m != nil {
		return strconv.Atoi(m[1])
	}
	if m := dateMicRe.FindStringSubmatch(name); m != nil {
		return strconv.Atoi(m[1])
	}
	if annotationsInSession == 1 {
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %s", domain.ErrMicNumber, filepath.Base(annotationPath))
}

// ResolveAudio finds the WAV file paired with an annotation file. It tries,
// in order: a sibling with the same stem; the recorded track inside the
// session's single .sesx project; any WAV under the session directory named
// after the same track.
func ResolveAudio(annotationPath string) (string, error) {
	dir := filepath.Dir(annotationPath)
	name := stem(annotationPath)

	sibling := filepath.Join(dir, name+".wav")
	if isFile(sibling) {
		return sibling, nil
	}

	if p, ok := resolveSesx(dir, name); ok {
		return p, nil
	}

	if p, ok := resolveTrack(dir, name); ok {
		return p, nil
	}

	return "", fmt.Errorf("%w: %s", domain.ErrMissingAudio, annotationPath)
}

func resolveSesx(dir, name string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.sesx"))
	if err != nil || len(matches) != 1 {
		return "", false
	}
	sesx := matches[0]
	base := strings.TrimSuffix(filepath.Base(sesx), ".sesx")

	candidates := []string{
		filepath.Join(dir, base+"_Recorded", name+".wav"),
		filepath.Join(sesx, "_Recorded", name+".wav"),
		filepath.Join(sesx, base+"_Recorded", name+".wav"),
	}
	for _, c := range candidates {
		if isFile(c) {
			return c, true
		}
	}
	return "", false
}

func resolveTrack(dir, name string) (string, bool) {
	m := trackRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	track := strings.ToLower(m[0])

	var found string
	errFound := errors.New("found")
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".wav") {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(stem(path)), track) {
			found = path
			return errFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, errFound) {
		return "", false
	}
	return found, found != ""
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
