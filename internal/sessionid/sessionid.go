// Package sessionid parses session directory names into domain.SessionID.
//
// Two grammars are supported. The strict grammar accepts only the canonical
// form produced by SessionID.Filename, e.g. "2018-01-24-AM-KCH-2". The dirty
// grammar accepts most names seen in years of fieldwork, e.g.
// "2018-01-24am2-kch" or "2016_05_03_PM_downstairs".
package sessionid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

var (
	strictRe = regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2})-(AM|PM|__)-(KCH|OFF|DS|US|___)-(\d+|_)$`)

	dirtyRe = regexp.MustCompile(
		`(?i)^(\d{4})[-_]?(\d{2})[-_]?(\d{2})` +
			`(?:[-_ ]?(am|pm)(?:[-_ ]?(\d+))?)?` +
			`(?:[-_ ]?(kch|kit|kitchen|off|office|ds|downstairs|us|upstairs))?` +
			`(?:[-_ ]?(\d+))?$`)
)

// ParseError reports a name that does not match a grammar.
type ParseError struct {
	Name    string
	Grammar string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("session name %q does not match the %s grammar", e.Name, e.Grammar)
}

func (e *ParseError) Unwrap() error { return domain.ErrSessionParse }

// ParseStrict parses a name in canonical form.
func ParseStrict(name string) (domain.SessionID, error) {
	m := strictRe.FindStringSubmatch(name)
	if m == nil {
		return domain.SessionID{}, &ParseError{Name: name, Grammar: "strict"}
	}

	date, err := time.Parse(time.DateOnly, m[1])
	if err != nil {
		return domain.SessionID{}, &ParseError{Name: name, Grammar: "strict"}
	}

	tod, _ := domain.ParseTimeOfDay(m[2])
	loc, _ := domain.ParseLocation(m[3])

	var sub *int
	if m[4] != "_" {
		n, err := strconv.Atoi(m[4])
		if err != nil {
			return domain.SessionID{}, &ParseError{Name: name, Grammar: "strict"}
		}
		sub = &n
	}

	return domain.NewSessionID(date, tod, loc, sub), nil
}

// ParseDirty parses a historical directory name. Separators between
// components are optional and may be "-", "_" or a space; tokens are
// case-insensitive. A subsession may follow the time of day or the location.
func ParseDirty(name string) (domain.SessionID, error) {
	m := dirtyRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return domain.SessionID{}, &ParseError{Name: name, Grammar: "dirty"}
	}

	date, err := time.Parse(time.DateOnly, m[1]+"-"+m[2]+"-"+m[3])
	if err != nil {
		return domain.SessionID{}, &ParseError{Name: name, Grammar: "dirty"}
	}

	tod, _ := domain.ParseTimeOfDay(m[4])
	loc, _ := domain.ParseLocation(m[6])

	subText := m[5]
	if subText == "" {
		subText = m[7]
	} else if m[7] != "" {
		// Two subsession numbers.
		return domain.SessionID{}, &ParseError{Name: name, Grammar: "dirty"}
	}

	var sub *int
	if subText != "" {
		n, err := strconv.Atoi(subText)
		if err != nil {
			return domain.SessionID{}, &ParseError{Name: name, Grammar: "dirty"}
		}
		sub = &n
	}

	return domain.NewSessionID(date, tod, loc, sub), nil
}
