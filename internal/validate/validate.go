// Package validate holds the input checks shared by every form.
//
// Checks are pure predicates. Forms chain them with Check, which stops at the
// first failing rule so a user only ever sees one message at a time.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/mcnijman/go-emailaddress"
)

const (
	MinNameLen     = 2
	MinPasswordLen = 6
	MinAddressLen  = 10
	PhoneDigits    = 10
)

// intentionally loose: accepts a@b..c and similar
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return emailRe.MatchString(s)
}

// StrictEmail additionally requires the address to parse as RFC 5322.
func StrictEmail(s string) bool {
	if !Email(s) {
		return false
	}
	_, err := emailaddress.Parse(s)
	return err == nil
}

// Digits strips everything that is not a decimal digit.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func Phone(s string) bool {
	return len(Digits(s)) == PhoneDigits
}

func Name(s string) bool {
	return utf8.RuneCountInString(s) >= MinNameLen
}

func Password(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLen
}

func Address(s string) bool {
	return utf8.RuneCountInString(s) >= MinAddressLen
}

// NotPast reports whether day falls on or after the calendar day of now.
// Time of day is ignored on both sides; day is read in now's location.
func NotPast(day, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	dy, dm, dd := day.In(now.Location()).Date()
	return !time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location()).Before(today)
}

// Required reports whether every value is non-blank.
func Required(vals ...string) bool {
	for _, v := range vals {
		if strings.TrimFunc(v, unicode.IsSpace) == "" {
			return false
		}
	}
	return true
}

// Error is the first failed rule of a form.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

type Rule struct {
	Field   string
	Message string
	OK      func() bool
}

// Check evaluates rules in order and returns the first failure, or nil.
func Check(rules ...Rule) error {
	for _, r := range rules {
		if !r.OK() {
			return &Error{Field: r.Field, Message: r.Message}
		}
	}
	return nil
}
