// Package validation holds the field rules shared by the employee form and the JSON API.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DateLayout is the wire format of employee dates.
const DateLayout = "2006-01-02"

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^(\+\d{10,15}|\d{10})$`)
	phoneNoise = strings.NewReplacer(" ", "", "\t", "", "\n", "", "-", "", "(", "", ")", "")
)

// IsValidEmail checks the basic local@domain.tld shape.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts 10 digits, or a leading + followed by 10 to 15 digits,
// once spaces, dashes and parentheses are removed.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	return phoneRegex.MatchString(phoneNoise.Replace(phone))
}

// IsRequired reports whether value has non-whitespace content.
func IsRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// HasMinLength counts runes, not bytes. An empty value never satisfies it.
func HasMinLength(value string, minLength int) bool {
	if value == "" {
		return false
	}
	return utf8.RuneCountInString(value) >= minLength
}

// HasMaxLength treats an empty value as within bounds.
func HasMaxLength(value string, maxLength int) bool {
	if value == "" {
		return true
	}
	return utf8.RuneCountInString(value) <= maxLength
}

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsValidDate reports whether value parses as a date.
func IsValidDate(value string) bool {
	_, ok := ParseDate(value)
	return ok
}

// IsNotFutureDate reports whether the date is no later than the end of today.
func IsNotFutureDate(value string) bool {
	return IsNotFutureDateAt(value, time.Now())
}

// IsNotFutureDateAt is IsNotFutureDate with an explicit reference time.
func IsNotFutureDateAt(value string, now time.Time) bool {
	date, ok := ParseDate(value)
	if !ok {
		return false
	}
	y, m, d := now.Date()
	endOfToday := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	return !date.After(endOfToday)
}
