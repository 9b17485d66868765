package schedule

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadTime is returned for input that is not a zero-padded 24-hour
// "HH:mm" string.
var ErrBadTime = errors.New("time must be HH:mm (24-hour)")

var (
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// IsValidTime reports whether s is a well-formed "HH:mm" wall-clock string.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// IsValidDate reports whether s is a well-formed "YYYY-MM-DD" string.
func IsValidDate(s string) bool {
	return datePattern.MatchString(s)
}

// ToMinutes converts an "HH:mm" wall-clock string to minutes since
// midnight, in [0, 1439].
func ToMinutes(s string) (int, error) {
	if !timePattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, s)
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, nil
}

// MinutesToTime is the inverse of ToMinutes for values in [0, 1439].
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
