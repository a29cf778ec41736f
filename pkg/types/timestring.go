package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a wall-clock time of day in "HH:MM" form.
// It is stored as a string so it serializes naturally in JSON and SQL,
// with helpers for minute arithmetic and ordering.
type TimeString string

const minutesPerDay = 24 * 60

// NewTimeString builds a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes builds a TimeString from minutes since midnight.
// Values outside [0, 1440) wrap around the day.
func NewTimeStringFromMinutes(m int) TimeString {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// String returns the "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format and range.
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// Minutes returns minutes since midnight, or an error for malformed values.
func (t TimeString) Minutes() (int, error) {
	return t.minutes()
}

// MinutesLenient returns minutes since midnight, mapping malformed or empty
// values to 0. This mirrors the forgiving parse used at form boundaries,
// where a blank select option must not be an error.
func (t TimeString) MinutesLenient() int {
	m, err := t.minutes()
	if err != nil {
		return 0
	}
	return m
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesLenient() < other.MinutesLenient()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesLenient() > other.MinutesLenient()
}

// AddMinutes returns the time n minutes later. Crossing midnight is an
// error: bookings never span days.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.minutes()
	if err != nil {
		return "", err
	}
	sum := m + n
	if sum < 0 || sum > minutesPerDay {
		return "", fmt.Errorf("time %s%+d minutes leaves the day", t, n)
	}
	return NewTimeStringFromMinutes(sum % minutesPerDay), nil
}

func (t TimeString) minutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time string format: %q", string(t))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", string(t))
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", string(t))
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", string(t))
	}
	return h*60 + m, nil
}
