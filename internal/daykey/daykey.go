package daykey

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidDayKey is returned for strings that are not a real
// calendar date in YYYY-MM-DD form. Callers must propagate it
// instead of silently substituting the current day.
var ErrInvalidDayKey = errors.New("invalid day key")

var dayKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DayKey identifies a calendar day in the service's fixed timezone,
// in YYYY-MM-DD form. It is not a timestamp and carries no
// time-of-day or absolute instant.
type DayKey string

// Weekday with Monday = 0, Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

func New(year int, month time.Month, day int) DayKey {
	return DayKey(fmt.Sprintf("%04d-%02d-%02d", year, month, day))
}

// Parse validates the YYYY-MM-DD shape and that the components form a
// real calendar date, by round-tripping through date construction.
func Parse(s string) (DayKey, error) {
	k := DayKey(s)
	if _, err := k.civil(); err != nil {
		return "", err
	}
	return k, nil
}

// Components returns the year, month and day of the key.
func (k DayKey) Components() (int, time.Month, int, error) {
	t, err := k.civil()
	if err != nil {
		return 0, 0, 0, err
	}
	return t.Year(), t.Month(), t.Day(), nil
}

// civil returns the key's date as a UTC-normalized civil representation,
// i.e. midnight UTC of that date. Day arithmetic is timezone-agnostic
// once expressed like this.
func (k DayKey) civil() (time.Time, error) {
	if !dayKeyRegex.MatchString(string(k)) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, string(k))
	}

	var year, month, day int
	if _, err := fmt.Sscanf(string(k), "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, string(k))
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes impossible dates (e.g. Feb 30 becomes Mar 1),
	// so an unchanged round trip proves the date is real
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q is not a real calendar date", ErrInvalidDayKey, string(k))
	}

	return t, nil
}

func AddDays(k DayKey, delta int) (DayKey, error) {
	t, err := k.civil()
	if err != nil {
		return "", err
	}
	t = t.AddDate(0, 0, delta)
	return New(t.Year(), t.Month(), t.Day()), nil
}

// WeekdayOf maps the civil weekday so that Monday is 0 and Sunday is 6.
func WeekdayOf(k DayKey) (Weekday, error) {
	t, err := k.civil()
	if err != nil {
		return 0, err
	}
	return Weekday((int(t.Weekday()) + 6) % 7), nil
}

// WeekStart returns the Monday of the ISO week containing the key;
// a Sunday belongs to the week of the preceding Monday (offset -6).
func WeekStart(k DayKey) (DayKey, error) {
	wd, err := WeekdayOf(k)
	if err != nil {
		return "", err
	}
	return AddDays(k, -int(wd))
}

// MonthStart returns the first day of the month containing the key.
func MonthStart(k DayKey) (DayKey, error) {
	year, month, _, err := k.Components()
	if err != nil {
		return "", err
	}
	return New(year, month, 1), nil
}

// MonthRange returns the first and last day of the month containing the key.
func MonthRange(k DayKey) (DayKey, DayKey, error) {
	year, month, _, err := k.Components()
	if err != nil {
		return "", "", err
	}
	start := New(year, month, 1)
	// day zero of the next month is the last day of this one
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return start, New(lastDay.Year(), lastDay.Month(), lastDay.Day()), nil
}
