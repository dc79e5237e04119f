package daykey

import (
	"fmt"
	"time"
)

// TimeRange is the [Start, End] span of absolute UTC instants
// corresponding to 00:00:00.000 - 23:59:59.999 of a DayKey in the
// fixed timezone. Derived on demand, never stored.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Bucket is the storage bucketing info for one calendar day,
// resolved once per request and shared by manual and assistant
// logging paths.
type Bucket struct {
	Key     DayKey    `json:"dayKey"`
	Weekday Weekday   `json:"weekday"`
	Range   TimeRange `json:"range"`
}

// Resolver converts between absolute instants and calendar days in
// one fixed IANA timezone, independent of the server host zone.
type Resolver struct {
	loc *time.Location
}

func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", timezone, err)
	}
	return &Resolver{loc: loc}, nil
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// FromInstant returns the calendar day the given instant falls on in
// the fixed timezone, using the actual zone rules (DST included)
// rather than a fixed offset.
func (r *Resolver) FromInstant(t time.Time) DayKey {
	local := t.In(r.loc)
	return New(local.Year(), local.Month(), local.Day())
}

// Today returns the current calendar day in the fixed timezone.
func (r *Resolver) Today() DayKey {
	return r.FromInstant(time.Now())
}

// UTCRange resolves the civil 00:00:00.000 and 23:59:59.999 of the
// given day in the fixed timezone to absolute UTC instants. Zone rules
// disambiguate instants around DST transitions, so the range lasts 23h
// or 25h on the two transition days per year and exactly 24h otherwise.
func (r *Resolver) UTCRange(k DayKey) (TimeRange, error) {
	year, month, day, err := k.Components()
	if err != nil {
		return TimeRange{}, err
	}

	start := time.Date(year, month, day, 0, 0, 0, 0, r.loc)
	end := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), r.loc)

	return TimeRange{
		Start: start.UTC(),
		End:   end.UTC(),
	}, nil
}

// ResolveDayBucket is the single entry point for handlers that bucket
// a workout log by day. An empty or literal "today" value resolves to
// the current day; anything else must be a valid day key - malformed
// input fails with ErrInvalidDayKey, never a silent fallback to today.
func (r *Resolver) ResolveDayBucket(rawSelectedDay string) (Bucket, error) {
	var key DayKey
	switch rawSelectedDay {
	case "", "today":
		key = r.Today()
	default:
		parsed, err := Parse(rawSelectedDay)
		if err != nil {
			return Bucket{}, err
		}
		key = parsed
	}

	weekday, err := WeekdayOf(key)
	if err != nil {
		return Bucket{}, err
	}

	utcRange, err := r.UTCRange(key)
	if err != nil {
		return Bucket{}, err
	}

	return Bucket{
		Key:     key,
		Weekday: weekday,
		Range:   utcRange,
	}, nil
}
