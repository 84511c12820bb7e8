package types

import (
	"time"

	ierr "github.com/tourhive/tourhive/internal/errors"
)

// Granularity is the time unit used to bucket records in a graph series.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// MaxBucketCount caps how many buckets a single window may enumerate.
// Guards against a caller passing a multi-decade window at hour granularity.
const MaxBucketCount = 10000

const (
	bucketKeyHourLayout  = "2006-01-02 15:00"
	bucketKeyDayLayout   = "2006-01-02"
	bucketKeyMonthLayout = "2006-01"
	bucketKeyYearLayout  = "2006"

	// DateLayout is the wire format for calendar dates in API requests.
	DateLayout = "2006-01-02"
)

func (g Granularity) Validate() error {
	switch g {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return nil
	}
	return ierr.NewErrorf("invalid granularity: %s", g).
		WithHint("granularity must be one of hour, day, week, month, year").
		Mark(ierr.ErrValidation)
}

// DateWindow is an inclusive time range.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateWindow builds a window from two calendar dates, normalizing the end
// to end-of-day so same-day windows still span the whole day.
func NewDateWindow(start, end time.Time) DateWindow {
	return DateWindow{Start: start, End: EndOfDay(end)}
}

// Contains reports whether t falls inside the window, both ends inclusive.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// EndOfDay returns 23:59:59.999 on t's calendar date.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// StartOfDay returns midnight on t's calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight on the Sunday on or before t. The platform
// uses a Sunday week start; enumeration and record classification both go
// through this helper so the convention cannot drift.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// ParseDate parses a calendar date in the API wire format. The location
// determines which day boundary the date refers to.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHint("Date must be in YYYY-MM-DD format").
			WithReportableDetails(map[string]interface{}{
				"date": value,
			}).
			Mark(ierr.ErrInvalidDateFormat)
	}
	return t, nil
}

// BucketKey renders t into the bucket key string for the granularity.
// Pure: the same instant and granularity always produce the same key.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityHour:
		return t.Format(bucketKeyHourLayout)
	case GranularityDay:
		return t.Format(bucketKeyDayLayout)
	case GranularityWeek:
		return StartOfWeek(t).Format(bucketKeyDayLayout)
	case GranularityMonth:
		return t.Format(bucketKeyMonthLayout)
	case GranularityYear:
		return t.Format(bucketKeyYearLayout)
	default:
		return t.Format(bucketKeyDayLayout)
	}
}

// EnumerateBuckets returns the ordered, gap-free bucket keys covering the
// window at the given granularity. The cursor starts at the window start
// truncated to the granularity's step origin and advances one step at a
// time, so keys are unique and strictly increasing.
func EnumerateBuckets(w DateWindow, g Granularity) ([]string, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	cursor := truncateToStep(w.Start, g)
	keys := make([]string, 0)
	for !cursor.After(w.End) {
		if len(keys) >= MaxBucketCount {
			return nil, ierr.NewError("date range produces too many buckets").
				WithHintf("The requested range exceeds the maximum of %d buckets", MaxBucketCount).
				WithReportableDetails(map[string]interface{}{
					"granularity": g,
					"start":       w.Start,
					"end":         w.End,
				}).
				Mark(ierr.ErrDateRangeTooLarge)
		}
		keys = append(keys, BucketKey(cursor, g))
		cursor = advance(cursor, g)
	}
	return keys, nil
}

func truncateToStep(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityHour:
		y, m, d := t.Date()
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
	case GranularityDay:
		return StartOfDay(t)
	case GranularityWeek:
		return StartOfWeek(t)
	case GranularityMonth:
		y, m, _ := t.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return StartOfDay(t)
	}
}

func advance(t time.Time, g Granularity) time.Time {
	switch g {
	case GranularityHour:
		return t.Add(time.Hour)
	case GranularityDay:
		return t.AddDate(0, 0, 1)
	case GranularityWeek:
		return t.AddDate(0, 0, 7)
	case GranularityMonth:
		return t.AddDate(0, 1, 0)
	case GranularityYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
