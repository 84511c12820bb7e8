package types

import (
	"time"

	ierr "github.com/tourhive/tourhive/internal/errors"
)

// PeriodType is the semantic period a dashboard anchor date expands to.
type PeriodType string

const (
	PeriodTypeWeekly  PeriodType = "weekly"
	PeriodTypeMonthly PeriodType = "monthly"
	PeriodTypeYearly  PeriodType = "yearly"
)

func (p PeriodType) Validate() error {
	switch p {
	case PeriodTypeWeekly, PeriodTypeMonthly, PeriodTypeYearly:
		return nil
	}
	return ierr.NewErrorf("invalid period type: %s", p).
		WithHint("period type must be one of weekly, monthly, yearly").
		Mark(ierr.ErrValidation)
}

// ResolvedRange is a concrete inclusive time range expanded from a period
// anchor, with its display label.
type ResolvedRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Label string    `json:"label"`
}

// Window returns the range as a DateWindow.
func (r ResolvedRange) Window() DateWindow {
	return DateWindow{Start: r.Start, End: r.End}
}

// ResolvePeriods expands anchor dates into concrete ranges:
//
//	weekly  → 7 contiguous days starting at the anchor (no week snapping)
//	monthly → first to last calendar day of the anchor's month
//	yearly  → Jan 1 to Dec 31 of the anchor's year
//
// Output order matches input order. An empty anchor list resolves to an
// empty slice, which downstream turns into empty series rather than an
// error. Duplicate anchors resolve to duplicate ranges; dedup is left to
// callers that want it.
func ResolvePeriods(pt PeriodType, anchors []string, loc *time.Location) ([]ResolvedRange, error) {
	if err := pt.Validate(); err != nil {
		return nil, err
	}

	ranges := make([]ResolvedRange, 0, len(anchors))
	for _, anchor := range anchors {
		date, err := ParseDate(anchor, loc)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, resolvePeriod(pt, date))
	}
	return ranges, nil
}

func resolvePeriod(pt PeriodType, date time.Time) ResolvedRange {
	var start, end time.Time
	switch pt {
	case PeriodTypeWeekly:
		start = StartOfDay(date)
		end = EndOfDay(start.AddDate(0, 0, 6))
	case PeriodTypeMonthly:
		y, m, _ := date.Date()
		start = time.Date(y, m, 1, 0, 0, 0, 0, date.Location())
		end = EndOfDay(start.AddDate(0, 1, -1))
	case PeriodTypeYearly:
		start = time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
		end = EndOfDay(time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location()))
	}

	return ResolvedRange{
		Start: start,
		End:   end,
		Label: FormatPeriodLabel(pt, start, end),
	}
}

// PeriodDispatchMode selects which series-building algorithm applies to a
// resolved set of ranges. Resolving it once up front keeps the four
// algorithms independently testable instead of hiding the choice in nested
// conditionals.
type PeriodDispatchMode string

const (
	// DispatchSingleMonth breaks one calendar month into clipped 7-day
	// sub-windows.
	DispatchSingleMonth PeriodDispatchMode = "single_month"
	// DispatchSingleYear produces the fixed 12 calendar-month buckets.
	DispatchSingleYear PeriodDispatchMode = "single_year"
	// DispatchWeeklyBreakdown produces 7 daily buckets per range.
	DispatchWeeklyBreakdown PeriodDispatchMode = "weekly_breakdown"
	// DispatchComparison produces exactly one point per range.
	DispatchComparison PeriodDispatchMode = "comparison"
)

// ResolveDispatchMode maps (period type, range count) to the series
// algorithm. Weekly always breaks down per day regardless of range count;
// a single monthly or yearly range gets its sub-granularity breakdown;
// multiple monthly or yearly ranges compare period against period.
func ResolveDispatchMode(pt PeriodType, rangeCount int) PeriodDispatchMode {
	switch {
	case pt == PeriodTypeWeekly:
		return DispatchWeeklyBreakdown
	case pt == PeriodTypeMonthly && rangeCount == 1:
		return DispatchSingleMonth
	case pt == PeriodTypeYearly && rangeCount == 1:
		return DispatchSingleYear
	default:
		return DispatchComparison
	}
}
