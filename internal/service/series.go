package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tourhive/tourhive/internal/domain/booking"
	"github.com/tourhive/tourhive/internal/types"
)

// valueExtractor maps a booking to its contribution to a series bucket.
type valueExtractor func(b *booking.Booking) decimal.Decimal

func countExtractor(_ *booking.Booking) decimal.Decimal {
	return decimal.NewFromInt(1)
}

func revenueExtractor(b *booking.Booking) decimal.Decimal {
	return b.Revenue()
}

// buildSeries reduces an already-fetched record set into a graph series
// using the algorithm selected by the dispatch mode. Records are expected to
// be pre-filtered to BOOKED status by the storage fetch.
func buildSeries(
	mode types.PeriodDispatchMode,
	ranges []types.ResolvedRange,
	bookings []*booking.Booking,
	extract valueExtractor,
) types.GraphSeries {
	if len(ranges) == 0 {
		return types.NewGraphSeries(0)
	}

	switch mode {
	case types.DispatchSingleMonth:
		return buildSingleMonthSeries(ranges[0], bookings, extract)
	case types.DispatchSingleYear:
		return buildSingleYearSeries(ranges[0], bookings, extract)
	case types.DispatchWeeklyBreakdown:
		return buildWeeklyBreakdownSeries(ranges, bookings, extract)
	default:
		return buildComparisonSeries(ranges, bookings, extract)
	}
}

// buildSingleMonthSeries breaks one calendar month into 7-day sub-windows
// starting at the range start. The final sub-window is clipped to the range
// end and may span fewer than 7 days.
func buildSingleMonthSeries(r types.ResolvedRange, bookings []*booking.Booking, extract valueExtractor) types.GraphSeries {
	series := types.NewGraphSeries(5)

	cursor := r.Start
	for !cursor.After(r.End) {
		subEnd := types.EndOfDay(cursor.AddDate(0, 0, 6))
		if subEnd.After(r.End) {
			subEnd = r.End
		}
		window := types.DateWindow{Start: cursor, End: subEnd}

		total := decimal.Zero
		for _, b := range bookings {
			if window.Contains(b.BookedAt) {
				total = total.Add(extract(b))
			}
		}

		series.Append(types.FormatSubWindowLabel(cursor, subEnd), total)
		cursor = cursor.AddDate(0, 0, 7)
	}

	return series
}

// buildSingleYearSeries produces the fixed 12 calendar-month buckets. A
// record lands in the bucket matching its calendar month, and only when it
// also falls inside the resolved range bounds.
func buildSingleYearSeries(r types.ResolvedRange, bookings []*booking.Booking, extract valueExtractor) types.GraphSeries {
	totals := make([]decimal.Decimal, 12)
	for i := range totals {
		totals[i] = decimal.Zero
	}

	window := r.Window()
	for _, b := range bookings {
		if !window.Contains(b.BookedAt) {
			continue
		}
		idx := int(b.BookedAt.Month()) - 1
		totals[idx] = totals[idx].Add(extract(b))
	}

	series := types.NewGraphSeries(12)
	for m := time.January; m <= time.December; m++ {
		series.Append(types.MonthName(m), totals[int(m)-1])
	}
	return series
}

// buildWeeklyBreakdownSeries produces 7 daily buckets per range, labeled
// D/M relative to each range's start. A record's bucket index is the whole
// number of days since the range start; only indices 0 through 6 are valid.
// Buckets from multiple ranges are concatenated in input order, never summed
// across ranges.
func buildWeeklyBreakdownSeries(ranges []types.ResolvedRange, bookings []*booking.Booking, extract valueExtractor) types.GraphSeries {
	series := types.NewGraphSeries(7 * len(ranges))

	for _, r := range ranges {
		totals := make([]decimal.Decimal, 7)
		for i := range totals {
			totals[i] = decimal.Zero
		}

		for _, b := range bookings {
			if b.BookedAt.Before(r.Start) {
				continue
			}
			idx := int(b.BookedAt.Sub(r.Start) / (24 * time.Hour))
			if idx < 0 || idx > 6 {
				continue
			}
			totals[idx] = totals[idx].Add(extract(b))
		}

		for i := 0; i < 7; i++ {
			series.Append(types.FormatDayMonth(r.Start.AddDate(0, 0, i)), totals[i])
		}
	}

	return series
}

// buildBucketedSeries reduces records into the pre-enumerated bucket keys of
// a date window. Buckets with no matching records keep a zero value, so the
// series is gap-free. Keys index into a pre-sized totals array; records
// whose bucket key is not in the enumeration (outside the window) are
// dropped.
func buildBucketedSeries(keys []string, g types.Granularity, bookings []*booking.Booking, extract valueExtractor) types.GraphSeries {
	totals := make([]decimal.Decimal, len(keys))
	for i := range totals {
		totals[i] = decimal.Zero
	}

	index := make(map[string]int, len(keys))
	for i, key := range keys {
		index[key] = i
	}

	for _, b := range bookings {
		if i, ok := index[types.BucketKey(b.BookedAt, g)]; ok {
			totals[i] = totals[i].Add(extract(b))
		}
	}

	series := types.NewGraphSeries(len(keys))
	for i, key := range keys {
		series.Append(key, totals[i])
	}
	return series
}

// buildComparisonSeries produces exactly one data point per range, labeled
// with the range's label. Duplicate input ranges produce duplicate points.
func buildComparisonSeries(ranges []types.ResolvedRange, bookings []*booking.Booking, extract valueExtractor) types.GraphSeries {
	series := types.NewGraphSeries(len(ranges))

	for _, r := range ranges {
		window := r.Window()
		total := decimal.Zero
		for _, b := range bookings {
			if window.Contains(b.BookedAt) {
				total = total.Add(extract(b))
			}
		}
		series.Append(r.Label, total)
	}

	return series
}
