package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourhive/tourhive/internal/domain/booking"
	"github.com/tourhive/tourhive/internal/types"
)

func mustResolve(t *testing.T, pt types.PeriodType, anchors ...string) []types.ResolvedRange {
	t.Helper()
	ranges, err := types.ResolvePeriods(pt, anchors, time.UTC)
	require.NoError(t, err)
	return ranges
}

func bookedAt(t time.Time, participants int, price int64) *booking.Booking {
	return &booking.Booking{
		ID:               "bk_" + t.Format("20060102150405"),
		PackageID:        "pkg_1",
		OwnerID:          "owner_1",
		BookedAt:         t,
		ParticipantCount: participants,
		Status:           types.BookingStatusBooked,
		UnitPrice:        decimal.NewFromInt(price),
	}
}

func dataStrings(s types.GraphSeries) []string {
	out := make([]string, len(s.Data))
	for i, d := range s.Data {
		out[i] = d.String()
	}
	return out
}

func TestBuildSingleMonthSeries_ClippedSubWindows(t *testing.T) {
	// April has 30 days: ceil(30/7) = 5 sub-windows, the last spanning
	// only the 29th and 30th.
	ranges := mustResolve(t, types.PeriodTypeMonthly, "2025-04-15")
	r := ranges[0]

	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.April, 7, 23, 59, 59, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.April, 30, 12, 0, 0, 0, time.UTC), 1, 100),
	}

	series := buildSeries(types.DispatchSingleMonth, ranges, bookings, countExtractor)
	require.Len(t, series.Labels, 5)
	require.Len(t, series.Data, 5)

	assert.Equal(t, []string{
		"1/4-7/4 2568",
		"8/4-14/4 2568",
		"15/4-21/4 2568",
		"22/4-28/4 2568",
		"29/4-30/4 2568",
	}, series.Labels)

	// The two boundary-straddling bookings land in adjacent sub-windows.
	assert.Equal(t, []string{"1", "1", "0", "0", "1"}, dataStrings(series))

	// Last sub-window is clipped to the month end.
	assert.True(t, r.End.Before(r.Start.AddDate(0, 0, 35)))
}

func TestBuildSingleYearSeries_AlwaysTwelveBuckets(t *testing.T) {
	ranges := mustResolve(t, types.PeriodTypeYearly, "2025-06-01")

	// No records at all: still 12 labeled buckets of zero.
	empty := buildSeries(types.DispatchSingleYear, ranges, nil, countExtractor)
	require.Len(t, empty.Labels, 12)
	require.Len(t, empty.Data, 12)
	for _, d := range empty.Data {
		assert.True(t, d.IsZero())
	}
	assert.Equal(t, types.MonthName(time.January), empty.Labels[0])
	assert.Equal(t, types.MonthName(time.December), empty.Labels[11])
}

func TestBuildSingleYearSeries_EndToEndScenario(t *testing.T) {
	// Three BOOKED bookings: Jan 3, Jan 3, Feb 1, one participant at 100
	// each. January counts 2 and 200 revenue, February 1 and 100.
	ranges := mustResolve(t, types.PeriodTypeYearly, "2025-01-01")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 3, 10, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.January, 3, 15, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC), 1, 100),
	}

	counts := buildSeries(types.DispatchSingleYear, ranges, bookings, countExtractor)
	require.Len(t, counts.Data, 12)
	assert.Equal(t, "2", counts.Data[0].String())
	assert.Equal(t, "1", counts.Data[1].String())
	for i := 2; i < 12; i++ {
		assert.True(t, counts.Data[i].IsZero(), "month %d", i+1)
	}

	revenue := buildSeries(types.DispatchSingleYear, ranges, bookings, revenueExtractor)
	assert.Equal(t, "200", revenue.Data[0].String())
	assert.Equal(t, "100", revenue.Data[1].String())
}

func TestBuildSingleYearSeries_OutOfRangeMonthMatchExcluded(t *testing.T) {
	// A record from another year shares a calendar month but falls outside
	// the resolved range bounds, so it must not contribute.
	ranges := mustResolve(t, types.PeriodTypeYearly, "2025-01-01")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), 1, 100),
	}

	series := buildSeries(types.DispatchSingleYear, ranges, bookings, countExtractor)
	for _, d := range series.Data {
		assert.True(t, d.IsZero())
	}
}

func TestBuildWeeklyBreakdownSeries_DailyBuckets(t *testing.T) {
	ranges := mustResolve(t, types.PeriodTypeWeekly, "2025-01-03")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.January, 3, 23, 59, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.January, 9, 23, 0, 0, 0, time.UTC), 1, 100),
		// Outside the 0-6 day index range: ignored.
		bookedAt(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.January, 2, 10, 0, 0, 0, time.UTC), 1, 100),
	}

	series := buildSeries(types.DispatchWeeklyBreakdown, ranges, bookings, countExtractor)
	assert.Equal(t, []string{"3/1", "4/1", "5/1", "6/1", "7/1", "8/1", "9/1"}, series.Labels)
	assert.Equal(t, []string{"2", "0", "1", "0", "0", "0", "1"}, dataStrings(series))
}

func TestBuildWeeklyBreakdownSeries_MultipleRangesConcatenated(t *testing.T) {
	ranges := mustResolve(t, types.PeriodTypeWeekly, "2025-01-03", "2025-02-03")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 4, 8, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.February, 3, 8, 0, 0, 0, time.UTC), 1, 100),
	}

	series := buildSeries(types.DispatchWeeklyBreakdown, ranges, bookings, countExtractor)
	require.Len(t, series.Labels, 14)
	require.Len(t, series.Data, 14)

	// First range's second day, then the second range's first day.
	assert.Equal(t, "1", series.Data[1].String())
	assert.Equal(t, "1", series.Data[7].String())
	assert.Equal(t, "4/1", series.Labels[1])
	assert.Equal(t, "3/2", series.Labels[7])
}

func TestBuildComparisonSeries_OnePointPerRange(t *testing.T) {
	ranges := mustResolve(t, types.PeriodTypeMonthly, "2025-01-10", "2025-02-10")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), 2, 50),
		bookedAt(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC), 3, 10),
	}

	counts := buildSeries(types.DispatchComparison, ranges, bookings, countExtractor)
	assert.Equal(t, []string{"มกราคม 2568", "กุมภาพันธ์ 2568"}, counts.Labels)
	assert.Equal(t, []string{"2", "1"}, dataStrings(counts))

	revenue := buildSeries(types.DispatchComparison, ranges, bookings, revenueExtractor)
	assert.Equal(t, []string{"200", "30"}, dataStrings(revenue))
}

func TestBuildComparisonSeries_DuplicateRangesDoubleCount(t *testing.T) {
	// Duplicate anchors resolve to duplicate ranges; each scores the same
	// records again. Observed upstream behavior, kept deliberately.
	ranges := mustResolve(t, types.PeriodTypeMonthly, "2025-01-10", "2025-01-15")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), 1, 100),
	}

	series := buildSeries(types.DispatchComparison, ranges, bookings, countExtractor)
	assert.Equal(t, []string{"1", "1"}, dataStrings(series))
}

func TestBuildBucketedSeries_ZeroFilled(t *testing.T) {
	window := types.NewDateWindow(
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC),
	)
	keys, err := types.EnumerateBuckets(window, types.GranularityDay)
	require.NoError(t, err)

	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 1, 8, 0, 0, 0, time.UTC), 1, 100),
		bookedAt(time.Date(2025, time.January, 1, 20, 0, 0, 0, time.UTC), 2, 100),
		bookedAt(time.Date(2025, time.January, 4, 12, 0, 0, 0, time.UTC), 1, 100),
		// Outside the enumerated window: dropped.
		bookedAt(time.Date(2025, time.January, 6, 12, 0, 0, 0, time.UTC), 1, 100),
	}

	counts := buildBucketedSeries(keys, types.GranularityDay, bookings, countExtractor)
	assert.Equal(t, []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05"}, counts.Labels)
	assert.Equal(t, []string{"2", "0", "0", "1", "0"}, dataStrings(counts))

	revenue := buildBucketedSeries(keys, types.GranularityDay, bookings, revenueExtractor)
	assert.Equal(t, []string{"300", "0", "0", "100", "0"}, dataStrings(revenue))
}

func TestBuildSeries_EmptyRanges(t *testing.T) {
	for _, mode := range []types.PeriodDispatchMode{
		types.DispatchSingleMonth,
		types.DispatchSingleYear,
		types.DispatchWeeklyBreakdown,
		types.DispatchComparison,
	} {
		series := buildSeries(mode, nil, nil, countExtractor)
		assert.NotNil(t, series.Labels)
		assert.NotNil(t, series.Data)
		assert.Empty(t, series.Labels)
		assert.Empty(t, series.Data)
	}
}

func TestBuildSeries_LabelsAlignedWithData(t *testing.T) {
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), 1, 100),
	}

	cases := []struct {
		mode   types.PeriodDispatchMode
		ranges []types.ResolvedRange
	}{
		{types.DispatchSingleMonth, mustResolve(t, types.PeriodTypeMonthly, "2025-01-01")},
		{types.DispatchSingleYear, mustResolve(t, types.PeriodTypeYearly, "2025-01-01")},
		{types.DispatchWeeklyBreakdown, mustResolve(t, types.PeriodTypeWeekly, "2025-01-01", "2025-01-08")},
		{types.DispatchComparison, mustResolve(t, types.PeriodTypeMonthly, "2025-01-01", "2025-02-01")},
	}

	for _, tc := range cases {
		series := buildSeries(tc.mode, tc.ranges, bookings, revenueExtractor)
		assert.Equal(t, len(series.Labels), len(series.Data), "mode %s", tc.mode)
	}
}

func TestBuildSeries_Idempotent(t *testing.T) {
	ranges := mustResolve(t, types.PeriodTypeYearly, "2025-01-01")
	bookings := []*booking.Booking{
		bookedAt(time.Date(2025, time.January, 3, 10, 0, 0, 0, time.UTC), 2, 150),
		bookedAt(time.Date(2025, time.August, 20, 10, 0, 0, 0, time.UTC), 1, 75),
	}

	first := buildSeries(types.DispatchSingleYear, ranges, bookings, revenueExtractor)
	second := buildSeries(types.DispatchSingleYear, ranges, bookings, revenueExtractor)
	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, dataStrings(first), dataStrings(second))
}
