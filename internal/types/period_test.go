package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/tourhive/tourhive/internal/errors"
)

func TestResolvePeriods_Weekly(t *testing.T) {
	ranges, err := ResolvePeriods(PeriodTypeWeekly, []string{"2025-01-03"}, time.UTC)
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	r := ranges[0]
	assert.Equal(t, time.Date(2025, time.January, 3, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, EndOfDay(time.Date(2025, time.January, 9, 0, 0, 0, 0, time.UTC)), r.End)
	// Anchored weeks do not snap to a week-of-year boundary.
	assert.Equal(t, time.Friday, r.Start.Weekday())
	assert.Equal(t, "3/1 - 9/1 2568", r.Label)
}

func TestResolvePeriods_Monthly(t *testing.T) {
	ranges, err := ResolvePeriods(PeriodTypeMonthly, []string{"2025-02-10"}, time.UTC)
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	r := ranges[0]
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, EndOfDay(time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)), r.End)
	assert.Equal(t, "กุมภาพันธ์ 2568", r.Label)
}

func TestResolvePeriods_Yearly(t *testing.T) {
	ranges, err := ResolvePeriods(PeriodTypeYearly, []string{"2025-06-15"}, time.UTC)
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	r := ranges[0]
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, EndOfDay(time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)), r.End)
	assert.Equal(t, "2568", r.Label)
}

func TestResolvePeriods_EmptyAnchors(t *testing.T) {
	ranges, err := ResolvePeriods(PeriodTypeMonthly, nil, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestResolvePeriods_PreservesOrderAndDuplicates(t *testing.T) {
	ranges, err := ResolvePeriods(PeriodTypeMonthly,
		[]string{"2025-03-10", "2025-01-05", "2025-03-20"}, time.UTC)
	require.NoError(t, err)
	require.Len(t, ranges, 3)

	// Output order matches input order; anchors in the same month resolve
	// to identical ranges and are not deduplicated.
	assert.Equal(t, time.March, ranges[0].Start.Month())
	assert.Equal(t, time.January, ranges[1].Start.Month())
	assert.Equal(t, ranges[0], ranges[2])
}

func TestResolvePeriods_InvalidAnchor(t *testing.T) {
	_, err := ResolvePeriods(PeriodTypeMonthly, []string{"2025-01-05", "10/03/2025"}, time.UTC)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidDateFormat(err))
}

func TestResolvePeriods_InvalidPeriodType(t *testing.T) {
	_, err := ResolvePeriods(PeriodType("quarterly"), []string{"2025-01-05"}, time.UTC)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestResolveDispatchMode(t *testing.T) {
	tests := []struct {
		name       string
		periodType PeriodType
		rangeCount int
		expected   PeriodDispatchMode
	}{
		{name: "weekly single", periodType: PeriodTypeWeekly, rangeCount: 1, expected: DispatchWeeklyBreakdown},
		{name: "weekly multiple", periodType: PeriodTypeWeekly, rangeCount: 3, expected: DispatchWeeklyBreakdown},
		{name: "monthly single", periodType: PeriodTypeMonthly, rangeCount: 1, expected: DispatchSingleMonth},
		{name: "monthly multiple", periodType: PeriodTypeMonthly, rangeCount: 2, expected: DispatchComparison},
		{name: "yearly single", periodType: PeriodTypeYearly, rangeCount: 1, expected: DispatchSingleYear},
		{name: "yearly multiple", periodType: PeriodTypeYearly, rangeCount: 4, expected: DispatchComparison},
		{name: "monthly zero ranges", periodType: PeriodTypeMonthly, rangeCount: 0, expected: DispatchComparison},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveDispatchMode(tt.periodType, tt.rangeCount))
		})
	}
}

func TestFormatPeriodLabel_BuddhistEra(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2568, BuddhistYear(start))
	assert.Equal(t, "มกราคม 2568", FormatPeriodLabel(PeriodTypeMonthly, start, start.AddDate(0, 1, -1)))
}

func TestFormatSubWindowLabel(t *testing.T) {
	start := time.Date(2025, time.April, 29, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "29/4-30/4 2568", FormatSubWindowLabel(start, end))
}
