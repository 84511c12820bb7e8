package types

import (
	"fmt"
	"time"
)

// Label formatting is deliberately concentrated in this file so the
// aggregation logic stays locale-agnostic. The platform renders labels in
// Thai with Buddhist-era years; swapping the locale means editing only these
// helpers.

var thaiMonthNames = [12]string{
	"มกราคม",
	"กุมภาพันธ์",
	"มีนาคม",
	"เมษายน",
	"พฤษภาคม",
	"มิถุนายน",
	"กรกฎาคม",
	"สิงหาคม",
	"กันยายน",
	"ตุลาคม",
	"พฤศจิกายน",
	"ธันวาคม",
}

// MonthName returns the localized full month name.
func MonthName(m time.Month) string {
	return thaiMonthNames[int(m)-1]
}

// BuddhistYear converts t's year to the Buddhist era.
func BuddhistYear(t time.Time) int {
	return t.Year() + 543
}

// FormatDayMonth renders t as "D/M", used for daily buckets in weekly
// breakdowns.
func FormatDayMonth(t time.Time) string {
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}

// FormatSubWindowLabel renders a 7-day sub-window as "D/M-D/M YYYY" with a
// Buddhist-era year taken from the window start.
func FormatSubWindowLabel(start, end time.Time) string {
	return fmt.Sprintf("%s-%s %d", FormatDayMonth(start), FormatDayMonth(end), BuddhistYear(start))
}

// FormatPeriodLabel renders the display label for a resolved period range.
func FormatPeriodLabel(pt PeriodType, start, end time.Time) string {
	switch pt {
	case PeriodTypeWeekly:
		return fmt.Sprintf("%s - %s %d", FormatDayMonth(start), FormatDayMonth(end), BuddhistYear(start))
	case PeriodTypeMonthly:
		return fmt.Sprintf("%s %d", MonthName(start.Month()), BuddhistYear(start))
	case PeriodTypeYearly:
		return fmt.Sprintf("%d", BuddhistYear(start))
	default:
		return start.Format(DateLayout)
	}
}
