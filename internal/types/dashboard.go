package types

import (
	"github.com/shopspring/decimal"
)

const (
	// DefaultTopPackagesLimit is the top-N cap for the owner dashboard.
	DefaultTopPackagesLimit = 5
	// AdminTopPackagesLimit is the top-N cap for the admin dashboard.
	AdminTopPackagesLimit = 20
	// DefaultPeriodType is used when the caller does not pick one.
	DefaultPeriodType = PeriodTypeMonthly
)

// GraphSeries is one rendered time series: labels and data are index-aligned
// and always the same length.
type GraphSeries struct {
	Labels []string          `json:"labels"`
	Data   []decimal.Decimal `json:"data"`
}

// NewGraphSeries returns an empty series with both slices allocated, so an
// empty result serializes as [] rather than null.
func NewGraphSeries(capacity int) GraphSeries {
	return GraphSeries{
		Labels: make([]string, 0, capacity),
		Data:   make([]decimal.Decimal, 0, capacity),
	}
}

// Append adds one bucket to the series.
func (s *GraphSeries) Append(label string, value decimal.Decimal) {
	s.Labels = append(s.Labels, label)
	s.Data = append(s.Data, value)
}

// TopPackage is one entry in the ranked top-packages list.
type TopPackage struct {
	Rank         int    `json:"rank"`
	PackageID    string `json:"packageId"`
	Name         string `json:"name"`
	BookingCount int    `json:"bookingCount"`
}
