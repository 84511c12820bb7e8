package dto

import (
	"github.com/shopspring/decimal"

	ierr "github.com/tourhive/tourhive/internal/errors"
	"github.com/tourhive/tourhive/internal/types"
)

// GetDashboardRequest represents the request for the dashboard API.
// Dates are period anchors: each expands to a full range of the period type
// (e.g. monthly + "2025-03-15" covers all of March 2025).
type GetDashboardRequest struct {
	PeriodType types.PeriodType `form:"period_type" json:"period_type"`
	Dates      []string         `form:"dates" json:"dates"`
	TopLimit   int              `form:"top_limit" json:"top_limit"`
}

// Validate validates the dashboard request and applies defaults.
func (r *GetDashboardRequest) Validate() error {
	if r.PeriodType == "" {
		r.PeriodType = types.DefaultPeriodType
	}
	if err := r.PeriodType.Validate(); err != nil {
		return err
	}

	if r.TopLimit < 0 || r.TopLimit > types.AdminTopPackagesLimit {
		return ierr.NewError("top_limit out of range").
			WithHintf("top_limit must be between 0 and %d", types.AdminTopPackagesLimit).
			WithReportableDetails(map[string]interface{}{
				"top_limit": r.TopLimit,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// GetBookingTrendRequest represents the request for the booking trend API:
// a raw date window bucketed at an explicit granularity, as opposed to the
// anchor-based dashboard graphs.
type GetBookingTrendRequest struct {
	StartDate   string            `form:"start_date" json:"start_date"`
	EndDate     string            `form:"end_date" json:"end_date"`
	Granularity types.Granularity `form:"granularity" json:"granularity"`
}

// Validate validates the booking trend request and applies defaults.
func (r *GetBookingTrendRequest) Validate() error {
	if r.StartDate == "" || r.EndDate == "" {
		return ierr.NewError("start_date and end_date are required").
			WithHint("Provide both start_date and end_date in YYYY-MM-DD format").
			Mark(ierr.ErrValidation)
	}
	if r.Granularity == "" {
		r.Granularity = types.GranularityDay
	}
	return r.Granularity.Validate()
}

// BookingTrendResponse is the bucketed trend payload.
type BookingTrendResponse struct {
	Granularity       types.Granularity `json:"granularity"`
	BookingCountGraph types.GraphSeries `json:"bookingCountGraph"`
	RevenueGraph      types.GraphSeries `json:"revenueGraph"`
}

// DashboardSummary holds the scalar totals for the requested window.
type DashboardSummary struct {
	TotalPackages         int             `json:"totalPackages"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue"`
	SuccessBookingCount   int             `json:"successBookingCount"`
	CancelledBookingCount int             `json:"cancelledBookingCount"`
}

// DashboardGraph holds the two index-aligned graph series.
type DashboardGraph struct {
	BookingCountGraph types.GraphSeries `json:"bookingCountGraph"`
	RevenueGraph      types.GraphSeries `json:"revenueGraph"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Summary     DashboardSummary   `json:"summary"`
	Graph       DashboardGraph     `json:"graph"`
	TopPackages []types.TopPackage `json:"topPackages,omitempty"`
}
