package service

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tourhive/tourhive/internal/api/dto"
	"github.com/tourhive/tourhive/internal/domain/booking"
	"github.com/tourhive/tourhive/internal/types"
)

// DashboardService computes the owner dashboard: summary totals, bucketed
// graph series and the top packages ranking. The whole computation is
// request-scoped and stateless; storage is read once per request.
type DashboardService interface {
	GetDashboard(ctx context.Context, req dto.GetDashboardRequest) (*dto.DashboardResponse, error)
	GetBookingTrend(ctx context.Context, req dto.GetBookingTrendRequest) (*dto.BookingTrendResponse, error)
}

type dashboardService struct {
	ServiceParams
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(params ServiceParams) DashboardService {
	return &dashboardService{
		ServiceParams: params,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req dto.GetDashboardRequest) (*dto.DashboardResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ownerID := types.GetOwnerID(ctx)

	ranges, err := types.ResolvePeriods(req.PeriodType, req.Dates, s.Config.Location())
	if err != nil {
		return nil, err
	}
	mode := types.ResolveDispatchMode(req.PeriodType, len(ranges))

	totalPackages, err := s.PackageRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	response := &dto.DashboardResponse{
		Summary: dto.DashboardSummary{
			TotalPackages: totalPackages,
			TotalRevenue:  decimal.Zero,
		},
		Graph: dto.DashboardGraph{
			BookingCountGraph: types.NewGraphSeries(0),
			RevenueGraph:      types.NewGraphSeries(0),
		},
	}

	// An empty anchor list is a valid "no data" request: empty series,
	// zero counts, no error.
	if len(ranges) == 0 {
		return response, nil
	}

	windows := lo.Map(ranges, func(r types.ResolvedRange, _ int) types.DateWindow {
		return r.Window()
	})

	// Graphs, revenue and top packages only see successful bookings; the
	// status filter is applied at the fetch so the reducers stay simple.
	booked, err := s.BookingRepo.ListByWindows(ctx, ownerID, windows,
		[]types.BookingStatus{types.BookingStatusBooked})
	if err != nil {
		return nil, err
	}

	// The summary additionally needs cancelled counts, computed over the
	// envelope window spanning all resolved ranges.
	all, err := s.BookingRepo.ListByWindows(ctx, ownerID,
		[]types.DateWindow{envelopeWindow(ranges)}, nil)
	if err != nil {
		return nil, err
	}

	response.Summary = s.buildSummary(totalPackages, all)
	response.Graph = dto.DashboardGraph{
		BookingCountGraph: buildSeries(mode, ranges, booked, countExtractor),
		RevenueGraph:      buildSeries(mode, ranges, booked, revenueExtractor),
	}

	limit := req.TopLimit
	if limit == 0 {
		limit = types.DefaultTopPackagesLimit
		if types.GetUserRole(ctx) == types.UserRoleAdmin {
			limit = types.AdminTopPackagesLimit
		}
	}
	topPackages, err := s.rankTopPackages(ctx, booked, limit)
	if err != nil {
		return nil, err
	}
	response.TopPackages = topPackages

	s.Logger.Debugw("dashboard computed",
		"owner_id", ownerID,
		"period_type", req.PeriodType,
		"ranges", len(ranges),
		"dispatch_mode", mode,
		"bookings", len(booked),
	)

	return response, nil
}

// GetBookingTrend buckets successful bookings over a raw date window at the
// requested granularity. Bucket keys are enumerated up front so empty
// buckets appear with zero values.
func (s *dashboardService) GetBookingTrend(ctx context.Context, req dto.GetBookingTrendRequest) (*dto.BookingTrendResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	loc := s.Config.Location()
	start, err := types.ParseDate(req.StartDate, loc)
	if err != nil {
		return nil, err
	}
	end, err := types.ParseDate(req.EndDate, loc)
	if err != nil {
		return nil, err
	}

	window := types.NewDateWindow(start, end)
	keys, err := types.EnumerateBuckets(window, req.Granularity)
	if err != nil {
		return nil, err
	}

	booked, err := s.BookingRepo.ListByWindows(ctx, types.GetOwnerID(ctx),
		[]types.DateWindow{window},
		[]types.BookingStatus{types.BookingStatusBooked})
	if err != nil {
		return nil, err
	}

	return &dto.BookingTrendResponse{
		Granularity:       req.Granularity,
		BookingCountGraph: buildBucketedSeries(keys, req.Granularity, booked, countExtractor),
		RevenueGraph:      buildBucketedSeries(keys, req.Granularity, booked, revenueExtractor),
	}, nil
}

// buildSummary reduces the record set to scalar totals. Success and revenue
// come from BOOKED bookings; cancelled counts settled refunds only.
func (s *dashboardService) buildSummary(totalPackages int, bookings []*booking.Booking) dto.DashboardSummary {
	summary := dto.DashboardSummary{
		TotalPackages: totalPackages,
		TotalRevenue:  decimal.Zero,
	}

	for _, b := range bookings {
		switch {
		case b.Status.IsSuccess():
			summary.SuccessBookingCount++
			summary.TotalRevenue = summary.TotalRevenue.Add(b.Revenue())
		case b.Status.IsCancelled():
			summary.CancelledBookingCount++
		}
	}

	return summary
}

// rankTopPackages groups bookings by package, ranks descending by count and
// joins display names. Ties keep first-seen order, which is chronological
// since the repository returns bookings ordered by booking time.
func (s *dashboardService) rankTopPackages(ctx context.Context, bookings []*booking.Booking, limit int) ([]types.TopPackage, error) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, b := range bookings {
		if _, seen := counts[b.PackageID]; !seen {
			order = append(order, b.PackageID)
		}
		counts[b.PackageID]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	if len(order) == 0 {
		return nil, nil
	}

	pkgs, err := s.PackageRepo.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(pkgs))
	for _, p := range pkgs {
		names[p.ID] = p.Name
	}

	result := make([]types.TopPackage, 0, len(order))
	for i, id := range order {
		name, ok := names[id]
		if !ok {
			// Package was deleted after booking; keep the row so counts
			// still add up.
			name = id
		}
		result = append(result, types.TopPackage{
			Rank:         i + 1,
			PackageID:    id,
			Name:         name,
			BookingCount: counts[id],
		})
	}

	return result, nil
}

// envelopeWindow returns the single window spanning from the earliest range
// start to the latest range end.
func envelopeWindow(ranges []types.ResolvedRange) types.DateWindow {
	window := ranges[0].Window()
	for _, r := range ranges[1:] {
		if r.Start.Before(window.Start) {
			window.Start = r.Start
		}
		if r.End.After(window.End) {
			window.End = r.End
		}
	}
	return window
}
