package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tourhive/tourhive/internal/domain/booking"
	ierr "github.com/tourhive/tourhive/internal/errors"
	"github.com/tourhive/tourhive/internal/logger"
	pgclient "github.com/tourhive/tourhive/internal/postgres"
	"github.com/tourhive/tourhive/internal/types"
)

type bookingRepository struct {
	client *pgclient.Client
	logger *logger.Logger
}

// NewBookingRepository creates a postgres-backed booking repository.
func NewBookingRepository(client *pgclient.Client, log *logger.Logger) booking.Repository {
	return &bookingRepository{client: client, logger: log}
}

func (r *bookingRepository) ListByWindows(
	ctx context.Context,
	ownerID string,
	windows []types.DateWindow,
	statuses []types.BookingStatus,
) ([]*booking.Booking, error) {
	if len(windows) == 0 {
		return []*booking.Booking{}, nil
	}

	var (
		conditions []string
		args       []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if ownerID != "" {
		conditions = append(conditions, fmt.Sprintf("b.owner_id = %s", arg(ownerID)))
	}

	if len(statuses) > 0 {
		statusStrings := lo.Map(statuses, func(s types.BookingStatus, _ int) string {
			return string(s)
		})
		conditions = append(conditions, fmt.Sprintf("b.status = ANY(%s)", arg(pq.Array(statusStrings))))
	}

	windowClauses := make([]string, 0, len(windows))
	for _, w := range windows {
		windowClauses = append(windowClauses,
			fmt.Sprintf("(b.booked_at BETWEEN %s AND %s)", arg(w.Start), arg(w.End)))
	}
	conditions = append(conditions, "("+strings.Join(windowClauses, " OR ")+")")

	query := fmt.Sprintf(`
		SELECT b.id, b.package_id, b.owner_id, b.booked_at, b.participant_count, b.status, p.unit_price
		FROM bookings b
		JOIN packages p ON p.id = b.package_id
		WHERE %s
		ORDER BY b.booked_at ASC, b.id ASC`,
		strings.Join(conditions, " AND "))

	rows, err := r.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list bookings").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	bookings := make([]*booking.Booking, 0)
	for rows.Next() {
		var (
			b         booking.Booking
			status    string
			unitPrice string
		)
		if err := rows.Scan(&b.ID, &b.PackageID, &b.OwnerID, &b.BookedAt, &b.ParticipantCount, &status, &unitPrice); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan booking row").
				Mark(ierr.ErrDatabase)
		}
		b.Status = types.BookingStatus(status)
		b.UnitPrice, err = decimal.NewFromString(unitPrice)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid unit price stored for booking").
				WithReportableDetails(map[string]interface{}{
					"booking_id": b.ID,
				}).
				Mark(ierr.ErrDatabase)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate booking rows").
			Mark(ierr.ErrDatabase)
	}

	return bookings, nil
}
