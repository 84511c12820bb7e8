package booking

import (
	"context"

	"github.com/tourhive/tourhive/internal/types"
)

// Repository is the narrow read interface the dashboard engine consumes.
// Records are fetched once per aggregation request across all windows.
type Repository interface {
	// ListByWindows returns bookings for the owner whose BookedAt falls in
	// any of the given windows. An empty status list means no status
	// filtering. Passing an empty ownerID returns bookings across all
	// owners (admin dashboard).
	ListByWindows(ctx context.Context, ownerID string, windows []types.DateWindow, statuses []types.BookingStatus) ([]*Booking, error)
}
