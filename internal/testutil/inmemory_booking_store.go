package testutil

import (
	"context"
	"sort"

	"github.com/tourhive/tourhive/internal/domain/booking"
	"github.com/tourhive/tourhive/internal/types"
)

// InMemoryBookingStore implements booking.Repository
type InMemoryBookingStore struct {
	*InMemoryStore[*booking.Booking]
}

// NewInMemoryBookingStore creates a new in-memory booking store
func NewInMemoryBookingStore() *InMemoryBookingStore {
	return &InMemoryBookingStore{
		InMemoryStore: NewInMemoryStore[*booking.Booking](),
	}
}

// Helper to copy booking
func copyBooking(b *booking.Booking) *booking.Booking {
	if b == nil {
		return nil
	}
	copied := *b
	return &copied
}

// Add inserts a booking for test setup.
func (s *InMemoryBookingStore) Add(ctx context.Context, b *booking.Booking) error {
	return s.InMemoryStore.Create(ctx, b.ID, copyBooking(b))
}

func (s *InMemoryBookingStore) ListByWindows(
	ctx context.Context,
	ownerID string,
	windows []types.DateWindow,
	statuses []types.BookingStatus,
) ([]*booking.Booking, error) {
	if len(windows) == 0 {
		return []*booking.Booking{}, nil
	}

	statusSet := make(map[types.BookingStatus]bool, len(statuses))
	for _, st := range statuses {
		statusSet[st] = true
	}

	result := make([]*booking.Booking, 0)
	for _, b := range s.InMemoryStore.All(ctx) {
		if ownerID != "" && b.OwnerID != ownerID {
			continue
		}
		if len(statusSet) > 0 && !statusSet[b.Status] {
			continue
		}
		inWindow := false
		for _, w := range windows {
			if w.Contains(b.BookedAt) {
				inWindow = true
				break
			}
		}
		if !inWindow {
			continue
		}
		result = append(result, copyBooking(b))
	}

	// Mirror the SQL repository's ORDER BY booked_at, id.
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].BookedAt.Equal(result[j].BookedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].BookedAt.Before(result[j].BookedAt)
	})

	return result, nil
}
