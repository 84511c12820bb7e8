package booking

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tourhive/tourhive/internal/types"
)

// Booking is a single reservation of a package, read-only from the engine's
// point of view.
type Booking struct {
	ID               string              `json:"id"`
	PackageID        string              `json:"package_id"`
	OwnerID          string              `json:"owner_id"`
	BookedAt         time.Time           `json:"booked_at"`
	ParticipantCount int                 `json:"participant_count"`
	Status           types.BookingStatus `json:"status"`
	UnitPrice        decimal.Decimal     `json:"unit_price"`
}

// Revenue returns the booking's revenue contribution: unit price times
// participant count. Status eligibility is the caller's concern.
func (b *Booking) Revenue() decimal.Decimal {
	return b.UnitPrice.Mul(decimal.NewFromInt(int64(b.ParticipantCount)))
}
