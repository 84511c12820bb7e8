package types

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending        BookingStatus = "PENDING"
	BookingStatusBooked         BookingStatus = "BOOKED"
	BookingStatusRefundPending  BookingStatus = "REFUND_PENDING"
	BookingStatusRefunded       BookingStatus = "REFUNDED"
	BookingStatusRejected       BookingStatus = "REJECTED"
	BookingStatusRefundRejected BookingStatus = "REFUND_REJECTED"
)

// IsSuccess reports whether the booking counts as a successful sale.
// Only BOOKED bookings contribute to counts and revenue.
func (s BookingStatus) IsSuccess() bool {
	return s == BookingStatusBooked
}

// IsCancelled reports whether the booking counts as cancelled for summary
// purposes. REFUND_PENDING is deliberately excluded: the refund has not been
// settled yet.
func (s BookingStatus) IsCancelled() bool {
	return s == BookingStatusRefunded || s == BookingStatusRefundRejected
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusBooked, BookingStatusRefundPending,
		BookingStatusRefunded, BookingStatusRejected, BookingStatusRefundRejected:
		return true
	}
	return false
}
