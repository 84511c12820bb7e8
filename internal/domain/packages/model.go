package packages

import (
	"github.com/shopspring/decimal"
)

// Package is a bookable package listing.
type Package struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
