package packages

import (
	"context"
)

// Repository resolves package display data for the dashboard.
type Repository interface {
	// GetByIDs returns the packages for the given ids. Missing ids are
	// silently skipped; callers decide how to render unknown packages.
	GetByIDs(ctx context.Context, ids []string) ([]*Package, error)
	// CountByOwner returns how many packages the owner has. An empty
	// ownerID counts all packages.
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}
