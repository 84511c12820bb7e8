package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"
	gocache "github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"

	ierr "github.com/tourhive/tourhive/internal/errors"
	"github.com/tourhive/tourhive/internal/logger"
	pgclient "github.com/tourhive/tourhive/internal/postgres"
	"github.com/tourhive/tourhive/internal/domain/packages"
)

const packageCacheTTL = 5 * time.Minute

type packageRepository struct {
	client *pgclient.Client
	logger *logger.Logger
	// cache holds package rows by id; display names change rarely and the
	// dashboard hits the same handful of packages on every request.
	cache *gocache.Cache
}

// NewPackageRepository creates a postgres-backed package repository with an
// in-process TTL cache in front of lookups.
func NewPackageRepository(client *pgclient.Client, log *logger.Logger) packages.Repository {
	return &packageRepository{
		client: client,
		logger: log,
		cache:  gocache.New(packageCacheTTL, 2*packageCacheTTL),
	}
}

func (r *packageRepository) GetByIDs(ctx context.Context, ids []string) ([]*packages.Package, error) {
	result := make([]*packages.Package, 0, len(ids))
	missing := make([]string, 0)

	for _, id := range ids {
		if cached, ok := r.cache.Get(id); ok {
			result = append(result, cached.(*packages.Package))
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	rows, err := r.client.DB().QueryContext(ctx, `
		SELECT id, owner_id, name, unit_price
		FROM packages
		WHERE id = ANY($1)`,
		pq.Array(missing))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch packages").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p         packages.Package
			unitPrice string
		)
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &unitPrice); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan package row").
				Mark(ierr.ErrDatabase)
		}
		p.UnitPrice, err = decimal.NewFromString(unitPrice)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Invalid unit price stored for package").
				WithReportableDetails(map[string]interface{}{
					"package_id": p.ID,
				}).
				Mark(ierr.ErrDatabase)
		}
		r.cache.SetDefault(p.ID, &p)
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to iterate package rows").
			Mark(ierr.ErrDatabase)
	}

	return result, nil
}

func (r *packageRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	query := `SELECT COUNT(*) FROM packages`
	args := []interface{}{}
	if ownerID != "" {
		query += ` WHERE owner_id = $1`
		args = append(args, ownerID)
	}

	var count int
	if err := r.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count packages").
			Mark(ierr.ErrDatabase)
	}
	return count, nil
}
