package testutil

import (
	"context"

	"github.com/tourhive/tourhive/internal/domain/packages"
)

// InMemoryPackageStore implements packages.Repository
type InMemoryPackageStore struct {
	*InMemoryStore[*packages.Package]
}

// NewInMemoryPackageStore creates a new in-memory package store
func NewInMemoryPackageStore() *InMemoryPackageStore {
	return &InMemoryPackageStore{
		InMemoryStore: NewInMemoryStore[*packages.Package](),
	}
}

func copyPackage(p *packages.Package) *packages.Package {
	if p == nil {
		return nil
	}
	copied := *p
	return &copied
}

// Add inserts a package for test setup.
func (s *InMemoryPackageStore) Add(ctx context.Context, p *packages.Package) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyPackage(p))
}

func (s *InMemoryPackageStore) GetByIDs(ctx context.Context, ids []string) ([]*packages.Package, error) {
	result := make([]*packages.Package, 0, len(ids))
	for _, id := range ids {
		p, err := s.InMemoryStore.Get(ctx, id)
		if err != nil {
			// Missing ids are skipped, matching the SQL repository.
			continue
		}
		result = append(result, copyPackage(p))
	}
	return result, nil
}

func (s *InMemoryPackageStore) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, p := range s.InMemoryStore.All(ctx) {
		if ownerID == "" || p.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}
