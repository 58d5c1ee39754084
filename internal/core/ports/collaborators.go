package ports

import (
	"context"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
)

// UserResolver resolves workflow participants. User administration lives
// outside this service; the workflow only needs roles, zones, and
// ownership checks.
type UserResolver interface {
	// ResolveUser returns the active user with the given id, or
	// ObjectNotFoundError.
	ResolveUser(ctx context.Context, id kernel.UUID) (account.User, error)
}

// ProductCatalog resolves catalog products for price snapshots.
type ProductCatalog interface {
	// ResolveProductsByIDs returns the active products among the given ids.
	// Missing or inactive ids are simply absent from the result, letting
	// the caller detect the count mismatch.
	ResolveProductsByIDs(ctx context.Context, ids []kernel.UUID) ([]catalog.Product, error)
}

// ZoneResolver resolves consolidation zones.
type ZoneResolver interface {
	// ResolveZone returns the zone with the given id, or ObjectNotFoundError.
	ResolveZone(ctx context.Context, id kernel.UUID) (catalog.Zone, error)
}
