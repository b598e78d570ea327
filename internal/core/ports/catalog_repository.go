package ports

import (
	"context"

	"trading/internal/core/domain/model/catalog"
)

// CatalogRepository reads product master data.
type CatalogRepository interface {
	// GetByIDs returns the products with the given ids in one round trip.
	// Unknown ids are left out of the result.
	GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error)
}
