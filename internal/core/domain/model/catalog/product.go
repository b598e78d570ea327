// Package catalog holds the read model of the product catalog. Products are
// owned by the catalog; orders only reference them by id.
package catalog

import (
	"fmt"

	"trading/internal/pkg/errs"
)

// Product is the catalog identity of a product as shown next to order lines.
type Product struct {
	ID         int64
	Code       string
	Name       string
	ProductSku string
	Brand      string
}

// Validate rejects products without a positive id.
func (p Product) Validate() error {
	if p.ID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", p.ID))
	}
	return nil
}

// Index maps products by id. Later duplicates win.
func Index(products []*Product) map[int64]*Product {
	byID := make(map[int64]*Product, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		byID[p.ID] = p
	}
	return byID
}
