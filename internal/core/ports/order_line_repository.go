// Package ports defines the contracts between the trading core and its
// infrastructure: order line storage, the product catalog, the counterparty
// directories and the transaction boundary.
package ports

import (
	"context"

	"trading/internal/core/domain/model/order"
)

// OrderLineRepository defines the persistence contract for order lines of one
// order kind.
type OrderLineRepository interface {
	// Add stores all lines of one submission in a single batch insert. A line
	// whose order number and sub order number already exist is rejected with
	// errs.ValueIsNotUniqueError.
	Add(ctx context.Context, lines []*order.Line) error

	// Find returns the lines matching the criteria, ordered by order time
	// (newest first), then order number and sub order index. No match yields
	// an empty slice, not an error.
	Find(ctx context.Context, criteria order.Criteria) ([]*order.Line, error)
}
