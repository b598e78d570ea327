// Package queries contains the read operations of the trading service.
// Queries never modify state; each is a validated value object handled by a
// dedicated handler.
package queries

import (
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/model/party"
	"trading/internal/core/ports"
)

// OrderLineRepositories provides the line repository of an order kind outside
// of any transaction.
type OrderLineRepositories interface {
	OrderLineRepository(kind order.Kind) ports.OrderLineRepository
}

// Directories bundles the two counterparty directories.
type Directories struct {
	Suppliers ports.CounterpartyRepository
	Customers ports.CounterpartyRepository
}

// For returns the directory serving role.
func (d Directories) For(role party.Role) ports.CounterpartyRepository {
	if role == party.Supplier {
		return d.Suppliers
	}
	return d.Customers
}

// ForKind returns the directory of the counterparties of kind.
func (d Directories) ForKind(kind order.Kind) ports.CounterpartyRepository {
	if kind == order.Purchase {
		return d.Suppliers
	}
	return d.Customers
}
