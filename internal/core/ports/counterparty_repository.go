package ports

import (
	"context"

	"trading/internal/core/domain/model/party"
)

// CounterpartyRepository reads one counterparty directory, either suppliers
// or customers.
type CounterpartyRepository interface {
	// Get returns the counterparty with the given id or an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*party.Counterparty, error)

	// GetAllNames returns the distinct names of the directory, sorted.
	GetAllNames(ctx context.Context) ([]string, error)

	// GetByName returns every counterparty registered under name, ordered by
	// id. No match yields an empty slice.
	GetByName(ctx context.Context, name string) ([]*party.Counterparty, error)
}

// CounterpartyNameCache keeps the name lists of the counterparty directories
// in memory.
type CounterpartyNameCache interface {
	// Names returns a copy of the cached names and whether the role was
	// ever stored.
	Names(role party.Role) ([]string, bool)

	// Store replaces the cached names of role.
	Store(role party.Role, names []string)
}
