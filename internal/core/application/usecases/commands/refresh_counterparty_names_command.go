package commands

import (
	"errors"

	"trading/internal/core/domain/model/party"
	"trading/internal/pkg/guard"
)

var (
	ErrRefreshCounterpartyNamesCommandIsNotConstructed = errors.New(
		"RefreshCounterpartyNamesCommand must be created via NewRefreshCounterpartyNamesCommand constructor",
	)
)

// RefreshCounterpartyNamesCommand reloads the cached name lists of the given
// directories.
type RefreshCounterpartyNamesCommand struct {
	roles []party.Role

	guard guard.ConstructorGuard
}

// NewRefreshCounterpartyNamesCommand creates a refresh of roles, or of both
// directories when roles is empty.
func NewRefreshCounterpartyNamesCommand(roles ...party.Role) (RefreshCounterpartyNamesCommand, error) {
	if len(roles) == 0 {
		roles = []party.Role{party.Supplier, party.Customer}
	}
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return RefreshCounterpartyNamesCommand{}, err
		}
	}
	return RefreshCounterpartyNamesCommand{
		roles: append([]party.Role(nil), roles...),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshCounterpartyNamesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshCounterpartyNamesCommandIsNotConstructed)
}

func (c RefreshCounterpartyNamesCommand) Roles() []party.Role {
	return append([]party.Role(nil), c.roles...)
}
