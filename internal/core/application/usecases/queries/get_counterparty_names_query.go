package queries

import (
	"errors"

	"trading/internal/core/domain/model/party"
	"trading/internal/pkg/guard"
)

var (
	ErrGetCounterpartyNamesQueryIsNotConstructed = errors.New(
		"GetCounterpartyNamesQuery must be created via NewGetCounterpartyNamesQuery constructor",
	)
)

// GetCounterpartyNamesQuery lists every name of the supplier or the customer
// directory, e.g. to fill a picker on the order form.
type GetCounterpartyNamesQuery struct {
	role party.Role

	guard guard.ConstructorGuard
}

// NewGetCounterpartyNamesQuery creates a names query for role.
func NewGetCounterpartyNamesQuery(role party.Role) (GetCounterpartyNamesQuery, error) {
	if err := role.Validate(); err != nil {
		return GetCounterpartyNamesQuery{}, err
	}
	return GetCounterpartyNamesQuery{role: role, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCounterpartyNamesQuery) Validate() error {
	return q.guard.Validate(ErrGetCounterpartyNamesQueryIsNotConstructed)
}

func (q GetCounterpartyNamesQuery) Role() party.Role { return q.role }
