package queries

import (
	"errors"

	"trading/internal/core/domain/model/party"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

var (
	ErrGetCounterpartiesByNameQueryIsNotConstructed = errors.New(
		"GetCounterpartiesByNameQuery must be created via NewGetCounterpartiesByNameQuery constructor",
	)
)

// GetCounterpartiesByNameQuery returns the contact entries registered under
// one supplier or customer name.
type GetCounterpartiesByNameQuery struct {
	role party.Role
	name string

	guard guard.ConstructorGuard
}

// NewGetCounterpartiesByNameQuery creates a contacts query.
func NewGetCounterpartiesByNameQuery(role party.Role, name string) (GetCounterpartiesByNameQuery, error) {
	var errList []error
	errList = append(errList, role.Validate())
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetCounterpartiesByNameQuery{}, err
	}
	return GetCounterpartiesByNameQuery{role: role, name: name, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCounterpartiesByNameQuery) Validate() error {
	return q.guard.Validate(ErrGetCounterpartiesByNameQueryIsNotConstructed)
}

func (q GetCounterpartiesByNameQuery) Role() party.Role { return q.role }
func (q GetCounterpartiesByNameQuery) Name() string     { return q.name }

// CounterpartyView is one contact entry of a directory.
type CounterpartyView struct {
	ID      int64
	Name    string
	Contact string
	Mobile  string
	Tel     string
	Address string
}
