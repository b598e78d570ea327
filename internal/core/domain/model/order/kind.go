package order

import (
	"fmt"

	"trading/internal/pkg/errs"
)

// Kind distinguishes purchase orders (placed with a supplier by a purchaser)
// from sale orders (placed by a customer, handled by a seller). Both kinds
// share the line model; each is stored in its own table.
type Kind int

const (
	UnknownKind Kind = iota
	Purchase
	Sale
)

var kindNames = map[Kind]string{
	Purchase: "purchase",
	Sale:     "sale",
}

var kindTables = map[Kind]string{
	Purchase: "purchase_orders",
	Sale:     "sale_orders",
}

// TableName returns the table the lines of the kind are stored in, or "" for
// an invalid kind. Every reader and writer of order lines resolves it here.
func (k Kind) TableName() string {
	return kindTables[k]
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Validate rejects UnknownKind and out-of-range values.
func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// CounterpartyRole names the party on the other side of the order.
func (k Kind) CounterpartyRole() string {
	switch k {
	case Purchase:
		return "supplier"
	case Sale:
		return "customer"
	default:
		return "counterparty"
	}
}

// ActorRole names the employee who submits orders of this kind.
func (k Kind) ActorRole() string {
	switch k {
	case Purchase:
		return "purchaser"
	case Sale:
		return "seller"
	default:
		return "actor"
	}
}
