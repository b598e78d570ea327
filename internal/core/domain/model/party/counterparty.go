// Package party models the counterparties orders are placed with: suppliers
// for purchase orders and customers for sale orders. Both share one shape and
// live in separate directories.
package party

import (
	"fmt"

	"trading/internal/pkg/errs"
)

// Role selects a counterparty directory.
type Role int

const (
	UnknownRole Role = iota
	Supplier
	Customer
)

func (r Role) String() string {
	switch r {
	case Supplier:
		return "supplier"
	case Customer:
		return "customer"
	default:
		return "unknown"
	}
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if r != Supplier && r != Customer {
		return errs.NewValueIsInvalidErrorWithCause("counterparty role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Counterparty is a supplier or a customer with its contact details.
type Counterparty struct {
	ID      int64
	Name    string
	Contact string
	Mobile  string
	Tel     string
	Address string
}

// Match picks the counterparty a submission refers to: the first one whose
// contact equals contact, else the first one. It returns false for an empty
// list.
func Match(candidates []*Counterparty, contact string) (*Counterparty, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	if contact != "" {
		for _, c := range candidates {
			if c.Contact == contact {
				return c, true
			}
		}
	}
	return candidates[0], true
}
