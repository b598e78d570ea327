package order

import (
	"fmt"

	"trading/internal/pkg/errs"
)

// The three lifecycle enums below are independent of each other. Each is a
// closed set: Unknown (0) is never valid, and only the labels listed in the
// label maps may be persisted. New lines are always stamped with Running,
// ToAudit and NoneOut; transitions are owned by the audit and stock workflows.

// OrderState tracks the progress of an order as a whole.
type OrderState int

const (
	UnknownOrderState OrderState = iota
	// Running is the initial state of every new line.
	Running
	Finished
	Closed
)

// AuditState tracks the approval workflow of an order.
type AuditState int

const (
	UnknownAuditState AuditState = iota
	// ToAudit is the initial state of every new line.
	ToAudit
	Auditing
	Approved
	Rejected
)

// StockState tracks how much of a line has left (or entered) the warehouse.
type StockState int

const (
	UnknownStockState StockState = iota
	// NoneOut is the initial state of every new line.
	NoneOut
	PartOut
	AllOut
)

var (
	orderStateLabels = stateLabels[OrderState]{
		Running:  "RUNNING",
		Finished: "FINISHED",
		Closed:   "CLOSED",
	}
	auditStateLabels = stateLabels[AuditState]{
		ToAudit:  "TO_AUDIT",
		Auditing: "AUDITING",
		Approved: "APPROVED",
		Rejected: "REJECTED",
	}
	stockStateLabels = stateLabels[StockState]{
		NoneOut: "NONE_OUT",
		PartOut: "PART_OUT",
		AllOut:  "ALL_OUT",
	}
)

// stateLabels maps every valid value of one enum to its label.
type stateLabels[S ~int] map[S]string

func (m stateLabels[S]) label(s S) string {
	if l, ok := m[s]; ok {
		return l
	}
	return "UNKNOWN"
}

func (m stateLabels[S]) validate(name string, s S) error {
	if _, ok := m[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			name+" is invalid",
			fmt.Errorf("%d is not a valid %s", int(s), name),
		)
	}
	return nil
}

func (m stateLabels[S]) parse(name, label string) (S, error) {
	for s, l := range m {
		if l == label {
			return s, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		name+" is invalid",
		fmt.Errorf("%q is not a valid %s", label, name),
	)
}

// String returns the label, e.g. "RUNNING"; "UNKNOWN" for invalid values.
func (s OrderState) String() string { return orderStateLabels.label(s) }

// Validate rejects Unknown and out-of-range values.
func (s OrderState) Validate() error { return orderStateLabels.validate("order state", s) }

// ParseOrderState maps a stored label back to its OrderState.
func ParseOrderState(label string) (OrderState, error) {
	return orderStateLabels.parse("order state", label)
}

// String returns the label, e.g. "TO_AUDIT"; "UNKNOWN" for invalid values.
func (s AuditState) String() string { return auditStateLabels.label(s) }

// Validate rejects Unknown and out-of-range values.
func (s AuditState) Validate() error { return auditStateLabels.validate("audit state", s) }

// ParseAuditState maps a stored label back to its AuditState.
func ParseAuditState(label string) (AuditState, error) {
	return auditStateLabels.parse("audit state", label)
}

// String returns the label, e.g. "NONE_OUT"; "UNKNOWN" for invalid values.
func (s StockState) String() string { return stockStateLabels.label(s) }

// Validate rejects Unknown and out-of-range values.
func (s StockState) Validate() error { return stockStateLabels.validate("stock state", s) }

// ParseStockState maps a stored label back to its StockState.
func ParseStockState(label string) (StockState, error) {
	return stockStateLabels.parse("stock state", label)
}
