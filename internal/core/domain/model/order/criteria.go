package order

import (
	"errors"
	"fmt"
	"time"

	"trading/internal/pkg/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Criteria filters lines of one order kind. Zero-valued fields do not filter;
// Unknown states mean "any state".
type Criteria struct {
	ExOrderNo     string
	OrderNo       string
	Counterparty  string
	OrderState    OrderState
	AuditState    AuditState
	StockState    StockState
	OrderTimeFrom time.Time
	OrderTimeTo   time.Time

	// Page is 1-based. Zero means the first page.
	Page     int
	PageSize int
	// All disables paging, e.g. to load every line of one order.
	All bool
}

// Validate checks every non-zero filter and the paging window.
func (c Criteria) Validate() error {
	var errList []error

	if c.OrderState != UnknownOrderState {
		errList = append(errList, c.OrderState.Validate())
	}
	if c.AuditState != UnknownAuditState {
		errList = append(errList, c.AuditState.Validate())
	}
	if c.StockState != UnknownStockState {
		errList = append(errList, c.StockState.Validate())
	}
	if !c.OrderTimeFrom.IsZero() && !c.OrderTimeTo.IsZero() && c.OrderTimeTo.Before(c.OrderTimeFrom) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"order time range",
			fmt.Errorf("%s is before %s", c.OrderTimeTo.Format(time.DateOnly), c.OrderTimeFrom.Format(time.DateOnly)),
		))
	}
	if c.Page < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", c.Page, 0, "unbounded"))
	}
	if c.PageSize < 0 || c.PageSize > MaxPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page size", c.PageSize, 0, MaxPageSize))
	}

	return errors.Join(errList...)
}

// Limit is the page size, defaulting to DefaultPageSize. It is -1 when All
// is set, which gorm treats as no limit.
func (c Criteria) Limit() int {
	if c.All {
		return -1
	}
	if c.PageSize == 0 {
		return DefaultPageSize
	}
	return c.PageSize
}

// Offset is the number of lines skipped before the requested page.
func (c Criteria) Offset() int {
	if c.All || c.Page <= 1 {
		return 0
	}
	return (c.Page - 1) * c.Limit()
}
