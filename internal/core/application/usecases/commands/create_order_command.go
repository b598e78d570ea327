package commands

import (
	"errors"
	"fmt"
	"strings"

	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/services"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand is the submission of a purchase or sale order with one
// or more product lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(order.Sale, header, products)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderNo, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	kind     order.Kind
	header   order.Header
	products []order.ProductLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates a submission. Money and rate fields are
// optional, but when present they must be non-negative decimals. Every
// violation is reported at once.
func NewCreateOrderCommand(
	kind order.Kind,
	header order.Header,
	products []order.ProductLine,
) (CreateOrderCommand, error) {
	c := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setKind(kind),
		c.setHeader(kind, header),
		c.setProducts(products),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return c, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Kind() order.Kind     { return c.kind }
func (c CreateOrderCommand) Header() order.Header { return c.header }

// Products returns a copy of the submitted product lines.
func (c CreateOrderCommand) Products() []order.ProductLine {
	return append([]order.ProductLine(nil), c.products...)
}

func (c *CreateOrderCommand) setKind(kind order.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setHeader(kind order.Kind, h order.Header) error {
	var errList []error
	if h.ExOrderNo == "" {
		errList = append(errList, errs.NewValueIsRequiredError("exOrderNo"))
	}
	if h.Counterparty == "" {
		errList = append(errList, errs.NewValueIsRequiredError(kind.CounterpartyRole()))
	}
	if h.Actor == "" {
		errList = append(errList, errs.NewValueIsRequiredError(kind.ActorRole()))
	}
	if h.OrderTime.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("orderTime"))
	}
	if !h.DeliveryTime.IsZero() && h.DeliveryTime.Before(h.OrderTime) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"deliveryTime", errors.New("delivery time is before order time")))
	}
	for i, m := range h.Materials {
		if strings.Contains(m, order.MaterialsSeparator) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("materials[%d]", i),
				fmt.Errorf("%q contains the separator %q", m, order.MaterialsSeparator)))
		}
	}
	errList = append(errList,
		validateDecimal("favorableRate", h.FavorableRate),
		validateDecimal("favorableAmount", h.FavorableAmount),
		validateDecimal("dueAccount", h.DueAccount),
	)
	if err := errors.Join(errList...); err != nil {
		return err
	}

	h.Materials = append([]string(nil), h.Materials...)
	c.header = h
	return nil
}

func (c *CreateOrderCommand) setProducts(products []order.ProductLine) error {
	if len(products) == 0 {
		return services.ErrMissingProductLines
	}

	var errList []error
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			errList = append(errList, fmt.Errorf("products[%d]: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.products = append([]order.ProductLine(nil), products...)
	return nil
}

func validateProduct(p order.ProductLine) error {
	var errList []error
	if p.ProductID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"productId", fmt.Errorf("%d is not greater than 0", p.ProductID)))
	}
	if p.Amount <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is not greater than 0", p.Amount)))
	}
	errList = append(errList,
		validateDecimal("unitPrice", p.UnitPrice),
		validateDecimal("salePrice", p.SalePrice),
		validateDecimal("unitPriceWithTax", p.UnitPriceWithTax),
		validateDecimal("salePriceWithTax", p.SalePriceWithTax),
		validateRate("taxRate", p.TaxRate),
	)
	return errors.Join(errList...)
}

// validateDecimal accepts an empty value or a non-negative decimal.
func validateDecimal(name, value string) error {
	if value == "" {
		return nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if d.IsNegative() {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	return nil
}

// validateRate accepts an empty value or a decimal in [0, 1].
func validateRate(name, value string) error {
	if err := validateDecimal(name, value); err != nil || value == "" {
		return err
	}
	if decimal.RequireFromString(value).GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError(name, value, 0, 1)
	}
	return nil
}
