package commands_test

import (
	"testing"
	"time"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/services"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeader() order.Header {
	return order.Header{
		ExOrderNo:       "EX-2024-001",
		OrderTime:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DeliveryTime:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Counterparty:    "Acme Supplies",
		Contact:         "Ann",
		Materials:       []string{"a.pdf", "b.pdf"},
		FavorableRate:   "0.05",
		FavorableAmount: "10.00",
		DueAccount:      "990.00",
		Actor:           "buyer01",
	}
}

func validProducts() []order.ProductLine {
	return []order.ProductLine{
		{ProductID: 1, Amount: 10, Unit: "box", UnitPrice: "9.90", TaxRate: "0.13"},
		{ProductID: 2, Amount: 1, Unit: "pcs", SalePrice: "100", SalePriceWithTax: "113"},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(order.Purchase, validHeader(), validProducts())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, order.Purchase, cmd.Kind())
	assert.Equal(t, validHeader(), cmd.Header())
	assert.Equal(t, validProducts(), cmd.Products())
}

func TestNewCreateOrderCommand_CopiesInput(t *testing.T) {
	header := validHeader()
	products := validProducts()

	cmd, err := commands.NewCreateOrderCommand(order.Sale, header, products)
	require.NoError(t, err)

	header.Materials[0] = "changed.pdf"
	products[0].Amount = 99

	assert.Equal(t, "a.pdf", cmd.Header().Materials[0])
	assert.Equal(t, 10, cmd.Products()[0].Amount)
}

func TestNewCreateOrderCommand_MissingProductLines(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.Sale, validHeader(), nil)

	require.ErrorIs(t, err, services.ErrMissingProductLines)
}

func TestNewCreateOrderCommand_InvalidHeader(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(h *order.Header)
		is     error
		msg    string
	}{
		{"missing exOrderNo", func(h *order.Header) { h.ExOrderNo = "" }, errs.ErrValueIsRequired, "exOrderNo"},
		{"missing supplier", func(h *order.Header) { h.Counterparty = "" }, errs.ErrValueIsRequired, "supplier"},
		{"missing purchaser", func(h *order.Header) { h.Actor = "" }, errs.ErrValueIsRequired, "purchaser"},
		{"missing order time", func(h *order.Header) { h.OrderTime = time.Time{} }, errs.ErrValueIsRequired, "orderTime"},
		{"delivery before order", func(h *order.Header) { h.DeliveryTime = h.OrderTime.Add(-time.Hour) }, errs.ErrValueIsInvalid, "deliveryTime"},
		{"bad favorable rate", func(h *order.Header) { h.FavorableRate = "five" }, errs.ErrValueIsInvalid, "favorableRate"},
		{"negative due account", func(h *order.Header) { h.DueAccount = "-1" }, errs.ErrValueIsOutOfRange, "dueAccount"},
		{"material with separator", func(h *order.Header) { h.Materials = []string{"a.pdf", "invoice,2024.pdf"} }, errs.ErrValueIsInvalid, "materials[1]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHeader()
			tc.mutate(&h)

			_, err := commands.NewCreateOrderCommand(order.Purchase, h, validProducts())

			require.ErrorIs(t, err, tc.is)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestNewCreateOrderCommand_SaleRoles(t *testing.T) {
	h := validHeader()
	h.Counterparty = ""
	h.Actor = ""

	_, err := commands.NewCreateOrderCommand(order.Sale, h, validProducts())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer")
	assert.Contains(t, err.Error(), "seller")
}

func TestNewCreateOrderCommand_InvalidProducts(t *testing.T) {
	products := validProducts()
	products[0].ProductID = 0
	products[1].Amount = 0
	products[1].TaxRate = "1.5"

	_, err := commands.NewCreateOrderCommand(order.Purchase, validHeader(), products)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "products[0]")
	assert.Contains(t, err.Error(), "products[1]")
	assert.Contains(t, err.Error(), "taxRate")
}

func TestNewCreateOrderCommand_UnknownKind(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(order.UnknownKind, validHeader(), validProducts())

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
