package commands

import (
	"context"
	"errors"
	"log/slog"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/model/party"
	"trading/internal/core/domain/services"
	"trading/internal/core/ports"
	"trading/internal/pkg/errs"
)

// CreateOrderCommandHandler stores a new purchase or sale order. It resolves
// the counterparty in its directory, generates the parent order number,
// decomposes the submission into lines and saves all of them in one
// transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, decomposer, suppliers, customers, logger)
//	orderNo, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // the counterparty is not registered
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	decomposer services.OrderDecomposer
	suppliers  ports.CounterpartyRepository
	customers  ports.CounterpartyRepository
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order submissions.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	decomposer services.OrderDecomposer,
	suppliers ports.CounterpartyRepository,
	customers ports.CounterpartyRepository,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		decomposer: decomposer,
		suppliers:  suppliers,
		customers:  customers,
		logger:     logger,
	}
}

// Handle processes the submission and returns the new parent order number.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.OrderNo, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderNo{}, err
	}

	header := cmd.Header()
	counterparty, err := h.resolveCounterparty(ctx, cmd.Kind(), header)
	if err != nil {
		return kernel.OrderNo{}, err
	}
	header.CounterpartyID = counterparty.ID

	orderNo := kernel.NewOrderNo()
	lines, err := h.decomposer.Decompose(cmd.Kind(), header, cmd.Products(), orderNo)
	if err != nil {
		return kernel.OrderNo{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderNo{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderLineRepository(cmd.Kind()).Add(ctx, lines); err != nil {
		return kernel.OrderNo{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderNo{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		slog.String("kind", cmd.Kind().String()),
		slog.String("orderNo", orderNo.String()),
		slog.String("exOrderNo", header.ExOrderNo),
		slog.Int("lines", len(lines)),
	)
	return orderNo, nil
}

func (h *CreateOrderCommandHandler) resolveCounterparty(
	ctx context.Context,
	kind order.Kind,
	header order.Header,
) (*party.Counterparty, error) {
	directory := h.customers
	if kind == order.Purchase {
		directory = h.suppliers
	}

	candidates, err := directory.GetByName(ctx, header.Counterparty)
	if err != nil {
		var dependencyErr *errs.DependencyFailedError
		if errors.As(err, &dependencyErr) {
			return nil, err
		}
		return nil, errs.NewDependencyFailedErrorWithCause(kind.CounterpartyRole()+" directory", err)
	}

	counterparty, ok := party.Match(candidates, header.Contact)
	if !ok {
		return nil, errs.NewObjectNotFoundError(kind.CounterpartyRole(), header.Counterparty)
	}
	return counterparty, nil
}
