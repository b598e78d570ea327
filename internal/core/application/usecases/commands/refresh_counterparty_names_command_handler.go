package commands

import (
	"context"
	"errors"
	"log/slog"

	"trading/internal/core/domain/model/party"
	"trading/internal/core/ports"
)

// RefreshCounterpartyNamesCommandHandler loads directory names into the name
// cache. A directory that fails keeps its previous cached list.
type RefreshCounterpartyNamesCommandHandler struct {
	cache     ports.CounterpartyNameCache
	suppliers ports.CounterpartyRepository
	customers ports.CounterpartyRepository
	logger    *slog.Logger
}

func NewRefreshCounterpartyNamesCommandHandler(
	cache ports.CounterpartyNameCache,
	suppliers ports.CounterpartyRepository,
	customers ports.CounterpartyRepository,
	logger *slog.Logger,
) RefreshCounterpartyNamesCommandHandler {
	return RefreshCounterpartyNamesCommandHandler{
		cache:     cache,
		suppliers: suppliers,
		customers: customers,
		logger:    logger,
	}
}

// Handle refreshes every directory of the command and joins the failures.
func (h RefreshCounterpartyNamesCommandHandler) Handle(ctx context.Context, cmd RefreshCounterpartyNamesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var errList []error
	for _, role := range cmd.Roles() {
		directory := h.suppliers
		if role == party.Customer {
			directory = h.customers
		}

		names, err := directory.GetAllNames(ctx)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		h.cache.Store(role, names)
		h.logger.DebugContext(ctx, "counterparty names refreshed", "role", role.String(), "count", len(names))
	}

	return errors.Join(errList...)
}
