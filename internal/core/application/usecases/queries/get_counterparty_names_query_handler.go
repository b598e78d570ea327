package queries

import (
	"context"

	"trading/internal/core/ports"
)

// GetCounterpartyNamesQueryHandler serves directory names from the cache kept
// warm by the refresh job and falls back to the directory when the cache was
// never filled.
type GetCounterpartyNamesQueryHandler struct {
	cache       ports.CounterpartyNameCache
	directories Directories
}

// NewGetCounterpartyNamesQueryHandler creates a handler for name queries.
func NewGetCounterpartyNamesQueryHandler(
	cache ports.CounterpartyNameCache,
	directories Directories,
) GetCounterpartyNamesQueryHandler {
	return GetCounterpartyNamesQueryHandler{cache: cache, directories: directories}
}

// Handle returns the names of the queried directory, sorted.
func (h GetCounterpartyNamesQueryHandler) Handle(ctx context.Context, query GetCounterpartyNamesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if names, ok := h.cache.Names(query.Role()); ok {
		return names, nil
	}

	names, err := h.directories.For(query.Role()).GetAllNames(ctx)
	if err != nil {
		return nil, err
	}
	h.cache.Store(query.Role(), names)

	return names, nil
}
