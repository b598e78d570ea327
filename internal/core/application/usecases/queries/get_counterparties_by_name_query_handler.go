package queries

import (
	"context"
)

// GetCounterpartiesByNameQueryHandler looks contacts up in a directory.
type GetCounterpartiesByNameQueryHandler struct {
	directories Directories
}

// NewGetCounterpartiesByNameQueryHandler creates a handler for contact queries.
func NewGetCounterpartiesByNameQueryHandler(directories Directories) GetCounterpartiesByNameQueryHandler {
	return GetCounterpartiesByNameQueryHandler{directories: directories}
}

// Handle returns the matching entries ordered by id; an unknown name yields
// an empty slice.
func (h GetCounterpartiesByNameQueryHandler) Handle(
	ctx context.Context,
	query GetCounterpartiesByNameQuery,
) ([]CounterpartyView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.directories.For(query.Role()).GetByName(ctx, query.Name())
	if err != nil {
		return nil, err
	}

	views := make([]CounterpartyView, 0, len(found))
	for _, c := range found {
		views = append(views, CounterpartyView{
			ID:      c.ID,
			Name:    c.Name,
			Contact: c.Contact,
			Mobile:  c.Mobile,
			Tel:     c.Tel,
			Address: c.Address,
		})
	}
	return views, nil
}
