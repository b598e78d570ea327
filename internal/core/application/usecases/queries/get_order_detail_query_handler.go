package queries

import (
	"context"
	"errors"
	"time"

	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/model/party"
	"trading/internal/core/domain/services"
	"trading/internal/core/ports"
	"trading/internal/pkg/errs"
)

const (
	dateLayout     = time.DateOnly
	dateTimeLayout = time.DateTime
)

// GetOrderDetailQueryHandler rebuilds the detail of one order from its
// stored lines, the catalog and the counterparty directory.
//
// Example:
//
//	handler := NewGetOrderDetailQueryHandler(repos, aggregator, catalogRepo, directories)
//	detail, err := handler.Handle(ctx, query)
type GetOrderDetailQueryHandler struct {
	lines       OrderLineRepositories
	aggregator  services.OrderAggregator
	catalog     ports.CatalogRepository
	directories Directories
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(
	lines OrderLineRepositories,
	aggregator services.OrderAggregator,
	catalog ports.CatalogRepository,
	directories Directories,
) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{
		lines:       lines,
		aggregator:  aggregator,
		catalog:     catalog,
		directories: directories,
	}
}

// Handle returns errs.ObjectNotFoundError when no line matches. The header is
// taken from the first line; every line carries the same copy. Lines of
// several submissions sharing an external order number are all listed under
// the header of the first one.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	lines, err := h.lines.OrderLineRepository(query.Kind()).Find(ctx, query.Criteria())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	if len(lines) == 0 {
		param, ref := query.reference()
		return GetOrderDetailQueryResponse{}, errs.NewObjectNotFoundError(param, ref)
	}

	products, err := h.aggregator.Aggregate(ctx, lines, h.catalog)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	first := lines[0]
	detail := toDetail(first, products)

	counterparty, err := h.counterparty(ctx, first)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	if counterparty != nil {
		detail.Mobile = counterparty.Mobile
		detail.Tel = counterparty.Tel
		detail.Address = counterparty.Address
	}

	return detail, nil
}

// counterparty returns nil when the line has no counterparty id or the
// directory no longer knows it.
func (h GetOrderDetailQueryHandler) counterparty(ctx context.Context, line *order.Line) (*party.Counterparty, error) {
	id := line.Header().CounterpartyID
	if id == 0 {
		return nil, nil
	}

	c, err := h.directories.ForKind(line.Kind()).Get(ctx, id)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil, nil
	case errors.Is(err, errs.ErrDependencyFailed):
		return nil, err
	default:
		return nil, errs.NewDependencyFailedErrorWithCause(line.Kind().CounterpartyRole()+" directory", err)
	}
}

func toDetail(line *order.Line, products []services.ProductView) GetOrderDetailQueryResponse {
	header := line.Header()
	return GetOrderDetailQueryResponse{
		Kind:            line.Kind(),
		OrderNo:         line.OrderNo().String(),
		ExOrderNo:       header.ExOrderNo,
		OrderTime:       formatTime(header.OrderTime, dateLayout),
		DeliveryTime:    formatTime(header.DeliveryTime, dateLayout),
		CounterpartyID:  header.CounterpartyID,
		Counterparty:    header.Counterparty,
		Contact:         header.Contact,
		Materials:       header.Materials,
		FavorableRate:   header.FavorableRate,
		FavorableAmount: header.FavorableAmount,
		DueAccount:      header.DueAccount,
		Actor:           header.Actor,
		Remark:          header.Remark,
		OrderState:      line.OrderState().String(),
		AuditState:      line.AuditState().String(),
		StockState:      line.StockState().String(),
		Creator:         line.Creator(),
		CreateTime:      formatTime(line.CreateTime(), dateTimeLayout),
		Products:        products,
	}
}

// formatTime renders zero times as an empty string.
func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
