package queries

import (
	"errors"

	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery pages through the lines of one order kind.
//
// Example:
//
//	query, err := NewListOrdersQuery(order.Sale, order.Criteria{AuditState: order.ToAudit, Page: 1})
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d lines\n", len(page.Items), page.Total)
type ListOrdersQuery struct {
	kind     order.Kind
	criteria order.Criteria

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the kind and the criteria.
func NewListOrdersQuery(kind order.Kind, criteria order.Criteria) (ListOrdersQuery, error) {
	if err := errors.Join(kind.Validate(), criteria.Validate()); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{kind: kind, criteria: criteria, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Kind() order.Kind         { return q.kind }
func (q ListOrdersQuery) Criteria() order.Criteria { return q.criteria }

// ListOrdersQueryResponse is one page of lines and the number of lines
// matching the criteria.
type ListOrdersQueryResponse struct {
	Total int64
	Items []OrderItemView
}

// OrderItemView is one line in an order listing.
type OrderItemView struct {
	OrderNo         string
	SubOrderNo      string
	ExOrderNo       string
	Counterparty    string
	Contact         string
	Actor           string
	ProductID       int64
	ProductCode     string
	ProductName     string
	ProductSku      string
	OrderTime       string
	DeliveryTime    string
	OrderState      string
	AuditState      string
	StockState      string
	Creator         string
	LatestAuditTime string
}
