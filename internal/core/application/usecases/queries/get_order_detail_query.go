package queries

import (
	"errors"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/services"
	"trading/internal/pkg/errs"
	"trading/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQueryByExOrderNo or NewGetOrderDetailQueryByOrderNo",
	)
)

// GetOrderDetailQuery loads one order, identified either by the external
// order number or by the parent order number, with all its product lines.
//
// Example:
//
//	query, err := NewGetOrderDetailQueryByExOrderNo(order.Purchase, "EX-2024-001")
//	detail, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderDetailQuery struct {
	kind      order.Kind
	exOrderNo string
	orderNo   kernel.OrderNo

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQueryByExOrderNo creates a detail query keyed by the
// external order number.
func NewGetOrderDetailQueryByExOrderNo(kind order.Kind, exOrderNo string) (GetOrderDetailQuery, error) {
	var errList []error
	errList = append(errList, kind.Validate())
	if exOrderNo == "" {
		errList = append(errList, errs.NewValueIsRequiredError("exOrderNo"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{kind: kind, exOrderNo: exOrderNo, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrderDetailQueryByOrderNo creates a detail query keyed by the parent
// order number.
func NewGetOrderDetailQueryByOrderNo(kind order.Kind, orderNo kernel.OrderNo) (GetOrderDetailQuery, error) {
	if err := errors.Join(kind.Validate(), orderNo.Validate()); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{kind: kind, orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) Kind() order.Kind { return q.kind }

// Criteria selects every line of the requested order.
func (q GetOrderDetailQuery) Criteria() order.Criteria {
	if q.exOrderNo != "" {
		return order.Criteria{ExOrderNo: q.exOrderNo, All: true}
	}
	return order.Criteria{OrderNo: q.orderNo.String(), All: true}
}

// reference names the requested order in not-found errors.
func (q GetOrderDetailQuery) reference() (string, string) {
	if q.exOrderNo != "" {
		return "exOrderNo", q.exOrderNo
	}
	return "orderNo", q.orderNo.String()
}

// GetOrderDetailQueryResponse is the header of an order, the contact details
// of its counterparty and one product view per line.
type GetOrderDetailQueryResponse struct {
	Kind            order.Kind
	OrderNo         string
	ExOrderNo       string
	OrderTime       string
	DeliveryTime    string
	CounterpartyID  int64
	Counterparty    string
	Contact         string
	Mobile          string
	Tel             string
	Address         string
	Materials       []string
	FavorableRate   string
	FavorableAmount string
	DueAccount      string
	Actor           string
	Remark          string
	OrderState      string
	AuditState      string
	StockState      string
	Creator         string
	CreateTime      string
	Products        []services.ProductView
}
