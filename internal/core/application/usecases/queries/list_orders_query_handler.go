package queries

import (
	"context"
	"strings"
	"time"

	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists order lines straight from the order tables.
// Uses direct SQL queries for read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderItemRow struct {
	OrderNo      string
	SubOrderNo   string
	ExOrderNo    string
	Counterparty string
	Contact      string
	Actor        string
	ProductID    int64
	ProductCode  string
	ProductName  string
	ProductSku   string
	OrderTime    time.Time
	DeliveryTime time.Time
	OrderState   string
	AuditState   string
	StockState   string
	Creator      string
	UpdateTime   time.Time
}

// Handle returns the requested page, newest order first, lines of one order
// in submission order.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	table := query.Kind().TableName()
	where, args := listConditions(query.Criteria())

	var total int64
	if err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM "+table+where, args...,
	).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, errs.NewDependencyFailedErrorWithCause("order store", err)
	}

	c := query.Criteria()
	paging := ""
	if !c.All {
		paging = "LIMIT ? OFFSET ?"
		args = append(args, c.Limit(), c.Offset())
	}
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_no,
			sub_order_no,
			ex_order_no,
			counterparty,
			contact,
			actor,
			product_id,
			product_code,
			product_name,
			product_sku,
			order_time,
			delivery_time,
			order_state,
			audit_state,
			stock_state,
			creator,
			update_time
		FROM `+table+where+`
		ORDER BY order_time DESC, order_no, id
		`+paging, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, errs.NewDependencyFailedErrorWithCause("order store", err)
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var row orderItemRow
		if err = h.db.ScanRows(rows, &row); err != nil {
			return ListOrdersQueryResponse{}, errs.NewDependencyFailedErrorWithCause("order store", err)
		}
		items = append(items, toItemView(row))
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, errs.NewDependencyFailedErrorWithCause("order store", err)
	}

	return ListOrdersQueryResponse{Total: total, Items: items}, nil
}

// listConditions renders the non-zero filters of c as a WHERE clause.
func listConditions(c order.Criteria) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		conds = append(conds, cond)
		args = append(args, arg)
	}

	if c.ExOrderNo != "" {
		add("ex_order_no = ?", c.ExOrderNo)
	}
	if c.OrderNo != "" {
		add("order_no = ?", c.OrderNo)
	}
	if c.Counterparty != "" {
		add("counterparty LIKE ?", "%"+c.Counterparty+"%")
	}
	if c.OrderState != order.UnknownOrderState {
		add("order_state = ?", c.OrderState.String())
	}
	if c.AuditState != order.UnknownAuditState {
		add("audit_state = ?", c.AuditState.String())
	}
	if c.StockState != order.UnknownStockState {
		add("stock_state = ?", c.StockState.String())
	}
	if !c.OrderTimeFrom.IsZero() {
		add("order_time >= ?", c.OrderTimeFrom)
	}
	if !c.OrderTimeTo.IsZero() {
		add("order_time <= ?", c.OrderTimeTo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func toItemView(row orderItemRow) OrderItemView {
	return OrderItemView{
		OrderNo:         row.OrderNo,
		SubOrderNo:      row.SubOrderNo,
		ExOrderNo:       row.ExOrderNo,
		Counterparty:    row.Counterparty,
		Contact:         row.Contact,
		Actor:           row.Actor,
		ProductID:       row.ProductID,
		ProductCode:     row.ProductCode,
		ProductName:     row.ProductName,
		ProductSku:      row.ProductSku,
		OrderTime:       formatTime(row.OrderTime, dateLayout),
		DeliveryTime:    formatTime(row.DeliveryTime, dateLayout),
		OrderState:      row.OrderState,
		AuditState:      row.AuditState,
		StockState:      row.StockState,
		Creator:         row.Creator,
		LatestAuditTime: formatTime(row.UpdateTime, dateTimeLayout),
	}
}
