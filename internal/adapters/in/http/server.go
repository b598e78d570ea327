package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"trading/internal/core/application/usecases/commands"
	"trading/internal/core/application/usecases/queries"
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/core/domain/model/party"
	"trading/internal/generated/servers"
	"trading/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler

	// Query handlers
	listOrdersHandler           queries.ListOrdersQueryHandler
	getOrderDetailHandler       queries.GetOrderDetailQueryHandler
	getCounterpartyNamesHandler queries.GetCounterpartyNamesQueryHandler
	getCounterpartiesHandler    queries.GetCounterpartiesByNameQueryHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	getCounterpartyNamesHandler queries.GetCounterpartyNamesQueryHandler,
	getCounterpartiesHandler queries.GetCounterpartiesByNameQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		listOrdersHandler:           listOrdersHandler,
		getOrderDetailHandler:       getOrderDetailHandler,
		getCounterpartyNamesHandler: getCounterpartyNamesHandler,
		getCounterpartiesHandler:    getCounterpartiesHandler,
		logger:                      logger,
	}
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	return s.createOrder(ctx, order.Purchase)
}

// CreateSaleOrder handles POST /api/v1/sale-orders.
func (s *Server) CreateSaleOrder(ctx echo.Context) error {
	return s.createOrder(ctx, order.Sale)
}

// ListPurchaseOrders handles GET /api/v1/purchase-orders.
func (s *Server) ListPurchaseOrders(ctx echo.Context, params servers.ListPurchaseOrdersParams) error {
	return s.listOrders(ctx, order.Purchase, params)
}

// ListSaleOrders handles GET /api/v1/sale-orders.
func (s *Server) ListSaleOrders(ctx echo.Context, params servers.ListSaleOrdersParams) error {
	return s.listOrders(ctx, order.Sale, servers.ListPurchaseOrdersParams(params))
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/{exOrderNo}.
func (s *Server) GetPurchaseOrder(ctx echo.Context, key servers.OrderKey, params servers.GetPurchaseOrderParams) error {
	return s.getOrder(ctx, order.Purchase, key, params.By)
}

// GetSaleOrder handles GET /api/v1/sale-orders/{exOrderNo}.
func (s *Server) GetSaleOrder(ctx echo.Context, key servers.OrderKey, params servers.GetSaleOrderParams) error {
	return s.getOrder(ctx, order.Sale, key, params.By)
}

// GetCustomerNames handles GET /api/v1/customers/names.
func (s *Server) GetCustomerNames(ctx echo.Context) error {
	return s.counterpartyNames(ctx, party.Customer)
}

// GetSupplierNames handles GET /api/v1/suppliers/names.
func (s *Server) GetSupplierNames(ctx echo.Context) error {
	return s.counterpartyNames(ctx, party.Supplier)
}

// GetCustomers handles GET /api/v1/customers?name=.
func (s *Server) GetCustomers(ctx echo.Context, params servers.GetCustomersParams) error {
	return s.counterpartiesByName(ctx, party.Customer, params.Name)
}

// GetSuppliers handles GET /api/v1/suppliers?name=.
func (s *Server) GetSuppliers(ctx echo.Context, params servers.GetSuppliersParams) error {
	return s.counterpartiesByName(ctx, party.Supplier, params.Name)
}

func (s *Server) createOrder(ctx echo.Context, kind order.Kind) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kind, toHeader(body), toProducts(body.Products))
	if err != nil {
		return s.fail(ctx, err)
	}

	orderNo, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderNo: orderNo.String()})
}

func (s *Server) listOrders(ctx echo.Context, kind order.Kind, params servers.ListPurchaseOrdersParams) error {
	criteria, err := toCriteria(params)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(kind, criteria)
	if err != nil {
		return s.fail(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := servers.OrderPage{
		Total: page.Total,
		Items: make([]servers.OrderItem, len(page.Items)),
	}
	for i, item := range page.Items {
		response.Items[i] = toOrderItem(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) getOrder(ctx echo.Context, kind order.Kind, key string, by *servers.By) error {
	var (
		query queries.GetOrderDetailQuery
		err   error
	)
	if by != nil && *by == servers.DetailKeyOrderNo {
		var orderNo kernel.OrderNo
		if orderNo, err = kernel.OrderNoFromString(key); err == nil {
			query, err = queries.NewGetOrderDetailQueryByOrderNo(kind, orderNo)
		}
	} else {
		query, err = queries.NewGetOrderDetailQueryByExOrderNo(kind, key)
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetail(detail))
}

func (s *Server) counterpartyNames(ctx echo.Context, role party.Role) error {
	query, err := queries.NewGetCounterpartyNamesQuery(role)
	if err != nil {
		return s.fail(ctx, err)
	}

	names, err := s.getCounterpartyNamesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, names)
}

func (s *Server) counterpartiesByName(ctx echo.Context, role party.Role, name string) error {
	query, err := queries.NewGetCounterpartiesByNameQuery(role, name)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.getCounterpartiesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Counterparty, len(views))
	for i, v := range views {
		response[i] = servers.Counterparty{
			Id:      v.ID,
			Name:    v.Name,
			Contact: optional(v.Contact),
			Mobile:  optional(v.Mobile),
			Tel:     optional(v.Tel),
			Address: optional(v.Address),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// fail writes the error response matching the class of err.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", status,
			"error", err,
		)
		if status == http.StatusInternalServerError {
			message = "Internal server error"
		}
	}

	return ctx.JSON(status, servers.Error{Code: int32(status), Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrDependencyFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsNotUnique):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toCriteria(p servers.ListPurchaseOrdersParams) (order.Criteria, error) {
	c := order.Criteria{
		ExOrderNo:    value(p.ExOrderNo),
		OrderNo:      value(p.OrderNo),
		Counterparty: value(p.Counterparty),
		Page:         value(p.Page),
		PageSize:     value(p.PageSize),
	}

	var errList []error
	if p.OrderState != nil {
		s, err := order.ParseOrderState(string(*p.OrderState))
		errList = append(errList, err)
		c.OrderState = s
	}
	if p.AuditState != nil {
		s, err := order.ParseAuditState(string(*p.AuditState))
		errList = append(errList, err)
		c.AuditState = s
	}
	if p.StockState != nil {
		s, err := order.ParseStockState(string(*p.StockState))
		errList = append(errList, err)
		c.StockState = s
	}
	if p.OrderTimeFrom != nil {
		c.OrderTimeFrom = p.OrderTimeFrom.Time
	}
	if p.OrderTimeTo != nil {
		// the whole day is included
		c.OrderTimeTo = p.OrderTimeTo.Time.AddDate(0, 0, 1).Add(-time.Microsecond)
	}

	return c, errors.Join(errList...)
}

func toHeader(body servers.NewOrder) order.Header {
	h := order.Header{
		ExOrderNo:       body.ExOrderNo,
		OrderTime:       body.OrderTime.Time,
		Counterparty:    body.Counterparty,
		Contact:         value(body.Contact),
		FavorableRate:   value(body.FavorableRate),
		FavorableAmount: value(body.FavorableAmount),
		DueAccount:      value(body.DueAccount),
		Actor:           body.Actor,
		Remark:          value(body.Remark),
	}
	if body.DeliveryTime != nil {
		h.DeliveryTime = body.DeliveryTime.Time
	}
	if body.Materials != nil {
		h.Materials = append([]string(nil), *body.Materials...)
	}
	return h
}

func toProducts(products []servers.NewProduct) []order.ProductLine {
	lines := make([]order.ProductLine, len(products))
	for i, p := range products {
		lines[i] = order.ProductLine{
			ProductID:        p.ProductId,
			Code:             value(p.Code),
			Name:             value(p.Name),
			ProductSku:       value(p.ProductSku),
			Brand:            value(p.Brand),
			RelativeOrderNo:  value(p.RelativeOrderNo),
			Amount:           p.Amount,
			Unit:             value(p.Unit),
			SubWarehouse:     value(p.SubWarehouse),
			UnitPrice:        value(p.UnitPrice),
			SalePrice:        value(p.SalePrice),
			UnitPriceWithTax: value(p.UnitPriceWithTax),
			SalePriceWithTax: value(p.SalePriceWithTax),
			TaxRate:          value(p.TaxRate),
			Remark:           value(p.Remark),
		}
	}
	return lines
}

func toOrderItem(v queries.OrderItemView) servers.OrderItem {
	return servers.OrderItem{
		OrderNo:         v.OrderNo,
		SubOrderNo:      v.SubOrderNo,
		ExOrderNo:       v.ExOrderNo,
		Counterparty:    optional(v.Counterparty),
		Contact:         optional(v.Contact),
		Actor:           optional(v.Actor),
		ProductId:       v.ProductID,
		ProductCode:     optional(v.ProductCode),
		ProductName:     optional(v.ProductName),
		ProductSku:      optional(v.ProductSku),
		OrderTime:       optional(v.OrderTime),
		DeliveryTime:    optional(v.DeliveryTime),
		OrderState:      v.OrderState,
		AuditState:      v.AuditState,
		StockState:      v.StockState,
		Creator:         optional(v.Creator),
		LatestAuditTime: optional(v.LatestAuditTime),
	}
}

func toOrderDetail(d queries.GetOrderDetailQueryResponse) servers.OrderDetail {
	materials := append([]string{}, d.Materials...)
	detail := servers.OrderDetail{
		OrderNo:         d.OrderNo,
		ExOrderNo:       d.ExOrderNo,
		OrderTime:       optional(d.OrderTime),
		DeliveryTime:    optional(d.DeliveryTime),
		CounterpartyId:  &d.CounterpartyID,
		Counterparty:    optional(d.Counterparty),
		Contact:         optional(d.Contact),
		Mobile:          optional(d.Mobile),
		Tel:             optional(d.Tel),
		Address:         optional(d.Address),
		Materials:       &materials,
		FavorableRate:   optional(d.FavorableRate),
		FavorableAmount: optional(d.FavorableAmount),
		DueAccount:      optional(d.DueAccount),
		Actor:           optional(d.Actor),
		Remark:          optional(d.Remark),
		OrderState:      optional(d.OrderState),
		AuditState:      optional(d.AuditState),
		StockState:      optional(d.StockState),
		Creator:         optional(d.Creator),
		CreateTime:      optional(d.CreateTime),
		Products:        make([]servers.ProductDetail, len(d.Products)),
	}

	for i, p := range d.Products {
		product := servers.ProductDetail{
			SubOrderNo:       p.SubOrderNo,
			ProductId:        p.ProductID,
			RelativeOrderNo:  optional(p.RelativeOrderNo),
			Code:             optional(p.Code),
			Name:             optional(p.Name),
			ProductSku:       optional(p.ProductSku),
			Brand:            optional(p.Brand),
			Unit:             optional(p.Unit),
			SubWarehouse:     optional(p.SubWarehouse),
			UnitPrice:        optional(p.UnitPrice),
			SalePrice:        optional(p.SalePrice),
			UnitPriceWithTax: optional(p.UnitPriceWithTax),
			SalePriceWithTax: optional(p.SalePriceWithTax),
			TaxRate:          optional(p.TaxRate),
			Remark:           optional(p.Remark),
			CatalogMissing:   p.CatalogMissing,
			ExtensionError:   optional(p.ExtensionError),
		}
		if p.ExtensionError == "" {
			amount := p.Amount
			product.Amount = &amount
		}
		detail.Products[i] = product
	}

	return detail
}

// optional maps the empty string to an omitted field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
