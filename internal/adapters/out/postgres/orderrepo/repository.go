package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE of a unique index violation.
const uniqueViolation = "23505"

// GormOrderLineRepository implements OrderLineRepository for one order kind
// using GORM.
type GormOrderLineRepository struct {
	db      *gorm.DB
	kind    order.Kind
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderLineRepository creates a new GORM order line repository for kind.
func NewGormOrderLineRepository(db *gorm.DB, kind order.Kind, tracker aggregateTracker) *GormOrderLineRepository {
	return &GormOrderLineRepository{
		db:      db,
		kind:    kind,
		tracker: tracker,
	}
}

// Add inserts all lines in one statement.
func (r *GormOrderLineRepository) Add(ctx context.Context, lines []*order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	dtos := make([]LineDTO, 0, len(lines))
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("order line %d: %w", i, err)
		}
		if line.ProductExt() == "" {
			return fmt.Errorf("order line %d: %w", i, errs.NewValueIsRequiredError("product extension"))
		}
		if line.Kind() != r.kind {
			return errs.NewValueIsInvalidErrorWithCause("order kind",
				fmt.Errorf("%s line given to the %s repository", line.Kind(), r.kind))
		}
		dtos = append(dtos, fromDomain(line))
	}

	if err := r.db.WithContext(ctx).Table(TableFor(r.kind)).Create(&dtos).Error; err != nil {
		return translateError(err)
	}

	for _, line := range lines {
		r.tracker.TrackAggregate(line.SubOrderNo().String(), line)
	}
	return nil
}

// Find loads the lines matching criteria.
func (r *GormOrderLineRepository) Find(ctx context.Context, criteria order.Criteria) ([]*order.Line, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx).Table(TableFor(r.kind))
	if criteria.ExOrderNo != "" {
		tx = tx.Where("ex_order_no = ?", criteria.ExOrderNo)
	}
	if criteria.OrderNo != "" {
		tx = tx.Where("order_no = ?", criteria.OrderNo)
	}
	if criteria.Counterparty != "" {
		tx = tx.Where("counterparty LIKE ?", "%"+criteria.Counterparty+"%")
	}
	if criteria.OrderState != order.UnknownOrderState {
		tx = tx.Where("order_state = ?", criteria.OrderState.String())
	}
	if criteria.AuditState != order.UnknownAuditState {
		tx = tx.Where("audit_state = ?", criteria.AuditState.String())
	}
	if criteria.StockState != order.UnknownStockState {
		tx = tx.Where("stock_state = ?", criteria.StockState.String())
	}
	if !criteria.OrderTimeFrom.IsZero() {
		tx = tx.Where("order_time >= ?", criteria.OrderTimeFrom)
	}
	if !criteria.OrderTimeTo.IsZero() {
		tx = tx.Where("order_time <= ?", criteria.OrderTimeTo)
	}

	var dtos []LineDTO
	err := tx.Order("order_time DESC").Order("order_no").Order("id").
		Limit(criteria.Limit()).Offset(criteria.Offset()).
		Find(&dtos).Error
	if err != nil {
		return nil, translateError(err)
	}

	lines := make([]*order.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := toDomain(r.kind, dto)
		if err != nil {
			// a stored row that no longer restores is a fault of the store
			return nil, errs.NewDependencyFailedErrorWithCause("order store",
				fmt.Errorf("restore line %s: %w", dto.SubOrderNo, err))
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// translateError maps driver errors to the error classes of the service.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewValueIsNotUniqueErrorWithCause("sub order number", err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsNotUniqueErrorWithCause("sub order number", err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errs.NewDependencyFailedErrorWithCause("order store", err)
}
