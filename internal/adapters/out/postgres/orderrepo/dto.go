// Package orderrepo persists order lines. Purchase and sale lines share one
// record layout and live in separate tables.
package orderrepo

import (
	"errors"
	"time"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
)

// TableFor returns the table holding the lines of kind.
func TableFor(kind order.Kind) string {
	return kind.TableName()
}

// Tables returns the tables of every order kind.
func Tables() []string {
	return []string{order.Purchase.TableName(), order.Sale.TableName()}
}

// LineDTO is the record of one order line. States are stored as their labels.
// Header fields are copied onto every record. Indexes are created by Migrate
// because both tables share this struct and index names are database-wide.
type LineDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderNo         string `gorm:"size:64;not null"`
	SubOrderNo      string `gorm:"size:80;not null"`
	ExOrderNo       string `gorm:"size:64;not null"`
	ProductID       int64  `gorm:"not null"`
	ProductCode     string `gorm:"size:64"`
	ProductName     string `gorm:"size:255"`
	ProductSku      string `gorm:"size:128"`
	RelativeOrderNo string `gorm:"size:64"`
	ProductExt      string `gorm:"type:text;not null"`
	OrderTime       time.Time
	DeliveryTime    time.Time
	CounterpartyID  int64
	Counterparty    string `gorm:"size:255"`
	Contact         string `gorm:"size:128"`
	Materials       string `gorm:"type:text"`
	FavorableRate   string `gorm:"size:32"`
	FavorableAmount string `gorm:"size:32"`
	DueAccount      string `gorm:"size:32"`
	Actor           string `gorm:"size:128"`
	Remark          string `gorm:"type:text"`
	OrderState      string `gorm:"size:16;not null"`
	AuditState      string `gorm:"size:16;not null"`
	StockState      string `gorm:"size:16;not null"`
	Creator         string `gorm:"size:128;not null"`
	CreateTime      time.Time
	UpdateTime      time.Time
}

func fromDomain(line *order.Line) LineDTO {
	s := line.Snapshot()
	return LineDTO{
		OrderNo:         s.SubOrderNo.Parent().String(),
		SubOrderNo:      s.SubOrderNo.String(),
		ExOrderNo:       s.Header.ExOrderNo,
		ProductID:       s.ProductID,
		ProductCode:     s.ProductCode,
		ProductName:     s.ProductName,
		ProductSku:      s.ProductSku,
		RelativeOrderNo: s.RelativeOrderNo,
		ProductExt:      s.ProductExt,
		OrderTime:       s.Header.OrderTime,
		DeliveryTime:    s.Header.DeliveryTime,
		CounterpartyID:  s.Header.CounterpartyID,
		Counterparty:    s.Header.Counterparty,
		Contact:         s.Header.Contact,
		Materials:       s.Materials,
		FavorableRate:   s.Header.FavorableRate,
		FavorableAmount: s.Header.FavorableAmount,
		DueAccount:      s.Header.DueAccount,
		Actor:           s.Header.Actor,
		Remark:          s.Header.Remark,
		OrderState:      s.OrderState.String(),
		AuditState:      s.AuditState.String(),
		StockState:      s.StockState.String(),
		Creator:         s.Creator,
		CreateTime:      s.CreateTime,
		UpdateTime:      s.UpdateTime,
	}
}

func toDomain(kind order.Kind, dto LineDTO) (*order.Line, error) {
	subOrderNo, err := kernel.SubOrderNoFromString(dto.SubOrderNo)
	if err != nil {
		return nil, err
	}
	if subOrderNo.Parent().String() != dto.OrderNo {
		return nil, errors.New("sub order number " + dto.SubOrderNo + " does not belong to order " + dto.OrderNo)
	}

	orderState, err := order.ParseOrderState(dto.OrderState)
	if err != nil {
		return nil, err
	}
	auditState, err := order.ParseAuditState(dto.AuditState)
	if err != nil {
		return nil, err
	}
	stockState, err := order.ParseStockState(dto.StockState)
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(order.Snapshot{
		Kind:       kind,
		SubOrderNo: subOrderNo,
		Header: order.Header{
			ExOrderNo:       dto.ExOrderNo,
			OrderTime:       dto.OrderTime,
			DeliveryTime:    dto.DeliveryTime,
			CounterpartyID:  dto.CounterpartyID,
			Counterparty:    dto.Counterparty,
			Contact:         dto.Contact,
			FavorableRate:   dto.FavorableRate,
			FavorableAmount: dto.FavorableAmount,
			DueAccount:      dto.DueAccount,
			Actor:           dto.Actor,
			Remark:          dto.Remark,
		},
		Materials:       dto.Materials,
		ProductID:       dto.ProductID,
		ProductCode:     dto.ProductCode,
		ProductName:     dto.ProductName,
		ProductSku:      dto.ProductSku,
		RelativeOrderNo: dto.RelativeOrderNo,
		ProductExt:      dto.ProductExt,
		OrderState:      orderState,
		AuditState:      auditState,
		StockState:      stockState,
		Creator:         dto.Creator,
		CreateTime:      dto.CreateTime,
		UpdateTime:      dto.UpdateTime,
	})
}
