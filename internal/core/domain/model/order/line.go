package order

import (
	"errors"
	"fmt"
	"time"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line was not created through
	// NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")
)

// Line is one persisted row of an order: exactly one product of one
// submission. All lines of a submission share the parent order number and a
// copy of the header; each has its own sub order number and extension blob.
//
// Lines follow these invariants:
//   - the sub order number belongs to the line's order number
//   - a new line always carries an extension blob; a restored line may not,
//     and reading its extension then reports a corrupt blob
//   - order, audit and stock states are always valid enum values
//   - creator is always set
type Line struct {
	kind       Kind
	subOrderNo kernel.SubOrderNo
	header     Header
	materials  string

	productID       int64
	productCode     string
	productName     string
	productSku      string
	relativeOrderNo string
	productExt      string

	orderState OrderState
	auditState AuditState
	stockState StockState

	creator    string
	createTime time.Time
	updateTime time.Time

	isConstructed bool
}

// NewLine builds a fresh line for the product of a submission. The line is
// stamped with the initial lifecycle states Running, ToAudit and NoneOut, and
// its creator is the header's actor.
func NewLine(
	kind Kind,
	subOrderNo kernel.SubOrderNo,
	header Header,
	product ProductLine,
	productExt string,
	now time.Time,
) (*Line, error) {
	var extErr error
	if productExt == "" {
		extErr = errs.NewValueIsRequiredError("product extension")
	}

	l, err := RestoreLine(Snapshot{
		Kind:            kind,
		SubOrderNo:      subOrderNo,
		Header:          header,
		Materials:       header.JoinedMaterials(),
		ProductID:       product.ProductID,
		ProductCode:     product.Code,
		ProductName:     product.Name,
		ProductSku:      product.ProductSku,
		RelativeOrderNo: product.RelativeOrderNo,
		ProductExt:      productExt,
		OrderState:      Running,
		AuditState:      ToAudit,
		StockState:      NoneOut,
		Creator:         header.Actor,
		CreateTime:      now,
		UpdateTime:      now,
	})
	if err := errors.Join(extErr, err); err != nil {
		return nil, err
	}
	return l, nil
}

// Snapshot is the flat state of a line, used to restore lines from storage
// and to map them to persistence records. Header.Materials is ignored; the
// joined Materials string is authoritative.
type Snapshot struct {
	Kind            Kind
	SubOrderNo      kernel.SubOrderNo
	Header          Header
	Materials       string
	ProductID       int64
	ProductCode     string
	ProductName     string
	ProductSku      string
	RelativeOrderNo string
	ProductExt      string
	OrderState      OrderState
	AuditState      AuditState
	StockState      StockState
	Creator         string
	CreateTime      time.Time
	UpdateTime      time.Time
}

// RestoreLine rebuilds a line from its snapshot, validating every invariant.
// The extension blob is taken as stored, even when empty.
func RestoreLine(s Snapshot) (*Line, error) {
	l := &Line{
		header:          s.Header,
		materials:       s.Materials,
		productCode:     s.ProductCode,
		productName:     s.ProductName,
		productSku:      s.ProductSku,
		relativeOrderNo: s.RelativeOrderNo,
		productExt:      s.ProductExt,
		createTime:      s.CreateTime,
		updateTime:      s.UpdateTime,
		isConstructed:   true,
	}
	l.header.Materials = nil

	if err := errors.Join(
		l.setKind(s.Kind),
		l.setSubOrderNo(s.SubOrderNo),
		l.setProductID(s.ProductID),
		l.setStates(s.OrderState, s.AuditState, s.StockState),
		l.setCreator(s.Creator),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the line was built through NewLine or RestoreLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// Snapshot returns the flat state of the line.
func (l *Line) Snapshot() Snapshot {
	return Snapshot{
		Kind:            l.kind,
		SubOrderNo:      l.subOrderNo,
		Header:          l.header,
		Materials:       l.materials,
		ProductID:       l.productID,
		ProductCode:     l.productCode,
		ProductName:     l.productName,
		ProductSku:      l.productSku,
		RelativeOrderNo: l.relativeOrderNo,
		ProductExt:      l.productExt,
		OrderState:      l.orderState,
		AuditState:      l.auditState,
		StockState:      l.stockState,
		Creator:         l.creator,
		CreateTime:      l.createTime,
		UpdateTime:      l.updateTime,
	}
}

func (l *Line) Kind() Kind                    { return l.kind }
func (l *Line) OrderNo() kernel.OrderNo       { return l.subOrderNo.Parent() }
func (l *Line) SubOrderNo() kernel.SubOrderNo { return l.subOrderNo }
func (l *Line) ExOrderNo() string             { return l.header.ExOrderNo }

// Header returns the copy of the order header held by this line, with
// Materials split back into a list.
func (l *Line) Header() Header {
	h := l.header
	h.Materials = SplitMaterials(l.materials)
	return h
}

// Materials returns the stored, comma-joined attachment references.
func (l *Line) Materials() string { return l.materials }

func (l *Line) ProductID() int64        { return l.productID }
func (l *Line) ProductCode() string     { return l.productCode }
func (l *Line) ProductName() string     { return l.productName }
func (l *Line) ProductSku() string      { return l.productSku }
func (l *Line) RelativeOrderNo() string { return l.relativeOrderNo }

// ProductExt returns the encoded extension blob.
func (l *Line) ProductExt() string { return l.productExt }

func (l *Line) OrderState() OrderState { return l.orderState }
func (l *Line) AuditState() AuditState { return l.auditState }
func (l *Line) StockState() StockState { return l.stockState }

func (l *Line) Creator() string       { return l.creator }
func (l *Line) CreateTime() time.Time { return l.createTime }
func (l *Line) UpdateTime() time.Time { return l.updateTime }

func (l *Line) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	l.kind = kind
	return nil
}

func (l *Line) setSubOrderNo(subOrderNo kernel.SubOrderNo) error {
	if err := subOrderNo.Validate(); err != nil {
		return err
	}
	l.subOrderNo = subOrderNo
	return nil
}

func (l *Line) setProductID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", id))
	}
	l.productID = id
	return nil
}

func (l *Line) setStates(o OrderState, a AuditState, s StockState) error {
	if err := errors.Join(o.Validate(), a.Validate(), s.Validate()); err != nil {
		return err
	}
	l.orderState, l.auditState, l.stockState = o, a, s
	return nil
}

// setCreator requires a creator. Until an identity system is wired in, the
// value is whatever actor name the submission carried.
func (l *Line) setCreator(creator string) error {
	if creator == "" {
		return errs.NewValueIsRequiredError("creator")
	}
	l.creator = creator
	return nil
}
