package services

import (
	"fmt"
	"time"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"
)

// ErrMissingProductLines is returned when a submission carries no products.
var ErrMissingProductLines = errs.NewValueIsRequiredError("products")

// OrderDecomposer turns one order submission into its persisted lines.
//
// Business rules:
//   - a submission needs at least one product line
//   - line i gets the sub order number <parent>_i, in submission order
//   - every line copies the header and joins its materials with ","
//   - every line starts as Running, ToAudit and NoneOut
//   - either every line is built or none is
//
// Example usage:
//
//	decomposer := NewOrderDecomposer(NewExtensionCodec(), time.Now)
//	lines, err := decomposer.Decompose(order.Purchase, header, products, kernel.NewOrderNo())
//	if errors.Is(err, ErrMissingProductLines) {
//	    // reject the submission
//	}
type OrderDecomposer struct {
	codec ExtensionCodec
	now   func() time.Time
}

// NewOrderDecomposer creates a decomposer. now stamps create and update times;
// a nil now falls back to time.Now.
func NewOrderDecomposer(codec ExtensionCodec, now func() time.Time) OrderDecomposer {
	if now == nil {
		now = time.Now
	}
	return OrderDecomposer{codec: codec, now: now}
}

// Decompose builds one line per product line. The result has the same length
// and order as products. On any error it returns nil.
func (d OrderDecomposer) Decompose(
	kind order.Kind,
	header order.Header,
	products []order.ProductLine,
	parent kernel.OrderNo,
) ([]*order.Line, error) {
	if len(products) == 0 {
		return nil, ErrMissingProductLines
	}
	if err := parent.Validate(); err != nil {
		return nil, err
	}

	now := d.now()
	lines := make([]*order.Line, 0, len(products))
	for i, product := range products {
		line, err := d.decomposeLine(kind, header, product, parent, i, now)
		if err != nil {
			return nil, fmt.Errorf("product line %d: %w", i, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (d OrderDecomposer) decomposeLine(
	kind order.Kind,
	header order.Header,
	product order.ProductLine,
	parent kernel.OrderNo,
	index int,
	now time.Time,
) (*order.Line, error) {
	subOrderNo, err := parent.Child(index)
	if err != nil {
		return nil, err
	}

	ext, err := d.codec.EncodeLine(product)
	if err != nil {
		return nil, err
	}

	return order.NewLine(kind, subOrderNo, header, product, ext, now)
}
