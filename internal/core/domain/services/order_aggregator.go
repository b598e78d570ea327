package services

import (
	"context"
	"fmt"
	"runtime"

	"trading/internal/core/domain/model/catalog"
	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// CatalogLookup fetches catalog products by id in one call. Ids without a
// catalog entry are simply absent from the result.
type CatalogLookup interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*catalog.Product, error)
}

// ProductView is one line of an order as shown to a reader: the line's own
// numbers and commercial terms overlaid with current catalog identity.
type ProductView struct {
	OrderNo         string
	SubOrderNo      string
	ProductID       int64
	RelativeOrderNo string

	// Catalog identity. Empty when CatalogMissing is set.
	Code       string
	Name       string
	ProductSku string
	Brand      string

	// Commercial terms from the extension blob. Empty when ExtensionError is set.
	Amount           int
	Unit             string
	SubWarehouse     string
	UnitPrice        string
	SalePrice        string
	UnitPriceWithTax string
	SalePriceWithTax string
	TaxRate          string
	Remark           string

	// CatalogMissing is set when the catalog has no entry for ProductID.
	CatalogMissing bool
	// ExtensionError holds the decode failure of this line's extension blob.
	ExtensionError string
}

// OrderAggregator rebuilds product views for stored lines.
//
// Business rules:
//   - an empty line set is reported as not found
//   - the catalog is queried exactly once, with distinct ids in first-seen order
//   - a product missing from the catalog degrades only its own view
//   - a corrupt extension blob degrades only its own view and is reported on it
//   - views keep the order of the input lines
type OrderAggregator struct {
	codec   ExtensionCodec
	workers int
}

// NewOrderAggregator creates an aggregator merging at most workers lines at a
// time. workers <= 0 means GOMAXPROCS.
func NewOrderAggregator(codec ExtensionCodec, workers int) OrderAggregator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return OrderAggregator{codec: codec, workers: workers}
}

// Aggregate returns one view per line, in input order.
func (a OrderAggregator) Aggregate(
	ctx context.Context,
	lines []*order.Line,
	lookup CatalogLookup,
) ([]ProductView, error) {
	if len(lines) == 0 {
		return nil, errs.NewObjectNotFoundError("order lines", "none")
	}
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("order line %d: %w", i, err)
		}
	}

	products, err := lookup.GetByIDs(ctx, distinctProductIDs(lines))
	if err != nil {
		return nil, errs.NewDependencyFailedErrorWithCause("catalog", err)
	}
	byID := catalog.Index(products)

	views := make([]ProductView, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			views[i] = a.merge(line, byID[line.ProductID()])
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return views, nil
}

func (a OrderAggregator) merge(line *order.Line, product *catalog.Product) ProductView {
	view := ProductView{
		OrderNo:         line.OrderNo().String(),
		SubOrderNo:      line.SubOrderNo().String(),
		ProductID:       line.ProductID(),
		RelativeOrderNo: line.RelativeOrderNo(),
	}

	if product != nil {
		view.Code = product.Code
		view.Name = product.Name
		view.ProductSku = product.ProductSku
		view.Brand = product.Brand
	} else {
		view.CatalogMissing = true
	}

	ext, err := a.codec.Decode(line.ProductExt())
	if err != nil {
		view.ExtensionError = err.Error()
		return view
	}
	view.Amount = ext.Amount
	view.Unit = ext.Unit
	view.SubWarehouse = ext.SubWarehouse
	view.UnitPrice = ext.UnitPrice
	view.SalePrice = ext.SalePrice
	view.UnitPriceWithTax = ext.UnitPriceWithTax
	view.SalePriceWithTax = ext.SalePriceWithTax
	view.TaxRate = ext.TaxRate
	view.Remark = ext.Remark

	return view
}

func distinctProductIDs(lines []*order.Line) []int64 {
	seen := make(map[int64]struct{}, len(lines))
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		id := line.ProductID()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
