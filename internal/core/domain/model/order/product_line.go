package order

// ProductLine is one product of an order submission: which catalog product it
// refers to plus the commercial terms agreed for this order only.
type ProductLine struct {
	ProductID       int64
	Code            string
	Name            string
	ProductSku      string
	Brand           string
	RelativeOrderNo string

	Amount           int
	Unit             string
	SubWarehouse     string
	UnitPrice        string
	SalePrice        string
	UnitPriceWithTax string
	SalePriceWithTax string
	TaxRate          string
	Remark           string
}

// Extension is the subset of a product line kept in the line's extension
// blob. Catalog identity (code, name, sku, brand) is not part of it; it lives
// on the line itself or is read from the catalog.
type Extension struct {
	Amount           int
	Unit             string
	SubWarehouse     string
	UnitPrice        string
	SalePrice        string
	UnitPriceWithTax string
	SalePriceWithTax string
	TaxRate          string
	Remark           string
}

// Extension extracts the extension subset of the line.
func (p ProductLine) Extension() Extension {
	return Extension{
		Amount:           p.Amount,
		Unit:             p.Unit,
		SubWarehouse:     p.SubWarehouse,
		UnitPrice:        p.UnitPrice,
		SalePrice:        p.SalePrice,
		UnitPriceWithTax: p.UnitPriceWithTax,
		SalePriceWithTax: p.SalePriceWithTax,
		TaxRate:          p.TaxRate,
		Remark:           p.Remark,
	}
}
