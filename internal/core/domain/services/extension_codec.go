package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"
)

const (
	// ExtensionSchema marks a blob as an order line extension.
	ExtensionSchema = "order-line-ext"
	// ExtensionVersion is the only layout Decode understands.
	ExtensionVersion = 1
)

// ExtensionCodec converts the commercial terms of a product line to and from
// the extension blob stored on each line. The blob is a JSON envelope:
//
//	{"schema":"order-line-ext","version":1,"fields":{"amount":5,"unit":"box",...}}
//
// All nine fields are always written. Decode accepts only blobs with the
// schema marker, the current version and exactly these nine fields.
type ExtensionCodec struct{}

// NewExtensionCodec creates a new ExtensionCodec instance.
func NewExtensionCodec() ExtensionCodec {
	return ExtensionCodec{}
}

type extensionEnvelope struct {
	Schema  string           `json:"schema"`
	Version int              `json:"version"`
	Fields  *extensionFields `json:"fields"`
}

// extensionFields uses pointers so that a missing or null key can be told
// apart from a zero value.
type extensionFields struct {
	Amount           *int    `json:"amount"`
	Unit             *string `json:"unit"`
	SubWarehouse     *string `json:"subWarehouse"`
	UnitPrice        *string `json:"unitPrice"`
	SalePrice        *string `json:"salePrice"`
	UnitPriceWithTax *string `json:"unitPriceWithTax"`
	SalePriceWithTax *string `json:"salePriceWithTax"`
	TaxRate          *string `json:"taxRate"`
	Remark           *string `json:"remark"`
}

// Encode serializes the extension into a blob. Text fields must be valid
// UTF-8; JSON cannot carry other bytes unchanged.
func (c ExtensionCodec) Encode(ext order.Extension) (string, error) {
	if err := validateText(ext); err != nil {
		return "", err
	}

	blob, err := json.Marshal(extensionEnvelope{
		Schema:  ExtensionSchema,
		Version: ExtensionVersion,
		Fields: &extensionFields{
			Amount:           &ext.Amount,
			Unit:             &ext.Unit,
			SubWarehouse:     &ext.SubWarehouse,
			UnitPrice:        &ext.UnitPrice,
			SalePrice:        &ext.SalePrice,
			UnitPriceWithTax: &ext.UnitPriceWithTax,
			SalePriceWithTax: &ext.SalePriceWithTax,
			TaxRate:          &ext.TaxRate,
			Remark:           &ext.Remark,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode extension: %w", err)
	}
	return string(blob), nil
}

func validateText(ext order.Extension) error {
	fields := []struct {
		name  string
		value string
	}{
		{"unit", ext.Unit},
		{"subWarehouse", ext.SubWarehouse},
		{"unitPrice", ext.UnitPrice},
		{"salePrice", ext.SalePrice},
		{"unitPriceWithTax", ext.UnitPriceWithTax},
		{"salePriceWithTax", ext.SalePriceWithTax},
		{"taxRate", ext.TaxRate},
		{"remark", ext.Remark},
	}

	var errList []error
	for _, f := range fields {
		if !utf8.ValidString(f.value) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				f.name, fmt.Errorf("%q is not valid UTF-8", f.value)))
		}
	}
	return errors.Join(errList...)
}

// EncodeLine encodes the extension subset of a product line. Catalog identity
// fields of the line are not written.
func (c ExtensionCodec) EncodeLine(line order.ProductLine) (string, error) {
	return c.Encode(line.Extension())
}

// Decode parses a blob produced by Encode. Any structural problem yields a
// *errs.CorruptExtensionError and the zero Extension.
func (c ExtensionCodec) Decode(blob string) (order.Extension, error) {
	if blob == "" {
		return order.Extension{}, errs.NewCorruptExtensionError("blob is empty")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(blob)))
	dec.DisallowUnknownFields()

	var env extensionEnvelope
	if err := dec.Decode(&env); err != nil {
		return order.Extension{}, errs.NewCorruptExtensionErrorWithCause("blob is not a valid envelope", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return order.Extension{}, errs.NewCorruptExtensionError("blob has trailing data")
	}

	if env.Schema != ExtensionSchema {
		return order.Extension{}, errs.NewCorruptExtensionError(
			fmt.Sprintf("schema marker is %q, want %q", env.Schema, ExtensionSchema))
	}
	if env.Version != ExtensionVersion {
		return order.Extension{}, errs.NewCorruptExtensionErrorWithCause(
			"unsupported layout",
			errs.NewVersionIsInvalidErrorWithCause("extension version",
				fmt.Errorf("got %d, want %d", env.Version, ExtensionVersion)),
		)
	}
	if env.Fields == nil {
		return order.Extension{}, errs.NewCorruptExtensionError("fields are missing")
	}

	return env.Fields.toExtension()
}

func (f *extensionFields) toExtension() (order.Extension, error) {
	var missing []string
	str := func(name string, v *string) string {
		if v == nil {
			missing = append(missing, name)
			return ""
		}
		return *v
	}

	ext := order.Extension{
		Unit:             str("unit", f.Unit),
		SubWarehouse:     str("subWarehouse", f.SubWarehouse),
		UnitPrice:        str("unitPrice", f.UnitPrice),
		SalePrice:        str("salePrice", f.SalePrice),
		UnitPriceWithTax: str("unitPriceWithTax", f.UnitPriceWithTax),
		SalePriceWithTax: str("salePriceWithTax", f.SalePriceWithTax),
		TaxRate:          str("taxRate", f.TaxRate),
		Remark:           str("remark", f.Remark),
	}
	if f.Amount == nil {
		missing = append(missing, "amount")
	} else {
		ext.Amount = *f.Amount
	}

	if len(missing) > 0 {
		return order.Extension{}, errs.NewCorruptExtensionError(fmt.Sprintf("fields %v are missing", missing))
	}
	return ext, nil
}
