package order

import (
	"strings"
	"time"
)

// MaterialsSeparator joins attachment references into the stored materials column.
const MaterialsSeparator = ","

// Header carries the order-level fields of one submission. It is never stored
// on its own: every line of the order gets a copy.
type Header struct {
	ExOrderNo       string
	OrderTime       time.Time
	DeliveryTime    time.Time
	CounterpartyID  int64
	Counterparty    string
	Contact         string
	Materials       []string
	FavorableRate   string
	FavorableAmount string
	DueAccount      string
	// Actor is the purchaser or seller submitting the order. It doubles as the
	// line creator until submissions carry an authenticated identity.
	Actor  string
	Remark string
}

// JoinedMaterials renders Materials in submission order, comma separated.
func (h Header) JoinedMaterials() string {
	return strings.Join(h.Materials, MaterialsSeparator)
}

// SplitMaterials is the inverse of Header.JoinedMaterials.
func SplitMaterials(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, MaterialsSeparator)
}
