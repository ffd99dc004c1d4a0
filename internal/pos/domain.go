// Package pos holds the sales ledger, the per-store inventory ledger and the
// submission flow that ties them together.
package pos

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The persisted documents carry money amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the timestamp format stored in sale records, local time.
const DateLayout = "01/02/2006 15:04"

// StoreLocations is the fixed set of storefront addresses. The same strings
// are the valid `store` values on sale records and the top-level keys of a
// freshly initialized inventory document.
var StoreLocations = []string{
	"1 E Penn Sq",
	"5600 Germantion Ave",
	"2644 Germantion Ave",
}

// KnownStore reports whether store is one of the fixed locations.
func KnownStore(store string) bool {
	for _, s := range StoreLocations {
		if s == store {
			return true
		}
	}
	return false
}

// SaleType distinguishes a phone sale (stock-backed) from a bill payment.
type SaleType string

const (
	PhoneSale   SaleType = "Phone Sale"
	BillPayment SaleType = "Bill Payment"
)

// PaymentMethod is how the customer paid.
type PaymentMethod string

const (
	Cash PaymentMethod = "Cash"
	Card PaymentMethod = "Card"
)

// SaleRecord is one committed transaction. Records are immutable once
// appended to the sales ledger; they are never edited or deleted.
type SaleRecord struct {
	Employee      string          `json:"employee"`
	Store         string          `json:"store"`
	Date          string          `json:"date"`
	Type          SaleType        `json:"type"`
	Product       string          `json:"product"`
	Quantity      int             `json:"quantity"`
	Cost          decimal.Decimal `json:"cost"`
	Sold          decimal.Decimal `json:"sold"`
	Acc           decimal.Decimal `json:"acc"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// Inventory is the per-store stock document: store → product → quantity.
// Quantities never go below zero.
type Inventory map[string]map[string]int

// DefaultInventory is the document content used when no inventory file
// exists yet: every known store present with no products.
func DefaultInventory() Inventory {
	inv := make(Inventory, len(StoreLocations))
	for _, store := range StoreLocations {
		inv[store] = map[string]int{}
	}
	return inv
}
