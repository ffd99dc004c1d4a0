package pos

import (
	"github.com/shopspring/decimal"
)

// Totals aggregates money amounts over a sequence of sale records. Cash and
// Card split the Sold sum by payment method.
type Totals struct {
	Cost decimal.Decimal `json:"cost"`
	Sold decimal.Decimal `json:"sold"`
	Acc  decimal.Decimal `json:"acc"`
	Cash decimal.Decimal `json:"cash"`
	Card decimal.Decimal `json:"card"`
}

// CalculateTotals sums cost, sold and margin over records, splitting sold by
// payment method. It is pure and order-independent; an empty or nil input
// yields all-zero totals.
func CalculateTotals(records []SaleRecord) Totals {
	t := Totals{
		Cost: decimal.Zero,
		Sold: decimal.Zero,
		Acc:  decimal.Zero,
		Cash: decimal.Zero,
		Card: decimal.Zero,
	}
	for _, r := range records {
		t.Cost = t.Cost.Add(r.Cost)
		t.Sold = t.Sold.Add(r.Sold)
		t.Acc = t.Acc.Add(r.Acc)
		switch r.PaymentMethod {
		case Cash:
			t.Cash = t.Cash.Add(r.Sold)
		case Card:
			t.Card = t.Card.Add(r.Sold)
		}
	}
	return t
}
