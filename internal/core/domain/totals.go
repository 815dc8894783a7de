package domain

import "github.com/shopspring/decimal"

// InvoiceTotals holds the derived financial state of an invoice.
type InvoiceTotals struct {
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	BalanceDue decimal.Decimal `json:"balanceDue"`
}

// ComputeTotals sums line totals and payments. It has no side effects and
// must be fed freshly read rows; nothing here is cached.
func ComputeTotals(lineItems []LineItem, payments []Payment) InvoiceTotals {
	total := decimal.Zero
	for _, li := range lineItems {
		total = total.Add(li.LineTotal)
	}

	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return InvoiceTotals{
		Total:      total,
		AmountPaid: paid,
		BalanceDue: total.Sub(paid),
	}
}

// IsSettled reports whether nothing is left to pay.
func (t InvoiceTotals) IsSettled() bool {
	return t.BalanceDue.IsZero()
}

// CanAccept reports whether a payment of amount keeps the balance non-negative.
func (t InvoiceTotals) CanAccept(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(t.BalanceDue)
}
