package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "DRAFT"
	InvoicePaid  InvoiceStatus = "PAID"
)

// DefaultCurrencyCode is applied when an invoice is created without a currency.
const DefaultCurrencyCode = "USD"

// Invoice is the header row of an invoice. Totals are never stored on it;
// they are derived from LineItems and Payments via ComputeTotals.
type Invoice struct {
	InvoiceID       string          `json:"id"`
	OwnerID         string          `json:"userId"`        // FK -> users.user_id, scopes all access
	InvoiceNumber   string          `json:"invoiceNumber"` // Unique across the whole system
	CustomerName    string          `json:"customerName"`
	CustomerEmail   *string         `json:"customerEmail,omitempty"`
	CustomerAddress *string         `json:"customerAddress,omitempty"`
	IssueDate       time.Time       `json:"issueDate"`
	DueDate         time.Time       `json:"dueDate"`
	Status          InvoiceStatus   `json:"status"`
	IsArchived      bool            `json:"isArchived"`
	CurrencyCode    string          `json:"currency"`
	TaxRate         decimal.Decimal `json:"taxRate"` // Percent, informational only
	AuditFields
}

// IsPaid reports whether the invoice has been closed by a payment.
func (i Invoice) IsPaid() bool {
	return i.Status == InvoicePaid
}

// LineItem is an immutable billed line owned by exactly one invoice.
type LineItem struct {
	LineItemID  string          `json:"id"`
	InvoiceID   string          `json:"invoiceId"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"` // Always Quantity x UnitPrice, computed by the ledger
}

// NewLineItem builds a line item with its total computed from quantity and unit price.
func NewLineItem(lineItemID, invoiceID, description string, quantity int, unitPrice decimal.Decimal) LineItem {
	return LineItem{
		LineItemID:  lineItemID,
		InvoiceID:   invoiceID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// Payment is an append-only amount received against an invoice.
type Payment struct {
	PaymentID   string          `json:"id"`
	InvoiceID   string          `json:"invoiceId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"` // Server clock at insertion
}

// InvoiceDetails bundles an invoice with its children and freshly computed totals.
// It is what the presentation layer (JSON, PDF) renders.
type InvoiceDetails struct {
	Invoice   Invoice       `json:"invoice"`
	LineItems []LineItem    `json:"lineItems"`
	Payments  []Payment     `json:"payments"`
	Totals    InvoiceTotals `json:"totals"`
}

// InvoiceSummary is a list row: the invoice header plus its totals.
type InvoiceSummary struct {
	Invoice Invoice       `json:"invoice"`
	Totals  InvoiceTotals `json:"totals"`
}
