package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the persisted payment state of an invoice.
type InvoiceStatus string

const (
	Draft InvoiceStatus = "DRAFT"
	Paid  InvoiceStatus = "PAID"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	InvoiceID       string          `db:"invoice_id"`
	UserID          string          `db:"user_id"`
	InvoiceNumber   string          `db:"invoice_number"`
	CustomerName    string          `db:"customer_name"`
	CustomerEmail   *string         `db:"customer_email"`
	CustomerAddress *string         `db:"customer_address"`
	IssueDate       time.Time       `db:"issue_date"`
	DueDate         time.Time       `db:"due_date"`
	Status          InvoiceStatus   `db:"status"`
	IsArchived      bool            `db:"is_archived"`
	CurrencyCode    string          `db:"currency_code"`
	TaxRate         decimal.Decimal `db:"tax_rate"`
	AuditFields
}

// InvoiceLine is a row of the invoice_lines table. LineNo keeps the order
// in which the lines were submitted.
type InvoiceLine struct {
	LineItemID  string          `db:"line_item_id"`
	InvoiceID   string          `db:"invoice_id"`
	LineNo      int             `db:"line_no"`
	Description string          `db:"description"`
	Quantity    int             `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	LineTotal   decimal.Decimal `db:"line_total"`
}

// Payment is a row of the payments table.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	InvoiceID   string          `db:"invoice_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
}
