package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of issue and due dates.
const DateLayout = "2006-01-02"

// CreateLineItemRequest is one line of a new invoice. Any client-side line
// total is ignored; the ledger recomputes it.
type CreateLineItemRequest struct {
	Description string      `json:"description" validate:"required"`
	Quantity    int         `json:"quantity" validate:"gt=0,lte=2147483647"`
	UnitPrice   json.Number `json:"unitPrice" validate:"required"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// Validation runs in the ledger, not at binding time, so that every caller
// gets the same ErrValidation semantics.
type CreateInvoiceRequest struct {
	InvoiceNumber   string                  `json:"invoiceNumber" validate:"required,max=50"`
	CustomerName    string                  `json:"customerName" validate:"required,max=255"`
	CustomerEmail   *string                 `json:"customerEmail,omitempty" validate:"omitempty,email,max=255"`
	CustomerAddress *string                 `json:"customerAddress,omitempty"`
	IssueDate       string                  `json:"issueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate         string                  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	LineItems       []CreateLineItemRequest `json:"lineItems" validate:"required,min=1,dive"`
	Currency        string                  `json:"currency,omitempty" validate:"omitempty,iso4217"`
	TaxRate         *decimal.Decimal        `json:"taxRate,omitempty"`
}

// RecordPaymentRequest defines the body of a payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit           int     `form:"limit,default=20"`
	NextToken       *string `form:"nextToken"`
	IncludeArchived bool    `form:"includeArchived,default=true"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID  string          `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
}

// TotalsResponse carries the derived amounts of an invoice.
type TotalsResponse struct {
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	BalanceDue decimal.Decimal `json:"balanceDue"`
}

// InvoiceResponse defines the data returned for an invoice. Line items and
// payments are only populated on the detail endpoint.
type InvoiceResponse struct {
	InvoiceID       string             `json:"id"`
	InvoiceNumber   string             `json:"invoiceNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   *string            `json:"customerEmail,omitempty"`
	CustomerAddress *string            `json:"customerAddress,omitempty"`
	IssueDate       string             `json:"issueDate"`
	DueDate         string             `json:"dueDate"`
	Status          string             `json:"status"`
	IsArchived      bool               `json:"isArchived"`
	Currency        string             `json:"currency"`
	TaxRate         decimal.Decimal    `json:"taxRate"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	LineItems       []LineItemResponse `json:"lineItems,omitempty"`
	Payments        []PaymentResponse  `json:"payments,omitempty"`
	*TotalsResponse
}

// CreateInvoiceResponse is returned after an invoice was created.
type CreateInvoiceResponse struct {
	Message       string `json:"message"`
	InvoiceID     string `json:"invoiceId"`
	InvoiceNumber string `json:"invoiceNumber"`
}

// RecordPaymentResponse is returned after a payment was recorded.
type RecordPaymentResponse struct {
	Payment PaymentResponse `json:"payment"`
	Totals  TotalsResponse  `json:"totals"`
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToTotalsResponse converts domain totals to TotalsResponse DTO.
func ToTotalsResponse(t domain.InvoiceTotals) TotalsResponse {
	return TotalsResponse{
		Total:      t.Total,
		AmountPaid: t.AmountPaid,
		BalanceDue: t.BalanceDue,
	}
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO without totals.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerEmail:   inv.CustomerEmail,
		CustomerAddress: inv.CustomerAddress,
		IssueDate:       inv.IssueDate.Format(DateLayout),
		DueDate:         inv.DueDate.Format(DateLayout),
		Status:          string(inv.Status),
		IsArchived:      inv.IsArchived,
		Currency:        inv.CurrencyCode,
		TaxRate:         inv.TaxRate,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.LastUpdatedAt,
	}
}

// ToInvoiceSummaryResponse converts a list row to InvoiceResponse DTO.
func ToInvoiceSummaryResponse(s domain.InvoiceSummary) InvoiceResponse {
	resp := ToInvoiceResponse(&s.Invoice)
	totals := ToTotalsResponse(s.Totals)
	resp.TotalsResponse = &totals
	return resp
}

// ToInvoiceDetailsResponse converts full invoice details to InvoiceResponse DTO.
func ToInvoiceDetailsResponse(d *domain.InvoiceDetails) InvoiceResponse {
	resp := ToInvoiceResponse(&d.Invoice)
	totals := ToTotalsResponse(d.Totals)
	resp.TotalsResponse = &totals

	resp.LineItems = make([]LineItemResponse, len(d.LineItems))
	for i, li := range d.LineItems {
		resp.LineItems[i] = LineItemResponse{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			LineTotal:   li.LineTotal,
		}
	}
	resp.Payments = make([]PaymentResponse, len(d.Payments))
	for i, p := range d.Payments {
		resp.Payments[i] = ToPaymentResponse(p)
	}
	return resp
}
