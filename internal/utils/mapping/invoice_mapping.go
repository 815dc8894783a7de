package mapping

import (
	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:       d.InvoiceID,
		UserID:          d.OwnerID,
		InvoiceNumber:   d.InvoiceNumber,
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerAddress: d.CustomerAddress,
		IssueDate:       d.IssueDate,
		DueDate:         d.DueDate,
		Status:          models.InvoiceStatus(d.Status),
		IsArchived:      d.IsArchived,
		CurrencyCode:    d.CurrencyCode,
		TaxRate:         d.TaxRate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:       m.InvoiceID,
		OwnerID:         m.UserID,
		InvoiceNumber:   m.InvoiceNumber,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		CustomerAddress: m.CustomerAddress,
		IssueDate:       m.IssueDate,
		DueDate:         m.DueDate,
		Status:          domain.InvoiceStatus(m.Status),
		IsArchived:      m.IsArchived,
		CurrencyCode:    m.CurrencyCode,
		TaxRate:         m.TaxRate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelInvoiceLines converts domain line items to rows, numbering them in order.
func ToModelInvoiceLines(ds []domain.LineItem) []models.InvoiceLine {
	ms := make([]models.InvoiceLine, len(ds))
	for i, d := range ds {
		ms[i] = models.InvoiceLine{
			LineItemID:  d.LineItemID,
			InvoiceID:   d.InvoiceID,
			LineNo:      i + 1,
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			LineTotal:   d.LineTotal,
		}
	}
	return ms
}

// ToDomainLineItems converts rows to domain line items
func ToDomainLineItems(ms []models.InvoiceLine) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.LineItem{
			LineItemID:  m.LineItemID,
			InvoiceID:   m.InvoiceID,
			Description: m.Description,
			Quantity:    m.Quantity,
			UnitPrice:   m.UnitPrice,
			LineTotal:   m.LineTotal,
		}
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		InvoiceID:   d.InvoiceID,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
	}
}

// ToDomainPayments converts rows to domain payments
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = domain.Payment{
			PaymentID:   m.PaymentID,
			InvoiceID:   m.InvoiceID,
			Amount:      m.Amount,
			PaymentDate: m.PaymentDate,
		}
	}
	return ds
}
