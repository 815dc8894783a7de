// Package invoicepdf renders an invoice with its totals as a single-page PDF.
package invoicepdf

import (
	"bytes"
	"fmt"
	"io"
	"mime"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

const (
	fontFamily    = "Helvetica"
	marginLeft    = 15.0
	pageWidth     = 180.0
	rowHeight     = 7.0
	defaultIssuer = "Your Company"
)

// Table columns: description, quantity, unit price, line total.
var columnWidths = [4]float64{95, 20, 32.5, 32.5}

// Filename returns the attachment name for an invoice PDF.
func Filename(invoiceNumber string) string {
	return fmt.Sprintf("invoice-%s.pdf", invoiceNumber)
}

// ContentDisposition returns the Content-Disposition header value for the
// PDF of invoiceNumber, quoting or encoding the filename as needed.
func ContentDisposition(invoiceNumber string) string {
	v := mime.FormatMediaType("attachment", map[string]string{"filename": Filename(invoiceNumber)})
	if v == "" {
		return "attachment"
	}
	return v
}

// Render writes the PDF of details, issued by issuer, to w.
func Render(w io.Writer, details *domain.InvoiceDetails, issuer *domain.User) error {
	if details == nil {
		return fmt.Errorf("invoice details are required")
	}
	inv := details.Invoice

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, 15, marginLeft)
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.InvoiceNumber), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Header
	pdf.SetFont(fontFamily, "B", 24)
	pdf.CellFormat(pageWidth/2, 12, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont(fontFamily, "B", 14)
	if inv.IsPaid() {
		pdf.SetTextColor(0, 128, 0)
	} else {
		pdf.SetTextColor(200, 0, 0)
	}
	pdf.CellFormat(pageWidth/2, 12, string(inv.Status), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(fontFamily, "", 12)
	pdf.CellFormat(pageWidth, 6, tr("#"+inv.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Parties
	issuerName, issuerEmail := defaultIssuer, ""
	if issuer != nil {
		if issuer.Name != "" {
			issuerName = issuer.Name
		}
		issuerEmail = issuer.Email
	}
	customerEmail := ""
	if inv.CustomerEmail != nil {
		customerEmail = *inv.CustomerEmail
	}
	customerAddress := ""
	if inv.CustomerAddress != nil {
		customerAddress = *inv.CustomerAddress
	}

	half := pageWidth / 2
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(half, 6, "From:", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
	pdf.CellFormat(half, 5, tr(issuerName), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, tr(inv.CustomerName), "", 1, "L", false, 0, "")
	pdf.CellFormat(half, 5, tr(issuerEmail), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 5, tr(customerEmail), "", 1, "L", false, 0, "")
	if customerAddress != "" {
		pdf.SetX(marginLeft + half)
		pdf.MultiCell(half, 5, tr(customerAddress), "", "L", false)
	}
	pdf.Ln(6)

	// Dates
	pdf.SetFont(fontFamily, "", 11)
	pdf.CellFormat(30, 6, "Invoice Date:", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, inv.IssueDate.Format(dto.DateLayout), "", 1, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Due Date:", "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, inv.DueDate.Format(dto.DateLayout), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Line items
	pdf.SetFont(fontFamily, "B", 11)
	pdf.SetFillColor(235, 235, 235)
	for i, title := range []string{"Description", "Qty", "Price", "Total"} {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(columnWidths[i], rowHeight, title, "B", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(fontFamily, "", 10)
	for _, li := range details.LineItems {
		pdf.CellFormat(columnWidths[0], rowHeight, tr(li.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(columnWidths[1], rowHeight, fmt.Sprintf("%d", li.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[2], rowHeight, formatMoney(li.UnitPrice, inv.CurrencyCode), "", 0, "R", false, 0, "")
		pdf.CellFormat(columnWidths[3], rowHeight, formatMoney(li.LineTotal, inv.CurrencyCode), "", 1, "R", false, 0, "")
	}
	pdf.CellFormat(pageWidth, 2, "", "T", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Totals
	labelX := marginLeft + columnWidths[0] + columnWidths[1]
	totalsRow := func(label string, amount decimal.Decimal, size float64) {
		pdf.SetX(labelX)
		pdf.SetFont(fontFamily, "B", size)
		pdf.CellFormat(columnWidths[2], rowHeight, label, "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", size)
		pdf.CellFormat(columnWidths[3], rowHeight, formatMoney(amount, inv.CurrencyCode), "", 1, "R", false, 0, "")
	}
	totalsRow("Total:", details.Totals.Total, 11)
	totalsRow("Amount Paid:", details.Totals.AmountPaid, 11)
	pdf.Ln(2)
	totalsRow("Balance Due:", details.Totals.BalanceDue, 13)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to lay out invoice pdf: %w", err)
	}
	return pdf.Output(w)
}

// RenderBytes renders the PDF into memory, so callers can fail cleanly
// before any response bytes are sent.
func RenderBytes(details *domain.InvoiceDetails, issuer *domain.User) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, details, issuer); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + currency
}
