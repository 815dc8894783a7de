package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/invoice_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/SscSPs/invoice_management_app/internal/middleware"
	"github.com/SscSPs/invoice_management_app/internal/utils/invoicepdf"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceLedgerSvcFacade
	userService    portssvc.UserReaderSvc
}

func newInvoiceHandler(is portssvc.InvoiceLedgerSvcFacade, us portssvc.UserReaderSvc) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		userService:    us,
	}
}

// RegisterInvoiceRoutes registers the invoice routes on an authenticated group.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceLedgerSvcFacade, userService portssvc.UserReaderSvc) {
	h := newInvoiceHandler(invoiceService, userService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.GET("/:invoiceID/totals", h.getTotals)
		invoices.GET("/:invoiceID/pdf", h.downloadPDF)
		invoices.POST("/:invoiceID/payments", h.recordPayment)
		invoices.POST("/:invoiceID/archive", h.archiveInvoice)
		invoices.POST("/:invoiceID/restore", h.restoreInvoice)
	}
	rg.POST("/seed", h.seedInvoice)
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists the caller's invoices with totals, newest first.
// @Tags invoices
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param nextToken query string false "Token from the previous page"
// @Param includeArchived query bool false "Include archived invoices (default true)"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.invoiceService.ListInvoices(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice with its line items in one atomic step. Line totals are computed by the server.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.CreateInvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invoice number already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusCreated, dto.CreateInvoiceResponse{
		Message:       "Invoice created successfully",
		InvoiceID:     invoice.InvoiceID,
		InvoiceNumber: invoice.InvoiceNumber,
	})
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Returns an invoice with line items, payments and totals.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	details, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("invoiceID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to get invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceDetailsResponse(details))
}

// getTotals godoc
// @Summary Invoice totals
// @Description Returns total, amount paid and balance due of an invoice.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.TotalsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/totals [get]
func (h *invoiceHandler) getTotals(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	totals, err := h.invoiceService.ComputeTotals(c.Request.Context(), c.Param("invoiceID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.ToTotalsResponse(*totals))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends a payment. The invoice becomes PAID when its balance reaches zero.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param payment body dto.RecordPaymentRequest true "Payment amount"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount, overpayment or already paid"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/payments [post]
func (h *invoiceHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoiceID := c.Param("invoiceID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	payment, totals, err := h.invoiceService.RecordPayment(c.Request.Context(), invoiceID, userID, req.Amount)
	if err != nil {
		respondWithError(c, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded", slog.String("invoice_id", invoiceID), slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment: dto.ToPaymentResponse(*payment),
		Totals:  dto.ToTotalsResponse(*totals),
	})
}

// archiveInvoice godoc
// @Summary Archive an invoice
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/archive [post]
func (h *invoiceHandler) archiveInvoice(c *gin.Context) {
	h.setArchived(c, h.invoiceService.Archive)
}

// restoreInvoice godoc
// @Summary Restore an archived invoice
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/restore [post]
func (h *invoiceHandler) restoreInvoice(c *gin.Context) {
	h.setArchived(c, h.invoiceService.Restore)
}

func (h *invoiceHandler) setArchived(c *gin.Context, apply func(ctx context.Context, invoiceID, ownerID string) (*domain.Invoice, error)) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := apply(c.Request.Context(), c.Param("invoiceID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// downloadPDF godoc
// @Summary Download invoice PDF
// @Tags invoices
// @Produce application/pdf
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/pdf [get]
func (h *invoiceHandler) downloadPDF(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	details, err := h.invoiceService.GetInvoice(ctx, c.Param("invoiceID"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to generate PDF")
		return
	}

	issuer, err := h.userService.GetUserByID(ctx, userID)
	if err != nil {
		logger.Warn("Issuer lookup failed, rendering without sender details", slog.String("error", err.Error()))
		issuer = nil
	}

	body, err := invoicepdf.RenderBytes(details, issuer)
	if err != nil {
		respondWithError(c, err, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", invoicepdf.ContentDisposition(details.Invoice.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", body)
}

// seedInvoice godoc
// @Summary Create a sample invoice
// @Description Creates a demo invoice for the caller with a generated invoice number.
// @Tags invoices
// @Produce json
// @Success 201 {object} dto.CreateInvoiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /seed [post]
func (h *invoiceHandler) seedInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.SeedDemoInvoice(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to seed invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateInvoiceResponse{
		Message:       "Sample invoice created",
		InvoiceID:     invoice.InvoiceID,
		InvoiceNumber: invoice.InvoiceNumber,
	})
}
