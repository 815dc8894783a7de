package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

type ratesHandler struct {
	rateService portssvc.RateSvc
}

func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvc) {
	h := &ratesHandler{rateService: rateService}
	rg.POST("/convert-currency", h.convertCurrency)
	rg.POST("/calculate-tax", h.calculateTax)
}

// convertCurrency godoc
// @Summary Convert an amount between currencies
// @Description Uses a fixed rate table (USD, EUR, GBP, INR, JPY).
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.ConvertCurrencyRequest true "Amount and currency codes"
// @Success 200 {object} dto.ConvertCurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /convert-currency [post]
func (h *ratesHandler) convertCurrency(c *gin.Context) {
	var req dto.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.rateService.ConvertCurrency(req.Amount, req.From, req.To)
	if err != nil {
		respondWithError(c, err, "Failed to convert currency")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// calculateTax godoc
// @Summary Calculate tax for a country
// @Description Applies a flat country rate (US, UK, EU, IN, JP). Unknown countries are untaxed.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.CalculateTaxRequest true "Amount and country code"
// @Success 200 {object} dto.CalculateTaxResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculate-tax [post]
func (h *ratesHandler) calculateTax(c *gin.Context) {
	var req dto.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.rateService.CalculateTax(req.Amount, req.Country))
}
