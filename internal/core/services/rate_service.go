package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/invoice_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoice_management_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_management_app/internal/dto"
)

// currencyRates are units of each currency per one USD.
var currencyRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.85"),
	"GBP": decimal.RequireFromString("0.73"),
	"INR": decimal.RequireFromString("83.12"),
	"JPY": decimal.RequireFromString("149.50"),
}

// taxRates are flat rates per country code, as fractions.
var taxRates = map[string]decimal.Decimal{
	"US": decimal.RequireFromString("0.08"),
	"UK": decimal.RequireFromString("0.20"),
	"EU": decimal.RequireFromString("0.19"),
	"IN": decimal.RequireFromString("0.18"),
	"JP": decimal.RequireFromString("0.10"),
}

var hundred = decimal.NewFromInt(100)

type rateService struct{}

// NewRateService creates the fixed-table currency and tax service.
func NewRateService() portssvc.RateSvc {
	return rateService{}
}

var _ portssvc.RateSvc = rateService{}

// ConvertCurrency converts through USD and rounds to cents.
func (rateService) ConvertCurrency(amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertCurrencyResponse, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCode))
	to := strings.ToUpper(strings.TrimSpace(toCode))

	fromRate, ok := currencyRates[from]
	if !ok {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unsupported currency '%s'", fromCode))
	}
	toRate, ok := currencyRates[to]
	if !ok {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unsupported currency '%s'", toCode))
	}
	if amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("amount must not be negative")
	}

	rate := toRate.DivRound(fromRate, 6)
	return &dto.ConvertCurrencyResponse{
		Original:  amount,
		Converted: amount.Div(fromRate).Mul(toRate).Round(2),
		Rate:      rate,
		Currency:  to,
	}, nil
}

// CalculateTax applies the country's flat rate; unknown countries are untaxed.
func (rateService) CalculateTax(amount decimal.Decimal, countryCode string) *dto.CalculateTaxResponse {
	rate := taxRates[strings.ToUpper(strings.TrimSpace(countryCode))]
	taxAmount := amount.Mul(rate).Round(2)
	return &dto.CalculateTaxResponse{
		Subtotal:  amount,
		TaxRate:   rate.Mul(hundred),
		TaxAmount: taxAmount,
		Total:     amount.Add(taxAmount),
	}
}
