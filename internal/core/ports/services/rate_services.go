package services

import (
	"github.com/SscSPs/invoice_management_app/internal/dto"
	"github.com/shopspring/decimal"
)

// RateSvc performs fixed-table currency conversion and flat tax calculation.
// It has no persistence and no invariants beyond the lookup tables.
type RateSvc interface {
	// ConvertCurrency converts amount from one currency code to another.
	ConvertCurrency(amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertCurrencyResponse, error)

	// CalculateTax applies the flat rate of countryCode to amount.
	CalculateTax(amount decimal.Decimal, countryCode string) *dto.CalculateTaxResponse
}
