package dto

import "github.com/shopspring/decimal"

// ConvertCurrencyRequest defines the body of a currency conversion.
type ConvertCurrencyRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   string          `json:"from" binding:"required,len=3"`
	To     string          `json:"to" binding:"required,len=3"`
}

// ConvertCurrencyResponse carries a converted amount.
type ConvertCurrencyResponse struct {
	Original  decimal.Decimal `json:"original"`
	Converted decimal.Decimal `json:"converted"`
	Rate      decimal.Decimal `json:"rate"`
	Currency  string          `json:"currency"`
}

// CalculateTaxRequest defines the body of a tax calculation.
type CalculateTaxRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	Country string          `json:"country" binding:"required"`
}

// CalculateTaxResponse carries the tax breakdown. TaxRate is a percentage.
type CalculateTaxResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}
