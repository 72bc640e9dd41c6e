package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount using the locale symbol and fraction
// rules of the given ISO currency code. Unknown codes fall back to a plain
// two-decimal rendering with the code appended.
func FormatCurrency(amount decimal.Decimal, currencyCode string) string {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		return amount.StringFixed(2) + " " + currencyCode
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0)
	return money.New(minor.IntPart(), currencyCode).Display()
}
