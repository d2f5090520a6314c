package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices go out as JSON numbers with their exact decimal digits.
	decimal.MarshalJSONWithoutQuotes = true
}

// LineTotal returns price × quantity without leaving decimal arithmetic.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
