package pricefomatter

import "github.com/shopspring/decimal"

const (
	CurrencyICP = "ICP"
	e8sDecimals = 8
)

// PriceFormatter converts between ledger integer amounts and display decimals
type PriceFormatter interface {
	// ToDisplay returns amount as a decimal in whole currency units
	ToDisplay(amount uint64, currency string) (decimal.Decimal, error)
	// Format renders amount for display, e.g. "5.1 ICP"
	Format(amount uint64, currency string) string
	// FromDisplay parses a display decimal back to the integer amount
	FromDisplay(display string, currency string) (uint64, error)
}
