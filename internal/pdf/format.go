package pdf

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency rounds amount to the configured number of decimals and
// groups thousands, e.g. ¥1,234,567
func (r *Renderer) FormatCurrency(amount float64) string {
	return FormatMoney(amount, r.opts.CurrencySymbol, r.opts.CurrencyDecimals)
}

// FormatMoney formats amount with the given symbol and decimal places
func FormatMoney(amount float64, symbol string, decimals int32) string {
	rounded := decimal.NewFromFloat(amount).Round(decimals)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	out := humanize.Comma(whole.IntPart())
	if decimals > 0 {
		// "0.50" -> ".50"
		out += rounded.Sub(whole).StringFixed(decimals)[1:]
	}

	return sign + symbol + out
}

// FormatQuantity prints a quantity without trailing zeros
func FormatQuantity(q float64) string {
	return decimal.NewFromFloat(q).String()
}
