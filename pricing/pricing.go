package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Totals carries the derived cart amounts in whole Rupiah.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ComputeTotals derives tax and total from a subtotal in the smallest
// currency unit. Tax is rounded half-up to the nearest Rupiah; the total
// is the sum of the two rounded figures, so Total == Subtotal + Tax holds
// by construction.
func ComputeTotals(subtotal int64, taxRate decimal.Decimal) Totals {
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// DefaultTaxRate is the PPN fraction applied when no rate is configured.
var DefaultTaxRate = decimal.New(11, -2)

// ParseTaxRate parses a configured fraction such as "0.11".
func ParseTaxRate(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a whole-Rupiah amount with id-ID digit grouping
// and no fractional digits, e.g. 15000000 -> "Rp15.000.000".
func FormatRupiah(v int64) string {
	return printer.Sprintf("Rp%v", number.Decimal(v))
}
