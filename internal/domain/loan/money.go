package loan

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders d as US dollars, e.g. $12,500.00.
func FormatCurrency(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Abs()
	}
	whole := r.Truncate(0)
	cents := r.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, usPrinter.Sprintf("%d", whole.IntPart()), cents)
}
