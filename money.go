package bookpesa

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Ksh renders an amount as a grouped decimal string with the "Ksh " prefix,
// e.g. "Ksh 1,250". Whole amounts are rendered without a fraction; fractional
// amounts keep two decimal places, e.g. "Ksh 1,250.50".
func Ksh(amount decimal.Decimal) string {
	fraction := 0
	minor := amount
	if !amount.IsInteger() {
		fraction = 2
		minor = amount.Round(2).Shift(2)
	}
	f := money.NewFormatter(fraction, ".", ",", "", "1")
	return "Ksh " + f.Format(minor.IntPart())
}

// ParseAmount converts user input to an amount. Blank or non-numeric input
// yields zero rather than an error, matching the forgiving behavior of the
// entry forms.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
