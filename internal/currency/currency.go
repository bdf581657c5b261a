// Package currency formats amounts for display. Formatting is a presentation
// concern only; no currency code is ever stored with the entities.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol is the Ghana cedi prefix used everywhere money is shown.
const Symbol = "GH₵"

var printer = message.NewPrinter(language.MustParse("en-GH"))

// Format renders an amount the way the app displays money: the cedi symbol
// followed by a locale-grouped number with exactly two decimals.
func Format(amount float64) string {
	return Symbol + " " + printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatCount renders a unit count with locale grouping.
func FormatCount(n int) string {
	return printer.Sprint(number.Decimal(n))
}
