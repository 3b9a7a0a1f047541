package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP renders an amount in Colombian pesos for display, with
// es-CO digit grouping and no fractional digits ("$ 20.000").
func FormatCOP(amount int) string {
	return copPrinter.Sprintf("$ %d", amount)
}
