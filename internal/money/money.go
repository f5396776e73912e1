// Package money formats FCFA amounts for display. The franc CFA has no
// sub-units, so amounts are plain integers of the display currency.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.French)

// Format renders an amount as a French-grouped FCFA string, e.g. "2 500 FCFA".
func Format(cents int64) string {
	return printer.Sprintf("%d FCFA", cents)
}
