package feed

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// priceJunk matches every character that is not a digit or decimal point.
var priceJunk = regexp.MustCompile(`[^\d.]`)

// NormalizePrice strips currency symbols, separators and units from a raw
// price value and formats the remainder to two decimal places.
//
//	NormalizePrice("$12.5 USD") == "12.50"
//	NormalizePrice("")          == ""
//	NormalizePrice("abc")       == ""
//
// Unparsable input degrades to empty string rather than an error; the
// validator reports the missing price downstream.
func NormalizePrice(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	cleaned := priceJunk.ReplaceAllString(raw, "")
	if cleaned == "" {
		return ""
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%.2f", f)
}
