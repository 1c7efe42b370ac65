package bubbleboard

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize cleans a raw cell value into its canonical string form.
//
// Blank cells and the not-a-number sentinels that spreadsheet exports leak
// into text columns all map to "", the canonical "no value". It is total:
// no input fails.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "nan", "#n/a", "#value!", "null":
		return ""
	}
	return s
}

// parseNullDecimal parses an optional numeric cell, tolerating currency
// chrome ($ and thousand separators). Failure yields the invalid (absent)
// value, never an error: a malformed cost degrades only that field.
func parseNullDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
