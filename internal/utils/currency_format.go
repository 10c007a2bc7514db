package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sokonihub/sokoni_gateway/internal/core/domain"
)

// FormatAmount renders an amount per the currency's display rules: decimal
// precision, symbol placement and locale separators.
// Example: 1234.5 with USD returns "$1,234.50"
// Example: 1234.5 with EUR returns "1.234,50€"
// Example: 2600123 with TZS and Compact returns "TSh2.6M"
// Rounding happens here only; callers must never round before converting.
func FormatAmount(amount float64, c domain.Currency, opts domain.FormatOptions) string {
	var body string
	if opts.Compact && math.Abs(amount) >= 1000 {
		body = compactBody(amount)
	} else {
		body = groupedBody(amount, c)
	}

	var out string
	if c.SymbolPosition == domain.SymbolAfter {
		out = body + c.Symbol
	} else {
		out = c.Symbol + body
	}
	if opts.ShowCode {
		out += " " + c.CurrencyCode
	}
	return out
}

// groupedBody renders the full amount with thousands grouping, e.g. "2,600,123".
func groupedBody(amount float64, c domain.Currency) string {
	fixed := decimal.NewFromFloat(amount).StringFixed(int32(c.Precision))

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(c.ThousandsSep)
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteString(c.DecimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// compactBody renders an abbreviated magnitude, e.g. "2.6M" or "4.5K".
func compactBody(amount float64) string {
	abs := math.Abs(amount)
	switch {
	case abs >= 1e9:
		return scaled(amount, 1e9) + "B"
	case abs >= 1e6:
		return scaled(amount, 1e6) + "M"
	default:
		return scaled(amount, 1e3) + "K"
	}
}

func scaled(amount, unit float64) string {
	// decimal.String trims trailing zeros, so 2.0 renders as "2".
	return decimal.NewFromFloat(amount / unit).Round(1).String()
}
