package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// Money represents a monetary value stored in minor units (paise).
type Money = int64

// minorPerMajor is the number of minor units in one major unit.
const minorPerMajor = 100

// LineAmount calculates the amount for a single order line. Non-positive
// quantities contribute nothing.
func LineAmount(unitPrice Money, qty int) Money {
	if qty <= 0 {
		return 0
	}
	return unitPrice * Money(qty)
}

// Parse converts a decimal price string such as "20" or "20.50" into minor
// units. At most two fractional digits are honoured; extra digits are an
// error rather than silently rounded.
func Parse(value string) (Money, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("pricing: empty amount")
	}
	neg := strings.HasPrefix(trimmed, "-")
	if neg {
		return 0, fmt.Errorf("pricing: negative amount %q", value)
	}
	whole := trimmed
	frac := ""
	if idx := strings.IndexByte(trimmed, '.'); idx >= 0 {
		whole = trimmed[:idx]
		frac = trimmed[idx+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("pricing: too many fractional digits in %q", value)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pricing: parse amount %q: %w", value, err)
	}
	minor, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("pricing: parse amount %q: %w", value, err)
	}
	return major*minorPerMajor + minor, nil
}

// Format renders a minor-unit amount with the given currency symbol,
// e.g. Format("₹", 6000) == "₹60.00".
func Format(symbol string, m Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, m/minorPerMajor, m%minorPerMajor)
}
