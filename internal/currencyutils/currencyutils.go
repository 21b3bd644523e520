// Package currencyutils provides the decimal arithmetic used for report
// figures. Quotients keep DivisionPlaces digits; only values meant for display
// are rounded to DisplayPlaces.
package currencyutils

import (
	"github.com/shopspring/decimal"
)

const (
	// DisplayPlaces is the number of decimal places shown for amounts.
	DisplayPlaces = 2
	// DivisionPlaces bounds the digits kept by non-terminating quotients.
	DivisionPlaces = 16
)

var hundred = decimal.NewFromInt(100)

// Percentage returns part as a percentage of total. A non-positive total
// yields zero.
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).DivRound(total, DivisionPlaces)
}

// Average returns total divided by count. A count of zero yields zero.
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), DivisionPlaces)
}

// RoundedAverage returns total divided by count rounded half away from zero
// to two places. The rounding is decided on the exact remainder. A count of
// zero yields zero.
func RoundedAverage(total decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(count))
	q, r := total.QuoRem(n, DisplayPlaces)
	if r.Abs().Mul(decimal.NewFromInt(2)).GreaterThanOrEqual(n.Shift(-DisplayPlaces)) {
		step := decimal.New(1, -DisplayPlaces)
		if total.IsNegative() {
			step = step.Neg()
		}
		q = q.Add(step)
	}
	return q
}

// FormatAmount formats a decimal amount with two decimal places and no
// thousands separators.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(DisplayPlaces)
}
