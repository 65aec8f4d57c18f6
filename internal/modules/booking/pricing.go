package booking

import (
	"strings"

	"github.com/shopspring/decimal"
)

// defaultRatePerHour applies when a venue's rate specification is missing
// or does not parse as a non-negative amount.
var defaultRatePerHour = decimal.New(800, 0)

// ComputeCharge derives the hourly rate and total charge for a duration.
// It is pure and never fails: a malformed rate spec degrades to the
// default rate instead of erroring. Amounts are rounded half-up to two
// decimal places.
func ComputeCharge(rateSpec string, durationMinutes int) (pricePerHour, totalAmount decimal.Decimal) {
	rate := defaultRatePerHour
	if spec := strings.TrimSpace(rateSpec); spec != "" {
		if d, err := decimal.NewFromString(spec); err == nil && !d.IsNegative() {
			rate = d
		}
	}

	rate = rate.Round(2)
	total := rate.
		Mul(decimal.NewFromInt(int64(durationMinutes))).
		Div(decimal.NewFromInt(60)).
		Round(2)
	return rate, total
}
