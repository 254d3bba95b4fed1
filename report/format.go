package report

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Round rounds v according to mode. Non-finite values pass through.
func Round(v float64, mode string) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	d := decimal.NewFromFloat(v)
	switch mode {
	case RoundingNone:
		return v
	case RoundingWhole:
		d = d.Round(0)
	default:
		d = d.Round(2)
	}
	f, _ := d.Float64()
	return f
}

// FormatNumber renders v rounded according to mode.
func FormatNumber(v float64, mode string) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	switch mode {
	case RoundingNone:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case RoundingWhole:
		return decimal.NewFromFloat(v).StringFixed(0)
	default:
		return decimal.NewFromFloat(v).StringFixed(2)
	}
}

// monthsOrYears switches to years beyond two years.
func monthsOrYears(months float64) (float64, string) {
	if math.Abs(months) > 24 {
		return months / 12, "years"
	}
	return months, "months"
}
