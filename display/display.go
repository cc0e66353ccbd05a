// Package display renders evaluation results for humans.
package display

import (
	"math"
	"strconv"
)

// Value formats v. Non-finite values render as "Inf", "-Inf" and "NaN". A
// negative precision selects the shortest representation that round-trips,
// otherwise v is printed with exactly precision decimals.
func Value(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	case precision < 0:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}
