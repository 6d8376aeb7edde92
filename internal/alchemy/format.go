package alchemy

import (
	"math"
	"strconv"
)

// percentPrecision scales a factor to four decimals before rounding
const percentPrecision = 10000

// PercentOff converts a cost factor into the percentage it takes off the
// price, with two decimals: (10000 - round(f*10000)) / 100.
// A factor of 0.9 gives 10, a factor of 1 gives 0.
func PercentOff(factor float64) float64 {
	return (percentPrecision - math.Round(factor*percentPrecision)) / 100
}

// FormatFixed formats x with two decimals the way the game UI does:
// the exact binary value is rounded, exact ties go away from zero and
// negative zero prints as 0.00.
func FormatFixed(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0.00"
	}
	// Only odd multiples of 1/8 sit exactly halfway between two cents.
	if eighths := x * 8; eighths == math.Trunc(eighths) && math.Mod(eighths, 2) != 0 {
		x = math.Round(x*100) / 100
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}
