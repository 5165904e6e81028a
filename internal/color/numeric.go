package color

import "math"

// Round rounds value half away from zero to the given number of decimals.
// With decimals == 0 the result is integer-valued.
func Round(value float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(value)
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(value*p) / p
}

// defaultAlpha returns the supplied alpha rounded to 2 decimals, or 1 when
// none was supplied. An explicit 0 counts as supplied.
func defaultAlpha(alpha ...float64) float64 {
	if len(alpha) == 0 {
		return 1
	}
	return Round(alpha[0], 2)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}
