package util

import "strconv"

// CentsFromAmount converts a decimal amount to cents, rounding to the
// nearest cent. 12.34 becomes 1234.
func CentsFromAmount(amount float64) int64 {
	if amount < 0 {
		return -int64(-amount*100 + 0.5)
	}
	return int64(amount*100 + 0.5)
}

// FormatCents renders cents as a two-decimal string for display.
func FormatCents(cents int64) string {
	return strconv.FormatFloat(float64(cents)/100.0, 'f', 2, 64)
}
