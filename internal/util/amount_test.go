package util

import "testing"

func TestCentsFromAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1, 100},
		{12.34, 1234},
		{0.01, 1},
		{999.999, 100000}, // rounds to nearest cent
		{-12.34, -1234},
	}
	for _, tc := range cases {
		if got := CentsFromAmount(tc.in); got != tc.want {
			t.Errorf("CentsFromAmount(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{1234, "12.34"},
		{100000, "1000.00"},
		{-3000, "-30.00"},
	}
	for _, tc := range cases {
		if got := FormatCents(tc.in); got != tc.want {
			t.Errorf("FormatCents(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
