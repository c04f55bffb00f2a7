package engine

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{80, "₹80"},
		{500, "₹500"},
		{1000, "₹1,000"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{99.5, "₹99.50"},
		{1234.56, "₹1,234.56"},
		{-530, "-₹530"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
