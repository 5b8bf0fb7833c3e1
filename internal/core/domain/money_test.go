package domain

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"Rp12345", 12345},
		// Dot-grouped Rupiah keeps the longest-numeric-prefix reading the
		// dashboard has always produced.
		{"Rp1.234.567", 1.234},
		{"-42", -42},
		{"Rp 987", 987},
		{"", 0},
		{"N/A", 0},
		{"...", 0},
		{"Rp100.", 100},
	}

	for _, tc := range cases {
		if got := ParseAmount(tc.in); got != tc.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatIDR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rp0,00"},
		{950, "Rp950,00"},
		{1234567, "Rp1.234.567,00"},
		{2500.5, "Rp2.500,50"},
		{-120000, "-Rp120.000,00"},
	}

	for _, tc := range cases {
		if got := FormatIDR(tc.in); got != tc.want {
			t.Fatalf("FormatIDR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
