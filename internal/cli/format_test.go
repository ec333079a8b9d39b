package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₦0.00"},
		{1234.5, "₦1,234.50"},
		{1000000, "₦1,000,000.00"},
		{45.5, "₦45.50"},
		{-120, "-₦120.00"},
		{0.1, "₦0.10"},
	}
	for _, tt := range tests {
		if got := FormatMoney("₦", tt.amount); got != tt.want {
			t.Fatalf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDaysLeft(t *testing.T) {
	if got := FormatDaysLeft(3); got != "3 day(s) to go" {
		t.Fatalf("FormatDaysLeft(3) = %q", got)
	}
	if got := FormatDaysLeft(0); got != "0 day(s) to go" {
		t.Fatalf("FormatDaysLeft(0) = %q, today still counts down", got)
	}
	if got := FormatDaysLeft(-1); got != "happened already" {
		t.Fatalf("FormatDaysLeft(-1) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.256); got != "25.6%" {
		t.Fatalf("FormatPercent = %q, want 25.6%%", got)
	}
}
