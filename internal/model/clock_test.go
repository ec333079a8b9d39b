package model

import (
	"encoding/json"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want ClockTime
	}{
		{"08:00", NewClock(8, 0)},
		{"14:30", NewClock(14, 30)},
		{"00:05", NewClock(0, 5)},
		{"02:15 PM", NewClock(14, 15)}, // legacy 12-hour form
		{"12:00 AM", NewClock(0, 0)},
		{"12:00 PM", NewClock(12, 0)},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseClock(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseClock("half past nine"); err == nil {
		t.Fatal("ParseClock accepted nonsense")
	}
}

func TestClockRendering(t *testing.T) {
	tests := []struct {
		c       ClockTime
		str     string
		clock12 string
	}{
		{NewClock(0, 5), "00:05", "12:05 AM"},
		{NewClock(9, 30), "09:30", "09:30 AM"},
		{NewClock(12, 0), "12:00", "12:00 PM"},
		{NewClock(14, 15), "14:15", "02:15 PM"},
		{NewClock(23, 59), "23:59", "11:59 PM"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.str {
			t.Fatalf("String = %q, want %q", got, tt.str)
		}
		if got := tt.c.Clock12(); got != tt.clock12 {
			t.Fatalf("Clock12 = %q, want %q", got, tt.clock12)
		}
	}
}

func TestClockJSON(t *testing.T) {
	data, err := json.Marshal(NewClock(14, 30))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"14:30"` {
		t.Fatalf("Marshal = %s, want \"14:30\"", data)
	}

	// Both the stored form and the legacy form unmarshal.
	for _, in := range []string{`"14:30"`, `"02:30 PM"`} {
		var c ClockTime
		if err := json.Unmarshal([]byte(in), &c); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if c != NewClock(14, 30) {
			t.Fatalf("Unmarshal(%s) = %v, want 14:30", in, c)
		}
	}
}

func TestClockSortsNumerically(t *testing.T) {
	if !(NewClock(8, 0) < NewClock(9, 0)) {
		t.Fatal("08:00 should order before 09:00")
	}
	if !(NewClock(9, 59) < NewClock(10, 0)) {
		t.Fatal("09:59 should order before 10:00")
	}
}
