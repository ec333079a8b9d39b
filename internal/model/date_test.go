package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-03-10" {
		t.Fatalf("String = %q, want 2026-03-10", d.String())
	}
	if d.Weekday() != time.Tuesday {
		t.Fatalf("Weekday = %v, want Tuesday", d.Weekday())
	}

	if _, err := ParseDate("10/03/2026"); err == nil {
		t.Fatal("ParseDate accepted a non-ISO date")
	}
}

func TestDaysUntil(t *testing.T) {
	today := NewDate(2026, time.March, 10)

	tests := []struct {
		name string
		d    Date
		want int
	}{
		{"same day", today, 0},
		{"tomorrow", today.AddDays(1), 1},
		{"next week", today.AddDays(7), 7},
		{"yesterday", today.AddDays(-1), -1},
		{"across month end", NewDate(2026, time.April, 2), 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.DaysUntil(today); got != tt.want {
				t.Fatalf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 10)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2026-03-10"` {
		t.Fatalf("Marshal = %s, want \"2026-03-10\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip = %v, want %v", back, d)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2026, time.March, 10)
	b := a.AddDays(1)

	if !a.Before(b) || b.Before(a) {
		t.Fatal("Before is inconsistent")
	}
	if !b.After(a) {
		t.Fatal("After is inconsistent")
	}
	if a.Equal(b) {
		t.Fatal("distinct days compare equal")
	}
}
