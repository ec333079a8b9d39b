package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a time of day in minutes since midnight.
// It persists as a 24-hour "HH:MM" string so stored values sort
// lexicographically; 12-hour display happens only at render time.
type ClockTime int

// NewClock builds a ClockTime from hour and minute.
func NewClock(hour, minute int) ClockTime {
	return ClockTime(hour*60 + minute)
}

// ParseClock parses "15:04" or the legacy "03:04 PM" form.
func ParseClock(s string) (ClockTime, error) {
	if t, err := time.Parse("15:04", s); err == nil {
		return NewClock(t.Hour(), t.Minute()), nil
	}
	if t, err := time.Parse("03:04 PM", s); err == nil {
		return NewClock(t.Hour(), t.Minute()), nil
	}
	return 0, fmt.Errorf("parsing time of day %q", s)
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Clock12 renders the 12-hour display form, e.g. "03:04 PM".
func (c ClockTime) Clock12() string {
	h := c.Hour()
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", h, c.Minute(), suffix)
}

// MarshalJSON implements json.Marshaler.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
