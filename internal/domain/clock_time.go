package domain

import (
	"fmt"
)

// ClockTime represents a wall-clock time of day with minute precision.
// It carries no date or zone; shift bounds are plain "HH:MM" values.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a "HH:MM" string into a ClockTime.
func ParseClockTime(s string) (*ClockTime, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return nil, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if len(s) != 5 || s[2] != ':' {
		return nil, fmt.Errorf("invalid clock time %q: expected HH:MM", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("invalid clock time %q: out of range", s)
	}
	return &ClockTime{Hour: hour, Minute: minute}, nil
}

// MinutesSinceMidnight returns the clock time expressed as minutes since 00:00.
func (ct ClockTime) MinutesSinceMidnight() int {
	return ct.Hour*60 + ct.Minute
}

// String formats the clock time as "HH:MM".
func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}
