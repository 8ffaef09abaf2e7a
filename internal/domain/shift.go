package domain

// minutesPerDay is the wrap amount applied once to shifts crossing midnight.
const minutesPerDay = 24 * 60

// Shift represents one of the three fixed daily time windows of an entry.
// TimeIn/TimeOut are optional; Hours is derived from them on construction.
type Shift struct {
	TimeIn  *ClockTime
	TimeOut *ClockTime
	Hours   float64
}

// NewShift creates a Shift with its Hours derived from the given bounds.
func NewShift(timeIn, timeOut *ClockTime) Shift {
	return Shift{
		TimeIn:  timeIn,
		TimeOut: timeOut,
		Hours:   ComputeShiftHours(timeIn, timeOut),
	}
}

// IsEmpty returns true if the shift contributes no hours.
func (s Shift) IsEmpty() bool {
	return s.Hours == 0
}

// ComputeShiftHours returns the elapsed hours between timeIn and timeOut.
// A shift with either bound absent contributes nothing. A time-out earlier on
// the clock than the time-in is interpreted as crossing midnight, never as an
// error; the wrap adds one day's worth of minutes exactly once. Equal bounds
// yield 0 hours, not 24: a zero-length shift is not wrapped.
func ComputeShiftHours(timeIn, timeOut *ClockTime) float64 {
	if timeIn == nil || timeOut == nil {
		return 0
	}

	diffMinutes := timeOut.MinutesSinceMidnight() - timeIn.MinutesSinceMidnight()
	if diffMinutes < 0 {
		diffMinutes += minutesPerDay
	}

	return float64(diffMinutes) / 60
}
