package ranges

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Number is the set of built-in numeric types the arithmetic step helpers
// accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Inc returns a successor that adds delta.
func Inc[C Number](delta C) StepFunc[C] {
	return func(c C) C { return c + delta }
}

// Dec returns a successor that subtracts delta.
func Dec[C Number](delta C) StepFunc[C] {
	return func(c C) C { return c - delta }
}

// Mul returns a successor that multiplies by factor.
func Mul[C Number](factor C) StepFunc[C] {
	return func(c C) C { return c * factor }
}

// AddDate returns a successor that moves a time by the given calendar
// offset, following time.Time.AddDate normalisation.
func AddDate(years, months, days int) StepFunc[time.Time] {
	return func(t time.Time) time.Time { return t.AddDate(years, months, days) }
}

// MonthsFrom returns an indexed successor that yields origin shifted by
// months*(index+1). Unlike repeated AddDate, it does not drift when a
// month-end day is normalised into the next month (Jan 31 → Feb 28 → Mar 31).
func MonthsFrom(origin time.Time, months int) IndexedStepFunc[time.Time] {
	return func(_ time.Time, index int) time.Time {
		return addMonthsClamped(origin, months*(index+1))
	}
}

// AddDuration returns a successor that adds a fixed duration.
func AddDuration(d time.Duration) StepFunc[time.Time] {
	return func(t time.Time) time.Time { return t.Add(d) }
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}
