package insights

import "math"

const (
	secondsPerDay = 86400

	// previousWindowPadding keeps adjacent periods from sharing a boundary
	// day.
	previousWindowPadding = secondsPerDay
)

// PreviousWindow derives the comparison window for a (startDate, endDate)
// unix-timestamp pair: same duration, immediately preceding, separated by a
// one-day gap. A single-day window compares against exactly the prior
// calendar day, with no padding. A zero endDate means the window is open;
// the previous window's end stays open too and only the start shifts back.
func PreviousWindow(startDate, endDate int64) (int64, int64) {
	if startDate != 0 && endDate != 0 && startDate == endDate {
		prev := startDate - secondsPerDay
		return prev, prev
	}

	if endDate == 0 {
		return startDate - previousWindowPadding, 0
	}

	duration := endDate - startDate
	return startDate - duration - previousWindowPadding, endDate - duration - previousWindowPadding
}

// Change returns the percent change from previous to current, on the scale
// the KPI itself is expressed in. Ratio-valued KPIs are compared on their
// ratio values, not the underlying absolutes, so callers pass those in
// directly. A zero previous value yields 0.
func Change(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / math.Abs(previous) * 100
}
