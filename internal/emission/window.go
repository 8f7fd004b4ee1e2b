package emission

import "time"

// Period is the aggregation window granularity.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// NormalizePeriod maps arbitrary input to a known period, defaulting to
// month for anything unrecognized.
func NormalizePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return Period(s)
	default:
		return PeriodMonth
	}
}

// windowStart returns the start of the current window containing asOf.
// All windows are computed in UTC; weeks start on Monday.
func windowStart(period Period, asOf time.Time) time.Time {
	asOf = asOf.UTC()
	midnight := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case PeriodDay:
		return midnight
	case PeriodWeek:
		// Monday-based weekday offset: Mon=0 ... Sun=6
		offset := (int(asOf.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset)
	default: // month
		return time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// previousWindow returns [start, end] of the window immediately before
// the one starting at start. The previous month is the first of the
// prior calendar month, not a fixed 30 days back.
func previousWindow(period Period, start time.Time) (time.Time, time.Time) {
	end := start.Add(-time.Second)
	switch period {
	case PeriodDay:
		return start.AddDate(0, 0, -1), end
	case PeriodWeek:
		return start.AddDate(0, 0, -7), end
	default: // month
		return start.AddDate(0, -1, 0), end
	}
}
