// Package timerange maps symbolic range selectors to concrete half-open
// windows and the immediately preceding comparable window.
package timerange

import (
	"fmt"
	"time"

	"github.com/aurumline/insights/internal/entity"
)

// Range is the closed set of supported window selectors.
type Range string

const (
	RangeLast7Days  Range = "7d"
	RangeLast30Days Range = "30d"
	RangeLast90Days Range = "90d"
	RangeThisYear   Range = "year"
)

var rollingDays = map[Range]int{
	RangeLast7Days:  7,
	RangeLast30Days: 30,
	RangeLast90Days: 90,
}

// InvalidRangeError signals an unrecognized selector. It is the only error
// the engine ever surfaces; everything else is recovered locally.
type InvalidRangeError struct {
	Selector string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range selector %q", e.Selector)
}

// ParseRange validates a raw selector. Unknown values fail instead of
// silently defaulting.
func ParseRange(s string) (Range, error) {
	r := Range(s)
	if _, ok := rollingDays[r]; ok || r == RangeThisYear {
		return r, nil
	}
	return "", &InvalidRangeError{Selector: s}
}

// Windows holds the current window and the same-length previous one.
type Windows struct {
	Current  entity.TimeRange
	Previous entity.TimeRange
}

// Resolve anchors the range at now. Rolling ranges compare against the N
// days immediately before; this-year compares against the equivalent elapsed
// portion of the prior calendar year, not a rolling 365 days.
func Resolve(r Range, now time.Time) (Windows, error) {
	if days, ok := rollingDays[r]; ok {
		cur := entity.TimeRange{From: now.AddDate(0, 0, -days), To: now}
		return Windows{
			Current:  cur,
			Previous: entity.TimeRange{From: now.AddDate(0, 0, -2*days), To: cur.From},
		}, nil
	}
	if r == RangeThisYear {
		loc := now.Location()
		prevTo := now.AddDate(-1, 0, 0)
		if prevTo.Day() != now.Day() {
			// AddDate normalized Feb 29 into Mar 1; pull back to the last
			// day the prior year actually has.
			prevTo = prevTo.AddDate(0, 0, -1)
		}
		return Windows{
			Current: entity.TimeRange{
				From: time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc),
				To:   now,
			},
			Previous: entity.TimeRange{
				From: time.Date(now.Year()-1, 1, 1, 0, 0, 0, 0, loc),
				To:   prevTo,
			},
		}, nil
	}
	return Windows{}, &InvalidRangeError{Selector: string(r)}
}

// Granularity picks the chart bucket size for the range: days for short
// windows, weeks for 90 days, months for the year view.
func (r Range) Granularity() entity.MetricsGranularity {
	switch r {
	case RangeLast90Days:
		return entity.MetricsGranularityWeek
	case RangeThisYear:
		return entity.MetricsGranularityMonth
	default:
		return entity.MetricsGranularityDay
	}
}
