package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/aurumline/insights/internal/entity"
)

// SeriesByGranularity partitions a filtered order set into chronological
// buckets spanning the full window, including empty ones, so charts never
// have gaps. Each bucket carries the monetary sum and the order count; the
// sum over all buckets equals the aggregate over the unbucketed set.
func SeriesByGranularity(orders []entity.Order, window entity.TimeRange, g entity.MetricsGranularity) []entity.TimeSeriesPoint {
	loc := window.From.Location()
	sums := make(map[string]*entity.TimeSeriesPoint)
	for _, o := range orders {
		d, ok := o.EffectiveDate()
		if !ok {
			continue
		}
		// Bucket in the window's location: an order timestamped in another
		// zone must land in the same calendar bucket the gap fill visits.
		b := bucketStart(d.In(loc), g)
		key := b.Format("2006-01-02")
		p, found := sums[key]
		if !found {
			p = &entity.TimeSeriesPoint{Date: b, Value: decimal.Zero}
			sums[key] = p
		}
		p.Value = p.Value.Add(o.TotalAmount)
		p.Count++
	}
	return fillSeriesGaps(sums, window, g)
}

// fillSeriesGaps ensures a continuous date range for charts; missing buckets
// are filled with zeros. The last bucket is the one containing the final
// instant before the exclusive window end.
func fillSeriesGaps(sums map[string]*entity.TimeSeriesPoint, window entity.TimeRange, g entity.MetricsGranularity) []entity.TimeSeriesPoint {
	var result []entity.TimeSeriesPoint
	cur := bucketStart(window.From, g)
	end := bucketStart(window.To.Add(-time.Nanosecond).In(window.From.Location()), g)
	for !cur.After(end) {
		key := cur.Format("2006-01-02")
		if p, ok := sums[key]; ok {
			result = append(result, *p)
		} else {
			result = append(result, entity.TimeSeriesPoint{Date: cur, Value: decimal.Zero})
		}
		cur = bucketNext(cur, g)
	}
	return result
}

func bucketStart(t time.Time, g entity.MetricsGranularity) time.Time {
	loc := t.Location()
	switch g {
	case entity.MetricsGranularityWeek:
		// Monday 00:00 (Go weekday: 0=Sun, 1=Mon)
		weekday := int(t.Weekday())
		daysBack := (weekday + 6) % 7
		return time.Date(t.Year(), t.Month(), t.Day()-daysBack, 0, 0, 0, 0, loc)
	case entity.MetricsGranularityMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
}

func bucketNext(t time.Time, g entity.MetricsGranularity) time.Time {
	switch g {
	case entity.MetricsGranularityWeek:
		return t.AddDate(0, 0, 7)
	case entity.MetricsGranularityMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
