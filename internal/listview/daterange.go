package listview

import (
	"strings"
	"time"
)

// Range is a date interval. Start is inclusive; End is exclusive unless the
// view opts into inclusive ends (see Config.IncludeEnd). The lastNdays and
// custom tokens place End at the last instant of the final day, so date-only
// comparison against [Start, End) already admits that day.
type Range struct {
	Start time.Time
	End   time.Time
}

const dayLayout = "2006-01-02"

// ResolveRange maps a named date-filter token to a concrete interval, or nil
// when no date filtering applies ("all", empty custom bounds, unknown tokens).
// It is called on every predicate evaluation with the current clock, so a
// console left open overnight keeps "today" honest.
func ResolveRange(token string, now time.Time, customStart, customEnd string) *Range {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	today := day(now)

	switch strings.TrimSpace(token) {
	case "today":
		return &Range{Start: today, End: today.AddDate(0, 0, 1)}
	case "yesterday":
		start := today.AddDate(0, 0, -1)
		return &Range{Start: start, End: today}
	case "tomorrow":
		start := today.AddDate(0, 0, 1)
		return &Range{Start: start, End: start.AddDate(0, 0, 1)}
	case "week":
		// Sunday-anchored regardless of locale.
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return &Range{Start: start, End: start.AddDate(0, 0, 7)}
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &Range{Start: start, End: start.AddDate(0, 1, 0)}
	case "last-month":
		// AddDate handles the January -> previous December rollover.
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &Range{Start: end.AddDate(0, -1, 0), End: end}
	case "last7days":
		return &Range{Start: today.AddDate(0, 0, -7), End: endOfDay(today)}
	case "last30days":
		return &Range{Start: today.AddDate(0, 0, -30), End: endOfDay(today)}
	case "custom":
		start, err := time.ParseInLocation(dayLayout, strings.TrimSpace(customStart), now.Location())
		if err != nil {
			return nil
		}
		end, err := time.ParseInLocation(dayLayout, strings.TrimSpace(customEnd), now.Location())
		if err != nil {
			return nil
		}
		return &Range{Start: start, End: endOfDay(end)}
	default:
		return nil
	}
}

func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}

// Contains reports whether the date-only value of t falls inside the range.
// includeEnd additionally admits a date equal to the end bound, for the views
// whose call sites treat the end day as part of the window.
func (r *Range) Contains(t time.Time, includeEnd bool) bool {
	if r == nil {
		return true
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.Start.Location())
	if d.Before(r.Start) {
		return false
	}
	if d.Before(r.End) {
		return true
	}
	return includeEnd && d.Equal(r.End)
}
