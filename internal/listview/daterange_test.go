package listview

import (
	"testing"
	"time"
)

// 2024-03-15 is a Friday.
var clock = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveRangeNamedTokens(t *testing.T) {
	cases := []struct {
		token string
		start time.Time
		end   time.Time
	}{
		{"today", day(2024, 3, 15), day(2024, 3, 16)},
		{"yesterday", day(2024, 3, 14), day(2024, 3, 15)},
		{"tomorrow", day(2024, 3, 16), day(2024, 3, 17)},
		{"week", day(2024, 3, 10), day(2024, 3, 17)},
		{"month", day(2024, 3, 1), day(2024, 4, 1)},
		{"last-month", day(2024, 2, 1), day(2024, 3, 1)},
	}
	for _, tc := range cases {
		r := ResolveRange(tc.token, clock, "", "")
		if r == nil {
			t.Fatalf("%s: got nil range", tc.token)
		}
		if !r.Start.Equal(tc.start) {
			t.Errorf("%s: start = %v, want %v", tc.token, r.Start, tc.start)
		}
		if !r.End.Equal(tc.end) {
			t.Errorf("%s: end = %v, want %v", tc.token, r.End, tc.end)
		}
	}
}

func TestResolveRangeWeekIsSundayAnchored(t *testing.T) {
	// A Sunday clock: the window starts on that same day.
	sunday := time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC)
	r := ResolveRange("week", sunday, "", "")
	if r == nil {
		t.Fatal("got nil range")
	}
	if !r.Start.Equal(day(2024, 3, 10)) {
		t.Errorf("start = %v, want 2024-03-10", r.Start)
	}
}

func TestResolveRangeLastMonthJanuaryRollover(t *testing.T) {
	jan := time.Date(2024, time.January, 20, 12, 0, 0, 0, time.UTC)
	r := ResolveRange("last-month", jan, "", "")
	if r == nil {
		t.Fatal("got nil range")
	}
	if !r.Start.Equal(day(2023, 12, 1)) || !r.End.Equal(day(2024, 1, 1)) {
		t.Errorf("got [%v, %v), want [2023-12-01, 2024-01-01)", r.Start, r.End)
	}
}

func TestResolveRangeLastNDaysIncludesToday(t *testing.T) {
	r := ResolveRange("last7days", clock, "", "")
	if r == nil {
		t.Fatal("got nil range")
	}
	if !r.Start.Equal(day(2024, 3, 8)) {
		t.Errorf("start = %v, want 2024-03-08", r.Start)
	}
	if !r.Contains(clock, false) {
		t.Error("today should be inside last7days")
	}
	if r.Contains(day(2024, 3, 16), false) {
		t.Error("tomorrow should be outside last7days")
	}
}

func TestResolveRangeCustom(t *testing.T) {
	r := ResolveRange("custom", clock, "2024-03-01", "2024-03-10")
	if r == nil {
		t.Fatal("got nil range")
	}
	if !r.Contains(day(2024, 3, 10), false) {
		t.Error("end day of a custom range should be included")
	}
	if r.Contains(day(2024, 3, 11), false) {
		t.Error("day after custom end should be excluded")
	}
	if !r.Contains(day(2024, 3, 1), false) {
		t.Error("custom start day should be included")
	}
}

func TestResolveRangeCustomEmptyBoundIsNil(t *testing.T) {
	if r := ResolveRange("custom", clock, "", "2024-03-10"); r != nil {
		t.Errorf("empty start: got %+v, want nil", r)
	}
	if r := ResolveRange("custom", clock, "2024-03-01", ""); r != nil {
		t.Errorf("empty end: got %+v, want nil", r)
	}
	if r := ResolveRange("custom", clock, "bogus", "2024-03-10"); r != nil {
		t.Errorf("malformed start: got %+v, want nil", r)
	}
}

func TestResolveRangeUnknownTokenIsNil(t *testing.T) {
	for _, token := range []string{"", "all", "fortnight"} {
		if r := ResolveRange(token, clock, "", ""); r != nil {
			t.Errorf("%q: got %+v, want nil", token, r)
		}
	}
}

func TestNilRangeContainsEverything(t *testing.T) {
	var r *Range
	if !r.Contains(day(1970, 1, 1), false) {
		t.Error("nil range should pass every record")
	}
}

func TestContainsIgnoresTimeOfDay(t *testing.T) {
	r := ResolveRange("today", clock, "", "")
	late := time.Date(2024, time.March, 15, 23, 59, 59, 0, time.UTC)
	if !r.Contains(late, false) {
		t.Error("a record late today should still match today")
	}
}

func TestContainsIncludeEnd(t *testing.T) {
	r := &Range{Start: day(2024, 3, 1), End: day(2024, 3, 10)}
	if r.Contains(day(2024, 3, 10), false) {
		t.Error("exclusive end should reject the end day")
	}
	if !r.Contains(day(2024, 3, 10), true) {
		t.Error("inclusive end should admit the end day")
	}
}
