package listview

import (
	"strings"
	"time"
)

// TabAll is the sentinel tab/category value that always passes.
const TabAll = "all"

// Config describes how a record type plugs into the engine. Accessors pull
// filterable values out of a record; the remaining fields are per-view policy.
type Config[T any] struct {
	// SearchFields returns the values the free-text search matches against.
	SearchFields func(T) []string
	// Category returns the value compared against the categorical filter,
	// or nil when the view has no categorical dimension.
	Category func(T) string
	// Status returns the value compared against the active tab.
	Status func(T) string
	// CreatedAt is the sole field used for date-range membership.
	CreatedAt func(T) time.Time
	// BusinessDate returns the record's business date (YYYY-MM-DD) for the
	// stale-pending rule. Unset disables the rule regardless of
	// ExcludeStalePending.
	BusinessDate func(T) string

	// ExcludeStalePending drops records from the "pending" tab when their
	// business date has already passed, even though the status matches.
	ExcludeStalePending bool
	// IncludeEnd admits records dated exactly on the range's end bound.
	IncludeEnd bool
	// ResetOnFilterChange returns the paginator to page 1 whenever a filter
	// dimension changes.
	ResetOnFilterChange bool

	PageSize     int
	PollInterval time.Duration
}

// Filters is the current state of the four filter dimensions. It is a plain
// value: applying the same Filters to the same collection always yields the
// same result.
type Filters struct {
	Query       string
	Category    string
	Tab         string
	DateToken   string
	CustomStart string
	CustomEnd   string
}

// Match reports whether rec passes every active dimension (logical AND).
func Match[T any](cfg Config[T], f Filters, rec T, now time.Time) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if cfg.SearchFields == nil {
			return false
		}
		found := false
		for _, field := range cfg.SearchFields(rec) {
			if strings.Contains(strings.ToLower(field), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Category != "" && f.Category != TabAll && cfg.Category != nil {
		if !strings.EqualFold(strings.TrimSpace(cfg.Category(rec)), strings.TrimSpace(f.Category)) {
			return false
		}
	}

	if !matchTab(cfg, f.Tab, rec, now) {
		return false
	}

	if f.DateToken != "" && f.DateToken != TabAll && cfg.CreatedAt != nil {
		r := ResolveRange(f.DateToken, now, f.CustomStart, f.CustomEnd)
		if !r.Contains(cfg.CreatedAt(rec), cfg.IncludeEnd) {
			return false
		}
	}

	return true
}

func matchTab[T any](cfg Config[T], tab string, rec T, now time.Time) bool {
	tab = strings.TrimSpace(tab)
	if tab == "" || tab == TabAll {
		return true
	}
	if cfg.Status == nil {
		return false
	}
	if !strings.EqualFold(statusKey(cfg.Status(rec)), tab) {
		return false
	}
	// Pending reservations whose business date has passed are noise:
	// they match the status but no longer need attention.
	if tab == "pending" && cfg.ExcludeStalePending && cfg.BusinessDate != nil {
		if d, err := time.ParseInLocation(dayLayout, strings.TrimSpace(cfg.BusinessDate(rec)), now.Location()); err == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if d.Before(today) {
				return false
			}
		}
	}
	return true
}

// statusKey turns a display status into its tab key: "Out for Delivery"
// becomes "out-for-delivery".
func statusKey(status string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(status)), " ", "-")
}

// Apply filters a collection in one pass without mutating it.
func Apply[T any](cfg Config[T], f Filters, records []T, now time.Time) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if Match(cfg, f, rec, now) {
			out = append(out, rec)
		}
	}
	return out
}

// StatusCounts tallies records per tab key plus the "all" total, for tab
// headers. Unknown statuses count only toward "all".
func StatusCounts[T any](cfg Config[T], records []T, tabs []string) map[string]int {
	counts := make(map[string]int, len(tabs)+1)
	counts[TabAll] = len(records)
	if cfg.Status == nil {
		return counts
	}
	known := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		known[t] = true
		counts[t] = 0
	}
	for _, rec := range records {
		key := statusKey(cfg.Status(rec))
		if known[key] {
			counts[key]++
		}
	}
	return counts
}
