package listview

import (
	"testing"
	"time"
)

type booking struct {
	id        string
	name      string
	phone     string
	status    string
	date      string
	createdAt time.Time
}

var bookingConfig = Config[booking]{
	SearchFields: func(b booking) []string { return []string{b.id, b.name, b.phone} },
	Status:       func(b booking) string { return b.status },
	CreatedAt:    func(b booking) time.Time { return b.createdAt },
	BusinessDate: func(b booking) string { return b.date },

	ExcludeStalePending: true,
	PageSize:            DefaultPageSize,
}

var sampleBookings = []booking{
	{id: "b1", name: "Alice Moran", phone: "555-0101", status: "Confirmed", date: "2024-03-15", createdAt: day(2024, 3, 14)},
	{id: "b2", name: "Bob Tran", phone: "555-0102", status: "Pending", date: "2024-03-16", createdAt: day(2024, 3, 15)},
	{id: "b3", name: "Carol Diaz", phone: "555-0103", status: "Pending", date: "2024-03-10", createdAt: day(2024, 3, 9)},
	{id: "b4", name: "Dan Okafor", phone: "555-0104", status: "Cancelled", date: "2024-03-15", createdAt: day(2024, 2, 28)},
}

func ids(rows []booking) []string {
	out := make([]string, len(rows))
	for i, b := range rows {
		out[i] = b.id
	}
	return out
}

func TestApplyComposesAllDimensions(t *testing.T) {
	f := Filters{Query: "tran", Tab: "pending", DateToken: "today"}
	got := Apply(bookingConfig, f, sampleBookings, clock)
	if len(got) != 1 || got[0].id != "b2" {
		t.Fatalf("got %v, want [b2]", ids(got))
	}
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	got := Apply(bookingConfig, Filters{Query: "ALICE"}, sampleBookings, clock)
	if len(got) != 1 || got[0].id != "b1" {
		t.Fatalf("got %v, want [b1]", ids(got))
	}
}

func TestApplyEmptyFiltersPassEverything(t *testing.T) {
	got := Apply(bookingConfig, Filters{}, sampleBookings, clock)
	if len(got) != len(sampleBookings) {
		t.Fatalf("got %d rows, want %d", len(got), len(sampleBookings))
	}
}

func TestPendingTabExcludesPastDates(t *testing.T) {
	got := Apply(bookingConfig, Filters{Tab: "pending"}, sampleBookings, clock)
	for _, b := range got {
		if b.id == "b3" {
			t.Fatal("b3 is pending with a past date and should be excluded")
		}
	}
	if len(got) != 1 || got[0].id != "b2" {
		t.Fatalf("got %v, want [b2]", ids(got))
	}
}

func TestPastDatePendingStillVisibleOnOtherTabs(t *testing.T) {
	got := Apply(bookingConfig, Filters{Tab: "all"}, sampleBookings, clock)
	if len(got) != len(sampleBookings) {
		t.Fatalf("got %d rows, want %d", len(got), len(sampleBookings))
	}
	// Date filter alone does not apply the pending rule either.
	got = Apply(bookingConfig, Filters{DateToken: "custom", CustomStart: "2024-03-01", CustomEnd: "2024-03-31"}, sampleBookings, clock)
	found := false
	for _, b := range got {
		if b.id == "b3" {
			found = true
		}
	}
	if !found {
		t.Fatal("b3 should pass a pure date filter")
	}
}

func TestPendingRuleOffWithoutBusinessDate(t *testing.T) {
	cfg := bookingConfig
	cfg.BusinessDate = nil
	got := Apply(cfg, Filters{Tab: "pending"}, sampleBookings, clock)
	if len(got) != 2 {
		t.Fatalf("got %v, want both pending rows", ids(got))
	}
}

func TestTabMatchesHyphenatedStatusKey(t *testing.T) {
	type order struct{ status string }
	cfg := Config[order]{Status: func(o order) string { return o.status }}
	rows := []order{{status: "Out for Delivery"}, {status: "Delivered"}}
	got := Apply(cfg, Filters{Tab: "out-for-delivery"}, rows, clock)
	if len(got) != 1 || got[0].status != "Out for Delivery" {
		t.Fatalf("got %+v, want the out-for-delivery row", got)
	}
}

func TestMatchIsIdempotent(t *testing.T) {
	f := Filters{Query: "555", Tab: "all", DateToken: "month"}
	first := Apply(bookingConfig, f, sampleBookings, clock)
	second := Apply(bookingConfig, f, sampleBookings, clock)
	if len(first) != len(second) {
		t.Fatalf("re-applying identical filters changed the result: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].id != second[i].id {
			t.Fatalf("row %d differs: %s vs %s", i, first[i].id, second[i].id)
		}
	}
}

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(bookingConfig, sampleBookings, []string{"confirmed", "pending", "cancelled"})
	if counts[TabAll] != 4 {
		t.Errorf("all = %d, want 4", counts[TabAll])
	}
	if counts["pending"] != 2 {
		t.Errorf("pending = %d, want 2", counts["pending"])
	}
	if counts["confirmed"] != 1 || counts["cancelled"] != 1 {
		t.Errorf("confirmed/cancelled = %d/%d, want 1/1", counts["confirmed"], counts["cancelled"])
	}
}
