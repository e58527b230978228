package ui

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tavolo/internal/api"
	"tavolo/internal/model"
	"tavolo/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(nil, nil, &session.Session{AdminID: "admin-1"}, log, time.Second)
}

func TestTenantSwitchDiscardsInFlightRows(t *testing.T) {
	m := newTestModel(t)
	m.selectTenant(model.Tenant{ID: "t-a", RestaurantName: "Trattoria A"})

	// A bookings fetch for tenant A goes out, then the admin switches
	// to tenant B before the response lands.
	oldSeq := m.pollers[model.ScreenBookings].Refresh()
	m.selectTenant(model.Tenant{ID: "t-b", RestaurantName: "Bistro B"})

	updated, _ := m.Update(model.BookingsLoadedMsg{
		Seq:      oldSeq,
		Bookings: []model.Booking{{ID: "a1", CustomerName: "From tenant A"}},
	})
	got := updated.(Model)
	if len(got.bookings.all) != 0 {
		t.Fatalf("previous tenant's rows were applied: %d rows", len(got.bookings.all))
	}

	// Tenant B's own fetch must still be applied afterwards.
	freshSeq := got.pollers[model.ScreenBookings].Refresh()
	if freshSeq <= oldSeq {
		t.Fatalf("fresh seq %d not newer than superseded seq %d", freshSeq, oldSeq)
	}
	updated, _ = got.Update(model.BookingsLoadedMsg{
		Seq:      freshSeq,
		Bookings: []model.Booking{{ID: "b1", CustomerName: "From tenant B"}},
	})
	got = updated.(Model)
	if len(got.bookings.all) != 1 || got.bookings.all[0].ID != "b1" {
		t.Fatalf("new tenant's rows not applied: %+v", got.bookings.all)
	}
	if got.pollers[model.ScreenBookings].Begin() == 0 {
		t.Fatal("polling stopped after the tenant switch")
	}
}

func TestTenantSwitchAllowsNewSnapshot(t *testing.T) {
	m := newTestModel(t)
	m.selectTenant(model.Tenant{ID: "t-a"})
	m.pollers[model.ScreenBookings].Accept(m.pollers[model.ScreenBookings].Refresh(), time.Now())

	m.selectTenant(model.Tenant{ID: "t-b"})
	updated, _ := m.Update(model.BookingsLoadedMsg{
		Cached:   true,
		Bookings: []model.Booking{{ID: "cached-b"}},
	})
	got := updated.(Model)
	if len(got.bookings.all) != 1 || got.bookings.all[0].ID != "cached-b" {
		t.Fatalf("new tenant's cached snapshot not shown: %+v", got.bookings.all)
	}
	if !got.pollers[model.ScreenBookings].Stale() {
		t.Error("snapshot data should read as stale")
	}
}

func TestBookingDetailFallbackKeepsErrorBanner(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(model.BookingDetailLoadedMsg{
		Booking: model.Booking{ID: "b1", CustomerName: "Ada"},
		Err:     errors.New("connection refused"),
	})
	got := updated.(Model)
	if got.screen != model.ScreenBookingDetail {
		t.Fatalf("screen = %v, want booking detail", got.screen)
	}
	if got.error == "" {
		t.Fatal("fallback detail should keep the failure on the banner")
	}

	updated, _ = got.Update(model.BookingDetailLoadedMsg{Booking: model.Booking{ID: "b1"}})
	if got := updated.(Model); got.error != "" {
		t.Errorf("clean detail load left error %q", got.error)
	}
}

func TestMutationErrClassifiesAuthFailures(t *testing.T) {
	if _, ok := mutationErr("delete booking", api.ErrUnauthorized).(model.SessionExpiredMsg); !ok {
		t.Fatal("unauthorized mutation should expire the session")
	}
	if _, ok := mutationErr("delete booking", api.ErrNoToken).(model.SessionExpiredMsg); !ok {
		t.Fatal("missing token should expire the session")
	}
	if _, ok := mutationErr("delete booking", errors.New("boom")).(model.ErrorMsg); !ok {
		t.Fatal("plain failure should stay on the banner")
	}
}

func TestSessionExpiredStopsPolling(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(model.SessionExpiredMsg{})
	got := updated.(Model)
	if !got.sessionDead {
		t.Fatal("session should be marked dead")
	}
	if got.error == "" {
		t.Fatal("expiry should be reported on the banner")
	}
	if cmd := got.refreshCmd(model.ScreenTenants); cmd != nil {
		t.Error("dead session should not refresh")
	}
}
