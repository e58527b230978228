package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tavolo/internal/model"
	"tavolo/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tavolo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.LoadSession(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("load on empty store: %v, want ErrNoSession", err)
	}

	in := &session.Session{
		Token:     "tok-abc",
		AdminID:   "u1",
		Email:     "root@example.com",
		Username:  "root",
		CreatedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
	if err := s.SaveSession(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Token != in.Token || got.Email != in.Email || !got.CreatedAt.Equal(in.CreatedAt) {
		t.Errorf("got %+v, want %+v", got, in)
	}
}

func TestSaveSessionReplaces(t *testing.T) {
	s := openTestStore(t)
	s.SaveSession(&session.Session{Token: "old", CreatedAt: time.Now()})
	s.SaveSession(&session.Session{Token: "new", CreatedAt: time.Now()})

	got, err := s.LoadSession()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Token != "new" {
		t.Errorf("token = %q, want the replacement", got.Token)
	}
}

func TestClearSession(t *testing.T) {
	s := openTestStore(t)
	s.SaveSession(&session.Session{Token: "tok", CreatedAt: time.Now()})
	if err := s.ClearSession(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := s.LoadSession(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("load after clear: %v, want ErrNoSession", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	fetched := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)
	in := []model.Booking{{ID: "b1", CustomerName: "Alice", Status: model.BookingPending}}

	if err := s.SaveSnapshot("bookings", in, fetched); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []model.Booking
	at, ok, err := s.LoadSnapshot("bookings", &out)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if !at.Equal(fetched) {
		t.Errorf("fetched at = %v, want %v", at, fetched)
	}
	if len(out) != 1 || out[0].ID != "b1" {
		t.Errorf("rows = %+v", out)
	}
}

func TestLoadSnapshotMissingView(t *testing.T) {
	s := openTestStore(t)
	var out []model.Order
	_, ok, err := s.LoadSnapshot("orders", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok {
		t.Error("missing view should report ok=false")
	}
}
