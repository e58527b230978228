package listview

import (
	"errors"
	"testing"
	"time"
)

func TestPollerLastStartedWins(t *testing.T) {
	p := NewPoller(10 * time.Second)
	slow := p.Begin()
	fast := p.Refresh()
	if !p.Accept(fast, clock) {
		t.Fatal("newest attempt should be applied")
	}
	if p.Accept(slow, clock.Add(time.Second)) {
		t.Fatal("superseded attempt should be discarded even arriving later")
	}
	if !p.LastSync().Equal(clock) {
		t.Errorf("last sync = %v, want %v", p.LastSync(), clock)
	}
}

func TestPollerSkipsOverlappingTicks(t *testing.T) {
	p := NewPoller(10 * time.Second)
	first := p.Begin()
	if first == 0 {
		t.Fatal("first attempt should start")
	}
	if seq := p.Begin(); seq != 0 {
		t.Fatalf("second tick started seq %d with one in flight", seq)
	}
	p.Accept(first, clock)
	if seq := p.Begin(); seq == 0 {
		t.Fatal("next tick should start once the previous attempt settled")
	}
}

func TestPollerResultAppliedOnce(t *testing.T) {
	p := NewPoller(10 * time.Second)
	seq := p.Begin()
	if !p.Accept(seq, clock) {
		t.Fatal("fresh result should be applied")
	}
	if p.Accept(seq, clock) {
		t.Fatal("duplicate result should be discarded")
	}
}

func TestPollerFailureMarksStaleAndRetries(t *testing.T) {
	p := NewPoller(10 * time.Second)
	seq := p.Begin()
	p.Fail(seq, errors.New("connection refused"))
	if !p.Stale() {
		t.Error("failed attempt should mark data stale")
	}
	if p.Stopped() {
		t.Error("transient failure should not stop the poller")
	}
	next := p.Begin()
	if next == 0 {
		t.Fatal("poller should accept a retry after failure")
	}
	if !p.Accept(next, clock) {
		t.Fatal("retry result should be applied")
	}
	if p.Stale() {
		t.Error("success should clear the stale flag")
	}
}

func TestPollerStopsOnSessionExpiry(t *testing.T) {
	p := NewPoller(10 * time.Second)
	seq := p.Begin()
	p.Fail(seq, ErrSessionExpired)
	if !p.Stopped() {
		t.Fatal("session expiry should stop the poller")
	}
	if p.Begin() != 0 || p.Refresh() != 0 {
		t.Fatal("stopped poller should not start attempts")
	}
}

func TestPollerStaleFailureIgnored(t *testing.T) {
	p := NewPoller(10 * time.Second)
	old := p.Begin()
	fresh := p.Refresh()
	p.Fail(old, errors.New("timeout"))
	if !p.Accept(fresh, clock) {
		t.Fatal("fresh attempt should still be applied after a stale failure")
	}
}

func TestPollerDefaultInterval(t *testing.T) {
	p := NewPoller(0)
	if p.Interval() != 10*time.Second {
		t.Errorf("interval = %v, want 10s", p.Interval())
	}
}

func TestPollerMarkStale(t *testing.T) {
	p := NewPoller(time.Second)
	p.MarkStale()
	if !p.Stale() {
		t.Error("cached snapshot should read as stale")
	}
}

func TestPollerSupersedeDropsOutstandingResult(t *testing.T) {
	p := NewPoller(10 * time.Second)
	outstanding := p.Begin()
	p.Supersede()

	if p.Accept(outstanding, clock) {
		t.Fatal("result started before Supersede should be discarded")
	}
	next := p.Begin()
	if next == 0 {
		t.Fatal("superseded poller should start fresh attempts")
	}
	if next <= outstanding {
		t.Fatalf("next seq = %d, want > %d (counter stays monotonic)", next, outstanding)
	}
	if !p.Accept(next, clock) {
		t.Fatal("first result for the new source should be applied")
	}
}

func TestPollerSupersedeForgetsAppliedState(t *testing.T) {
	p := NewPoller(10 * time.Second)
	p.Accept(p.Begin(), clock)
	p.Supersede()

	if !p.LastSync().IsZero() {
		t.Errorf("last sync = %v, want zero after supersede", p.LastSync())
	}
	if p.Stale() {
		t.Error("superseded poller should not read as stale")
	}
}

func TestPollerSupersededFailureIgnored(t *testing.T) {
	p := NewPoller(10 * time.Second)
	old := p.Begin()
	p.Supersede()
	p.Accept(p.Refresh(), clock)

	p.Fail(old, errors.New("timeout"))
	if p.Stale() {
		t.Error("old source failure should not mark the new source stale")
	}
}

func TestPollerSupersedeKeepsTicking(t *testing.T) {
	p := NewPoller(10 * time.Second)
	old := p.Begin()
	p.Supersede()
	fresh := p.Refresh()

	// The old source's late result lands while the new attempt is out.
	if p.Accept(old, clock) {
		t.Fatal("old source result should be discarded")
	}
	if !p.Accept(fresh, clock.Add(time.Second)) {
		t.Fatal("new source result should be applied")
	}
	if p.Begin() == 0 {
		t.Fatal("polling should continue after the switch")
	}
}
