package listview

import (
	"errors"
	"time"
)

// ErrSessionExpired stops a poller permanently; the session has to be
// re-established before any view can poll again.
var ErrSessionExpired = errors.New("session expired")

// Poller sequences the refresh loop of one list view. Every attempt gets a
// monotonically increasing sequence number and only results carrying the
// latest started sequence are applied, so a slow response can never
// overwrite a newer one.
type Poller struct {
	interval time.Duration

	nextSeq     int
	inFlight    int
	lastApplied int

	stale    bool
	stopped  bool
	lastSync time.Time
}

func NewPoller(interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{interval: interval}
}

func (p *Poller) Interval() time.Duration { return p.interval }

// Begin starts a poll attempt and returns its sequence number. It returns
// 0 when no attempt should start: one is already in flight, or the poller
// was stopped by a fatal error.
func (p *Poller) Begin() int {
	if p.stopped || p.inFlight != 0 {
		return 0
	}
	p.nextSeq++
	p.inFlight = p.nextSeq
	return p.inFlight
}

// Refresh forces a new attempt even with one in flight. The abandoned
// attempt's result will arrive with a lower sequence and be discarded.
func (p *Poller) Refresh() int {
	if p.stopped {
		return 0
	}
	p.nextSeq++
	p.inFlight = p.nextSeq
	return p.inFlight
}

// Accept reports whether the result for seq should be applied. A result is
// applied exactly once and only if no newer attempt has started since.
func (p *Poller) Accept(seq int, at time.Time) bool {
	if seq == 0 || seq < p.inFlight || seq <= p.lastApplied {
		// A rejected result still settles its own attempt; Begin must
		// not stay blocked on a seq that has already come back.
		if seq != 0 && seq == p.inFlight {
			p.inFlight = 0
		}
		return false
	}
	p.lastApplied = seq
	p.inFlight = 0
	p.stale = false
	p.lastSync = at
	return true
}

// Fail records a failed attempt. Displayed data is kept but marked stale.
// A session-level failure stops the poller for good; anything else leaves
// the next tick to retry.
func (p *Poller) Fail(seq int, err error) {
	if seq == 0 || seq < p.inFlight || seq <= p.lastApplied {
		return
	}
	if seq == p.inFlight {
		p.inFlight = 0
	}
	p.stale = true
	if errors.Is(err, ErrSessionExpired) {
		p.stopped = true
	}
}

// Supersede invalidates every outstanding attempt and forgets the applied
// state, keeping the sequence counter monotonic. Used when the view's data
// source changes identity (a different tenant): results started against
// the old source must never land, even if still in flight.
func (p *Poller) Supersede() {
	p.lastApplied = p.nextSeq
	p.inFlight = 0
	p.stale = false
	p.lastSync = time.Time{}
}

// Stale reports whether the visible data is older than the last attempt.
func (p *Poller) Stale() bool { return p.stale }

// Stopped reports whether the poller hit a fatal error and will not retry.
func (p *Poller) Stopped() bool { return p.stopped }

// LastSync is the wall time of the last applied result, zero before the
// first success.
func (p *Poller) LastSync() time.Time { return p.lastSync }

// MarkStale flags the current data as stale without a failed attempt, e.g.
// when a cached snapshot is shown at startup.
func (p *Poller) MarkStale() { p.stale = true }
