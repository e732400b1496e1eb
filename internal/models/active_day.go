package models

import (
	"sync"
	"time"
)

// DaySnapshot is an immutable copy of the in-progress day's state, safe to
// hand to a flusher without holding the state lock.
type DaySnapshot struct {
	Date  string
	First time.Time
	Last  time.Time
}

func (s DaySnapshot) FirstString() string {
	if s.First.IsZero() {
		return ""
	}
	return s.First.Format(TimeLayout)
}

func (s DaySnapshot) LastString() string {
	if s.Last.IsZero() {
		return ""
	}
	return s.Last.Format(TimeLayout)
}

// ActiveDay tracks the first and last observed input event of the current
// calendar day. All mutation is O(1) under the mutex; file I/O never happens
// while it is held.
type ActiveDay struct {
	mu    sync.Mutex
	date  string
	first time.Time
	last  time.Time
}

func NewActiveDay(now time.Time) *ActiveDay {
	return &ActiveDay{date: now.Format(DateLayout)}
}

// Observe records one input event. An event dated outside the current day is
// the rollover-miss fallback: the state resets in place to the event's day
// with first = last = t. The rollover detector remains the only path that
// flushes the old day across the boundary.
func (d *ActiveDay) Observe(t time.Time) {
	day := t.Format(DateLayout)

	d.mu.Lock()
	defer d.mu.Unlock()

	if day != d.date {
		d.date = day
		d.first = t
		d.last = t
		return
	}
	if d.first.IsZero() || t.Before(d.first) {
		d.first = t
	}
	if d.last.IsZero() || t.After(d.last) {
		d.last = t
	}
}

func (d *ActiveDay) Snapshot() DaySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DaySnapshot{Date: d.date, First: d.first, Last: d.last}
}

func (d *ActiveDay) Date() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.date
}

// Rollover atomically snapshots the day as it stood and resets to newDate
// with both timestamps unset. The returned snapshot is what the caller must
// flush for the ended day.
func (d *ActiveDay) Rollover(newDate string) DaySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := DaySnapshot{Date: d.date, First: d.first, Last: d.last}
	d.date = newDate
	d.first = time.Time{}
	d.last = time.Time{}
	return snap
}

// Seed restores first/last from persisted HH:MM:SS strings for the given
// date. Used once at startup so a mid-day restart does not regress the real
// first activity. Events already observed win over the seed.
func (d *ActiveDay) Seed(date, first, last string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if date != d.date {
		return
	}
	if t, ok := parseDayTime(date, first); ok && (d.first.IsZero() || t.Before(d.first)) {
		d.first = t
	}
	if t, ok := parseDayTime(date, last); ok && t.After(d.last) {
		d.last = t
	}
}

func parseDayTime(date, clock string) (time.Time, bool) {
	if clock == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
