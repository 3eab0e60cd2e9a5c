// Package schedule implements cooperative timers advanced by the frame loop.
//
// Nothing runs on its own goroutine: callbacks fire from inside Advance, in
// deadline order, on the caller's goroutine. This keeps spawning
// deterministic and lets a game cancel exactly the timers it owns.
package schedule

import (
	"sort"
	"time"
)

// ID identifies a scheduled timer. The zero ID is never issued.
type ID uint64

type timer struct {
	id        ID
	due       time.Duration
	interval  time.Duration // Zero for one-shot timers
	fn        func()
	cancelled bool
}

// Scheduler owns a set of timers on a private clock.
type Scheduler struct {
	now    time.Duration
	nextID ID
	timers []*timer
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every runs fn on the next Advance and then once per interval, matching a
// "spawn, then wait" sequence repeated forever.
func (s *Scheduler) Every(interval time.Duration, fn func()) ID {
	return s.Repeat(0, interval, fn)
}

// Repeat runs fn after first and then once per interval. A non-positive
// interval degrades to a one-shot timer.
func (s *Scheduler) Repeat(first, interval time.Duration, fn func()) ID {
	if interval < 0 {
		interval = 0
	}
	return s.add(first, interval, fn)
}

// After runs fn once, delay from now.
func (s *Scheduler) After(delay time.Duration, fn func()) ID {
	return s.add(delay, 0, fn)
}

func (s *Scheduler) add(delay, interval time.Duration, fn func()) ID {
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:       s.nextID,
		due:      s.now + delay,
		interval: interval,
		fn:       fn,
	})
	return s.nextID
}

// Cancel stops a timer. It reports whether the timer was still pending.
func (s *Scheduler) Cancel(id ID) bool {
	for _, t := range s.timers {
		if t.id == id && !t.cancelled {
			t.cancelled = true
			return true
		}
	}
	return false
}

// CancelAll stops every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.cancelled = true
	}
}

// Pending returns the number of live timers.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and fires every timer that falls
// due, catching up repeated timers that are due several times. Timers added
// or cancelled by a callback take effect within the same call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	for {
		t := s.earliest(target)
		if t == nil {
			break
		}
		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			t.cancelled = true
		}
		t.fn()
	}
	s.now = target
	s.compact()
}

// earliest returns the live timer with the smallest due time not after
// target. Ties go to the timer created first.
func (s *Scheduler) earliest(target time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.cancelled || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	clear(s.timers[len(kept):])
	s.timers = kept
}

// Due returns the due times of live timers in ascending order. Intended for
// HUD countdowns and tests.
func (s *Scheduler) Due() []time.Duration {
	var out []time.Duration
	for _, t := range s.timers {
		if !t.cancelled {
			out = append(out, t.due)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
