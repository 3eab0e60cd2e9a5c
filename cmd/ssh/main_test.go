package main

import (
	"testing"
	"time"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	s.update(120, 40)
	w, h, err := s.getSize()
	if err != nil || w != 120 || h != 40 {
		t.Fatalf("getSize() = %d, %d, %v, want 120, 40, nil", w, h, err)
	}
}

func TestGamesWait(t *testing.T) {
	g := &games{shutdown: make(chan struct{})}
	if !g.wait(time.Second) {
		t.Fatalf("wait with no sessions timed out")
	}

	g.wg.Add(1)
	if g.wait(20 * time.Millisecond) {
		t.Fatalf("wait returned while a session was running")
	}
	g.wg.Done()
}
