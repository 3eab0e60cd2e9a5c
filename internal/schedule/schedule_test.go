package schedule

import (
	"testing"
	"time"
)

func TestEveryFiresImmediatelyThenPerInterval(t *testing.T) {
	s := New()
	var fired []time.Duration
	s.Every(2*time.Second, func() { fired = append(fired, s.Now()) })

	s.Advance(0)
	if len(fired) != 1 || fired[0] != 0 {
		t.Fatalf("fired = %v, want [0s]", fired)
	}

	s.Advance(1999 * time.Millisecond)
	if len(fired) != 1 {
		t.Fatalf("fired early: %v", fired)
	}

	s.Advance(time.Millisecond)
	if len(fired) != 2 || fired[1] != 2*time.Second {
		t.Fatalf("fired = %v, want second firing at 2s", fired)
	}
}

func TestAdvanceCatchesUp(t *testing.T) {
	s := New()
	count := 0
	s.Repeat(time.Second, time.Second, func() { count++ })

	s.Advance(5 * time.Second)
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
	if s.Now() != 5*time.Second {
		t.Fatalf("Now = %v, want 5s", s.Now())
	}
}

func TestAfterIsOneShot(t *testing.T) {
	s := New()
	count := 0
	s.After(time.Second, func() { count++ })

	s.Advance(10 * time.Second)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", s.Pending())
	}
}

func TestDeadlineOrder(t *testing.T) {
	s := New()
	var order []string
	s.Repeat(3*time.Second, 3*time.Second, func() { order = append(order, "slow") })
	s.Repeat(time.Second, 2*time.Second, func() { order = append(order, "fast") })

	s.Advance(6 * time.Second)
	want := []string{"fast", "slow", "fast", "fast", "slow"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestCancel(t *testing.T) {
	s := New()
	count := 0
	id := s.Every(time.Second, func() { count++ })

	s.Advance(0)
	if !s.Cancel(id) {
		t.Fatalf("Cancel returned false for a live timer")
	}
	if s.Cancel(id) {
		t.Fatalf("Cancel returned true twice")
	}
	s.Advance(5 * time.Second)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestCancelAllFromCallback(t *testing.T) {
	s := New()
	var a, b int
	s.Every(time.Second, func() {
		a++
		if a == 2 {
			s.CancelAll()
		}
	})
	s.Every(time.Second, func() { b++ })

	s.Advance(10 * time.Second)
	if a != 2 {
		t.Fatalf("a = %d, want 2", a)
	}
	// a was created first, so its cancel at 1s lands before b's second firing.
	if b != 1 {
		t.Fatalf("b = %d, want 1", b)
	}
	if s.Pending() != 0 {
		t.Fatalf("Pending = %d, want 0", s.Pending())
	}
}

func TestTimerAddedInCallbackFiresSameAdvance(t *testing.T) {
	s := New()
	fired := false
	s.After(time.Second, func() {
		s.After(time.Second, func() { fired = true })
	})
	s.Advance(3 * time.Second)
	if !fired {
		t.Fatalf("nested timer did not fire")
	}
}

func TestDueSorted(t *testing.T) {
	s := New()
	s.After(3*time.Second, func() {})
	s.After(time.Second, func() {})
	due := s.Due()
	if len(due) != 2 || due[0] != time.Second || due[1] != 3*time.Second {
		t.Fatalf("Due = %v, want [1s 3s]", due)
	}
}
