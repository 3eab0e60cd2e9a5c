package input

import (
	"io"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

// newTestStream builds a stream fed directly, without the reader goroutine.
func newTestStream(clock *fakeClock) *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		hold: 100 * time.Millisecond,
		now:  clock.now,
	}
}

func feed(s *Stream, keys string) {
	for i := 0; i < len(keys); i++ {
		s.ch <- keys[i]
	}
}

func TestLiftHeldWithinWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newTestStream(clock)

	feed(s, " ")
	if in := ReadInput(s); !in.Lift {
		t.Fatalf("space press not reported as lift")
	}

	clock.t = clock.t.Add(50 * time.Millisecond)
	if in := ReadInput(s); !in.Lift {
		t.Fatalf("lift released inside the hold window")
	}

	clock.t = clock.t.Add(100 * time.Millisecond)
	if in := ReadInput(s); in.Lift {
		t.Fatalf("lift still held after the hold window")
	}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		keys  string
		lift  bool
		quit  bool
		enter bool
	}{
		{"w", true, false, false},
		{"K", true, false, false},
		{"\x1b[A", true, false, false},
		{"\x1b[B", false, false, false},
		{"q", false, true, false},
		{"\x03", false, true, false},
		{"\r", false, false, true},
	}
	for _, tt := range tests {
		clock := &fakeClock{t: time.Unix(100, 0)}
		s := newTestStream(clock)
		feed(s, tt.keys)
		in := ReadInput(s)
		if in.Lift != tt.lift || in.Quit != tt.quit || in.Enter != tt.enter {
			t.Fatalf("keys %q: got lift=%v quit=%v enter=%v, want %v %v %v",
				tt.keys, in.Lift, in.Quit, in.Enter, tt.lift, tt.quit, tt.enter)
		}
	}
}

func TestResetKeyInput(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	s := newTestStream(clock)
	feed(s, "\r")
	ReadInput(s)
	ResetKeyInput(s)
	if in := ReadInput(s); in.Enter {
		t.Fatalf("enter survived ResetKeyInput")
	}
}

func TestStreamReportsClosedReader(t *testing.T) {
	s := StartStream(io.MultiReader(strings.NewReader(" ")))

	deadline := time.Now().Add(2 * time.Second)
	sawLift := false
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		sawLift = sawLift || in.Lift
		if in.Closed {
			if !sawLift {
				t.Fatalf("closed before the buffered key was delivered")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("stream never reported the closed reader")
}
