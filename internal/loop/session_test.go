package loop

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/donthitclouds/internal/config"
	"github.com/tomz197/donthitclouds/internal/game"
	"github.com/tomz197/donthitclouds/internal/input"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

// syncBuffer lets the test read output written by a running session.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestSession(t *testing.T, r io.Reader, settings config.Settings) (*Session, *syncBuffer) {
	t.Helper()
	out := &syncBuffer{}
	s := NewSession(r, out, Options{
		Settings:     settings,
		TermSizeFunc: fixedSize(120, 40),
		Seed:         42,
	})
	return s, out
}

func press(keys string) input.Input {
	return input.Input{Pressed: []byte(keys)}
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{300, 100, 200, 60, 50, 20},
		{201, 60, 200, 60, 0, 0},
	}
	for _, tt := range tests {
		rw, rh, oc, or := clampTermSize(tt.w, tt.h)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Fatalf("clampTermSize(%d, %d) = %d %d %d %d, want %d %d %d %d",
				tt.w, tt.h, rw, rh, oc, or, tt.rw, tt.rh, tt.offCol, tt.offRow)
		}
	}
}

func TestLiftEdgesStartAndSteer(t *testing.T) {
	s, _ := newTestSession(t, strings.NewReader(""), config.DefaultSettings())
	now := time.Now()

	if s.phase() != phaseTitle {
		t.Fatalf("phase = %v, want title", s.phase())
	}

	held := press(" ")
	held.Lift = true
	s.processInput(held, now)
	if s.phase() != phasePlaying || !s.state.lift {
		t.Fatalf("phase=%v lift=%v, want playing with lift held", s.phase(), s.state.lift)
	}

	s.processInput(input.Input{}, now)
	if s.state.lift {
		t.Fatalf("lift still held after release")
	}
}

func TestEnterReloadsEndedGame(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Tuning.Gravity = 200
	s, _ := newTestSession(t, strings.NewReader(""), settings)
	now := time.Now()

	// Enter does nothing before the game is over.
	enter := press("\r")
	enter.Enter = true
	s.processInput(enter, now)
	if s.state.games != 1 {
		t.Fatalf("games = %d, want 1", s.state.games)
	}

	lift := press(" ")
	lift.Lift = true
	s.processInput(lift, now)
	s.processInput(input.Input{}, now)
	for i := 0; i < 100 && s.phase() != phaseEnded; i++ {
		if err := s.update(16 * time.Millisecond); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if snap := s.game.Snapshot(); snap.State != game.Ended || snap.Reason != game.HitGround {
		t.Fatalf("state=%v reason=%v, want ended by the ground", snap.State, snap.Reason)
	}

	s.processInput(enter, now)
	if s.phase() != phaseTitle || s.state.games != 2 {
		t.Fatalf("phase=%v games=%d, want a fresh title screen", s.phase(), s.state.games)
	}
}

func TestQuitAndClosedStopSession(t *testing.T) {
	for _, in := range []input.Input{{Quit: true}, {Closed: true}} {
		s, _ := newTestSession(t, strings.NewReader(""), config.DefaultSettings())
		s.processInput(in, time.Now())
		if s.state.running {
			t.Fatalf("input %+v did not stop the session", in)
		}
	}
}

func TestInactivity(t *testing.T) {
	s, _ := newTestSession(t, strings.NewReader(""), config.DefaultSettings())
	now := time.Now()

	s.state.lastInput = now.Add(-91 * time.Second)
	s.processInput(input.Input{}, now)
	if !s.state.isInactive || !s.state.running {
		t.Fatalf("inactive=%v running=%v, want a warning", s.state.isInactive, s.state.running)
	}

	s.processInput(press("x"), now)
	if s.state.isInactive {
		t.Fatalf("key press did not clear the warning")
	}

	s.state.lastInput = now.Add(-121 * time.Second)
	s.processInput(input.Input{}, now)
	if s.state.running {
		t.Fatalf("inactive player not disconnected")
	}
}

func TestShutdownCountdown(t *testing.T) {
	shutdown := make(chan struct{})
	s := NewSession(strings.NewReader(""), io.Discard, Options{
		Settings:     config.DefaultSettings(),
		TermSizeFunc: fixedSize(120, 40),
		Shutdown:     shutdown,
	})

	s.processShutdown()
	if s.phase() == phaseShutdown {
		t.Fatalf("shutdown shown before the signal")
	}

	close(shutdown)
	s.processShutdown()
	if s.phase() != phaseShutdown {
		t.Fatalf("phase = %v, want shutdown", s.phase())
	}

	s.state.shutdownTimer = 0.01
	if err := s.update(16 * time.Millisecond); err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.state.running {
		t.Fatalf("session still running after the countdown")
	}
}

func TestDrawFrameScreens(t *testing.T) {
	settings := config.DefaultSettings()
	settings.AdsEnabled = true
	s, out := newTestSession(t, strings.NewReader(""), settings)

	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Lift (hold)") || !strings.Contains(got, sponsorBanner) {
		t.Fatalf("title screen missing controls or banner: %q", got)
	}

	s.settings.AdsEnabled = false
	lift := press(" ")
	lift.Lift = true
	s.processInput(lift, time.Now())
	if err := s.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Best: 0") {
		t.Fatalf("playing HUD missing: %q", got)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s, out := newTestSession(t, pr, config.DefaultSettings())

	go func() {
		time.Sleep(50 * time.Millisecond)
		pw.Write([]byte("q"))
	}()

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after q")
	}
	if !strings.Contains(out.String(), "Controls") {
		t.Fatalf("title screen never drawn")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s, _ := newTestSession(t, pr, config.DefaultSettings())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestRunStopsWhenReaderCloses(t *testing.T) {
	s, _ := newTestSession(t, strings.NewReader(""), config.DefaultSettings())

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after EOF")
	}
}
