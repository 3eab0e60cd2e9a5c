// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"io"
	"time"
)

// DefaultHoldDuration is how long a key counts as held after its last byte.
// Terminals only report presses (and autorepeat), never releases, so a held
// key is inferred from bytes arriving within this window.
const DefaultHoldDuration = 180 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool // q, Q or Ctrl-C
	Lift    bool // Space, w, k or the up arrow is held
	Enter   bool
	Closed  bool // The underlying reader is gone
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	lift  time.Time
	enter time.Time
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch    chan byte
	state keyState
	hold  time.Duration
	now   func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 128),
		hold: DefaultHoldDuration,
		now:  time.Now,
	}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				s.ch <- b
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// SetHoldDuration overrides the key-hold window.
func (s *Stream) SetHoldDuration(d time.Duration) {
	if d > 0 {
		s.hold = d
	}
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if buf[i+2] == 'A' {
				s.state.lift = now
			}
			i += 2
			continue
		}
		applyByteToState(&s.state, b, now)
	}

	return Input{
		Quit:    now.Sub(s.state.quit) < s.hold,
		Lift:    now.Sub(s.state.lift) < s.hold,
		Enter:   now.Sub(s.state.enter) < s.hold,
		Closed:  closed,
		Pressed: buf,
	}
}

// ResetKeyInput forgets every held key, so a key used to confirm a screen
// does not leak into the next one.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', 0x03:
		state.quit = now
	case ' ', 'w', 'W', 'k', 'K':
		state.lift = now
	case '\n', '\r':
		state.enter = now
	}
}
