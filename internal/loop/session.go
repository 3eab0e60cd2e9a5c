// Package loop runs one player's session: Input → Update → Draw at a fixed
// frame rate over any reader/writer pair.
package loop

import (
	"context"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/tomz197/donthitclouds/internal/config"
	"github.com/tomz197/donthitclouds/internal/draw"
	"github.com/tomz197/donthitclouds/internal/game"
	"github.com/tomz197/donthitclouds/internal/input"
	loopcfg "github.com/tomz197/donthitclouds/internal/loop/config"
)

// Options configures a session.
type Options struct {
	Settings     config.Settings
	DarkMode     bool
	Output       *termenv.Output   // Colour profile of the writer; nil renders without colour
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Logger       *log.Logger
	Seed         uint64 // Zero seeds from the clock

	// Shutdown, when closed, shows the shutdown notice and ends the
	// session after a short countdown.
	Shutdown <-chan struct{}
}

// Session handles rendering and input for a single player.
type Session struct {
	state        *sessionState
	settings     config.Settings
	theme        draw.Theme
	game         *game.Controller
	rng          *rand.Rand
	log          *log.Logger
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	shutdown     <-chan struct{}
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r io.Reader, w io.Writer, opts Options) *Session {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Output
	if out == nil {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	theme := draw.NewTheme(out, opts.DarkMode)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, loopcfg.ViewWidth, loopcfg.ViewHeight, theme.Palette)
	canvas.SetOffset(offsetCol, offsetRow)

	s := &Session{
		state:        newSessionState(),
		settings:     opts.Settings,
		theme:        theme,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		log:          logger,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		shutdown:     opts.Shutdown,
	}
	s.reload()
	return s
}

// Run starts the session loop. It blocks until the player quits, the
// reader closes, the context is cancelled or the shutdown countdown ends.
func (s *Session) Run(ctx context.Context) error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer, s.theme.Background())

	s.log.Info("session started", "dark", s.theme.Dark, "ads", s.settings.AdsEnabled)
	lastTime := time.Now()

	for s.state.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		if ctx.Err() != nil {
			s.log.Info("session cancelled")
			break
		}

		s.processShutdown()
		s.processInput(input.ReadInput(s.inputStream), frameStart)
		s.updateScreen()

		if err := s.update(delta); err != nil {
			return err
		}
		if err := s.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < loopcfg.ClientTargetFrameTime {
			time.Sleep(loopcfg.ClientTargetFrameTime - elapsed)
		}
	}

	snap := s.game.Snapshot()
	s.log.Info("session ended", "games", s.state.games, "best", max(s.state.best, snap.Best))
	draw.ClearScreen(s.writer, s.theme.Reset())
	return nil
}

// reload starts a new game, keeping the best score of this session.
func (s *Session) reload() {
	if s.game != nil {
		s.state.best = max(s.state.best, s.game.Snapshot().Best)
	}
	s.state.games++
	s.game = game.New(game.Options{
		Width:  loopcfg.ViewWidth,
		Height: loopcfg.ViewHeight,
		Tuning: s.settings.Tuning,
		Rand:   s.rng,
		Logger: s.log.With("game", s.state.games),
		Best:   s.state.best,
	})
	input.ResetKeyInput(s.inputStream)
	s.state.lift = false
}

// processShutdown notices a server shutdown and starts the countdown.
func (s *Session) processShutdown() {
	if s.shutdown == nil || s.state.shuttingDown {
		return
	}
	select {
	case <-s.shutdown:
		s.state.shuttingDown = true
		s.state.shutdownTimer = loopcfg.ShutdownDisplaySeconds
	default:
	}
}

// processInput turns held keys into touch edges and handles session keys.
func (s *Session) processInput(in input.Input, now time.Time) {
	st := s.state
	if len(in.Pressed) > 0 {
		st.lastInput = now
		st.isInactive = false
	} else if now.Sub(st.lastInput).Seconds() > loopcfg.InactivityDisconnectUser {
		s.log.Info("disconnecting inactive player")
		st.running = false
	} else if now.Sub(st.lastInput).Seconds() > loopcfg.InactivityWarnUser {
		st.isInactive = true
	}

	if in.Quit || in.Closed {
		st.running = false
		return
	}
	if st.shuttingDown {
		return
	}

	if s.phase() == phaseEnded && in.Enter {
		s.reload()
		return
	}

	switch {
	case in.Lift && !st.lift:
		s.game.TouchDown()
	case !in.Lift && st.lift:
		s.game.TouchUp()
	}
	st.lift = in.Lift
}

// update advances the game and the shutdown countdown.
func (s *Session) update(delta time.Duration) error {
	if delta > loopcfg.MaxFrameDelta {
		delta = loopcfg.MaxFrameDelta
	}
	if s.state.shuttingDown {
		s.state.shutdownTimer -= delta.Seconds()
		if s.state.shutdownTimer <= 0 {
			s.state.running = false
		}
	}
	return s.game.Update(delta)
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		draw.ClearScreen(s.writer, s.theme.Background())
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, loopcfg.MaxTermWidth)
	renderHeight = min(termHeight, loopcfg.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
