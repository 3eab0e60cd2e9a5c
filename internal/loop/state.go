package loop

import (
	"time"

	"github.com/tomz197/donthitclouds/internal/game"
)

// phase is the screen the session shows.
type phase int

const (
	phaseTitle    phase = iota // Waiting for the first lift
	phasePlaying               // Game running
	phaseEnded                 // Game over, waiting for a reload
	phaseShutdown              // Server is shutting down
)

// sessionState holds per-player state that outlives a single game.
type sessionState struct {
	running       bool
	lift          bool // Lift key held on the previous frame
	best          int  // Best score over the session's finished games
	games         int  // Games played, including the current one
	lastInput     time.Time
	isInactive    bool
	wasInactive   bool
	prevPhase     phase
	shuttingDown  bool
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown
}

func newSessionState() *sessionState {
	return &sessionState{
		running:   true,
		lastInput: time.Now(),
		prevPhase: phaseTitle,
	}
}

// phase maps the game state to the screen to show.
func (s *Session) phase() phase {
	if s.state.shuttingDown {
		return phaseShutdown
	}
	switch s.game.Snapshot().State {
	case game.Running:
		return phasePlaying
	case game.Ended:
		return phaseEnded
	}
	return phaseTitle
}
