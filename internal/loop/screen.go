package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/donthitclouds/internal/draw"
	"github.com/tomz197/donthitclouds/internal/game"
	loopcfg "github.com/tomz197/donthitclouds/internal/loop/config"
	"github.com/tomz197/donthitclouds/internal/object"
)

// ASCII art (figlet "small" font)
var titleArt = []string{
	` ___   ___  _  _ _ _____   _  _ ___ _____ `,
	`|   \ / _ \| \| ( )_   _| | || |_ _|_   _|`,
	"| |) | (_) | .` |/  | |   | __ || |  | |  ",
	`|___/ \___/|_|\_|   |_|   |_||_|___| |_|  `,
	`       ___ _    ___  _   _ ___  ___       `,
	`      / __| |  / _ \| | | |   \/ __|      `,
	`     | (__| |_| (_) | |_| | |) \__ \      `,
	`      \___|____\___/ \___/|___/|___/      `,
}

var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

const sponsorBanner = "[ Sponsored: your banner could fly here ]"

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	st := s.state
	ph := s.phase()

	// On phase or inactivity transitions, do a full terminal clear
	// so UI elements from the previous screen don't persist.
	if ph != st.prevPhase || st.isInactive != st.wasInactive {
		draw.ClearScreen(s.chunkWriter, s.theme.Background())
		s.canvas.ForceRedraw()
		st.prevPhase = ph
		st.wasInactive = st.isInactive
	}

	s.canvas.Clear()

	ctx := object.DrawContext{
		Canvas: s.canvas,
		Writer: s.chunkWriter,
		Theme:  s.theme,
	}
	if err := s.game.Draw(ctx); err != nil {
		return err
	}

	// Render canvas to terminal
	s.canvas.Render(s.chunkWriter)

	// The score label sits on top of the scene once the plane is flying.
	if ph == phasePlaying || ph == phaseEnded {
		if err := s.game.DrawOverlay(ctx); err != nil {
			return err
		}
	}

	s.drawUI(ph)
	s.chunkWriter.WriteString(s.theme.Reset())

	return s.chunkWriter.Flush()
}

// drawUI draws the screen for the current phase.
func (s *Session) drawUI(ph phase) {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if ph == phaseShutdown {
		s.drawShutdownScreen(centerX, centerY)
		return
	}

	if s.state.isInactive {
		s.drawInactivityScreen(centerX, centerY)
		return
	}

	switch ph {
	case phaseTitle:
		s.drawStartScreen(centerX, centerY, termHeight)
	case phasePlaying:
		s.drawPlayingHUD(termWidth)
	case phaseEnded:
		s.drawEndScreen(centerX, centerY, termHeight)
	}
}

// writeCentered writes text centered on column centerX.
func (s *Session) writeCentered(centerX, row int, text string) {
	col := centerX - len(text)/2
	if col < 1 {
		col = 1
	}
	s.chunkWriter.WriteAt(col, row, s.theme.Text(text))
}

func (s *Session) writeArt(centerX, row int, art []string) {
	for i, line := range art {
		s.writeCentered(centerX, row+i, line)
	}
}

// blinkOn toggles blinking prompts.
func blinkOn() bool {
	return time.Now().UnixMilli()/600%2 == 0
}

// drawSponsor shows the banner on the bottom row when ads are enabled.
func (s *Session) drawSponsor(centerX, termHeight int) {
	if !s.settings.AdsEnabled {
		return
	}
	s.writeCentered(centerX, termHeight-1, sponsorBanner)
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-2, "INACTIVITY WARNING")

	msg := fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(loopcfg.InactivityDisconnectUser-time.Since(s.state.lastInput).Seconds()),
	)
	s.writeCentered(centerX, centerY, msg)
	s.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen around the waiting plane.
func (s *Session) drawStartScreen(centerX, centerY, termHeight int) {
	titleStartY := max(centerY-13, 1)
	s.writeArt(centerX, titleStartY, titleArt)
	s.writeCentered(centerX, titleStartY+len(titleArt)+1, "~ keep the plane in the air, stay out of the clouds ~")

	controlsY := centerY + 4
	s.writeCentered(centerX, controlsY, "Controls")
	controlLines := []string{
		"SPACE / W / Up . . Lift (hold)",
		"Q  . . . . . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		s.writeCentered(centerX, controlsY+1+i, line)
	}

	if best := s.game.Snapshot().Best; best > 0 {
		s.writeCentered(centerX, controlsY+len(controlLines)+2, fmt.Sprintf("Best: %d miles", best))
	}

	// Blinking start prompt
	if blinkOn() {
		s.writeCentered(centerX, controlsY+len(controlLines)+4, ">>  Hold SPACE to take off  <<")
	}

	s.drawSponsor(centerX, termHeight)
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (s *Session) drawPlayingHUD(termWidth int) {
	snap := s.game.Snapshot()
	s.chunkWriter.WriteAt(2, 1, s.theme.Text(fmt.Sprintf("Best: %-6d", snap.Best)))

	timeText := fmt.Sprintf("Time: %6.1fs", snap.Elapsed.Seconds())
	s.chunkWriter.WriteAt(termWidth-len(timeText)-1, 1, s.theme.Text(timeText))
}

// drawEndScreen draws the game over screen.
func (s *Session) drawEndScreen(centerX, centerY, termHeight int) {
	snap := s.game.Snapshot()

	titleStartY := max(centerY-6, 1)
	s.writeArt(centerX, titleStartY, gameOverArt)

	y := titleStartY + len(gameOverArt) + 1
	s.writeCentered(centerX, y, endMessage(snap.Reason))
	s.writeCentered(centerX, y+2, fmt.Sprintf("Miles: %d   Best: %d", snap.Miles, snap.Best))

	if blinkOn() {
		s.writeCentered(centerX, y+4, ">>  Press ENTER to fly again  <<")
	}
	s.writeCentered(centerX, y+5, "Q to quit")

	s.drawSponsor(centerX, termHeight)
}

func endMessage(r game.EndReason) string {
	switch r {
	case game.HitGround:
		return "You crashed into the ground."
	case game.HitCeiling:
		return "You flew too high."
	case game.HitCloud:
		return "You hit a cloud."
	}
	return "Game over."
}

// drawShutdownScreen draws the server shutdown notification screen.
func (s *Session) drawShutdownScreen(centerX, centerY int) {
	s.writeCentered(centerX, centerY-3, "SERVER SHUTTING DOWN")
	s.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	s.writeCentered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(s.state.shutdownTimer) + 1
	s.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	s.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}
