package object

import (
	"time"

	"github.com/tomz197/donthitclouds/internal/physics"
)

// trackScreens is how many view widths an obstacle travels before it is removed.
const trackScreens = 5

// Track is the shared "move left across the track, then remove" action.
// Distance is in logical units; the speed is Distance/Duration.
type Track struct {
	Distance float64
	Duration time.Duration
}

// NewTrack builds the track for a view of viewWidth units, sized from the
// width of the most recent cloud. Speed depends only on secondsPerUnit.
func NewTrack(viewWidth, lastCloudWidth, secondsPerUnit float64) Track {
	distance := (viewWidth + lastCloudWidth) * trackScreens
	return Track{
		Distance: distance,
		Duration: time.Duration(distance * secondsPerUnit * float64(time.Second)),
	}
}

// Speed returns the leftward speed in units per second.
func (t Track) Speed() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return t.Distance / t.Duration.Seconds()
}

// Mover runs one Track on a body.
type Mover struct {
	track   Track
	elapsed time.Duration
}

// NewMover starts track from the beginning.
func NewMover(track Track) Mover {
	return Mover{track: track}
}

// Step moves b left for dt and reports whether the track is finished.
func (m *Mover) Step(b *physics.Body, dt time.Duration) (done bool) {
	remaining := m.track.Duration - m.elapsed
	if dt > remaining {
		dt = remaining
	}
	if dt > 0 {
		b.Translate(-m.track.Speed()*dt.Seconds(), 0)
		m.elapsed += dt
	}
	return m.elapsed >= m.track.Duration
}
