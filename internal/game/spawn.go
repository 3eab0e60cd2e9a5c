package game

import (
	"strconv"

	"github.com/tomz197/donthitclouds/internal/object"
)

// Cloud altitude range around the middle of the view, as fractions of the
// view height. Negative is below the middle.
const (
	cloudLowest  = -0.27
	cloudHighest = 0.43
)

func (c *Controller) labelText() string {
	return strconv.Itoa(c.miles)
}

// between returns a uniform value in [lo, hi).
func (c *Controller) between(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

// trackFor returns the shared obstacle track, rebuilding it from the latest
// cloud width after a start or a level up.
func (c *Controller) trackFor(cloudWidth float64) object.Track {
	c.lastCloudWidth = cloudWidth
	if c.trackStale {
		c.track = object.NewTrack(c.width, c.lastCloudWidth, c.tuning.SecondsPerUnit)
		c.trackStale = false
	}
	return c.track
}

// spawnCloud puts a cloud of random width just past the right edge, at a
// random altitude.
func (c *Controller) spawnCloud() {
	w := c.between(c.tuning.CloudMinWidth, c.tuning.CloudMaxWidth)
	rise := c.between(cloudLowest, cloudHighest) * c.height
	x := c.width + w
	y := c.height/2 - rise
	c.Spawn(object.NewCloud(x, y, w, c.trackFor(w)))
}

// spawnMarker puts a full-height marker on the right edge and queues it.
func (c *Controller) spawnMarker() {
	if c.track.Duration == 0 {
		c.track = object.NewTrack(c.width, c.lastCloudWidth, c.tuning.SecondsPerUnit)
	}
	c.nextMarkerID++
	m := object.NewMileMarker(c.nextMarkerID, c.width, c.height/2, c.height, c.track)
	c.markers.push(m)
	c.Spawn(m)
}
