package game

import "time"

// Difficulty curve: the cloud delay shrinks by 10ms per mile, re-evaluated
// every levelEvery miles until difficultyCap.
const (
	baseCloudDelay = 2000 * time.Millisecond
	minCloudDelay  = 1000 * time.Millisecond
	delayPerMile   = 10 * time.Millisecond
	levelEvery     = 10
	difficultyCap  = 100
)

// CloudDelay is the cloud spawn interval at a given score:
// max(1s, 2s - miles/100 s), constant past 100 miles.
func CloudDelay(miles int) time.Duration {
	m := min(max(miles, 0), difficultyCap)
	return max(minCloudDelay, baseCloudDelay-time.Duration(m)*delayPerMile)
}

func levelUpAt(miles int) bool {
	return miles <= difficultyCap && miles%levelEvery == 0
}

// levelUp replaces the cloud timer with one at the new delay and marks the
// track for a rebuild. The new timer first fires after one full delay.
func (c *Controller) levelUp() {
	c.cloudDelay = CloudDelay(c.miles)
	c.sched.Cancel(c.cloudTimer)
	c.cloudTimer = c.sched.Repeat(c.cloudDelay, c.cloudDelay, c.spawnCloud)
	c.trackStale = true
	c.log.Info("level up", "miles", c.miles, "cloud_delay", c.cloudDelay)
}
