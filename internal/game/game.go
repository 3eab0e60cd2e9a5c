// Package game is the scene controller of Don't Hit Clouds: it owns the
// physics world, the obstacle timers and the score, and turns contacts into
// the end of a game.
package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/donthitclouds/internal/config"
	"github.com/tomz197/donthitclouds/internal/object"
	"github.com/tomz197/donthitclouds/internal/physics"
	"github.com/tomz197/donthitclouds/internal/schedule"
)

// State is the lifecycle of one game. Ended is terminal.
type State int

const (
	NotStarted State = iota
	Running
	Ended
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Ended:
		return "ended"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// EndReason says what ended the game.
type EndReason int

const (
	NoReason EndReason = iota
	HitCeiling
	HitGround
	HitCloud
)

func (r EndReason) String() string {
	switch r {
	case NoReason:
		return "none"
	case HitCeiling:
		return "hit the ceiling"
	case HitGround:
		return "hit the ground"
	case HitCloud:
		return "hit a cloud"
	}
	return "EndReason(" + strconv.Itoa(int(r)) + ")"
}

// markerInterval is the fixed mile-marker cadence.
const markerInterval = 4 * time.Second

// Crash burst, visual only.
const (
	burstParticles = 24
	burstSpeed     = 30.0
	burstLifetime  = 0.8
)

// Options configures a new game.
type Options struct {
	Width, Height float64 // View size in logical units
	Tuning        config.Tuning
	Rand          *rand.Rand  // Defaults to a time-seeded source
	Logger        *log.Logger // Defaults to a discarding logger
	Best          int         // Best score carried over from earlier games
}

// Snapshot is a read-only view of the game for screens and logs.
type Snapshot struct {
	State      State
	Reason     EndReason
	Miles      int
	Best       int
	CloudDelay time.Duration
	Elapsed    time.Duration
	Label      string
}

// Controller runs one game from layout to game over. A new game after the
// end needs a new Controller.
type Controller struct {
	width, height float64
	tuning        config.Tuning
	rng           *rand.Rand
	log           *log.Logger

	world   *physics.World
	sched   *schedule.Scheduler
	objects []object.Object
	toSpawn []object.Object

	airplane *object.Airplane
	ground   *object.Boundary
	ceiling  *object.Boundary
	label    *object.Label

	state     State
	reason    EndReason
	startable bool
	lift      bool
	miles     int
	best      int
	elapsed   time.Duration

	cloudDelay  time.Duration
	cloudTimer  schedule.ID
	markerTimer schedule.ID

	track          object.Track
	trackStale     bool
	lastCloudWidth float64
	markers        markerQueue
	nextMarkerID   uint64
}

// New lays out a fresh game: walls, score label and the airplane at the
// center of the view with gravity off, waiting for the first touch.
func New(opts Options) *Controller {
	if opts.Rand == nil {
		seed := uint64(time.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	t := opts.Tuning
	c := &Controller{
		width:          opts.Width,
		height:         opts.Height,
		tuning:         t,
		rng:            opts.Rand,
		log:            opts.Logger,
		world:          physics.NewWorld(opts.Width, opts.Height, physics.Vector{Y: t.Gravity}),
		sched:          schedule.New(),
		startable:      true,
		best:           opts.Best,
		cloudDelay:     CloudDelay(0),
		lastCloudWidth: t.CloudMaxWidth,
		markers:        newMarkerQueue(),
	}
	c.world.OnContact(c.handleContact)

	c.ground = object.NewGround(c.width, c.height)
	c.ceiling = object.NewCeiling(c.width, c.height)
	c.airplane = object.NewAirplane(c.width/2, c.height/2, t.AirplaneWidth, t.AirplaneHeight, t.RotationDamping)
	c.label = object.NewLabel(c.width/2, c.height/4, strconv.Itoa(c.miles))

	c.Spawn(c.ground)
	c.Spawn(c.ceiling)
	c.Spawn(c.airplane)
	c.flushSpawned()
	return c
}

// Spawn queues obj to join the scene after the current update.
func (c *Controller) Spawn(obj object.Object) {
	c.toSpawn = append(c.toSpawn, obj)
}

func (c *Controller) flushSpawned() {
	for _, obj := range c.toSpawn {
		c.world.Add(object.BodyOf(obj))
		c.objects = append(c.objects, obj)
	}
	clear(c.toSpawn)
	c.toSpawn = c.toSpawn[:0]
}

// despawn takes obj out of the world once its Update asked for removal.
func (c *Controller) despawn(obj object.Object) {
	c.world.Remove(object.BodyOf(obj))
	if m, ok := obj.(*object.MileMarker); ok {
		c.markers.drop(m.ID)
	}
	object.ReleaseObject(obj)
}

// TouchDown starts the game on the first touch and engages lift. Lift is
// level-triggered: it is applied every frame until TouchUp.
func (c *Controller) TouchDown() {
	if c.state == Ended {
		return
	}
	if c.state == NotStarted && c.startable {
		c.start()
	}
	c.airplane.Body().AffectedByGravity = false
	c.lift = true
}

// TouchUp releases lift and hands the airplane back to gravity.
func (c *Controller) TouchUp() {
	if c.state == Ended || !c.lift {
		return
	}
	c.airplane.Body().AffectedByGravity = true
	c.lift = false
}

func (c *Controller) start() {
	c.state = Running
	c.trackStale = true
	c.cloudDelay = CloudDelay(0)
	c.cloudTimer = c.sched.Every(c.cloudDelay, c.spawnCloud)
	c.markerTimer = c.sched.Every(markerInterval, c.spawnMarker)
	c.log.Info("game started", "cloud_delay", c.cloudDelay)
}

// Update advances the game by dt: steering, timers, actor actions, then the
// physics step, which dispatches contacts.
func (c *Controller) Update(dt time.Duration) error {
	if c.state == Running {
		c.elapsed += dt
		c.steer()
	}

	c.sched.Advance(dt)

	ctx := object.UpdateContext{Delta: dt, Spawner: c}
	kept := c.objects[:0]
	for _, obj := range c.objects {
		remove, err := obj.Update(ctx)
		if err != nil {
			return fmt.Errorf("update %T: %w", obj, err)
		}
		if remove {
			c.despawn(obj)
			continue
		}
		kept = append(kept, obj)
	}
	clear(c.objects[len(kept):])
	c.objects = kept
	c.flushSpawned()

	c.world.Step(dt.Seconds())
	return nil
}

// steer applies the per-frame airplane rules while running.
func (c *Controller) steer() {
	c.airplane.Orient()
	c.airplane.PinToLane()
	if c.lift {
		c.airplane.ApplyLift(c.tuning.LiftPerHeight)
	}
}

// Draw draws every actor onto the canvas.
func (c *Controller) Draw(ctx object.DrawContext) error {
	for _, obj := range c.objects {
		if err := obj.Draw(ctx); err != nil {
			return fmt.Errorf("draw %T: %w", obj, err)
		}
	}
	return nil
}

// DrawOverlay draws the score label. Call it after the canvas is rendered.
func (c *Controller) DrawOverlay(ctx object.DrawContext) error {
	return c.label.Draw(ctx)
}

// Snapshot returns the current state of the game.
func (c *Controller) Snapshot() Snapshot {
	best := c.best
	if c.miles > best {
		best = c.miles
	}
	return Snapshot{
		State:      c.state,
		Reason:     c.reason,
		Miles:      c.miles,
		Best:       best,
		CloudDelay: c.cloudDelay,
		Elapsed:    c.elapsed,
		Label:      c.label.Text(),
	}
}

// end finishes the game. Only the first call while running changes the
// state; every call applies the reason's freeze and narrows the airplane's
// masks to the walls.
func (c *Controller) end(reason EndReason) {
	body := c.airplane.Body()
	if reason == HitGround {
		body.AffectedByGravity = false
		body.Dynamic = false
		body.Velocity = physics.Vector{}
	}
	body.CollisionMask = object.CategoryGround | object.CategoryCeiling
	body.ContactMask = object.CategoryGround | object.CategoryCeiling

	if c.state != Running {
		return
	}
	c.state = Ended
	c.reason = reason
	c.startable = false
	c.sched.CancelAll()

	// The plane drops to the ground unless it is already there.
	c.lift = false
	if body.Dynamic {
		body.AffectedByGravity = true
	}

	c.log.Info("game over", "reason", reason, "miles", c.miles, "elapsed", c.elapsed.Round(time.Millisecond))
	p := body.Position
	object.SpawnBurst(c.rng, p.X, p.Y, burstParticles, burstSpeed, burstLifetime, c)
}
