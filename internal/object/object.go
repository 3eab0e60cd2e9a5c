package object

import (
	"time"

	"github.com/tomz197/donthitclouds/internal/draw"
	"github.com/tomz197/donthitclouds/internal/physics"
)

// Spawner allows objects to spawn new objects during update.
type Spawner interface {
	Spawn(obj Object)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Delta   time.Duration
	Spawner Spawner
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // High-resolution canvas (2x vertical)
	Writer *draw.ChunkWriter // Text drawn on top of the canvas
	Theme  draw.Theme
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update updates the object state. Returns true if the object should be removed.
	Update(ctx UpdateContext) (remove bool, err error)

	// Draw draws the object. Shapes go to ctx.Canvas, text to ctx.Writer.
	Draw(ctx DrawContext) error
}

// Bodied is implemented by objects backed by a physics body. The owner of
// the world adds the body when the object spawns and removes it when the
// object goes away.
type Bodied interface {
	Body() *physics.Body
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj Object) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// BodyOf returns the physics body of obj, or nil if it has none.
func BodyOf(obj Object) *physics.Body {
	if b, ok := obj.(Bodied); ok {
		return b.Body()
	}
	return nil
}
