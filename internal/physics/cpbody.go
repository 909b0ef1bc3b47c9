package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/flyer/internal/core"
)

// CPBody implements Body on top of a Chipmunk body.
type CPBody struct {
	space  *Space // nil once removed
	body   *cp.Body
	shapes []*cp.Shape
}

var _ Body = (*CPBody)(nil)

// WorldPoint implements Body.
func (b *CPBody) WorldPoint(local core.Vec) core.Vec {
	return fromCP(b.body.LocalToWorld(toCP(local)))
}

// LocalPoint implements Body.
func (b *CPBody) LocalPoint(world core.Vec) core.Vec {
	return fromCP(b.body.WorldToLocal(toCP(world)))
}

// ApplyImpulse implements Body.
func (b *CPBody) ApplyImpulse(impulse, at core.Vec) {
	b.body.ApplyImpulseAtWorldPoint(toCP(impulse), toCP(at))
}

// Valid implements Body.
func (b *CPBody) Valid() bool {
	return b != nil && b.space != nil
}

func (b *CPBody) Position() core.Vec {
	return fromCP(b.body.Position())
}

func (b *CPBody) SetPosition(p core.Vec) {
	b.body.SetPosition(toCP(p))
}

func (b *CPBody) Velocity() core.Vec {
	return fromCP(b.body.Velocity())
}

func (b *CPBody) SetVelocity(v core.Vec) {
	b.body.SetVelocityVector(toCP(v))
}

func (b *CPBody) Angle() float64 {
	return b.body.Angle()
}

func (b *CPBody) SetAngle(angle float64) {
	b.body.SetAngle(angle)
}

func (b *CPBody) AngularVelocity() float64 {
	return b.body.AngularVelocity()
}

func (b *CPBody) Mass() float64 {
	return b.body.Mass()
}
