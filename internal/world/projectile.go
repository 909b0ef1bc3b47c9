package world

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/physics"
)

// Layer orders world objects for presentation.
type Layer int

const (
	LayerBackground Layer = iota
	LayerGround
	LayerSimulated
	LayerForeground
)

// String returns a human-readable name for the layer.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerGround:
		return "ground"
	case LayerSimulated:
		return "simulated"
	case LayerForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

// ProjectileSpec holds the initial parameters of a ballistic projectile.
type ProjectileSpec struct {
	Mass     float64  // kg
	Size     float64  // Diameter in meters
	Lifespan float64  // Seconds before removal
	Layer    Layer    // Render layer
	Position core.Vec // World-space spawn point
	Velocity core.Vec // World-space initial velocity
}

// Projectile is a bullet owned by the world.
type Projectile struct {
	ID   uuid.UUID
	Spec ProjectileSpec

	age  float64
	pos  core.Vec
	vel  core.Vec
	body *physics.CPBody // nil when integrated without a physics space
}

func newProjectile(spec ProjectileSpec) *Projectile {
	return &Projectile{
		ID:   uuid.New(),
		Spec: spec,
		pos:  spec.Position,
		vel:  spec.Velocity,
	}
}

// Position returns the current world-space position.
func (p *Projectile) Position() core.Vec {
	if p.body.Valid() {
		return p.body.Position()
	}
	return p.pos
}

// Velocity returns the current world-space velocity.
func (p *Projectile) Velocity() core.Vec {
	if p.body.Valid() {
		return p.body.Velocity()
	}
	return p.vel
}

// Age returns seconds elapsed since the projectile was registered.
func (p *Projectile) Age() float64 {
	return p.age
}

// Expired reports whether the projectile outlived its lifespan.
func (p *Projectile) Expired() bool {
	return p.age >= p.Spec.Lifespan
}
