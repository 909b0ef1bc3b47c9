// Package world holds the registry of spawned projectiles. Spawning is
// deferred: objects created during a tick are registered when the driver
// flushes, so systems may spawn while the driver iterates the live list.
package world

import (
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/physics"
)

// Spawner accepts new projectiles. Ownership transfers to the world.
type Spawner interface {
	Spawn(spec ProjectileSpec) *Projectile
}

// World owns every live projectile.
type World struct {
	space       *physics.Space
	gravity     core.Vec
	projectiles []*Projectile
	toSpawn     []*Projectile // Projectiles to add after current update cycle
	spawned     uint64
}

var _ Spawner = (*World)(nil)

// New creates a world. When space is non-nil, projectiles with positive mass
// and size become physics bodies; otherwise they follow a ballistic arc under
// gravity.
func New(space *physics.Space, gravity core.Vec) *World {
	return &World{
		space:       space,
		gravity:     gravity,
		projectiles: make([]*Projectile, 0, 64),
	}
}

// Spawn queues a projectile to be added after the current update cycle.
func (w *World) Spawn(spec ProjectileSpec) *Projectile {
	p := newProjectile(spec)
	w.toSpawn = append(w.toSpawn, p)
	return p
}

// Flush registers all queued projectiles and returns how many were added.
func (w *World) Flush() int {
	n := len(w.toSpawn)
	for _, p := range w.toSpawn {
		if w.space != nil && p.Spec.Mass > 0 && p.Spec.Size > 0 {
			p.body = w.space.NewCircleBody(p.Spec.Mass, p.Spec.Size/2)
			p.body.SetPosition(p.Spec.Position)
			p.body.SetVelocity(p.Spec.Velocity)
		}
		w.projectiles = append(w.projectiles, p)
	}
	w.spawned += uint64(n)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
	return n
}

// Step ages projectiles, moves those without a body and removes expired ones.
// Bodies are moved by the physics space, which the caller steps separately.
// Returns the number of projectiles removed.
func (w *World) Step(dt float64) int {
	alive := w.projectiles[:0]
	removed := 0
	for _, p := range w.projectiles {
		p.age += dt
		if p.body == nil {
			p.vel = p.vel.Add(w.gravity.Mul(dt))
			p.pos = p.pos.Add(p.vel.Mul(dt))
		}
		if p.Expired() {
			if p.body != nil {
				w.space.Remove(p.body)
			}
			removed++
			continue
		}
		alive = append(alive, p)
	}
	clear(w.projectiles[len(alive):])
	w.projectiles = alive
	return removed
}

// Projectiles returns the registered projectiles. The slice is owned by the world.
func (w *World) Projectiles() []*Projectile {
	return w.projectiles
}

// Len returns the number of registered projectiles.
func (w *World) Len() int {
	return len(w.projectiles)
}

// Pending returns the number of projectiles waiting for the next flush.
func (w *World) Pending() int {
	return len(w.toSpawn)
}

// Spawned returns the total number of projectiles ever registered.
func (w *World) Spawned() uint64 {
	return w.spawned
}
