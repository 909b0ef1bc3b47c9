package systems

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/world"
)

// Resolution of the catastrophic failure roll.
const failureRollResolution = 1000

// Lowest status reported for an intact weapon when status clamping is on.
const minClampedStatus = 0.01

// Weapon is a gun mounted on a machine body. It fires projectiles into the
// owner's world while the trigger is held and pushes the body back with each
// shot. Hits degrade its rate of fire or muzzle velocity and may break it.
type Weapon struct {
	base
	tuning config.Tuning

	// Static configuration
	mass        float64  // Bullet mass (kg)
	velocity    float64  // Nominal muzzle velocity (m/s)
	size        float64  // Bullet diameter (m)
	interval    float64  // Nominal firing interval (s)
	lifespan    float64  // Bullet lifespan (s)
	capacity    float64  // Force absorbed before guaranteed destruction
	muzzle      core.Vec // Body-local muzzle point
	normal      core.Vec // Body-local firing direction
	muzzleShift float64  // Spawn offset along normal

	// Runtime state
	firing          bool
	sinceLastShot   float64
	broken          bool
	currentInterval float64
	currentVelocity float64
	shots           int
}

var _ System = (*Weapon)(nil)

// New creates an unconfigured weapon attached to owner.
// Panics if owner is nil.
func New(owner Machine, name string) *Weapon {
	return &Weapon{
		base:   newBase(owner, name),
		tuning: config.DefaultTuning(),
	}
}

// NewFromPreset creates a weapon configured from a preset record.
func NewFromPreset(owner Machine, name string, p config.WeaponPreset) *Weapon {
	w := New(owner, name)
	w.Apply(p)
	return w
}

// Apply configures the weapon from a preset record.
func (w *Weapon) Apply(p config.WeaponPreset) {
	w.SetBulletMass(p.BulletMass)
	w.SetBulletVelocity(p.BulletVelocity)
	w.SetBulletSize(p.BulletSize)
	w.SetFiringInterval(p.FiringInterval)
	w.SetBulletLifespan(p.BulletLifespan)
	w.SetDamageCapacity(p.DamageCapacity)
}

func (w *Weapon) SetBulletMass(m float64) { w.mass = m }

// SetBulletVelocity sets the nominal muzzle velocity and resets the current one.
func (w *Weapon) SetBulletVelocity(v float64) {
	w.velocity = v
	w.currentVelocity = v
}

func (w *Weapon) SetBulletSize(s float64) { w.size = s }

// SetFiringInterval sets the nominal interval and resets the current one.
func (w *Weapon) SetFiringInterval(i float64) {
	w.interval = i
	w.currentInterval = i
}

func (w *Weapon) SetBulletLifespan(l float64) { w.lifespan = l }

// SetDamageCapacity sets the force the weapon absorbs before guaranteed
// destruction. Panics unless c > 0.
func (w *Weapon) SetDamageCapacity(c float64) {
	if !(c > 0) {
		panic(fmt.Sprintf("systems: %s: damage capacity must be positive, got %g", w.name, c))
	}
	w.capacity = c
}

func (w *Weapon) SetMuzzle(p core.Vec)      { w.muzzle = p }
func (w *Weapon) SetNormal(n core.Vec)      { w.normal = n }
func (w *Weapon) SetMuzzleShift(s float64)  { w.muzzleShift = s }
func (w *Weapon) SetFiring(firing bool)     { w.firing = firing }
func (w *Weapon) SetTuning(t config.Tuning) { w.tuning = t }

func (w *Weapon) BulletMass() float64        { return w.mass }
func (w *Weapon) BulletVelocity() float64    { return w.velocity }
func (w *Weapon) BulletSize() float64        { return w.size }
func (w *Weapon) FiringInterval() float64    { return w.interval }
func (w *Weapon) BulletLifespan() float64    { return w.lifespan }
func (w *Weapon) DamageCapacity() float64    { return w.capacity }
func (w *Weapon) Muzzle() core.Vec           { return w.muzzle }
func (w *Weapon) Normal() core.Vec           { return w.normal }
func (w *Weapon) MuzzleShift() float64       { return w.muzzleShift }
func (w *Weapon) Firing() bool               { return w.firing }
func (w *Weapon) Broken() bool               { return w.broken }
func (w *Weapon) TimeSinceLastShot() float64 { return w.sinceLastShot }
func (w *Weapon) CurrentInterval() float64   { return w.currentInterval }
func (w *Weapon) CurrentVelocity() float64   { return w.currentVelocity }
func (w *Weapon) Tuning() config.Tuning      { return w.tuning }

// Shots returns the number of projectiles fired since creation.
func (w *Weapon) Shots() int { return w.shots }

// Simulate advances the firing timer and discharges at most one shot.
//
// A shot happens when the body is valid, the weapon is not broken, the
// trigger is held and more than the current interval elapsed since the last
// shot. The fire direction is the muzzle normal mapped through the body
// transform and is not normalized. The recoil uses nominal bullet mass and
// velocity, scaled by the tuning reaction multiplier.
//
// Panics unless dt is positive and finite.
func (w *Weapon) Simulate(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		panic(fmt.Sprintf("systems: %s: invalid time step %g", w.name, dt))
	}

	w.sinceLastShot += dt

	body := w.owner.Body()
	if body == nil || !body.Valid() {
		return
	}
	if w.broken || !w.firing || w.sinceLastShot <= w.currentInterval {
		return
	}

	start := body.WorldPoint(w.muzzle.Add(w.normal.Mul(w.muzzleShift)))
	end := body.WorldPoint(w.muzzle.Add(w.normal.Mul(w.muzzleShift + 1)))
	dir := end.Sub(start)

	w.owner.World().Spawn(world.ProjectileSpec{
		Mass:     w.mass,
		Size:     w.size,
		Lifespan: w.lifespan,
		Layer:    world.LayerForeground,
		Position: start,
		Velocity: dir.Mul(w.currentVelocity),
	})

	// f = v*m/t
	reaction := w.tuning.ReactionMultiplier * w.velocity * w.mass / dt
	body.ApplyImpulse(dir.Mul(-reaction), start)

	w.sinceLastShot = 0
	w.shots++
}

// Damage applies a hit. One of two degradation modes is picked at random:
// a longer firing interval or a lower muzzle velocity, both proportional to
// force/capacity. Independently the weapon breaks with probability
// force/capacity. A broken weapon ignores further hits.
//
// Panics if force is negative or NaN.
func (w *Weapon) Damage(force float64) {
	if !(force >= 0) {
		panic(fmt.Sprintf("systems: %s: invalid damage force %g", w.name, force))
	}
	if w.broken {
		return
	}

	// Without a configured capacity any nonzero hit counts as a full one.
	reduce := 0.0
	switch {
	case w.capacity > 0:
		reduce = force / w.capacity
	case force > 0:
		reduce = 1
	}
	rng := w.owner.Rand()
	logger := w.logger()

	// TODO: add a deflection mode that skews the fire direction.
	switch rng.Intn(2) {
	case 0:
		w.currentInterval += w.interval * reduce * (w.tuning.DamagedIntervalFactor - 1.0)
		logger.Debug("firing interval extended", "gun", w.name, "interval", w.currentInterval, "nominal", w.interval, "force", force)
	case 1:
		w.currentVelocity -= w.velocity * reduce * (1.0 - w.tuning.DamagedVelocityFactor)
		logger.Debug("muzzle velocity reduced", "gun", w.name, "velocity", w.currentVelocity, "nominal", w.velocity, "force", force)
	}

	if float64(rng.Intn(failureRollResolution)) < reduce*failureRollResolution {
		w.broken = true
		logger.Warn("gun broken", "gun", w.name, "chance", reduce)
	}
}

// Status estimates damage, from 1.0 when fully operational down toward 0.1
// when fully damaged, and exactly 0.0 when broken. A term whose nominal value
// is zero counts as undamaged.
//
// Degradation beyond the tuning calibration pushes the value outside [0, 1]
// unless Tuning.ClampStatus is set, which clamps an intact weapon into
// [minClampedStatus, 1] so that 0.0 still means broken.
func (w *Weapon) Status() float64 {
	if w.broken {
		return 0.0
	}

	intervalDamage := 1.0
	if w.interval > 0 {
		intervalDamage = 1.0 - (1.0-w.interval/w.currentInterval)/(w.tuning.DamagedIntervalFactor-1.0)
	}
	velocityDamage := 1.0
	if w.velocity > 0 {
		velocityDamage = 1.0 - (1.0-w.currentVelocity/w.velocity)/(1.0-w.tuning.DamagedVelocityFactor)
	}

	status := 0.5 * (intervalDamage + velocityDamage)
	if w.tuning.ClampStatus {
		status = core.ClampF(status, minClampedStatus, 1)
	}
	return status
}

// Repair restores nominal interval and velocity and clears the broken flag.
func (w *Weapon) Repair() {
	w.currentVelocity = w.velocity
	w.currentInterval = w.interval
	w.broken = false
}

// SetWorldNormal sets the normal so that it points along dir in world space
// for the current body orientation. Call again after the body rotates if the
// weapon should keep a fixed world aim. Without a valid body the normal is
// left unchanged.
func (w *Weapon) SetWorldNormal(dir core.Vec) {
	body := w.owner.Body()
	if body == nil || !body.Valid() {
		return
	}
	worldMuzzle := body.WorldPoint(w.muzzle)
	localEnd := body.LocalPoint(worldMuzzle.Add(dir))
	w.normal = localEnd.Sub(w.muzzle)
}
