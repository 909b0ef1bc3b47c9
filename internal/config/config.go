// Package config provides YAML-based simulation configuration: damage-model
// tuning, world parameters, the default plane loadout and weapon presets.
package config

// Config is the root of the flyer configuration file.
type Config struct {
	Tuning  Tuning         `yaml:"tuning"`
	World   WorldConfig    `yaml:"world"`
	Plane   PlaneConfig    `yaml:"plane"`
	Presets []WeaponPreset `yaml:"presets"` // Extra presets merged into the registry
}

// Tuning holds the calibration constants of the weapon damage model.
type Tuning struct {
	DamagedIntervalFactor float64 `yaml:"damaged_interval_factor"` // Interval multiplier at full-capacity damage (>1)
	DamagedVelocityFactor float64 `yaml:"damaged_velocity_factor"` // Velocity fraction at full-capacity damage (0..1)
	ReactionMultiplier    float64 `yaml:"reaction_multiplier"`     // Part of the recoil that reaches the firing body
	ClampStatus           bool    `yaml:"clamp_status"`            // Clamp Status() of intact weapons into [0.01, 1]
}

// WorldConfig defines the physics world.
type WorldConfig struct {
	Gravity float64 `yaml:"gravity"`  // Vertical acceleration, negative is down
	GroundY float64 `yaml:"ground_y"` // Height of the ground segment
}

// PlaneConfig defines the default plane body and its guns.
type PlaneConfig struct {
	Mass     float64    `yaml:"mass"`
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	Altitude float64    `yaml:"altitude"` // Initial height above the origin
	Speed    float64    `yaml:"speed"`    // Initial horizontal speed
	Guns     []GunMount `yaml:"guns"`
}

// GunMount places a preset gun on the plane body.
type GunMount struct {
	Name        string     `yaml:"name"`
	Preset      string     `yaml:"preset"`
	Muzzle      [2]float64 `yaml:"muzzle"`       // Body-local muzzle point
	Normal      [2]float64 `yaml:"normal"`       // Body-local firing direction
	MuzzleShift float64    `yaml:"muzzle_shift"` // Spawn offset along the normal
}

// WeaponPreset is a named weapon configuration record.
type WeaponPreset struct {
	Name           string  `yaml:"name"`
	BulletMass     float64 `yaml:"bullet_mass"`     // kg
	BulletVelocity float64 `yaml:"bullet_velocity"` // m/s
	BulletSize     float64 `yaml:"bullet_size"`     // m
	FiringInterval float64 `yaml:"firing_interval"` // s
	BulletLifespan float64 `yaml:"bullet_lifespan"` // s
	DamageCapacity float64 `yaml:"damage_capacity"` // N
}

// RoundsPerMinute returns the nominal rate of fire.
func (p WeaponPreset) RoundsPerMinute() float64 {
	if p.FiringInterval <= 0 {
		return 0
	}
	return 60.0 / p.FiringInterval
}

// MuzzleEnergy returns the nominal kinetic energy of one bullet in joules.
func (p WeaponPreset) MuzzleEnergy() float64 {
	return 0.5 * p.BulletMass * p.BulletVelocity * p.BulletVelocity
}
