package systems

import (
	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/registry"
)

// Kalashnikov is a light infantry gun firing 300 rounds per minute.
var Kalashnikov = config.WeaponPreset{
	Name:           "kalashnikov",
	BulletMass:     7.91e-3,
	BulletVelocity: 735,
	BulletSize:     7.85e-3,
	FiringInterval: 0.2,
	BulletLifespan: 2.0,
	DamageCapacity: 100e3,
}

// Berezin is a heavy aircraft machine gun firing 400 rounds per minute.
var Berezin = config.WeaponPreset{
	Name:           "berezin",
	BulletMass:     60e-3,
	BulletVelocity: 830,
	BulletSize:     12e-3,
	FiringInterval: 0.15,
	BulletLifespan: 3.0,
	DamageCapacity: 100e3,
}

func init() {
	registry.Register(Kalashnikov)
	registry.Register(Berezin)
}

// NewKalashnikov creates a Kalashnikov gun attached to owner.
func NewKalashnikov(owner Machine, name string) *Weapon {
	return NewFromPreset(owner, name, Kalashnikov)
}

// NewBerezin creates a Berezin gun attached to owner.
func NewBerezin(owner Machine, name string) *Weapon {
	return NewFromPreset(owner, name, Berezin)
}
