package machine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/physics"
	"github.com/vovakirdan/flyer/internal/registry"
	"github.com/vovakirdan/flyer/internal/systems"
	"github.com/vovakirdan/flyer/internal/world"
)

// Plane is a machine whose body is a Chipmunk box.
type Plane struct {
	*Machine
	Hull *physics.CPBody
}

// NewPlane creates a box body in space and mounts the configured guns.
// Gun presets are resolved through the preset registry.
func NewPlane(space *physics.Space, spawner world.Spawner, rng core.Rand, logger *log.Logger, cfg config.PlaneConfig, tuning config.Tuning) (*Plane, error) {
	hull := space.NewBoxBody(cfg.Mass, cfg.Width, cfg.Height)
	hull.SetPosition(core.V(0, cfg.Altitude))
	hull.SetVelocity(core.V(cfg.Speed, 0))

	p := &Plane{
		Machine: New("plane", hull, spawner, rng, logger),
		Hull:    hull,
	}

	for _, mount := range cfg.Guns {
		preset, err := registry.Lookup(mount.Preset)
		if err != nil {
			space.Remove(hull)
			return nil, fmt.Errorf("machine: gun %q: %w", mount.Name, err)
		}

		gun := systems.NewFromPreset(p.Machine, mount.Name, preset)
		gun.SetTuning(tuning)
		gun.SetMuzzle(core.V(mount.Muzzle[0], mount.Muzzle[1]))
		gun.SetNormal(core.V(mount.Normal[0], mount.Normal[1]))
		gun.SetMuzzleShift(mount.MuzzleShift)

		if err := p.Attach(gun); err != nil {
			space.Remove(hull)
			return nil, err
		}
	}

	p.logger.Debug("plane assembled", "guns", len(cfg.Guns), "mass", cfg.Mass)
	return p, nil
}
