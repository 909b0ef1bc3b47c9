// Package sim drives machines, projectiles and the physics space with a
// fixed time step.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/machine"
	"github.com/vovakirdan/flyer/internal/physics"
	"github.com/vovakirdan/flyer/internal/world"
)

// StepResult summarizes one or more ticks.
type StepResult struct {
	Ticks   int // Ticks advanced
	Spawned int // Projectiles registered
	Expired int // Projectiles removed after their lifespan
}

// Simulation owns the space, the world and the machines living in it.
type Simulation struct {
	cfg      core.RuntimeConfig
	space    *physics.Space
	world    *world.World
	rng      *rand.Rand
	machines []*machine.Machine
	tick     uint64
}

// New creates a simulation with a ground segment and the configured gravity.
// A zero seed is replaced by a time-based one; Config reports the seed in use.
func New(rc core.RuntimeConfig, wc config.WorldConfig) *Simulation {
	rc.Seed = core.ResolveSeed(rc.Seed)
	gravity := core.V(0, wc.Gravity)
	space := physics.NewSpace(gravity)
	space.AddGround(wc.GroundY)

	return &Simulation{
		cfg:   rc,
		space: space,
		world: world.New(space, gravity),
		rng:   core.NewRand(rc.Seed),
	}
}

func (s *Simulation) Config() core.RuntimeConfig { return s.cfg }
func (s *Simulation) Space() *physics.Space      { return s.space }
func (s *Simulation) World() *world.World        { return s.world }
func (s *Simulation) Rand() *rand.Rand           { return s.rng }
func (s *Simulation) Tick() uint64               { return s.tick }

// Elapsed returns simulated seconds since creation.
func (s *Simulation) Elapsed() float64 {
	return float64(s.tick) * s.cfg.Dt()
}

// AddMachine registers a machine to be driven each tick.
func (s *Simulation) AddMachine(m *machine.Machine) {
	s.machines = append(s.machines, m)
}

// Machines returns the registered machines.
func (s *Simulation) Machines() []*machine.Machine {
	return s.machines
}

// Step advances one tick: systems run first and may spawn, spawns are
// flushed, then physics integrates and projectiles age.
func (s *Simulation) Step() StepResult {
	dt := s.cfg.Dt()

	for _, m := range s.machines {
		m.Simulate(dt)
	}
	spawned := s.world.Flush()
	s.space.Step(dt)
	expired := s.world.Step(dt)

	s.tick++
	return StepResult{Ticks: 1, Spawned: spawned, Expired: expired}
}

// Run advances n ticks and returns the accumulated result.
func (s *Simulation) Run(n int) StepResult {
	var total StepResult
	for i := 0; i < n; i++ {
		r := s.Step()
		total.Ticks += r.Ticks
		total.Spawned += r.Spawned
		total.Expired += r.Expired
	}
	return total
}

// RunFor advances by at least d simulated seconds.
func (s *Simulation) RunFor(d float64) StepResult {
	n := int(d / s.cfg.Dt())
	if float64(n)*s.cfg.Dt() < d {
		n++
	}
	return s.Run(n)
}
