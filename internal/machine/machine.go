// Package machine provides the owner of attached systems: a physics body
// plus the guns and other components bolted onto it.
package machine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/physics"
	"github.com/vovakirdan/flyer/internal/systems"
	"github.com/vovakirdan/flyer/internal/world"
)

// trigger is implemented by systems that can be told to fire.
type trigger interface {
	SetFiring(firing bool)
}

// Machine is a body with an ordered set of systems.
type Machine struct {
	name    string
	body    physics.Body
	world   world.Spawner
	rng     core.Rand
	logger  *log.Logger
	systems []systems.System
	byName  map[string]systems.System
}

var _ systems.Machine = (*Machine)(nil)

// New creates a machine. A nil logger discards output.
func New(name string, body physics.Body, spawner world.Spawner, rng core.Rand, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		name:   name,
		body:   body,
		world:  spawner,
		rng:    rng,
		logger: logger.With("machine", name),
		byName: make(map[string]systems.System),
	}
}

func (m *Machine) Name() string         { return m.name }
func (m *Machine) Body() physics.Body   { return m.body }
func (m *Machine) World() world.Spawner { return m.world }
func (m *Machine) Rand() core.Rand      { return m.rng }
func (m *Machine) Logger() *log.Logger  { return m.logger }

// Attach adds a system. Names must be unique within the machine.
func (m *Machine) Attach(s systems.System) error {
	if _, exists := m.byName[s.Name()]; exists {
		return fmt.Errorf("machine: %s: system %q already attached", m.name, s.Name())
	}
	m.systems = append(m.systems, s)
	m.byName[s.Name()] = s
	return nil
}

// System returns the attached system with the given name.
func (m *Machine) System(name string) (systems.System, bool) {
	s, ok := m.byName[name]
	return s, ok
}

// Systems returns attached systems in attachment order.
func (m *Machine) Systems() []systems.System {
	return m.systems
}

// Weapons returns the attached weapons in attachment order.
func (m *Machine) Weapons() []*systems.Weapon {
	var out []*systems.Weapon
	for _, s := range m.systems {
		if w, ok := s.(*systems.Weapon); ok {
			out = append(out, w)
		}
	}
	return out
}

// Simulate advances every system by dt.
func (m *Machine) Simulate(dt float64) {
	for _, s := range m.systems {
		s.Simulate(dt)
	}
}

// Damage applies a hit to one system chosen at random.
// Returns the name of the system hit, or "" when nothing is attached.
func (m *Machine) Damage(force float64) string {
	if len(m.systems) == 0 {
		return ""
	}
	s := m.systems[m.rng.Intn(len(m.systems))]
	s.Damage(force)
	return s.Name()
}

// DamageSystem applies a hit to the named system.
func (m *Machine) DamageSystem(name string, force float64) error {
	s, ok := m.byName[name]
	if !ok {
		return fmt.Errorf("machine: %s: unknown system %q", m.name, name)
	}
	s.Damage(force)
	return nil
}

// Status returns the mean status of attached systems, 1.0 with none attached.
func (m *Machine) Status() float64 {
	if len(m.systems) == 0 {
		return 1.0
	}
	statuses := make([]float64, len(m.systems))
	for i, s := range m.systems {
		statuses[i] = s.Status()
	}
	return core.Mean(statuses)
}

// Repair repairs every system.
func (m *Machine) Repair() {
	for _, s := range m.systems {
		s.Repair()
	}
}

// SetFiring holds or releases the trigger of every system that can fire.
func (m *Machine) SetFiring(firing bool) {
	for _, s := range m.systems {
		if t, ok := s.(trigger); ok {
			t.SetFiring(firing)
		}
	}
}
