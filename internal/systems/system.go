// Package systems implements components attached to a machine: guns and,
// in general, anything that simulates each tick and wears out when hit.
package systems

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/physics"
	"github.com/vovakirdan/flyer/internal/world"
)

// Machine is the owner of attached systems. It exposes the body the systems
// act on, the world they spawn into and the shared random source.
type Machine interface {
	Body() physics.Body
	World() world.Spawner
	Rand() core.Rand
	Logger() *log.Logger
}

// System is a component driven by its owning machine every tick.
type System interface {
	// Name identifies the system within its machine.
	Name() string

	// Simulate advances the system by dt seconds.
	Simulate(dt float64)

	// Damage applies a hit of the given force.
	Damage(force float64)

	// Status estimates functionality: 1.0 pristine, 0.0 destroyed.
	Status() float64

	// Repair restores nominal condition.
	Repair()
}

var discardLogger = log.New(io.Discard)

// base carries the identity shared by all systems.
type base struct {
	name  string
	owner Machine
}

func newBase(owner Machine, name string) base {
	if owner == nil {
		panic("systems: " + name + ": nil owner")
	}
	return base{name: name, owner: owner}
}

func (b *base) Name() string {
	return b.name
}

// Owner returns the machine the system is attached to.
func (b *base) Owner() Machine {
	return b.owner
}

func (b *base) logger() *log.Logger {
	if l := b.owner.Logger(); l != nil {
		return l
	}
	return discardLogger
}
