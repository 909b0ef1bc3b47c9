package systems

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/physics"
	"github.com/vovakirdan/flyer/internal/world"
)

// fakeBody is a rigid transform: rotate by angle, then translate by pos.
type fakeBody struct {
	pos      core.Vec
	angle    float64
	invalid  bool
	impulses []appliedImpulse
}

type appliedImpulse struct {
	impulse core.Vec
	at      core.Vec
}

func (b *fakeBody) WorldPoint(local core.Vec) core.Vec {
	return core.Rotate(local, b.angle).Add(b.pos)
}

func (b *fakeBody) LocalPoint(w core.Vec) core.Vec {
	return core.Rotate(w.Sub(b.pos), -b.angle)
}

func (b *fakeBody) ApplyImpulse(impulse, at core.Vec) {
	b.impulses = append(b.impulses, appliedImpulse{impulse: impulse, at: at})
}

func (b *fakeBody) Valid() bool {
	return !b.invalid
}

// fakeWorld records spawned projectile specs.
type fakeWorld struct {
	spawned []world.ProjectileSpec
}

func (w *fakeWorld) Spawn(spec world.ProjectileSpec) *world.Projectile {
	w.spawned = append(w.spawned, spec)
	return nil
}

// scriptedRand returns queued values and then zeros.
type scriptedRand struct {
	values []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

type fakeMachine struct {
	body  physics.Body
	world *fakeWorld
	rng   core.Rand
}

func newFakeMachine(seed int64) *fakeMachine {
	return &fakeMachine{
		body:  &fakeBody{},
		world: &fakeWorld{},
		rng:   core.NewRand(seed),
	}
}

func (m *fakeMachine) Body() physics.Body   { return m.body }
func (m *fakeMachine) World() world.Spawner { return m.world }
func (m *fakeMachine) Rand() core.Rand      { return m.rng }
func (m *fakeMachine) Logger() *log.Logger  { return log.New(io.Discard) }
