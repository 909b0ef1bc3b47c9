package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/registry"
	"github.com/vovakirdan/flyer/internal/world"
)

const eps = 1e-9

func newTestGun(m *fakeMachine) *Weapon {
	g := NewKalashnikov(m, "test")
	g.SetNormal(core.V(1, 0))
	return g
}

func TestNewDefaults(t *testing.T) {
	g := New(newFakeMachine(1), "gun")

	if g.Name() != "gun" {
		t.Errorf("Name() = %q, expected gun", g.Name())
	}
	if g.Firing() || g.Broken() {
		t.Error("new weapon should be idle and intact")
	}
	if g.TimeSinceLastShot() != 0 || g.MuzzleShift() != 0 {
		t.Error("new weapon should start with zero elapsed time and zero muzzle shift")
	}
	if g.Tuning() != config.DefaultTuning() {
		t.Errorf("Tuning() = %+v, expected defaults", g.Tuning())
	}
}

func TestNewWithoutOwnerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil owner")
		}
	}()
	New(nil, "orphan")
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name     string
		build    func(Machine, string) *Weapon
		expected config.WeaponPreset
	}{
		{"kalashnikov", NewKalashnikov, config.WeaponPreset{BulletMass: 7.91e-3, BulletVelocity: 735, BulletSize: 7.85e-3, FiringInterval: 0.2, BulletLifespan: 2.0, DamageCapacity: 100e3}},
		{"berezin", NewBerezin, config.WeaponPreset{BulletMass: 60e-3, BulletVelocity: 830, BulletSize: 12e-3, FiringInterval: 0.15, BulletLifespan: 3.0, DamageCapacity: 100e3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.build(newFakeMachine(1), tc.name)
			e := tc.expected
			if g.BulletMass() != e.BulletMass || g.BulletVelocity() != e.BulletVelocity ||
				g.BulletSize() != e.BulletSize || g.FiringInterval() != e.FiringInterval ||
				g.BulletLifespan() != e.BulletLifespan || g.DamageCapacity() != e.DamageCapacity {
				t.Errorf("preset %s configured wrong: %+v", tc.name, g)
			}
			if g.CurrentInterval() != e.FiringInterval || g.CurrentVelocity() != e.BulletVelocity {
				t.Error("current values should start at nominal")
			}
			if !registry.Exists(tc.name) {
				t.Errorf("preset %s not registered", tc.name)
			}
		})
	}
}

func TestSetDamageCapacityRejectsNonPositive(t *testing.T) {
	for _, c := range []float64{0, -1, math.NaN()} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetDamageCapacity(%g) did not panic", c)
				}
			}()
			New(newFakeMachine(1), "gun").SetDamageCapacity(c)
		}()
	}
}

func TestSimulateFiresOnePreset(t *testing.T) {
	m := newFakeMachine(1)
	g := newTestGun(m)
	g.SetFiring(true)

	g.Simulate(0.25)

	if len(m.world.spawned) != 1 {
		t.Fatalf("spawned %d projectiles, expected 1", len(m.world.spawned))
	}
	p := m.world.spawned[0]
	if !p.Velocity.ApproxEqualThreshold(core.V(735, 0), eps) {
		t.Errorf("projectile velocity = %v, expected (735, 0)", p.Velocity)
	}
	if math.Abs(p.Velocity.Len()-735) > eps {
		t.Errorf("projectile speed = %g, expected 735", p.Velocity.Len())
	}
	if p.Mass != 7.91e-3 || p.Size != 7.85e-3 || p.Lifespan != 2.0 {
		t.Errorf("projectile spec = %+v, expected preset bullet parameters", p)
	}
	if p.Layer != world.LayerForeground {
		t.Errorf("projectile layer = %v, expected foreground", p.Layer)
	}
	if g.TimeSinceLastShot() != 0 {
		t.Errorf("TimeSinceLastShot() = %g, expected reset to 0", g.TimeSinceLastShot())
	}
	if g.Shots() != 1 {
		t.Errorf("Shots() = %d, expected 1", g.Shots())
	}
}

func TestSimulateAppliesRecoil(t *testing.T) {
	m := newFakeMachine(1)
	g := newTestGun(m)
	g.SetMuzzle(core.V(2, 0.5))
	g.SetFiring(true)

	dt := 0.25
	g.Simulate(dt)

	body := m.body.(*fakeBody)
	if len(body.impulses) != 1 {
		t.Fatalf("applied %d impulses, expected 1", len(body.impulses))
	}

	want := 0.1 * 735 * 7.91e-3 / dt
	imp := body.impulses[0]
	if !imp.impulse.ApproxEqualThreshold(core.V(-want, 0), eps) {
		t.Errorf("impulse = %v, expected (%g, 0)", imp.impulse, -want)
	}
	if !imp.at.ApproxEqualThreshold(core.V(2, 0.5), eps) {
		t.Errorf("impulse point = %v, expected muzzle (2, 0.5)", imp.at)
	}
}

func TestRecoilUsesNominalValues(t *testing.T) {
	m := newFakeMachine(1)
	m.rng = &scriptedRand{values: []int{1, 999}} // velocity mode, no breakage
	g := newTestGun(m)
	g.Damage(50e3)

	if g.CurrentVelocity() >= g.BulletVelocity() {
		t.Fatal("damage did not reduce velocity")
	}

	g.SetFiring(true)
	g.Simulate(0.5)

	body := m.body.(*fakeBody)
	want := 0.1 * 735 * 7.91e-3 / 0.5
	if got := -body.impulses[0].impulse.X(); math.Abs(got-want) > eps {
		t.Errorf("recoil = %g, expected nominal %g", got, want)
	}
	if got := m.world.spawned[0].Velocity.X(); math.Abs(got-g.CurrentVelocity()) > eps {
		t.Errorf("projectile speed = %g, expected degraded %g", got, g.CurrentVelocity())
	}
}

func TestSimulateMuzzleShift(t *testing.T) {
	m := newFakeMachine(1)
	g := newTestGun(m)
	g.SetMuzzle(core.V(1, 0))
	g.SetMuzzleShift(0.5)
	g.SetFiring(true)

	g.Simulate(0.3)

	if got := m.world.spawned[0].Position; !got.ApproxEqualThreshold(core.V(1.5, 0), eps) {
		t.Errorf("spawn point = %v, expected (1.5, 0)", got)
	}
}

func TestSimulateDirectionNotNormalized(t *testing.T) {
	m := newFakeMachine(1)
	g := newTestGun(m)
	g.SetNormal(core.V(0, 2))
	g.SetFiring(true)

	g.Simulate(0.3)

	// Normal of length 2 doubles the projectile speed.
	if got := m.world.spawned[0].Velocity; !got.ApproxEqualThreshold(core.V(0, 1470), eps) {
		t.Errorf("velocity = %v, expected (0, 1470)", got)
	}
}

func TestSimulateFiringCadence(t *testing.T) {
	tests := []struct {
		name  string
		dt    float64
		ticks int
	}{
		{"60 Hz", 1.0 / 60.0, 600},
		{"larger than interval", 0.5, 40},
		{"exactly interval", 0.2, 50},
		{"odd step", 0.07, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			g := newTestGun(m)
			g.SetFiring(true)

			elapsed := 0.0
			sinceShot := 0.0
			var gaps []float64
			for i := 0; i < tc.ticks; i++ {
				before := len(m.world.spawned)
				g.Simulate(tc.dt)
				elapsed += tc.dt
				sinceShot += tc.dt

				fired := len(m.world.spawned) - before
				if fired > 1 {
					t.Fatalf("tick %d fired %d shots", i, fired)
				}
				if fired == 1 {
					gaps = append(gaps, sinceShot)
					sinceShot = 0
				}
			}

			if len(gaps) == 0 {
				t.Fatal("weapon never fired")
			}
			for i, gap := range gaps {
				if gap <= g.CurrentInterval()-eps {
					t.Errorf("gap %d = %g, not greater than interval %g", i, gap, g.CurrentInterval())
				}
			}
			if g.Shots() != len(gaps) {
				t.Errorf("Shots() = %d, expected %d", g.Shots(), len(gaps))
			}
		})
	}
}

func TestSimulateHoldsFireWhenNotReady(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeMachine, *Weapon)
	}{
		{"trigger released", func(_ *fakeMachine, g *Weapon) { g.SetFiring(false) }},
		{"broken", func(m *fakeMachine, g *Weapon) {
			m.rng = &scriptedRand{values: []int{0, 0}}
			g.Damage(1)
		}},
		{"invalid body", func(m *fakeMachine, _ *Weapon) { m.body.(*fakeBody).invalid = true }},
		{"interval not elapsed", func(_ *fakeMachine, g *Weapon) { g.SetFiringInterval(10) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			g := newTestGun(m)
			g.SetFiring(true)
			tc.setup(m, g)

			g.Simulate(0.25)
			g.Simulate(0.25)

			if len(m.world.spawned) != 0 {
				t.Errorf("spawned %d projectiles, expected none", len(m.world.spawned))
			}
			if len(m.body.(*fakeBody).impulses) != 0 {
				t.Error("impulse applied without firing")
			}
			if math.Abs(g.TimeSinceLastShot()-0.5) > eps {
				t.Errorf("TimeSinceLastShot() = %g, expected accumulated 0.5", g.TimeSinceLastShot())
			}
		})
	}
}

func TestSimulateNilBody(t *testing.T) {
	m := newFakeMachine(1)
	m.body = nil
	g := newTestGun(m)
	g.SetFiring(true)

	g.Simulate(1)

	if len(m.world.spawned) != 0 {
		t.Error("fired without a body")
	}
	if g.TimeSinceLastShot() != 1 {
		t.Errorf("TimeSinceLastShot() = %g, expected 1", g.TimeSinceLastShot())
	}
}

func TestSimulateInvalidStepPanics(t *testing.T) {
	for _, dt := range []float64{0, -0.1, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Simulate(%g) did not panic", dt)
					return
				}
				if !strings.Contains(r.(string), "invalid time step") {
					t.Errorf("unexpected panic: %v", r)
				}
			}()
			newTestGun(newFakeMachine(1)).Simulate(dt)
		}()
	}
}

func TestUnconfiguredWeaponFiresDegenerate(t *testing.T) {
	m := newFakeMachine(1)
	g := New(m, "blank")
	g.SetFiring(true)

	g.Simulate(0.1)

	if len(m.world.spawned) != 1 {
		t.Fatalf("spawned %d, expected 1", len(m.world.spawned))
	}
	if m.world.spawned[0].Velocity.Len() != 0 {
		t.Error("unconfigured weapon should fire at zero velocity")
	}
}

func TestDamageRateMode(t *testing.T) {
	m := newFakeMachine(1)
	m.rng = &scriptedRand{values: []int{0, 999}}
	g := newTestGun(m)

	g.Damage(10e3) // reduce = 0.1

	want := 0.2 + 0.2*0.1*(10.0-1.0)
	if math.Abs(g.CurrentInterval()-want) > eps {
		t.Errorf("CurrentInterval() = %g, expected %g", g.CurrentInterval(), want)
	}
	if g.CurrentVelocity() != 735 {
		t.Errorf("CurrentVelocity() = %g, expected unchanged 735", g.CurrentVelocity())
	}
	if g.Broken() {
		t.Error("weapon broke on a roll of 999 with 10% chance")
	}
}

func TestDamageVelocityMode(t *testing.T) {
	m := newFakeMachine(1)
	m.rng = &scriptedRand{values: []int{1, 999}}
	g := newTestGun(m)

	g.Damage(10e3)

	want := 735 - 735*0.1*(1.0-0.5)
	if math.Abs(g.CurrentVelocity()-want) > eps {
		t.Errorf("CurrentVelocity() = %g, expected %g", g.CurrentVelocity(), want)
	}
	if g.CurrentInterval() != 0.2 {
		t.Errorf("CurrentInterval() = %g, expected unchanged 0.2", g.CurrentInterval())
	}
}

func TestDamageFailureRoll(t *testing.T) {
	tests := []struct {
		name   string
		force  float64
		roll   int
		broken bool
	}{
		{"roll below chance", 10e3, 99, true},
		{"roll at chance", 10e3, 100, false},
		{"roll above chance", 10e3, 500, false},
		{"full capacity breaks on max roll", 100e3, 999, true},
		{"over capacity breaks on max roll", 250e3, 999, true},
		{"zero force never breaks", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			m.rng = &scriptedRand{values: []int{0, tc.roll}}
			g := newTestGun(m)

			g.Damage(tc.force)

			if g.Broken() != tc.broken {
				t.Errorf("Broken() = %v, expected %v", g.Broken(), tc.broken)
			}
		})
	}
}

func TestDamageAtCapacityAlwaysBreaks(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := newTestGun(newFakeMachine(seed))
		g.Damage(g.DamageCapacity())
		if !g.Broken() {
			t.Fatalf("seed %d: weapon survived a full-capacity hit", seed)
		}
	}
}

func TestDamageZeroForce(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGun(newFakeMachine(seed))
		g.Damage(0)
		if g.Broken() {
			t.Fatalf("seed %d: zero-force hit broke the weapon", seed)
		}
		if g.CurrentInterval() != g.FiringInterval() || g.CurrentVelocity() != g.BulletVelocity() {
			t.Fatalf("seed %d: zero-force hit degraded the weapon", seed)
		}
	}
}

func TestDamageOnBrokenIsNoop(t *testing.T) {
	m := newFakeMachine(1)
	rng := &scriptedRand{values: []int{0, 0}}
	m.rng = rng
	g := newTestGun(m)
	g.Damage(1e3)
	if !g.Broken() {
		t.Fatal("setup: weapon should be broken")
	}

	interval, velocity := g.CurrentInterval(), g.CurrentVelocity()
	rng.values = []int{0, 0, 1, 0}
	g.Damage(50e3)

	if g.CurrentInterval() != interval || g.CurrentVelocity() != velocity {
		t.Error("damage changed a broken weapon")
	}
	if len(rng.values) != 4 {
		t.Error("damage on a broken weapon consumed random draws")
	}
}

func TestDamageNegativeForcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative force")
		}
	}()
	newTestGun(newFakeMachine(1)).Damage(-1)
}

func TestDamageUnconfiguredCapacity(t *testing.T) {
	tests := []struct {
		name   string
		force  float64
		broken bool
	}{
		{"zero force", 0, false},
		{"any positive force breaks", 1e-6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			m.rng = &scriptedRand{values: []int{1, 999}}
			g := New(m, "blank")

			g.Damage(tc.force)

			if g.Broken() != tc.broken {
				t.Errorf("Broken() = %v, expected %v", g.Broken(), tc.broken)
			}
			if g.CurrentInterval() != 0 || g.CurrentVelocity() != 0 {
				t.Errorf("current values = %g, %g, expected zero", g.CurrentInterval(), g.CurrentVelocity())
			}
			if status := g.Status(); !core.Finite(status) {
				t.Errorf("Status() = %g, expected a finite value", status)
			}
		})
	}
}

func TestStatusWithZeroNominals(t *testing.T) {
	tests := []struct {
		name  string
		build func(Machine) *Weapon
	}{
		{"zero velocity", func(m Machine) *Weapon {
			g := NewKalashnikov(m, "gun")
			g.SetBulletVelocity(0)
			return g
		}},
		{"zero interval", func(m Machine) *Weapon {
			g := NewKalashnikov(m, "gun")
			g.SetFiringInterval(0)
			return g
		}},
		{"unconfigured", func(m Machine) *Weapon { return New(m, "blank") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			m.rng = &scriptedRand{values: []int{0, 999, 1, 999}}
			g := tc.build(m)

			if got := g.Status(); got != 1.0 {
				t.Errorf("Status() = %g, expected 1", got)
			}

			g.Damage(10)
			g.Damage(10)
			if got := g.Status(); !core.Finite(got) {
				t.Errorf("Status() after hits = %g, expected a finite value", got)
			}
		})
	}
}

func TestDamageMonotonic(t *testing.T) {
	m := newFakeMachine(7)
	g := newTestGun(m)

	prevInterval, prevVelocity := g.CurrentInterval(), g.CurrentVelocity()
	for i := 0; i < 200 && !g.Broken(); i++ {
		g.Damage(500)
		if g.Broken() {
			break
		}
		if g.CurrentInterval() < prevInterval || g.CurrentVelocity() > prevVelocity {
			t.Fatalf("hit %d improved the weapon", i)
		}
		if g.CurrentInterval() < g.FiringInterval() || g.CurrentVelocity() > g.BulletVelocity() {
			t.Fatalf("hit %d: current values beyond nominal", i)
		}
		prevInterval, prevVelocity = g.CurrentInterval(), g.CurrentVelocity()
	}
}

func TestDamageDeterministicWithSeed(t *testing.T) {
	run := func(seed int64) (broken int, statuses []float64) {
		m := newFakeMachine(seed)
		for i := 0; i < 1000; i++ {
			g := newTestGun(m)
			g.Damage(50000)
			if g.Broken() {
				broken++
			}
			statuses = append(statuses, g.Status())
		}
		return broken, statuses
	}

	b1, s1 := run(99)
	b2, s2 := run(99)

	if b1 != b2 {
		t.Fatalf("broken counts differ: %d vs %d", b1, b2)
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("status %d differs: %g vs %g", i, s1[i], s2[i])
		}
	}

	// Half-capacity hits break about half the weapons.
	if b1 < 400 || b1 > 600 {
		t.Errorf("broken count %d far from expected ~500", b1)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []int
		force    float64
		expected float64
	}{
		{"pristine", nil, 0, 1.0},
		// interval 0.2 -> 1.1, ratio 1-(1-0.2/1.1)/9
		{"rate damage", []int{0, 999}, 50e3, 0.5 * (1 - (1-0.2/1.1)/9.0 + 1)},
		// velocity 735 -> 551.25, ratio 1-(1-0.75)/0.5 = 0.5
		{"velocity damage", []int{1, 999}, 50e3, 0.75},
		{"broken", []int{0, 0}, 50e3, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			m.rng = &scriptedRand{values: tc.rolls}
			g := newTestGun(m)
			if tc.rolls != nil {
				g.Damage(tc.force)
			}
			if got := g.Status(); math.Abs(got-tc.expected) > eps {
				t.Errorf("Status() = %g, expected %g", got, tc.expected)
			}
		})
	}
}

func TestStatusZeroIffBroken(t *testing.T) {
	m := newFakeMachine(3)
	for i := 0; i < 500; i++ {
		g := newTestGun(m)
		for j := 0; j < 5; j++ {
			g.Damage(20e3)
		}
		if g.Broken() != (g.Status() == 0) {
			t.Fatalf("weapon %d: Broken()=%v Status()=%g", i, g.Broken(), g.Status())
		}
	}
}

func TestStatusCanLeaveUnitRange(t *testing.T) {
	m := newFakeMachine(1)
	// Five velocity hits without breaking drive the velocity below zero.
	m.rng = &scriptedRand{values: []int{1, 999, 1, 999, 1, 999, 1, 999, 1, 999}}
	g := newTestGun(m)
	for i := 0; i < 5; i++ {
		g.Damage(50e3)
	}

	if g.Broken() {
		t.Fatal("setup: weapon should not be broken")
	}
	if g.Status() >= 0 {
		t.Errorf("Status() = %g, expected negative past calibration", g.Status())
	}

	tuning := g.Tuning()
	tuning.ClampStatus = true
	g.SetTuning(tuning)
	if g.Status() != minClampedStatus {
		t.Errorf("clamped Status() = %g, expected %g", g.Status(), minClampedStatus)
	}
	if g.Status() == 0 {
		t.Error("clamped Status() of an intact weapon reads as broken")
	}
}

func TestClampedStatusZeroIffBroken(t *testing.T) {
	m := newFakeMachine(17)
	tuning := config.DefaultTuning()
	tuning.ClampStatus = true

	for i := 0; i < 300; i++ {
		g := newTestGun(m)
		g.SetTuning(tuning)
		for j := 0; j < 8; j++ {
			g.Damage(40e3)
		}
		if g.Broken() != (g.Status() == 0) {
			t.Fatalf("weapon %d: Broken()=%v Status()=%g", i, g.Broken(), g.Status())
		}
		if s := g.Status(); s < 0 || s > 1 {
			t.Fatalf("weapon %d: clamped Status() = %g outside [0, 1]", i, s)
		}
	}
}

func TestRepair(t *testing.T) {
	m := newFakeMachine(5)
	g := newTestGun(m)
	for i := 0; i < 10; i++ {
		g.Damage(30e3)
	}

	g.Repair()

	if g.Broken() {
		t.Error("Repair() left weapon broken")
	}
	if g.CurrentInterval() != g.FiringInterval() {
		t.Errorf("CurrentInterval() = %g, expected %g", g.CurrentInterval(), g.FiringInterval())
	}
	if g.CurrentVelocity() != g.BulletVelocity() {
		t.Errorf("CurrentVelocity() = %g, expected %g", g.CurrentVelocity(), g.BulletVelocity())
	}
	if g.Status() != 1.0 {
		t.Errorf("Status() = %g after repair, expected 1", g.Status())
	}
}

func TestSetWorldNormalRotatedBody(t *testing.T) {
	m := newFakeMachine(1)
	body := m.body.(*fakeBody)
	body.pos = core.V(10, 20)
	body.angle = math.Pi / 2

	g := newTestGun(m)
	g.SetMuzzle(core.V(3, 1))
	g.SetWorldNormal(core.V(1, 0))

	// A quarter turn maps local -Y to world +X.
	if !g.Normal().ApproxEqualThreshold(core.V(0, -1), eps) {
		t.Errorf("Normal() = %v, expected (0, -1)", g.Normal())
	}

	g.SetFiring(true)
	g.Simulate(0.25)

	v := m.world.spawned[0].Velocity
	if !v.ApproxEqualThreshold(core.V(735, 0), 1e-6) {
		t.Errorf("projectile velocity = %v, expected (735, 0)", v)
	}
	imp := body.impulses[0].impulse
	if imp.X() >= 0 || math.Abs(imp.Y()) > 1e-9 {
		t.Errorf("recoil = %v, expected along world -X", imp)
	}
}

func TestSetWorldNormalIsOneShot(t *testing.T) {
	m := newFakeMachine(1)
	body := m.body.(*fakeBody)

	g := newTestGun(m)
	g.SetWorldNormal(core.V(0, 1))

	// Rotating the body afterwards rotates the fire direction with it.
	body.angle = math.Pi / 2
	g.SetFiring(true)
	g.Simulate(0.25)

	v := m.world.spawned[0].Velocity
	if !v.ApproxEqualThreshold(core.V(-735, 0), 1e-6) {
		t.Errorf("projectile velocity = %v, expected (-735, 0)", v)
	}
}

func TestSetWorldNormalWithoutBody(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*fakeMachine)
	}{
		{"nil body", func(m *fakeMachine) { m.body = nil }},
		{"invalid body", func(m *fakeMachine) { m.body.(*fakeBody).invalid = true }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newFakeMachine(1)
			tc.setup(m)
			g := newTestGun(m)

			g.SetWorldNormal(core.V(0, 1))

			if g.Normal() != core.V(1, 0) {
				t.Errorf("Normal() = %v, expected unchanged (1, 0)", g.Normal())
			}
		})
	}
}
