package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flyer/internal/machine"
	"github.com/vovakirdan/flyer/internal/registry"
	"github.com/vovakirdan/flyer/internal/report"
	"github.com/vovakirdan/flyer/internal/sim"
	"github.com/vovakirdan/flyer/internal/storage"
)

var (
	flagDuration float64
	flagHitEvery float64
	flagHitForce float64
	flagFireSave bool
)

var fireCmd = &cobra.Command{
	Use:   "fire [preset]",
	Short: "Fire the plane's guns",
	Long: `Build the configured plane in a physics world, hold the trigger for
--duration seconds and report shots, projectiles and hull velocity.

With a preset argument every mount on the plane uses that preset.
With --hit-every the plane takes a hit of --hit-force on a random gun at
that interval.

Examples:
  flyer fire
  flyer fire berezin --duration 5
  flyer fire kalashnikov --hit-every 0.5 --hit-force 20000 --seed 7 --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFire,
}

func init() {
	fireCmd.Flags().Float64Var(&flagDuration, "duration", 2, "Seconds to hold the trigger")
	fireCmd.Flags().Float64Var(&flagHitEvery, "hit-every", 0, "Seconds between hits (0 = no hits)")
	fireCmd.Flags().Float64Var(&flagHitForce, "hit-force", 20e3, "Force of each hit")
	fireCmd.Flags().BoolVar(&flagFireSave, "save", false, "Record the run in the database")
}

func runFire(_ *cobra.Command, args []string) error {
	if flagDuration <= 0 {
		return fmt.Errorf("--duration must be positive")
	}

	planeCfg := cfg.Plane
	label := "loadout"
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown preset %q (run 'flyer presets')", args[0])
		}
		label = args[0]
		planeCfg.Guns = append(planeCfg.Guns[:0:0], planeCfg.Guns...)
		for i := range planeCfg.Guns {
			planeCfg.Guns[i].Preset = args[0]
		}
	}

	start := time.Now()
	rc := runtimeConfig()
	s := sim.New(rc, cfg.World)
	plane, err := machine.NewPlane(s.Space(), s.World(), s.Rand(), logger, planeCfg, cfg.Tuning)
	if err != nil {
		return err
	}
	s.AddMachine(plane.Machine)
	plane.SetFiring(true)

	logger.Info("firing", "preset", label, "duration", flagDuration, "tick_rate", rc.TickRate, "seed", s.Config().Seed)

	var total sim.StepResult
	sinceHit := 0.0
	for s.Elapsed() < flagDuration {
		r := s.Step()
		total.Ticks += r.Ticks
		total.Spawned += r.Spawned
		total.Expired += r.Expired

		if flagHitEvery > 0 {
			sinceHit += rc.Dt()
			if sinceHit >= flagHitEvery {
				sinceHit = 0
				gun := plane.Damage(flagHitForce)
				logger.Debug("hit", "gun", gun, "force", flagHitForce, "status", plane.Status())
			}
		}
	}

	rep := report.FireReport{
		Preset:       label,
		Seconds:      s.Elapsed(),
		Ticks:        total.Ticks,
		Spawned:      total.Spawned,
		Alive:        s.World().Len(),
		Expired:      total.Expired,
		HullVelocity: plane.Hull.Velocity(),
	}
	shots, broken := 0, 0
	for i, g := range plane.Weapons() {
		rep.Guns = append(rep.Guns, report.GunState{
			Name:     g.Name(),
			Preset:   planeCfg.Guns[i].Preset,
			Shots:    g.Shots(),
			Status:   g.Status(),
			Broken:   g.Broken(),
			Velocity: g.CurrentVelocity(),
			Interval: g.CurrentInterval(),
		})
		shots += g.Shots()
		if g.Broken() {
			broken++
		}
	}
	fmt.Print(report.FireSummary(rep, theme))

	if !flagFireSave {
		return nil
	}

	brokenRatio := 0.0
	if n := len(plane.Weapons()); n > 0 {
		brokenRatio = float64(broken) / float64(n)
	}
	return saveRun(storage.Run{
		Kind:        storage.KindFire,
		Preset:      label,
		Seed:        s.Config().Seed,
		Shots:       shots,
		BrokenRatio: brokenRatio,
		FinalStatus: plane.Status(),
		Duration:    time.Since(start),
	})
}

// saveRun records r in the database selected by --db.
func saveRun(r storage.Run) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(r)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "kind", r.Kind, "preset", r.Preset)
	return nil
}
