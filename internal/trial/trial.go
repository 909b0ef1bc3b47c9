// Package trial runs reliability trials: fresh weapons take a series of hits
// and the breakage rate and status decay are recorded.
package trial

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/machine"
	"github.com/vovakirdan/flyer/internal/systems"
	"github.com/vovakirdan/flyer/internal/world"
)

// Params controls a trial.
type Params struct {
	Runs  int     // Fresh weapons tested
	Hits  int     // Hits applied to each weapon
	Force float64 // Force of every hit
	Seed  int64   // 0 picks a time-based seed, recorded in Result.Params
}

// DefaultParams mirrors a single half-capacity hit on a thousand guns.
func DefaultParams() Params {
	return Params{Runs: 1000, Hits: 1, Force: 50e3}
}

// Validate reports invalid trial parameters.
func (p Params) Validate() error {
	var errs []error
	if p.Runs <= 0 {
		errs = append(errs, fmt.Errorf("runs must be positive, got %d", p.Runs))
	}
	if p.Hits <= 0 {
		errs = append(errs, fmt.Errorf("hits must be positive, got %d", p.Hits))
	}
	if !(p.Force >= 0) || !core.Finite(p.Force) {
		errs = append(errs, fmt.Errorf("force must be finite and non-negative, got %g", p.Force))
	}
	return errors.Join(errs...)
}

// Result summarizes a trial.
type Result struct {
	Preset      string
	Params      Params
	Broken      int       // Weapons broken by the end
	BrokenRatio float64   // Broken / Runs
	StatusTrend []float64 // Mean status after each hit
	FinalStatus float64   // Mean status after the last hit
	// Mean hit number (1-based) at which broken weapons failed, 0 if none broke.
	MeanFirstFailure float64
	Duration         time.Duration
}

// Run applies p.Hits hits of p.Force to p.Runs fresh weapons built from
// preset. All randomness comes from one generator seeded with p.Seed, so
// equal inputs give equal results.
func Run(preset config.WeaponPreset, tuning config.Tuning, p Params, logger *log.Logger) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("trial: %w", err)
	}
	if err := preset.Validate(); err != nil {
		return Result{}, fmt.Errorf("trial: %w", err)
	}

	start := time.Now()
	p.Seed = core.ResolveSeed(p.Seed)
	rng := core.NewRand(p.Seed)
	bench := machine.New("bench", nil, world.New(nil, core.Vec{}), rng, logger)

	sums := make([]float64, p.Hits)
	var broken, failureHits int

	for run := 0; run < p.Runs; run++ {
		gun := systems.NewFromPreset(bench, preset.Name, preset)
		gun.SetTuning(tuning)

		for hit := 0; hit < p.Hits; hit++ {
			wasBroken := gun.Broken()
			gun.Damage(p.Force)
			if !wasBroken && gun.Broken() {
				broken++
				failureHits += hit + 1
			}
			sums[hit] += gun.Status()
		}
	}

	res := Result{
		Preset:      preset.Name,
		Params:      p,
		Broken:      broken,
		BrokenRatio: float64(broken) / float64(p.Runs),
		StatusTrend: make([]float64, p.Hits),
		Duration:    time.Since(start),
	}
	for i, sum := range sums {
		res.StatusTrend[i] = sum / float64(p.Runs)
	}
	res.FinalStatus = res.StatusTrend[p.Hits-1]
	if broken > 0 {
		res.MeanFirstFailure = float64(failureHits) / float64(broken)
	}

	if logger != nil {
		logger.Info("trial finished", "preset", preset.Name, "runs", p.Runs, "hits", p.Hits, "broken", broken, "ratio", res.BrokenRatio)
	}
	return res, nil
}
