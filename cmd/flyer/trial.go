package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flyer/internal/registry"
	"github.com/vovakirdan/flyer/internal/report"
	"github.com/vovakirdan/flyer/internal/storage"
	"github.com/vovakirdan/flyer/internal/trial"
)

var (
	flagRuns      int
	flagHits      int
	flagForce     float64
	flagTrialSave bool
)

var trialCmd = &cobra.Command{
	Use:   "trial <preset>",
	Short: "Run a reliability trial",
	Long: `Apply --hits hits of --force to --runs fresh weapons of the preset and
report how many broke and how the mean status decays.

Trials with the same --seed give the same result.

Examples:
  flyer trial kalashnikov
  flyer trial berezin --runs 5000 --hits 10 --force 10000 --seed 42 --save`,
	Args: cobra.ExactArgs(1),
	RunE: runTrial,
}

func init() {
	defaults := trial.DefaultParams()
	trialCmd.Flags().IntVar(&flagRuns, "runs", defaults.Runs, "Number of fresh weapons")
	trialCmd.Flags().IntVar(&flagHits, "hits", defaults.Hits, "Hits per weapon")
	trialCmd.Flags().Float64Var(&flagForce, "force", defaults.Force, "Force of each hit")
	trialCmd.Flags().BoolVar(&flagTrialSave, "save", false, "Record the run in the database")
}

func runTrial(_ *cobra.Command, args []string) error {
	preset, err := registry.Lookup(args[0])
	if err != nil {
		return fmt.Errorf("%w (run 'flyer presets')", err)
	}

	params := trial.Params{Runs: flagRuns, Hits: flagHits, Force: flagForce, Seed: flagSeed}
	res, err := trial.Run(preset, cfg.Tuning, params, logger)
	if err != nil {
		return err
	}

	fmt.Print(report.TrialSummary(res, theme))

	if !flagTrialSave {
		return nil
	}
	return saveRun(storage.Run{
		Kind:        storage.KindTrial,
		Preset:      preset.Name,
		Seed:        res.Params.Seed,
		Hits:        params.Runs * params.Hits,
		BrokenRatio: res.BrokenRatio,
		FinalStatus: res.FinalStatus,
		Duration:    res.Duration,
	})
}
