// flyer simulates aircraft guns: firing cadence, recoil on a rigid-body
// airframe and wear under hits.
//
// Usage:
//
//	flyer presets            - List weapon presets
//	flyer fire [preset]      - Hold the trigger and report shots and recoil
//	flyer trial <preset>     - Run a reliability trial under repeated hits
//	flyer history [preset]   - Show recorded runs
//
// Global flags:
//
//	--tick-rate <hz>   - Simulation ticks per second (default: 60)
//	--seed <value>     - RNG seed for reproducible runs
//	--db <path>        - Run database path (default: ~/.flyer/runs.db)
//	--config <path>    - Custom config YAML
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/registry"
	"github.com/vovakirdan/flyer/internal/report"

	// Register built-in weapon presets
	_ "github.com/vovakirdan/flyer/internal/systems"
)

var (
	// Global flags
	flagTickRate int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagPlain    bool
)

// Set up by the root command before any subcommand runs.
var (
	logger *log.Logger
	cfg    config.Config
	theme  report.Theme
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyer",
	Short: "Flyer - aircraft gun simulation",
	Long: `Flyer simulates guns mounted on a rigid-body airframe: rate of fire,
recoil, projectile lifetime and degradation under hits.

Available commands:
  presets  - Show all weapon presets
  fire     - Fire the plane's guns and report the outcome
  trial    - Reliability trial under repeated hits
  history  - Recorded runs

Examples:
  flyer presets
  flyer fire berezin --duration 5
  flyer trial kalashnikov --runs 1000 --force 50000 --seed 42
  flyer history berezin`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", 60, "Simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flyer/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Disable colors")

	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(fireCmd)
	rootCmd.AddCommand(trialCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup creates the logger, loads the configuration and merges config
// presets into the registry.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flyer",
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	for _, p := range cfg.Presets {
		if err := registry.Override(p); err != nil {
			return err
		}
		logger.Debug("preset loaded from config", "preset", p.Name)
	}

	theme = report.DefaultTheme()
	if flagPlain {
		theme = report.PlainTheme()
	}
	return nil
}

// runtimeConfig builds the runtime configuration from global flags.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = flagTickRate
	rc.Seed = flagSeed
	return rc
}
