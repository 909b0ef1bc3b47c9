package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flyer/internal/report"
	"github.com/vovakirdan/flyer/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [preset]",
	Short: "Show recorded runs",
	Long: `Display the latest runs recorded with --save, optionally for one preset.

Examples:
  flyer history
  flyer history berezin --limit 50
  flyer history berezin --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the preset")
}

func runHistory(_ *cobra.Command, args []string) error {
	preset := ""
	if len(args) == 1 {
		preset = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if preset == "" {
			return fmt.Errorf("--clear needs a preset")
		}
		n, err := store.DeleteRuns(preset)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d runs of %s.\n", n, preset)
		return nil
	}

	runs, err := store.Runs(preset, flagLimit)
	if err != nil {
		return err
	}
	fmt.Print(report.RunsTable(runs, theme))

	if preset != "" && len(runs) > 0 {
		st, err := store.Stats(preset)
		if err != nil {
			return err
		}
		fmt.Print(report.StatsLine(preset, st, theme))
	}
	return nil
}
