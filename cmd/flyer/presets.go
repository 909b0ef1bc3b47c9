package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flyer/internal/registry"
	"github.com/vovakirdan/flyer/internal/report"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List all weapon presets",
	Long:  `Shows built-in weapon presets and those defined in the config file.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := registry.List()
	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println(report.PresetTable(presets, theme))
	fmt.Println()
	fmt.Println("Run 'flyer fire <preset>' to fire one.")
}
