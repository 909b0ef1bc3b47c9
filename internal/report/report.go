package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/flyer/internal/config"
	"github.com/vovakirdan/flyer/internal/core"
	"github.com/vovakirdan/flyer/internal/storage"
	"github.com/vovakirdan/flyer/internal/trial"
)

// StatusBar renders status as a bar of width cells followed by a percentage.
// Values outside [0, 1] are drawn clamped but printed as is. NaN and
// infinities render as 0.
func StatusBar(status float64, width int, t Theme) string {
	if width <= 0 {
		width = 20
	}
	if !core.Finite(status) {
		status = 0
	}
	filled := int(math.Round(core.ClampF(status, 0, 1) * float64(width)))

	bar := t.statusStyle(status).Render(strings.Repeat(t.BarFull, filled)) +
		t.Muted.Render(strings.Repeat(t.BarEmpty, width-filled))
	return fmt.Sprintf("%s %s", bar, t.Value.Render(fmt.Sprintf("%5.1f%%", status*100)))
}

func newTable(t Theme, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Header
			}
			return t.Cell
		})
}

// PresetTable renders weapon presets with their derived figures.
func PresetTable(presets []config.WeaponPreset, t Theme) string {
	tbl := newTable(t, "Preset", "Mass", "Velocity", "Caliber", "Interval", "RPM", "Energy", "Capacity")
	for _, p := range presets {
		tbl.Row(
			p.Name,
			fmt.Sprintf("%.2f g", p.BulletMass*1e3),
			fmt.Sprintf("%.0f m/s", p.BulletVelocity),
			fmt.Sprintf("%.2f mm", p.BulletSize*1e3),
			fmt.Sprintf("%.2f s", p.FiringInterval),
			fmt.Sprintf("%.0f", p.RoundsPerMinute()),
			fmt.Sprintf("%.0f J", p.MuzzleEnergy()),
			fmt.Sprintf("%.0f N", p.DamageCapacity),
		)
	}
	return tbl.String()
}

// GunState is one row of a fire report.
type GunState struct {
	Name     string
	Preset   string
	Shots    int
	Status   float64
	Broken   bool
	Velocity float64 // Current muzzle velocity
	Interval float64 // Current firing interval
}

// FireReport summarizes a fire session.
type FireReport struct {
	Preset       string
	Seconds      float64
	Ticks        int
	Spawned      int
	Alive        int
	Expired      int
	HullVelocity core.Vec
	Guns         []GunState
}

// FireSummary renders a fire session.
func FireSummary(r FireReport, t Theme) string {
	var b strings.Builder

	b.WriteString(t.Title.Render("Fire: "+r.Preset) + "\n")
	writeField(&b, t, "Simulated", fmt.Sprintf("%.2f s (%d ticks)", r.Seconds, r.Ticks))
	writeField(&b, t, "Projectiles", fmt.Sprintf("%d fired, %d alive, %d expired", r.Spawned, r.Alive, r.Expired))
	writeField(&b, t, "Hull velocity", fmt.Sprintf("(%.4f, %.4f) m/s", r.HullVelocity.X(), r.HullVelocity.Y()))

	if len(r.Guns) > 0 {
		tbl := newTable(t, "Gun", "Preset", "Shots", "Velocity", "Interval", "Status")
		for _, g := range r.Guns {
			status := StatusBar(g.Status, 10, t)
			if g.Broken {
				status = t.Bad.Render("broken")
			}
			tbl.Row(g.Name, g.Preset, fmt.Sprint(g.Shots),
				fmt.Sprintf("%.0f m/s", g.Velocity), fmt.Sprintf("%.3f s", g.Interval), status)
		}
		b.WriteString(tbl.String() + "\n")
	}
	return b.String()
}

// TrialSummary renders a reliability trial.
func TrialSummary(r trial.Result, t Theme) string {
	var b strings.Builder

	b.WriteString(t.Title.Render("Trial: "+r.Preset) + "\n")
	writeField(&b, t, "Runs", fmt.Sprintf("%d weapons x %d hits of %.0f N (seed %d)", r.Params.Runs, r.Params.Hits, r.Params.Force, r.Params.Seed))
	writeField(&b, t, "Broken", t.statusStyle(1-r.BrokenRatio).Render(fmt.Sprintf("%d (%.1f%%)", r.Broken, r.BrokenRatio*100)))
	if r.Broken > 0 {
		writeField(&b, t, "First failure", fmt.Sprintf("hit %.2f on average", r.MeanFirstFailure))
	}
	writeField(&b, t, "Final status", StatusBar(r.FinalStatus, 20, t))

	if len(r.StatusTrend) > 1 {
		b.WriteString(t.Label.Render("Status trend") + "\n")
		for _, i := range trendSamples(len(r.StatusTrend), 10) {
			fmt.Fprintf(&b, "  %s %s\n", t.Muted.Render(fmt.Sprintf("hit %4d", i+1)), StatusBar(r.StatusTrend[i], 20, t))
		}
	}
	return b.String()
}

// RunsTable renders stored run reports.
func RunsTable(runs []storage.Run, t Theme) string {
	if len(runs) == 0 {
		return t.Muted.Render("no runs recorded") + "\n"
	}

	tbl := newTable(t, "Run", "Kind", "Preset", "Seed", "Shots", "Hits", "Broken", "Status", "Date")
	for _, r := range runs {
		tbl.Row(
			r.RunID.String()[:8],
			r.Kind,
			r.Preset,
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Shots),
			fmt.Sprint(r.Hits),
			fmt.Sprintf("%.1f%%", r.BrokenRatio*100),
			fmt.Sprintf("%.2f", r.FinalStatus),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tbl.String() + "\n"
}

// StatsLine renders aggregated run statistics for one preset.
func StatsLine(preset string, s storage.Stats, t Theme) string {
	return fmt.Sprintf("%s %s\n", t.Title.Render(preset+":"),
		t.Value.Render(fmt.Sprintf("%d runs, %d shots, %d hits, mean broken %.1f%%, mean status %.2f",
			s.Runs, s.TotalShots, s.TotalHits, s.MeanBrokenRatio*100, s.MeanFinalStatus)))
}

func writeField(b *strings.Builder, t Theme, label, value string) {
	fmt.Fprintf(b, "%s %s\n", t.Label.Render(fmt.Sprintf("%-14s", label+":")), t.Value.Render(value))
}

// trendSamples picks at most limit evenly spaced indices in [0, n), always
// including the first and the last.
func trendSamples(n, limit int) []int {
	if n <= limit {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, limit)
	for i := 0; i < limit; i++ {
		out = append(out, i*(n-1)/(limit-1))
	}
	return out
}
