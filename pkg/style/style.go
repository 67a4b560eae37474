// Package style renders installer and seeder reports for the terminal.
package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/dotup-sh/dotup/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderPlan renders the per-package installed state.
func RenderPlan(plan types.Plan) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Packages") + "\n\n")

	for _, spec := range plan.Satisfied {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			okStyle.Render("✓"), spec.Name, mutedStyle.Render(annotate(spec))))
	}
	for _, spec := range plan.Missing {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			missStyle.Render("✗"), spec.Name, mutedStyle.Render(annotate(spec))))
	}

	if len(plan.Missing) == 0 {
		b.WriteString("\n" + okStyle.Render("All declared packages are installed") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("\n%d missing (%d required)\n",
			len(plan.Missing), len(plan.MissingRequired())))
	}
	return b.String()
}

// RenderSummary renders the final install counts.
func RenderSummary(summary types.Summary) string {
	data := pterm.TableData{
		{"already satisfied", fmt.Sprintf("%d", summary.Satisfied)},
		{"newly installed", fmt.Sprintf("%d", summary.Installed)},
		{"failed", fmt.Sprintf("%d", summary.Failed)},
		{"skipped", fmt.Sprintf("%d", summary.Skipped)},
	}
	table, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		// pterm rendering never fails for plain tables; fall back anyway
		return fmt.Sprintf("satisfied=%d installed=%d failed=%d skipped=%d",
			summary.Satisfied, summary.Installed, summary.Failed, summary.Skipped)
	}
	return titleStyle.Render("Summary") + "\n\n" + table + "\n"
}

// RenderSeedReport renders the outcome of a seed or check run.
func RenderSeedReport(report types.SeedReport, checkOnly bool) string {
	var b strings.Builder

	switch report.State {
	case types.SeedStateSeeded:
		b.WriteString(okStyle.Render("✓") + " already seeded\n")
	case types.SeedStateUnseeded:
		if report.Changed {
			b.WriteString(okStyle.Render("✓") + " override block inserted\n")
		} else {
			b.WriteString(missStyle.Render("✗") + " not seeded\n")
		}
	case types.SeedStateCorrupt:
		if report.Changed {
			b.WriteString(okStyle.Render("✓") + " malformed override block repaired\n")
		} else {
			b.WriteString(missStyle.Render("✗") + " override block is corrupt\n")
		}
	}

	if report.BackupPath != "" {
		b.WriteString(mutedStyle.Render("  backup: "+report.BackupPath) + "\n")
	}
	if checkOnly && report.MarkerLine >= 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  marker at line %d", report.MarkerLine+1)) + "\n")
	}
	return b.String()
}

func annotate(spec types.PackageSpec) string {
	parts := []string{string(spec.Source)}
	if !spec.Required {
		parts = append(parts, "optional")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
