package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotup-sh/dotup/pkg/style"
	"github.com/dotup-sh/dotup/pkg/types"
)

func TestRenderPlan(t *testing.T) {
	plan := types.Plan{
		Satisfied: []types.PackageSpec{
			{Name: "hyprland", Source: types.SourceRepo, Required: true},
		},
		Missing: []types.PackageSpec{
			{Name: "hyprshot", Source: types.SourceAUR, Required: false},
		},
	}

	out := style.RenderPlan(plan)
	assert.Contains(t, out, "hyprland")
	assert.Contains(t, out, "hyprshot")
	assert.Contains(t, out, "optional")
	assert.Contains(t, out, "1 missing (0 required)")
}

func TestRenderPlanAllInstalled(t *testing.T) {
	plan := types.Plan{
		Satisfied: []types.PackageSpec{
			{Name: "stow", Source: types.SourceRepo, Required: true},
		},
	}
	out := style.RenderPlan(plan)
	assert.Contains(t, out, "All declared packages are installed")
}

func TestRenderSummary(t *testing.T) {
	out := style.RenderSummary(types.Summary{Satisfied: 3, Installed: 2, Failed: 1, Skipped: 4})
	assert.Contains(t, out, "already satisfied")
	assert.Contains(t, out, "newly installed")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "2")
}

func TestRenderSeedReport(t *testing.T) {
	tests := []struct {
		name   string
		report types.SeedReport
		want   string
	}{
		{
			name:   "seeded_noop",
			report: types.SeedReport{State: types.SeedStateSeeded, MarkerLine: 3},
			want:   "already seeded",
		},
		{
			name:   "fresh_seed",
			report: types.SeedReport{State: types.SeedStateUnseeded, Changed: true, BackupPath: "/b/hyprland.conf.x.bak"},
			want:   "override block inserted",
		},
		{
			name:   "unseeded_check",
			report: types.SeedReport{State: types.SeedStateUnseeded, MarkerLine: -1},
			want:   "not seeded",
		},
		{
			name:   "repaired",
			report: types.SeedReport{State: types.SeedStateCorrupt, Changed: true},
			want:   "repaired",
		},
		{
			name:   "corrupt_check",
			report: types.SeedReport{State: types.SeedStateCorrupt},
			want:   "corrupt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := style.RenderSeedReport(tt.report, !tt.report.Changed)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRenderSeedReportIncludesBackup(t *testing.T) {
	report := types.SeedReport{
		State: types.SeedStateUnseeded, Changed: true,
		BackupPath: "/backups/hyprland.conf.20260825-120000.bak",
	}
	out := style.RenderSeedReport(report, false)
	assert.Contains(t, out, "/backups/hyprland.conf.20260825-120000.bak")
}
