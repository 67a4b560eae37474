package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotup-sh/dotup/pkg/types"
)

func TestSourceValid(t *testing.T) {
	assert.True(t, types.SourceRepo.Valid())
	assert.True(t, types.SourceAUR.Valid())
	assert.False(t, types.Source("flatpak").Valid())
	assert.False(t, types.Source("").Valid())
}

func TestPlanMissingRequired(t *testing.T) {
	plan := types.Plan{
		Missing: []types.PackageSpec{
			{Name: "a", Source: types.SourceRepo, Required: true},
			{Name: "b", Source: types.SourceAUR, Required: false},
			{Name: "c", Source: types.SourceAUR, Required: true},
		},
	}

	missing := plan.MissingRequired()
	assert.Len(t, missing, 2)
	assert.Equal(t, "a", missing[0].Name)
	assert.Equal(t, "c", missing[1].Name)
}

func TestSummaryTotal(t *testing.T) {
	summary := types.Summary{Satisfied: 3, Installed: 2, Failed: 1, Skipped: 4}
	assert.Equal(t, 10, summary.Total())
}
