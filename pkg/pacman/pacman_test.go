// TEST TYPE: Unit Tests
// DEPENDENCIES: fake process runner
// PURPOSE: Command construction and typed results of the pacman adapter

package pacman_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dotuperr "github.com/dotup-sh/dotup/pkg/errors"
	"github.com/dotup-sh/dotup/pkg/pacman"
	"github.com/dotup-sh/dotup/pkg/testutil"
	"github.com/dotup-sh/dotup/pkg/types"
)

func TestQueryInstalled(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.QuietExitCodes["pacman -Q -- stow"] = 0
	runner.QuietExitCodes["pacman -Q -- not-there"] = 1

	manager := pacman.NewSystem(runner, "")

	installed, err := manager.QueryInstalled(context.Background(), "stow")
	require.NoError(t, err)
	assert.True(t, installed)

	// Absence is a normal result, not an error.
	installed, err = manager.QueryInstalled(context.Background(), "not-there")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestQueryInstalledRunnerFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.RunErrors["pacman -Q -- stow"] = errors.New("pacman: command not found")

	manager := pacman.NewSystem(runner, "")

	_, err := manager.QueryInstalled(context.Background(), "stow")
	require.Error(t, err)
	assert.True(t, dotuperr.IsErrorCode(err, dotuperr.ErrQueryFailed))
}

func TestInstallBatchRepo(t *testing.T) {
	runner := testutil.NewFakeRunner()
	manager := pacman.NewSystem(runner, "")

	err := manager.InstallBatch(context.Background(), []string{"stow", "jq"}, types.SourceRepo)
	require.NoError(t, err)
	assert.Equal(t, []string{"sudo pacman -S --needed -- stow jq"}, runner.Commands)
}

func TestInstallBatchAUR(t *testing.T) {
	runner := testutil.NewFakeRunner()
	manager := pacman.NewSystem(runner, "yay")

	err := manager.InstallBatch(context.Background(), []string{"hyprshot"}, types.SourceAUR)
	require.NoError(t, err)
	assert.Equal(t, []string{"yay -S --needed -- hyprshot"}, runner.Commands)
}

func TestInstallBatchAURWithoutHelper(t *testing.T) {
	runner := testutil.NewFakeRunner()
	manager := pacman.NewSystem(runner, "")

	err := manager.InstallBatch(context.Background(), []string{"hyprshot"}, types.SourceAUR)
	require.Error(t, err)
	assert.True(t, dotuperr.IsErrorCode(err, dotuperr.ErrNoAURHelper))
	assert.Empty(t, runner.Commands)
}

func TestInstallBatchEmptyIsNoop(t *testing.T) {
	runner := testutil.NewFakeRunner()
	manager := pacman.NewSystem(runner, "yay")

	require.NoError(t, manager.InstallBatch(context.Background(), nil, types.SourceRepo))
	assert.Empty(t, runner.Commands)
}

func TestInstallBatchFailure(t *testing.T) {
	runner := testutil.NewFakeRunner()
	runner.RunErrors["sudo pacman -S --needed -- stow"] = errors.New("exit status 1")
	manager := pacman.NewSystem(runner, "")

	err := manager.InstallBatch(context.Background(), []string{"stow"}, types.SourceRepo)
	require.Error(t, err)
	assert.True(t, dotuperr.IsErrorCode(err, dotuperr.ErrInstallFailed))
}
