package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/logging"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{verbosity: 0, want: zerolog.WarnLevel},
		{verbosity: 1, want: zerolog.InfoLevel},
		{verbosity: 2, want: zerolog.DebugLevel},
		{verbosity: 3, want: zerolog.TraceLevel},
		{verbosity: 9, want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	logging.SetupLogger(1)

	_, err := os.Stat(filepath.Join(stateHome, "dotup", "dotup.log"))
	require.NoError(t, err)
}

func TestGetLoggerDoesNotPanic(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	logging.SetupLogger(0)

	logger := logging.GetLogger("seeder")
	logger.Debug().Str("file", "/tmp/x").Msg("scan")
}
