package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotup-sh/dotup/pkg/errors"
)

func TestNewAndError(t *testing.T) {
	err := errors.New(errors.ErrAnchorNotFound, "anchor missing")
	assert.Equal(t, "[ANCHOR_NOT_FOUND] anchor missing", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := errors.Wrap(cause, errors.ErrWriteFailed, "cannot write config")

	assert.Equal(t, "[WRITE_FAILED] cannot write config: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapNilReturnsNil(t *testing.T) {
	// Typed nil must not leak into error returns.
	err := errors.Wrap(nil, errors.ErrWriteFailed, "whatever")
	require.Nil(t, err)
}

func TestIsMatchesByCode(t *testing.T) {
	err := errors.Newf(errors.ErrNoAURHelper, "no helper among %v", []string{"yay"})
	target := errors.New(errors.ErrNoAURHelper, "")

	assert.True(t, stderrors.Is(err, target))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoAURHelper))
	assert.False(t, errors.IsErrorCode(err, errors.ErrInstallFailed))
}

func TestIsErrorCodeThroughWrapping(t *testing.T) {
	inner := errors.New(errors.ErrBackupFailed, "cannot create backup dir")
	outer := fmt.Errorf("seeding: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrBackupFailed))
	assert.Equal(t, errors.ErrBackupFailed, errors.GetErrorCode(outer))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInstallFailed, "batch failed").
		WithDetail("source", "aur").
		WithDetail("count", 3)

	assert.Equal(t, "aur", err.Details["source"])
	assert.Equal(t, 3, err.Details["count"])
}
