package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileReturnsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workflow.ts")
	require.NoError(t, os.WriteFile(path, []byte("const x = 1;"), 0o644))

	data, err := ReadFile(context.Background(), path, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", string(data))
}

func TestReadFileNotFoundIsPermanent(t *testing.T) {
	_, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.ts"), DefaultConfig())
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestDoRetriesOnTransientThenSucceeds(t *testing.T) {
	cfg := Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2, Jitter: 0}

	calls := 0
	result, err := Do(context.Background(), cfg, func() (string, error) {
		calls++
		if calls < 2 {
			return "", &os.PathError{Op: "open", Path: "x", Err: syscall.EMFILE}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, calls)
}

func TestDoReturnsImmediatelyOnPermanentError(t *testing.T) {
	cfg := DefaultConfig()
	calls := 0
	permErr := errors.New("permission denied")

	_, err := Do(context.Background(), cfg, func() (string, error) {
		calls++
		return "", permErr
	})

	assert.ErrorIs(t, err, permErr)
	assert.Equal(t, 1, calls)
}

func TestDoRespectsContextCancellation(t *testing.T) {
	cfg := Config{MaxAttempts: 5, InitialDelay: time.Hour, MaxDelay: time.Hour, Multiplier: 1, Jitter: 0}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Do(ctx, cfg, func() (string, error) {
		return "", &os.PathError{Op: "open", Path: "x", Err: syscall.EMFILE}
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransientOnlyEMFILEAndENFILE(t *testing.T) {
	assert.True(t, IsTransient(&os.PathError{Err: syscall.EMFILE}))
	assert.True(t, IsTransient(&os.PathError{Err: syscall.ENFILE}))
	assert.False(t, IsTransient(os.ErrNotExist))
	assert.False(t, IsTransient(nil))
}
