package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/profile"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := profile.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--cpu-profile", "cpu.prof", "--mutex-profile=mu.prof"}))
	assert.Equal(t, "cpu.prof", cfg.CPU)
	assert.Equal(t, "mu.prof", cfg.Mutex)
	assert.Empty(t, cfg.Heap)
}

// Profiles touch process-wide runtime state, so this test is not parallel.
func TestProfiler(t *testing.T) {
	dir := t.TempDir()

	cfg := profile.NewConfig()
	cfg.CPU = filepath.Join(dir, "cpu.prof")
	cfg.Heap = filepath.Join(dir, "heap.prof")
	cfg.Goroutine = filepath.Join(dir, "goroutine.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.ErrorIs(t, p.Start(), profile.ErrAlreadyStarted)
	require.NoError(t, p.Stop())
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.CPU, cfg.Heap, cfg.Goroutine} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Positive(t, info.Size(), path)
	}
}

func TestProfilerCreateError(t *testing.T) {
	cfg := profile.NewConfig()
	cfg.Heap = filepath.Join(t.TempDir(), "missing", "heap.prof")

	p := cfg.NewProfiler()
	require.NoError(t, p.Start())
	require.Error(t, p.Stop())
}

func TestProfilerDisabled(t *testing.T) {
	t.Parallel()

	p := profile.NewConfig().NewProfiler()
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}
