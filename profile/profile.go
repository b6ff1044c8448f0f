// Package profile writes runtime profiles of a command run.
//
// CPU profiling covers the time between [Profiler.Start] and
// [Profiler.Stop]; the snapshot profiles (heap, goroutine, block, mutex)
// are written at Stop. Block and mutex sampling is only enabled when their
// profile is requested, so a run without profile flags pays nothing.
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return p.Start() }
//	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error { return p.Stop() }
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/spf13/pflag"
)

// ErrAlreadyStarted is returned by [Profiler.Start] on a running profiler.
var ErrAlreadyStarted = errors.New("profiler already started")

// Flags names the profile flags.
type Flags struct {
	CPU       string
	Heap      string
	Goroutine string
	Block     string
	Mutex     string
}

// Config holds profile output paths. Empty paths disable a profile.
type Config struct {
	Flags     Flags
	CPU       string
	Heap      string
	Goroutine string
	Block     string
	Mutex     string
}

// NewConfig returns a [Config] with every profile disabled and flags named
// "cpu-profile", "heap-profile" and so on.
func NewConfig() *Config {
	return &Config{Flags: Flags{
		CPU:       "cpu-profile",
		Heap:      "heap-profile",
		Goroutine: "goroutine-profile",
		Block:     "block-profile",
		Mutex:     "mutex-profile",
	}}
}

// RegisterFlags adds the profile flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPU, c.Flags.CPU, "", "write a CPU profile to this file")
	flags.StringVar(&c.Heap, c.Flags.Heap, "", "write a heap profile to this file")
	flags.StringVar(&c.Goroutine, c.Flags.Goroutine, "", "write a goroutine profile to this file")
	flags.StringVar(&c.Block, c.Flags.Block, "", "write a block profile to this file")
	flags.StringVar(&c.Mutex, c.Flags.Mutex, "", "write a mutex profile to this file")
}

// NewProfiler returns a [Profiler] writing the profiles configured in c.
// Flag values are read when the profiler starts.
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: c}
}

// Profiler runs one profiling session.
type Profiler struct {
	cfg     *Config
	cpuFile *os.File
	started bool
}

// Start enables the requested sampling and starts the CPU profile.
func (p *Profiler) Start() error {
	if p.started {
		return ErrAlreadyStarted
	}

	p.started = true

	if p.cfg.Block != "" {
		runtime.SetBlockProfileRate(1)
	}

	if p.cfg.Mutex != "" {
		runtime.SetMutexProfileFraction(1)
	}

	if p.cfg.CPU == "" {
		return nil
	}

	f, err := os.Create(p.cfg.CPU) //nolint:gosec // Path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return errors.Join(fmt.Errorf("start cpu profile: %w", err), f.Close())
	}

	p.cpuFile = f

	return nil
}

// Stop ends the CPU profile and writes the snapshot profiles. Stopping a
// profiler that was never started does nothing.
func (p *Profiler) Stop() error {
	if !p.started {
		return nil
	}

	p.started = false

	var errs []error

	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		err := p.cpuFile.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("close cpu profile: %w", err))
		}

		p.cpuFile = nil
	}

	for name, path := range map[string]string{
		"heap":      p.cfg.Heap,
		"goroutine": p.cfg.Goroutine,
		"block":     p.cfg.Block,
		"mutex":     p.cfg.Mutex,
	} {
		if path == "" {
			continue
		}

		err := writeProfile(name, path)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if p.cfg.Block != "" {
		runtime.SetBlockProfileRate(0)
	}

	if p.cfg.Mutex != "" {
		runtime.SetMutexProfileFraction(0)
	}

	return errors.Join(errs...)
}

func writeProfile(name, path string) error {
	f, err := os.Create(path) //nolint:gosec // Path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("create %s profile: %w", name, err)
	}

	if name == "heap" {
		runtime.GC()
	}

	err = pprof.Lookup(name).WriteTo(f, 0)

	return errors.Join(wrap(name, err), wrap(name, f.Close()))
}

func wrap(name string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("write %s profile: %w", name, err)
}
