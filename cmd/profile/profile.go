package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
)

// Profile manages a CPU and heap profile.
type Profile struct {
	// basePath is the path prefix for profile output files.
	basePath string
	// cpuProfile is the output file for the CPU profile.
	cpuProfile *os.File
}

// New creates a new profile instance that writes its output files into the
// specified directory using the specified name as a prefix. The profiling
// begins immediately.
func New(directory, name string) (*Profile, error) {
	// Compute the output path prefix.
	basePath := filepath.Join(directory, name)

	// Open the CPU profile output.
	cpuProfile, err := os.Create(basePath + "_cpu.prof")
	if err != nil {
		return nil, fmt.Errorf("unable to create CPU profile: %w", err)
	}

	// Start CPU profiling.
	if err := pprof.StartCPUProfile(cpuProfile); err != nil {
		cpuProfile.Close()
		return nil, fmt.Errorf("unable to start CPU profile: %w", err)
	}

	// Success.
	return &Profile{
		basePath:   basePath,
		cpuProfile: cpuProfile,
	}, nil
}

// Finalize terminates a profile and writes its heap measurements to disk.
func (p *Profile) Finalize() error {
	// Close out the CPU profile.
	pprof.StopCPUProfile()
	if err := p.cpuProfile.Close(); err != nil {
		return fmt.Errorf("unable to close CPU profile: %w", err)
	}

	// Run a GC cycle to update the heap profile statistics.
	runtime.GC()

	// Write a heap profile.
	heapProfile, err := os.Create(p.basePath + "_heap.prof")
	if err != nil {
		return fmt.Errorf("unable to create heap profile: %w", err)
	}
	if err := pprof.WriteHeapProfile(heapProfile); err != nil {
		heapProfile.Close()
		return fmt.Errorf("unable to write heap profile: %w", err)
	}
	if err := heapProfile.Close(); err != nil {
		return fmt.Errorf("unable to close heap profile: %w", err)
	}

	// Success.
	return nil
}
