package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int       // Image width in pixels
	Height          int       // Image height in pixels
	SamplesPerPixel int       // Number of rays per pixel
	MaxDepth        int       // Maximum ray bounce depth
	NumWorkers      int       // Number of parallel workers (0 = use CPU count)
	Background      core.Vec3 // Radiance of rays that escape the scene
	Seed            int64     // Base seed; worker i draws from Seed+i
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      0,
		Background:      core.Vec3{},
		Seed:            42,
	}
}

// Validate reports the first invalid setting
func (c RenderConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

// errNoCPUInfo is returned by cpuCount when the host reports no logical CPUs
var errNoCPUInfo = errors.New("no logical CPU count reported")

// cpuCount returns the number of logical CPUs as reported by the host
func cpuCount() (int, error) {
	count, err := cpu.Counts(true)
	if err != nil {
		return 0, fmt.Errorf("failed to query CPU count: %w", err)
	}
	if count <= 0 {
		return 0, errNoCPUInfo
	}
	return count, nil
}

// resolveWorkers picks the worker count: the requested number, or one per
// logical CPU, never more than there are rows to render
func resolveWorkers(requested, height int) int {
	workers := requested
	if workers <= 0 {
		count, err := cpuCount()
		if err != nil {
			count = runtime.NumCPU()
		}
		workers = count
	}

	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
