package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// band is a contiguous range of image rows [StartRow, EndRow) owned by one worker
type band struct {
	ID       int
	StartRow int
	EndRow   int
}

// partitionRows splits height rows into workers contiguous bands.
// The last band absorbs the remainder.
func partitionRows(height, workers int) []band {
	rowsPerBand := height / workers
	bands := make([]band, workers)
	for i := range bands {
		bands[i] = band{ID: i, StartRow: i * rowsPerBand, EndRow: (i + 1) * rowsPerBand}
	}
	bands[workers-1].EndRow = height
	return bands
}

// Raytracer renders a frozen scene with one worker per row band
type Raytracer struct {
	camera     *Camera
	world      core.Hittable
	lights     core.Sampleable
	config     RenderConfig
	integrator integrator.Integrator
	logger     core.Logger

	workers  int
	progress []atomic.Int64 // Rows completed, per worker
	stats    RenderStats
}

// NewRaytracer creates a new raytracer. world and lights are shared read-only
// by all workers. lights may be nil. A nil logger discards output.
func NewRaytracer(camera *Camera, world core.Hittable, lights core.Sampleable, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}

	workers := resolveWorkers(config.NumWorkers, max(config.Height, 1))

	return &Raytracer{
		camera:     camera,
		world:      world,
		lights:     lights,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(config.Background),
		logger:     logger,
		workers:    workers,
		progress:   make([]atomic.Int64, workers),
	}
}

// Render is a convenience wrapper that renders without logging
func Render(camera *Camera, world core.Hittable, lights core.Sampleable, config RenderConfig) ([]core.Vec3, error) {
	return NewRaytracer(camera, world, lights, config, nil).Render()
}

// Render traces every pixel SamplesPerPixel times and returns the averaged
// linear colors in row-major order with row 0 at the top of the image.
// Any worker failure fails the whole render.
func (rt *Raytracer) Render() ([]core.Vec3, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid render config: %w", err)
	}
	if rt.camera == nil || rt.world == nil {
		return nil, fmt.Errorf("render needs a camera and a world")
	}

	if host, err := GetHostInfo(); err == nil {
		rt.logger.Printf("Host: %s\n", host)
	}

	if bvh, ok := rt.world.(*geometry.BVHNode); ok {
		s := bvh.Stats()
		rt.logger.Printf("BVH: %d nodes, %d leaves, max depth %d\n", s.Nodes, s.Leaves, s.MaxDepth)
	}

	bands := partitionRows(rt.config.Height, rt.workers)
	rt.logger.Printf("Rendering %dx%d, %d spp, depth %d, %d workers (%d rows per band)\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth,
		len(bands), bands[0].EndRow-bands[0].StartRow)

	for i := range rt.progress {
		rt.progress[i].Store(0)
	}

	startTime := time.Now()

	// One single-use channel per band so results are collected in spawn order
	results := make([]chan []core.Vec3, len(bands))
	var group errgroup.Group
	for i, b := range bands {
		results[i] = make(chan []core.Vec3, 1)
		out := results[i]
		group.Go(func() error {
			return rt.renderBand(b, out)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	pixels := make([]core.Vec3, 0, rt.config.Width*rt.config.Height)
	for _, out := range results {
		pixels = append(pixels, <-out...)
	}

	rt.stats = RenderStats{
		Workers:      len(bands),
		TotalPixels:  len(pixels),
		TotalSamples: len(pixels) * rt.config.SamplesPerPixel,
		Duration:     time.Since(startTime),
	}
	rt.logger.Printf("Render completed in %v\n", rt.stats.Duration)

	return pixels, nil
}

// renderBand renders the rows of one band with its own random stream and
// sends the finished buffer on out. A panic in the worker becomes an error.
func (rt *Raytracer) renderBand(b band, out chan<- []core.Vec3) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d (rows %d-%d) panicked: %v", b.ID, b.StartRow, b.EndRow-1, r)
		}
	}()

	sampler := core.NewSeededSampler(rt.config.Seed + int64(b.ID))
	width, height := rt.config.Width, rt.config.Height
	spp := rt.config.SamplesPerPixel

	buffer := make([]core.Vec3, 0, (b.EndRow-b.StartRow)*width)
	for y := b.StartRow; y < b.EndRow; y++ {
		// Image row 0 is the top; camera t grows upward
		row := height - 1 - y
		for x := 0; x < width; x++ {
			colorAccum := core.Vec3{}
			for sample := 0; sample < spp; sample++ {
				s := (float64(x) + sampler.Get1D()) / float64(width)
				t := (float64(row) + sampler.Get1D()) / float64(height)

				ray := rt.camera.GetRay(s, t, sampler)
				colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.lights, rt.config.MaxDepth, sampler))
			}
			buffer = append(buffer, colorAccum.Multiply(1.0/float64(spp)))
		}
		rt.progress[b.ID].Add(1)
	}

	out <- buffer
	return nil
}

// Progress returns the fraction of rows finished across all workers, in [0,1]
func (rt *Raytracer) Progress() float64 {
	if rt.config.Height <= 0 {
		return 0
	}
	var done int64
	for i := range rt.progress {
		done += rt.progress[i].Load()
	}
	return float64(done) / float64(rt.config.Height)
}

// Workers returns the number of bands the image is split into
func (rt *Raytracer) Workers() int {
	return rt.workers
}

// Stats returns statistics about the last completed render
func (rt *Raytracer) Stats() RenderStats {
	return rt.stats
}
