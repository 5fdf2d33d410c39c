package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Workers      int           // Number of bands rendered in parallel
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Duration     time.Duration // Wall time of the render
}

// SamplesPerSecond returns the camera-ray throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
