package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the focal plane (0 = distance to LookAt)
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a thin-lens camera. vfov is in degrees; the shutter is
// open over [time0, time1].
func NewCamera(lookFrom, lookAt, vup core.Vec3, vfov, aspectRatio, aperture, focusDistance, time0, time1 float64) *Camera {
	theta := mgl64.DegToRad(vfov)
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		time0:           time0,
		time1:           time1,
	}
}

// NewCameraFromConfig creates a camera from a configuration struct
func NewCameraFromConfig(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	return NewCamera(config.Center, config.LookAt, config.Up, config.VFov, config.AspectRatio,
		config.Aperture, focusDistance, config.Time0, config.Time1)
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0,0) is the lower-left corner. The sampler provides the lens and
// shutter samples.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := core.RandomRange(sampler, c.time0, c.time1)
	return core.NewRayAt(origin, direction, time)
}
