package meshview

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMode selects which of the two camera parameter sets drives the
// view-projection matrix. There are exactly two variants; both call sites
// (matrix computation and input handling) switch exhaustively over them.
type CameraMode int

const (
	// CameraModeFixed places the eye at the configured scene camera
	// position, looking at the world origin.
	CameraModeFixed CameraMode = iota

	// CameraModeOrbital places the eye on a sphere around a target point,
	// controlled interactively by drag and scroll input.
	CameraModeOrbital
)

// String returns the string representation of CameraMode.
func (m CameraMode) String() string {
	switch m {
	case CameraModeFixed:
		return "Fixed"
	case CameraModeOrbital:
		return "Orbital"
	default:
		return "Unknown"
	}
}

// MouseButton identifies which button is held during a camera drag.
type MouseButton int

const (
	// MouseButtonPrimary rotates the orbital camera.
	MouseButtonPrimary MouseButton = iota

	// MouseButtonSecondary pans the orbital target.
	MouseButtonSecondary
)

// Orbital camera limits and defaults.
const (
	orbitMinDistance = 1.0
	orbitMaxDistance = 100.0
	orbitMaxElev     = 89.0

	defaultOrbitDistance  = 10.0
	defaultOrbitAzimuth   = 45.0
	defaultOrbitElevation = 30.0
)

// Projection constants shared by both camera modes.
const (
	projNear = 0.1
	projFar  = 1000.0
)

// glToWGPU maps OpenGL clip-space depth [-1, 1] to the WebGPU range [0, 1].
// mgl32.Perspective produces the former; the render pipeline expects the
// latter.
var glToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera holds the preview camera state: the active mode plus the full
// parameter set of each variant. Switching modes preserves the inactive
// variant's parameters, so toggling away from orbital and back restores
// the prior orbit.
//
// Distance and elevation are clamped after every mutation. Azimuth is
// deliberately unbounded: it only ever passes through sin/cos, so growth
// across many drags is benign.
//
// Camera is pure state and math; it never touches the GPU. It is not safe
// for concurrent use.
type Camera struct {
	mode CameraMode

	// Fixed-eye variant, seeded from the scene configuration snapshot.
	fixedEye mgl32.Vec3
	fovDeg   float32

	// Orbital variant.
	distance  float32
	azimuth   float32
	elevation float32
	target    mgl32.Vec3
}

// NewCamera returns a camera in orbital mode with default orbit parameters
// and a fixed-eye variant at (0, 0, 10) with a 75 degree field of view.
func NewCamera() *Camera {
	c := &Camera{
		mode:     CameraModeOrbital,
		fixedEye: mgl32.Vec3{0, 0, 10},
		fovDeg:   75,
	}
	c.Reset()
	return c
}

// Mode returns the active camera mode.
func (c *Camera) Mode() CameraMode { return c.mode }

// SetMode switches the active camera mode. Parameters of the inactive
// variant are retained.
func (c *Camera) SetMode(m CameraMode) { c.mode = m }

// ApplyConfig seeds the fixed-eye variant from a configuration snapshot.
// The field of view also drives the projection in orbital mode, matching
// the preview's single configured lens. The camera never writes back to
// the configuration.
func (c *Camera) ApplyConfig(cfg Config) {
	c.fixedEye = mgl32.Vec3{cfg.CameraPosition[0], cfg.CameraPosition[1], cfg.CameraPosition[2]}
	if cfg.CameraFOVDegrees > 0 {
		c.fovDeg = cfg.CameraFOVDegrees
	}
}

// Distance returns the orbital distance.
func (c *Camera) Distance() float32 { return c.distance }

// Azimuth returns the orbital azimuth in degrees.
func (c *Camera) Azimuth() float32 { return c.azimuth }

// Elevation returns the orbital elevation in degrees.
func (c *Camera) Elevation() float32 { return c.elevation }

// Target returns the orbital target point.
func (c *Camera) Target() [3]float32 {
	return [3]float32{c.target.X(), c.target.Y(), c.target.Z()}
}

// FOVDegrees returns the vertical field of view in degrees.
func (c *Camera) FOVDegrees() float32 { return c.fovDeg }

// SetDistance sets the orbital distance, clamped to [1, 100].
func (c *Camera) SetDistance(d float32) {
	c.distance = clamp(d, orbitMinDistance, orbitMaxDistance)
}

// SetElevation sets the orbital elevation in degrees, clamped to [-89, 89].
func (c *Camera) SetElevation(deg float32) {
	c.elevation = clamp(deg, -orbitMaxElev, orbitMaxElev)
}

// SetAzimuth sets the orbital azimuth in degrees. Azimuth is not clamped.
func (c *Camera) SetAzimuth(deg float32) { c.azimuth = deg }

// SetTarget sets the orbital target point.
func (c *Camera) SetTarget(t [3]float32) { c.target = mgl32.Vec3{t[0], t[1], t[2]} }

// Reset restores the default orbit: distance 10, azimuth 45 degrees,
// elevation 30 degrees, target at the origin.
func (c *Camera) Reset() {
	c.distance = defaultOrbitDistance
	c.azimuth = defaultOrbitAzimuth
	c.elevation = defaultOrbitElevation
	c.target = mgl32.Vec3{}
}

// Drag applies a mouse drag of (dx, dy) pixels. It is a no-op unless the
// camera is in orbital mode.
//
// The primary button orbits: azimuth advances 0.5 degrees per pixel of dx,
// elevation retreats 0.5 degrees per pixel of dy and stays within
// [-89, 89]. The secondary button pans the target along the camera's local
// right and up axes, scaled by distance so the pan speed tracks zoom.
func (c *Camera) Drag(dx, dy float32, button MouseButton) {
	if c.mode != CameraModeOrbital {
		return
	}
	switch button {
	case MouseButtonPrimary:
		c.azimuth += dx * 0.5
		c.elevation = clamp(c.elevation-dy*0.5, -orbitMaxElev, orbitMaxElev)
	case MouseButtonSecondary:
		scale := c.distance * 0.01
		az := mgl32.DegToRad(c.azimuth)
		right := mgl32.Vec3{cos32(az), 0, -sin32(az)}
		up := mgl32.Vec3{0, 1, 0}
		c.target = c.target.Add(right.Mul(dx * scale)).Add(up.Mul(dy * scale))
	}
}

// Scroll zooms the orbital camera by delta wheel steps; distance stays
// within [1, 100]. No-op unless the camera is in orbital mode.
func (c *Camera) Scroll(delta float32) {
	if c.mode != CameraModeOrbital {
		return
	}
	c.distance = clamp(c.distance-delta*0.5, orbitMinDistance, orbitMaxDistance)
}

// Eye returns the current world-space eye position for the active mode.
func (c *Camera) Eye() [3]float32 {
	eye, _ := c.eyeTarget()
	return [3]float32{eye.X(), eye.Y(), eye.Z()}
}

// eyeTarget resolves the active mode to an eye position and look target.
func (c *Camera) eyeTarget() (eye, target mgl32.Vec3) {
	switch c.mode {
	case CameraModeFixed:
		return c.fixedEye, mgl32.Vec3{}
	case CameraModeOrbital:
		az := mgl32.DegToRad(c.azimuth)
		el := mgl32.DegToRad(c.elevation)
		offset := mgl32.Vec3{
			c.distance * cos32(el) * sin32(az),
			c.distance * sin32(el),
			c.distance * cos32(el) * cos32(az),
		}
		return c.target.Add(offset), c.target
	default:
		return c.fixedEye, mgl32.Vec3{}
	}
}

// ViewProjection computes the combined view-projection matrix for the
// active mode at the given aspect ratio. The projection is right-handed
// with near 0.1 and far 1000, up is world +Y, and clip depth is remapped
// to the WebGPU [0, 1] range. The computation is deterministic: identical
// state and aspect produce bit-identical matrices.
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	eye, target := c.eyeTarget()
	view := mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(c.fovDeg), aspect, projNear, projFar)
	return glToWGPU.Mul4(proj).Mul4(view)
}

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
