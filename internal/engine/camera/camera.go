// Package camera provides the orbit camera used by the viewers.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Speed multipliers applied while the modifier keys are held.
const (
	FastMultiplier = 2.0
	SlowMultiplier = 0.5
)

// Controls is the set of held movement actions for one frame.
type Controls struct {
	ZoomIn   bool
	ZoomOut  bool
	Left     bool
	Right    bool
	LookUp   bool
	LookDown bool
	Fast     bool
	Slow     bool
}

// OrbitCamera looks at Target from a point on a sphere around it.
//
// Phi is the heading around the Y axis and Theta the elevation, both in
// radians. The forward vector is
// (sin φ cos θ, sin θ, cos φ cos θ) and the eye sits Radius units behind
// the target along it.
type OrbitCamera struct {
	Target mgl32.Vec3
	Phi    float32
	Theta  float32
	Radius float32

	MinRadius float32
	MaxRadius float32

	// MoveSpeed is in units (zoom) or radians (turn) per second.
	MoveSpeed float32
	// MouseSensitivity is in radians per pixel.
	MouseSensitivity float32

	// Active cameras follow mouse motion.
	Active bool
}

// NewOrbitCamera creates a camera 10 units from the origin.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Radius:           10,
		MinRadius:        0.1,
		MaxRadius:        4242.6,
		MoveSpeed:        5,
		MouseSensitivity: 0.01,
	}
}

// Forward returns the unit viewing direction.
func (c *OrbitCamera) Forward() mgl32.Vec3 {
	sp, cp := math.Sincos(float64(c.Phi))
	st, ct := math.Sincos(float64(c.Theta))
	return mgl32.Vec3{float32(sp * ct), float32(st), float32(cp * ct)}
}

// Position returns the eye position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	return c.Target.Sub(c.Forward().Mul(c.Radius))
}

// ViewMatrix returns the world-to-camera transform. The target lands on
// the negative Z axis at distance Radius.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	rot := mgl32.HomogRotate3DY(math.Pi).
		Mul4(mgl32.HomogRotate3DX(c.Theta)).
		Mul4(mgl32.HomogRotate3DY(-c.Phi))
	p := c.Position()
	return rot.Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

// Update applies held keyboard actions over dt seconds.
func (c *OrbitCamera) Update(ctl Controls, dt float32) {
	speed := c.MoveSpeed * dt
	switch {
	case ctl.Fast:
		speed *= FastMultiplier
	case ctl.Slow:
		speed *= SlowMultiplier
	}

	if ctl.ZoomIn {
		c.Radius -= speed
	} else if ctl.ZoomOut {
		c.Radius += speed
	}

	if ctl.Left {
		c.Theta -= speed
	} else if ctl.Right {
		c.Theta += speed
	}

	if ctl.LookUp {
		c.Theta += speed
	} else if ctl.LookDown {
		c.Theta -= speed
	}

	c.clamp()
}

// HandleMouse turns an active camera by a mouse delta in pixels.
func (c *OrbitCamera) HandleMouse(dx, dy float32) {
	if !c.Active {
		return
	}
	c.Phi += dx * c.MouseSensitivity
	c.Theta += dy * c.MouseSensitivity
	c.clamp()
}

// HandleZoom scales the radius by a wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Radius -= delta * c.Radius * 0.1
	c.clamp()
}

// Toggle flips Active and returns the new state.
func (c *OrbitCamera) Toggle() bool {
	c.Active = !c.Active
	return c.Active
}

// FitToBounds centers the camera on a box and backs off far enough to see
// all of it.
func (c *OrbitCamera) FitToBounds(min, max mgl32.Vec3) {
	c.Target = min.Add(max).Mul(0.5)

	size := max.Sub(min).Len()
	if size <= 0 {
		size = 1
	}
	c.Radius = size * 1.5
	c.Theta = 0.4
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	const halfPi = math.Pi / 2
	c.Theta = mgl32.Clamp(c.Theta, -halfPi, halfPi)
	if c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius > 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
