package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// OrbitSensitivity is radians of orbit per pixel of mouse travel
	OrbitSensitivity = float32(0.005)
	// MinRadius keeps the camera from passing through its look-at point
	MinRadius = float32(0.5)

	pitchLimit = math32.Pi/2 - 0.01
)

// Camera is a perspective camera orbiting a look-at point
type Camera struct {
	Width, Height int
	Fov           float32 // vertical, radians
	Near, Far     float32
	Position      mgl32.Vec3
	LookAt        mgl32.Vec3
}

// NewCamera creates a camera looking from position at lookAt
func NewCamera(width, height int, fov, near, far float32, position, lookAt mgl32.Vec3) Camera {
	return Camera{
		Width:    width,
		Height:   height,
		Fov:      fov,
		Near:     near,
		Far:      far,
		Position: position,
		LookAt:   lookAt,
	}
}

// Aspect returns width/height. A minimised window reports 0x0, which gives 1.
func (c *Camera) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.LookAt, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.Fov, c.Aspect(), c.Near, c.Far)
}

// UpdateOrbit moves the camera on a sphere around LookAt.
// mouseDiff is the cursor travel in pixels; zoom > 0 moves closer.
func (c *Camera) UpdateOrbit(mouseDiff mgl32.Vec2, zoom float32) {
	s := CartesianToSpherical(c.Position.Sub(c.LookAt))
	if s.Radius == 0 {
		s.Radius = MinRadius
	}

	s.Yaw -= mouseDiff.X() * OrbitSensitivity
	s.Pitch = mgl32.Clamp(s.Pitch-mouseDiff.Y()*OrbitSensitivity, -pitchLimit, pitchLimit)
	s.Radius = mgl32.Clamp(s.Radius*(1-zoom), MinRadius, c.maxRadius())

	c.Position = c.LookAt.Add(SphericalToCartesian(s))
}

// Distance returns how far the camera is from its look-at point
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.LookAt).Len()
}

func (c *Camera) maxRadius() float32 {
	if c.Far/2 < MinRadius {
		return MinRadius
	}
	return c.Far / 2
}
