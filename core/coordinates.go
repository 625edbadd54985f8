package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Spherical is an offset from an orbit centre.
// Y points up, yaw 0 points along +X and yaw grows toward +Z.
type Spherical struct {
	Radius float32
	Yaw    float32 // radians around +Y
	Pitch  float32 // radians above the XZ plane, [-π/2, π/2]
}

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float32) float32 {
	return degrees * math32.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float32) float32 {
	return radians * 180.0 / math32.Pi
}

// SphericalToCartesian converts an orbit offset to a vector relative to the centre
func SphericalToCartesian(s Spherical) mgl32.Vec3 {
	cosPitch := math32.Cos(s.Pitch)

	return mgl32.Vec3{
		s.Radius * cosPitch * math32.Cos(s.Yaw),
		s.Radius * math32.Sin(s.Pitch),
		s.Radius * cosPitch * math32.Sin(s.Yaw),
	}
}

// CartesianToSpherical converts an offset from the orbit centre to spherical form
func CartesianToSpherical(v mgl32.Vec3) Spherical {
	r := v.Len()

	// Handle special case of origin
	if r < 1e-6 {
		return Spherical{}
	}

	return Spherical{
		Radius: r,
		Yaw:    math32.Atan2(v.Z(), v.X()),
		Pitch:  math32.Asin(mgl32.Clamp(v.Y()/r, -1, 1)),
	}
}
