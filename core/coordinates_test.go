package core

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// TestSphericalToCartesian documents the Y-up orbit convention
func TestSphericalToCartesian(t *testing.T) {
	tests := []struct {
		name string
		s    Spherical
		want mgl32.Vec3
	}{
		{
			name: "yaw 0 on the horizon",
			s:    Spherical{Radius: 10},
			want: mgl32.Vec3{10, 0, 0},
		},
		{
			name: "yaw 90 on the horizon",
			s:    Spherical{Radius: 10, Yaw: math32.Pi / 2},
			want: mgl32.Vec3{0, 0, 10},
		},
		{
			name: "straight up",
			s:    Spherical{Radius: 3, Pitch: math32.Pi / 2},
			want: mgl32.Vec3{0, 3, 0},
		},
		{
			name: "45 up, 45 around",
			s:    Spherical{Radius: 2, Yaw: math32.Pi / 4, Pitch: math32.Pi / 4},
			want: mgl32.Vec3{1, math32.Sqrt2, 1}, // r*cos(45)*cos(45), r*sin(45), r*cos(45)*sin(45)
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SphericalToCartesian(tc.s)
			assertVec3Near(t, tc.want, got, 1e-5, "got %v, want %v", got, tc.want)
		})
	}
}

func TestCartesianRoundTrip(t *testing.T) {
	for _, v := range []mgl32.Vec3{
		{10, 10, 10},
		{-3, 1, 7},
		{0.5, -2, -0.25},
	} {
		back := SphericalToCartesian(CartesianToSpherical(v))
		assertVec3Near(t, v, back, 1e-4, "round trip of %v gave %v", v, back)
	}
}

func TestCartesianToSphericalOrigin(t *testing.T) {
	assert.Equal(t, Spherical{}, CartesianToSpherical(mgl32.Vec3{}))
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, math32.Pi/4, DegreesToRadians(45), 1e-6)
	assert.InDelta(t, 180, RadiansToDegrees(math32.Pi), 1e-4)
}
