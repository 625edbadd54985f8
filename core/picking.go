package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NoPart is returned by Pick when the ray misses every part
const NoPart = -1

// ScreenRay builds a world-space ray from the eye through window pixel (x, y), origin top left
func (c *Camera) ScreenRay(x, y float64) (origin, dir mgl32.Vec3) {
	w, h := float32(max(c.Width, 1)), float32(max(c.Height, 1))

	// Convert screen coordinates to NDC
	nx := (2.0*float32(x))/w - 1.0
	ny := 1.0 - (2.0*float32(y))/h // Flip Y

	// Unproject analytically, proj*view is badly conditioned with near = 0.01
	tanHalf := math32.Tan(c.Fov / 2)
	eyeDir := mgl32.Vec4{nx * tanHalf * c.Aspect(), ny * tanHalf, -1, 0}
	worldDir := c.View().Inv().Mul4x1(eyeDir).Vec3()

	return c.Position, worldDir.Normalize()
}

// Pick returns the index of the nearest part hit by the ray and the hit distance
func (b *Boat) Pick(origin, dir mgl32.Vec3) (int, float32) {
	best, bestT := NoPart, math32.Inf(1)
	for i := range b.Parts {
		inv := b.ModelMatrix(i).Inv()
		localOrigin := inv.Mul4x1(origin.Vec4(1)).Vec3()
		localDir := inv.Mul4x1(dir.Vec4(0)).Vec3()

		// t is shared between spaces because the direction is transformed, not renormalised
		t, ok := rayUnitCube(localOrigin, localDir)
		if ok && t < bestT {
			best, bestT = i, t
		}
	}
	if best == NoPart {
		return NoPart, 0
	}
	return best, bestT
}

// rayUnitCube intersects a ray with the [-1, 1] cube using the slab method
func rayUnitCube(origin, dir mgl32.Vec3) (float32, bool) {
	tMin, tMax := math32.Inf(-1), math32.Inf(1)
	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		if math32.Abs(d) < 1e-9 {
			if o < -1 || o > 1 {
				return 0, false
			}
			continue
		}
		t1 := (-1 - o) / d
		t2 := (1 - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math32.Max(tMin, t1)
		tMax = math32.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Origin inside the box
		return 0, true
	}
	return tMin, true
}

// HighlightColor brightens a part colour halfway to white, keeping alpha
func HighlightColor(c mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{
		c[0] + (1-c[0])*0.5,
		c[1] + (1-c[1])*0.5,
		c[2] + (1-c[2])*0.5,
		c[3],
	}
}
