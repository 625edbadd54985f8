package core

import "github.com/go-gl/mathgl/mgl32"

// CubePositions holds a unit cube spanning [-1, 1] on every axis.
// Each face has its own four vertices so per-face attributes stay possible.
var CubePositions = []mgl32.Vec3{
	// +X
	{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1},
	// -X
	{-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1},
	// +Y
	{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1},
	// -Y
	{-1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {1, -1, 1},
	// +Z
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	// -Z
	{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
}

// CubeIndices triangulates CubePositions, two counter-clockwise triangles per face
var CubeIndices = cubeIndices()

func cubeIndices() []uint32 {
	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return indices
}

// PlaneGrid builds a flat grid in the XZ plane centred on the origin.
// The grid covers size x size units split into segments x segments quads.
func PlaneGrid(size float32, segments int) ([]mgl32.Vec3, []uint32) {
	if segments < 1 {
		segments = 1
	}

	half := size / 2
	step := size / float32(segments)
	row := segments + 1

	positions := make([]mgl32.Vec3, 0, row*row)
	for iz := 0; iz <= segments; iz++ {
		for ix := 0; ix <= segments; ix++ {
			positions = append(positions, mgl32.Vec3{
				-half + float32(ix)*step,
				0,
				-half + float32(iz)*step,
			})
		}
	}

	indices := make([]uint32, 0, segments*segments*6)
	for iz := 0; iz < segments; iz++ {
		for ix := 0; ix < segments; ix++ {
			i0 := uint32(iz*row + ix)
			i1 := i0 + 1
			i2 := i0 + uint32(row)
			i3 := i2 + 1
			// Wound so the normal points up (+Y)
			indices = append(indices, i0, i2, i1, i1, i2, i3)
		}
	}

	return positions, indices
}
