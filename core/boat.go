package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSpinRadPerSecond is how fast a held rotation key turns the boat
const DefaultSpinRadPerSecond = math32.Pi / 2

// Part is one scaled cube of the boat
type Part struct {
	Name        string
	Scale       mgl32.Mat4
	Translation mgl32.Mat4
	Color       mgl32.Vec4
}

// PartSpec describes a part before its matrices are built
type PartSpec struct {
	Name   string
	Scale  mgl32.Vec3
	Offset mgl32.Vec3
	Color  mgl32.Vec4
}

var (
	hullColor    = mgl32.Vec4{0.5, 0.102, 0, 1}
	mastColor    = mgl32.Vec4{0.3, 0.102, 0, 1}
	bridgeColor  = mgl32.Vec4{1, 1, 1, 1}
	bulwarkColor = mgl32.Vec4{0.75, 0.4, 0, 1}
)

// DefaultBoatParts is the hull first, then the superstructure sitting on it
var DefaultBoatParts = []PartSpec{
	{Name: "body", Scale: mgl32.Vec3{3.5, 0.9, 1.25}, Offset: mgl32.Vec3{0, 0, 0}, Color: hullColor},
	{Name: "mast", Scale: mgl32.Vec3{0.15, 1.5, 0.15}, Offset: mgl32.Vec3{-1, 2.4, 0}, Color: mastColor},
	{Name: "bridge", Scale: mgl32.Vec3{0.65, 0.75, 0.75}, Offset: mgl32.Vec3{1.5, 1.65, 0}, Color: bridgeColor},
	{Name: "bulwark-left", Scale: mgl32.Vec3{3.2, 0.3, 0.15}, Offset: mgl32.Vec3{0, 1.2, -1.1}, Color: bulwarkColor},
	{Name: "bulwark-right", Scale: mgl32.Vec3{3.2, 0.3, 0.15}, Offset: mgl32.Vec3{0, 1.2, 1.1}, Color: bulwarkColor},
	{Name: "bulwark-front", Scale: mgl32.Vec3{0.15, 0.3, 1.25}, Offset: mgl32.Vec3{3.35, 1.2, 0}, Color: bulwarkColor},
	{Name: "bulwark-back", Scale: mgl32.Vec3{0.15, 0.3, 1.25}, Offset: mgl32.Vec3{-3.35, 1.2, 0}, Color: bulwarkColor},
}

// Boat is a rigid set of parts sharing one rotation
type Boat struct {
	Parts            []Part
	Transform        mgl32.Mat4
	SpinRadPerSecond float32
}

// NewBoat builds a boat from part specs. Nil specs means DefaultBoatParts.
func NewBoat(specs []PartSpec) *Boat {
	if specs == nil {
		specs = DefaultBoatParts
	}

	b := &Boat{
		Parts:            make([]Part, len(specs)),
		Transform:        mgl32.Ident4(),
		SpinRadPerSecond: DefaultSpinRadPerSecond,
	}
	for i, s := range specs {
		b.Parts[i] = Part{
			Name:        s.Name,
			Scale:       mgl32.Scale3D(s.Scale.X(), s.Scale.Y(), s.Scale.Z()),
			Translation: mgl32.Translate3D(s.Offset.X(), s.Offset.Y(), s.Offset.Z()),
			Color:       s.Color,
		}
	}
	return b
}

// Rotate turns the boat around world X then world Y.
// dirX and dirY are -1, 0 or 1; nothing changes when both are 0.
func (b *Boat) Rotate(dirX, dirY int, dt float32) {
	if dirX == 0 && dirY == 0 {
		return
	}
	step := b.SpinRadPerSecond * dt
	rotY := mgl32.HomogRotate3DY(float32(dirY) * step)
	rotX := mgl32.HomogRotate3DX(float32(dirX) * step)
	b.Transform = rotY.Mul4(rotX).Mul4(b.Transform)
}

// ModelMatrix returns the world matrix of part i.
// Parts are scaled, moved to their place on the hull, then rotated with the
// boat, so the superstructure turns around the hull's origin.
func (b *Boat) ModelMatrix(i int) mgl32.Mat4 {
	p := b.Parts[i]
	return b.Transform.Mul4(p.Translation).Mul4(p.Scale)
}

// Center is where the hull's centre ends up after the boat's rotation
func (b *Boat) Center() mgl32.Vec3 {
	c := b.Transform.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	return homogToVec3(c)
}

// Heading is the yaw of the boat's bow (+X) projected onto the water, in radians
func (b *Boat) Heading() float32 {
	bow := b.Transform.Mul4x1(mgl32.Vec4{1, 0, 0, 0})
	return math32.Atan2(-bow.Z(), bow.X())
}

// Reset puts the boat back upright facing +X
func (b *Boat) Reset() {
	b.Transform = mgl32.Ident4()
}

func homogToVec3(v mgl32.Vec4) mgl32.Vec3 {
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}
