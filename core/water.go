package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultWaterColor is the deep blue of the sea plane
var DefaultWaterColor = mgl32.Vec4{0, 0, 0.35, 1}

// Wave is one sine component of the water surface
type Wave struct {
	Amplitude float32
	Length    float32    // wavelength in world units
	Speed     float32    // phase speed in world units per second
	Direction mgl32.Vec2 // XZ travel direction, normalised on use
}

// WaterSim sums sine waves over time
type WaterSim struct {
	Waves []Wave
	Time  float32
}

// Height returns the water surface height at (x, z) for the current time
func (ws *WaterSim) Height(x, z float32) float32 {
	var h float32
	for _, w := range ws.Waves {
		if w.Length <= 0 || w.Amplitude == 0 {
			continue
		}
		dir := w.Direction
		if dir.Len() == 0 {
			dir = mgl32.Vec2{1, 0}
		} else {
			dir = dir.Normalize()
		}
		k := 2 * math32.Pi / w.Length
		h += w.Amplitude * math32.Sin(dir.Dot(mgl32.Vec2{x, z})*k+ws.Time*w.Speed*k)
	}
	return h
}

// Water is the sea plane: a grid whose heights follow a WaterSim
type Water struct {
	Color    mgl32.Vec4
	Size     float32
	Segments int
	Sim      WaterSim
	Model    mgl32.Mat4

	positions []mgl32.Vec3
	indices   []uint32
	dirty     bool
}

// NewWater creates a size x size water plane centred on the origin
func NewWater(color mgl32.Vec4, size float32, segments int, waves []Wave) *Water {
	positions, indices := PlaneGrid(size, segments)
	w := &Water{
		Color:     color,
		Size:      size,
		Segments:  segments,
		Sim:       WaterSim{Waves: waves},
		Model:     mgl32.Ident4(),
		positions: positions,
		indices:   indices,
	}
	w.applyHeights()
	return w
}

// Step advances the simulation by dt seconds and recomputes vertex heights.
// A plane without waves stays untouched.
func (w *Water) Step(dt float32) {
	if len(w.Sim.Waves) == 0 {
		return
	}
	w.Sim.Time += dt
	w.applyHeights()
}

func (w *Water) applyHeights() {
	if len(w.Sim.Waves) == 0 {
		return
	}
	for i, p := range w.positions {
		w.positions[i] = mgl32.Vec3{p.X(), w.Sim.Height(p.X(), p.Z()), p.Z()}
	}
	w.dirty = true
}

// SetWaves replaces the wave set. Removing every wave flattens the plane.
func (w *Water) SetWaves(waves []Wave) {
	w.Sim.Waves = waves
	if len(waves) == 0 {
		for i, p := range w.positions {
			w.positions[i] = mgl32.Vec3{p.X(), 0, p.Z()}
		}
		w.dirty = true
		return
	}
	w.applyHeights()
}

// Positions returns the current vertex positions
func (w *Water) Positions() []mgl32.Vec3 {
	return w.positions
}

// Indices returns the triangle indices of the grid
func (w *Water) Indices() []uint32 {
	return w.indices
}

// TakeDirty reports whether positions changed since the last call and clears the flag
func (w *Water) TakeDirty() bool {
	d := w.dirty
	w.dirty = false
	return d
}
