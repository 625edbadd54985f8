// Package hud lays out the heads-up display as coloured rectangles in pixel space.
// It has no GL dependency so the layout can be checked without a context.
package hud

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is x, y followed by RGBA
const FloatsPerVertex = 6

// Stats is what the HUD shows
type Stats struct {
	FPS         float64
	FollowMode  bool
	HeadingDeg  float32 // boat yaw, any range
	Highlighted bool    // a boat part is selected
}

// Rect is an axis-aligned box in pixels, origin top left
type Rect struct {
	X, Y, W, H float32
	Color      mgl32.Vec4
}

const (
	margin   = float32(10)
	padding  = float32(10)
	boxW     = float32(220)
	rowH     = float32(15)
	rowGap   = float32(10)
	maxFPS   = 120.0
	markerW  = float32(4)
	modeSize = float32(15)
)

var (
	backgroundColor = mgl32.Vec4{0, 0, 0, 0.45}
	fpsColor        = mgl32.Vec4{0, 1, 0, 1}
	slowFPSColor    = mgl32.Vec4{1, 0.3, 0, 1}
	trackColor      = mgl32.Vec4{1, 1, 1, 0.2}
	headingColor    = mgl32.Vec4{1, 1, 0, 1}
	modeOffColor    = mgl32.Vec4{0.4, 0.4, 0.4, 1}
	modeOnColor     = mgl32.Vec4{0.5, 0.5, 1, 1}
	selectedColor   = mgl32.Vec4{1, 1, 1, 1}
)

// Layout returns the rectangles to draw, back to front
func Layout(s Stats) []Rect {
	innerW := boxW - 2*padding
	boxH := 2*padding + 3*rowH + 2*rowGap

	x := margin + padding
	y := margin + padding

	rects := []Rect{
		{X: margin, Y: margin, W: boxW, H: boxH, Color: backgroundColor},
	}

	// FPS bar, full width at maxFPS
	fpsFrac := float32(s.FPS / maxFPS)
	fpsFrac = mgl32.Clamp(fpsFrac, 0, 1)
	color := fpsColor
	if s.FPS < 30 {
		color = slowFPSColor
	}
	rects = append(rects,
		Rect{X: x, Y: y, W: innerW, H: rowH, Color: trackColor},
		Rect{X: x, Y: y, W: innerW * fpsFrac, H: rowH, Color: color},
	)
	y += rowH + rowGap

	// Camera mode: left square is free, right square is follow
	freeColor, followColor := modeOnColor, modeOffColor
	if s.FollowMode {
		freeColor, followColor = modeOffColor, modeOnColor
	}
	rects = append(rects,
		Rect{X: x, Y: y, W: modeSize, H: modeSize, Color: freeColor},
		Rect{X: x + modeSize + 5, Y: y, W: modeSize, H: modeSize, Color: followColor},
	)
	if s.Highlighted {
		rects = append(rects, Rect{X: x + innerW - modeSize, Y: y, W: modeSize, H: modeSize, Color: selectedColor})
	}
	y += rowH + rowGap

	// Heading compass: track with a marker, -180° at the left edge
	frac := (wrapDegrees(s.HeadingDeg) + 180) / 360
	rects = append(rects,
		Rect{X: x, Y: y, W: innerW, H: rowH, Color: trackColor},
		Rect{X: x + frac*(innerW-markerW), Y: y, W: markerW, H: rowH, Color: headingColor},
	)

	return rects
}

// Vertices expands rectangles into two triangles each, FloatsPerVertex floats per vertex
func Vertices(rects []Rect) []float32 {
	out := make([]float32, 0, len(rects)*6*FloatsPerVertex)
	for _, r := range rects {
		c := r.Color
		x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
		out = append(out,
			x0, y0, c[0], c[1], c[2], c[3],
			x1, y0, c[0], c[1], c[2], c[3],
			x0, y1, c[0], c[1], c[2], c[3],
			x1, y0, c[0], c[1], c[2], c[3],
			x1, y1, c[0], c[1], c[2], c[3],
			x0, y1, c[0], c[1], c[2], c[3],
		)
	}
	return out
}

// wrapDegrees maps any angle into [-180, 180)
func wrapDegrees(deg float32) float32 {
	d := math32.Mod(deg+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
