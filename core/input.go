package core

import "github.com/go-gl/mathgl/mgl32"

// Control is a held key the scene reacts to
type Control int

const (
	RotateXNeg   Control = iota // W
	RotateXPos                  // S
	RotateYNeg                  // A
	RotateYPos                  // D
	CameraFree                  // 1
	CameraFollow                // 2
	controlCount
)

var controlNames = [...]string{
	RotateXNeg:   "rotate-x-neg",
	RotateXPos:   "rotate-x-pos",
	RotateYNeg:   "rotate-y-neg",
	RotateYPos:   "rotate-y-pos",
	CameraFree:   "camera-free",
	CameraFollow: "camera-follow",
}

func (c Control) String() string {
	if c < 0 || c >= controlCount {
		return "unknown"
	}
	return controlNames[c]
}

// Input is the state left behind by window events between two updates
type Input struct {
	held [controlCount]bool

	MouseLeftPressed bool
	MousePressStart  mgl32.Vec2
}

// Set marks a control held or released
func (in *Input) Set(c Control, held bool) {
	if c < 0 || c >= controlCount {
		return
	}
	in.held[c] = held
}

// Held reports whether a control is currently held
func (in *Input) Held(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return in.held[c]
}

// RotationDirs returns the boat rotation direction around X and Y.
// W wins over S and A wins over D when both are held.
func (in *Input) RotationDirs() (dirX, dirY int) {
	switch {
	case in.held[RotateXNeg]:
		dirX = -1
	case in.held[RotateXPos]:
		dirX = 1
	}
	switch {
	case in.held[RotateYNeg]:
		dirY = -1
	case in.held[RotateYPos]:
		dirY = 1
	}
	return dirX, dirY
}
