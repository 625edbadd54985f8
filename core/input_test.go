package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotationDirs(t *testing.T) {
	tests := []struct {
		name  string
		held  []Control
		wantX int
		wantY int
	}{
		{name: "nothing", wantX: 0, wantY: 0},
		{name: "W", held: []Control{RotateXNeg}, wantX: -1},
		{name: "S", held: []Control{RotateXPos}, wantX: 1},
		{name: "A", held: []Control{RotateYNeg}, wantY: -1},
		{name: "D", held: []Control{RotateYPos}, wantY: 1},
		{name: "W beats S", held: []Control{RotateXPos, RotateXNeg}, wantX: -1},
		{name: "A beats D", held: []Control{RotateYPos, RotateYNeg}, wantY: -1},
		{name: "S and D", held: []Control{RotateXPos, RotateYPos}, wantX: 1, wantY: 1},
		{name: "camera keys only", held: []Control{CameraFree, CameraFollow}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var in Input
			for _, c := range tc.held {
				in.Set(c, true)
			}
			x, y := in.RotationDirs()
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}
}

func TestInputRelease(t *testing.T) {
	var in Input
	in.Set(RotateYPos, true)
	assert.True(t, in.Held(RotateYPos))

	in.Set(RotateYPos, false)
	assert.False(t, in.Held(RotateYPos))
}

func TestInputIgnoresUnknownControls(t *testing.T) {
	var in Input
	in.Set(Control(-1), true)
	in.Set(controlCount, true)

	assert.False(t, in.Held(Control(-1)))
	assert.False(t, in.Held(controlCount))
	x, y := in.RotationDirs()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "rotate-x-neg", RotateXNeg.String())
	assert.Equal(t, "camera-follow", CameraFollow.String())
	assert.Equal(t, "unknown", Control(42).String())
}
