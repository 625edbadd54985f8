package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene() *Scene {
	return NewScene(DefaultSceneOptions(1280, 720))
}

func TestNewSceneDefaults(t *testing.T) {
	s := newTestScene()

	assert.Equal(t, CameraModeFree, s.Current)
	assert.Equal(t, float32(0.05), s.ZoomSpeed)
	assert.Equal(t, mgl32.Vec3{10, 14, 10}, s.Camera().Position)
	assert.Equal(t, mgl32.Vec3{0, 4, 0}, s.Camera().LookAt)
	assert.Equal(t, DefaultWaterColor, s.Water.Color)
	require.Len(t, s.Boat.Parts, 7)
}

func TestUpdateRotationPriority(t *testing.T) {
	tests := []struct {
		name string
		held []Control
		want mgl32.Mat4
	}{
		{name: "nothing", want: mgl32.Ident4()},
		{name: "w beats s", held: []Control{RotateXNeg, RotateXPos}, want: mgl32.HomogRotate3DX(-DefaultSpinRadPerSecond)},
		{name: "s alone", held: []Control{RotateXPos}, want: mgl32.HomogRotate3DX(DefaultSpinRadPerSecond)},
		{name: "a beats d", held: []Control{RotateYNeg, RotateYPos}, want: mgl32.HomogRotate3DY(-DefaultSpinRadPerSecond)},
		{name: "d alone", held: []Control{RotateYPos}, want: mgl32.HomogRotate3DY(DefaultSpinRadPerSecond)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScene()
			for _, c := range tc.held {
				s.SetControl(c, true)
			}
			s.Update(1)
			assertMat4Near(t, tc.want, s.Boat.Transform, 1e-5)
		})
	}
}

func TestReleaseStopsRotation(t *testing.T) {
	s := newTestScene()
	s.SetControl(RotateYPos, true)
	s.Update(0.1)
	s.SetControl(RotateYPos, false)
	before := s.Boat.Transform

	s.Update(0.1)
	assert.Equal(t, before, s.Boat.Transform)
}

func TestCameraModeSwitch(t *testing.T) {
	s := newTestScene()
	s.Camera().UpdateOrbit(mgl32.Vec2{40, 10}, 0.1)
	eye := s.Camera().Position

	s.SetControl(CameraFollow, true)
	s.Update(0.016)

	assert.Equal(t, CameraModeFollow, s.Current)
	assert.Equal(t, eye, s.Camera().Position)
	assert.Equal(t, s.Boat.Center(), s.Camera().LookAt)
	assert.Equal(t, 1280, s.Camera().Width)

	// Asking for the active mode again changes nothing
	s.Update(0.016)
	assert.Equal(t, CameraModeFollow, s.Current)

	s.SetControl(CameraFollow, false)
	s.SetControl(CameraFree, true)
	s.Update(0.016)

	assert.Equal(t, CameraModeFree, s.Current)
	// Free mode keeps looking where the follow camera looked
	assert.Equal(t, s.Boat.Center(), s.Camera().LookAt)
	assert.Equal(t, eye, s.Camera().Position)
}

func TestFreeKeyInFreeModeIsNoop(t *testing.T) {
	s := newTestScene()
	s.SetControl(CameraFree, true)
	s.Update(0.016)

	assert.Equal(t, CameraModeFree, s.Current)
	assert.Equal(t, mgl32.Vec3{0, 4, 0}, s.Camera().LookAt)
}

func TestFollowTracksBoatCentre(t *testing.T) {
	s := newTestScene()
	s.SetControl(CameraFollow, true)
	s.Update(0.016)
	s.SetControl(CameraFollow, false)

	s.Boat.Transform = mgl32.Translate3D(2, 0, -3)
	s.Update(0.016)
	assert.Equal(t, mgl32.Vec3{2, 0, -3}, s.Camera().LookAt)
}

func TestMouseOrbit(t *testing.T) {
	s := newTestScene()
	start := s.Camera().Position

	s.MouseMove(500, 300)
	assert.Equal(t, start, s.Camera().Position, "moving without a button must not orbit")

	s.MouseButton(true, 100, 100)
	s.MouseMove(140, 100)
	assert.NotEqual(t, start, s.Camera().Position)
	assert.Equal(t, mgl32.Vec2{140, 100}, s.Input.MousePressStart)

	s.MouseButton(false, 140, 100)
	moved := s.Camera().Position
	s.MouseMove(400, 400)
	assert.Equal(t, moved, s.Camera().Position)
}

func TestScrollZoomsActiveCameraOnly(t *testing.T) {
	s := newTestScene()
	s.SetControl(CameraFollow, true)
	s.Update(0)
	free := s.Cameras[CameraModeFree]

	before := s.Camera().Distance()
	s.Scroll(1)
	assert.Less(t, s.Camera().Distance(), before)
	assert.Equal(t, free, s.Cameras[CameraModeFree])
}

func TestScrollZoomsWhileOrbiting(t *testing.T) {
	s := newTestScene()
	s.MouseButton(true, 200, 200)

	before := s.Camera().Distance()
	s.Scroll(1)
	assert.Less(t, s.Camera().Distance(), before)
	assert.InDelta(t, before*(1-s.ZoomSpeed), s.Camera().Distance(), 1e-3)

	// The orbit anchor is untouched by the wheel
	assert.Equal(t, mgl32.Vec2{200, 200}, s.Input.MousePressStart)
	assert.True(t, s.Input.MouseLeftPressed)
}

func TestResizeActiveCamera(t *testing.T) {
	s := newTestScene()
	s.Resize(800, 600)

	assert.Equal(t, 800, s.Camera().Width)
	assert.Equal(t, 600, s.Camera().Height)
	assert.Equal(t, 1280, s.Cameras[CameraModeFollow].Width)
}

func TestUpdateStepsWater(t *testing.T) {
	opts := DefaultSceneOptions(640, 480)
	opts.WaterSegments = 4
	opts.Waves = []Wave{{Amplitude: 0.2, Length: 10, Speed: 1, Direction: mgl32.Vec2{1, 0}}}
	s := NewScene(opts)

	s.Update(0.5)
	assert.InDelta(t, 0.5, s.Water.Sim.Time, 1e-6)
	assert.True(t, s.Water.TakeDirty())
}

func TestSnapshot(t *testing.T) {
	s := newTestScene()
	s.SetControl(RotateYPos, true)
	s.Update(0.5)

	snap := s.Snapshot()
	assert.Equal(t, "free", snap.CameraMode)
	assert.Equal(t, [3]float32{10, 14, 10}, snap.CameraPosition)
	assert.InDelta(t, 45, snap.BoatHeading, 1e-3)
	assert.Equal(t, [16]float32(s.Boat.Transform), snap.BoatTransform)
}

func TestCameraModeString(t *testing.T) {
	assert.Equal(t, "free", CameraModeFree.String())
	assert.Equal(t, "follow", CameraModeFollow.String())
	assert.Equal(t, "CameraMode(7)", CameraMode(7).String())
}

func TestApplyTunables(t *testing.T) {
	s := newTestScene()
	before := s.Cameras[CameraModeFree].Position

	opts := DefaultSceneOptions(1, 1)
	opts.Fov = DegreesToRadians(60)
	opts.Far = 200
	opts.ZoomSpeed = 0.2
	opts.SpinRadPerSecond = 1
	opts.WaterColor = mgl32.Vec4{0, 0.2, 0.4, 1}
	opts.Waves = []Wave{{Amplitude: 0.5, Length: 10, Speed: 1, Direction: mgl32.Vec2{1, 0}}}
	s.ApplyTunables(opts)

	for _, cam := range s.Cameras {
		assert.InDelta(t, DegreesToRadians(60), cam.Fov, 1e-6)
		assert.Equal(t, float32(200), cam.Far)
	}
	assert.Equal(t, before, s.Cameras[CameraModeFree].Position, "placement is not a tunable")
	assert.NotEqual(t, 1, s.Cameras[CameraModeFree].Width, "viewport is not a tunable")
	assert.Equal(t, float32(0.2), s.ZoomSpeed)
	assert.Equal(t, float32(1), s.Boat.SpinRadPerSecond)
	assert.Equal(t, opts.WaterColor, s.Water.Color)
	assert.Len(t, s.Water.Sim.Waves, 1)
	assert.True(t, s.Water.TakeDirty())
}
