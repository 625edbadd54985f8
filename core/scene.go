package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMode selects which of the scene's cameras is active
type CameraMode int

const (
	// CameraModeFree orbits a fixed look-at point
	CameraModeFree CameraMode = iota
	// CameraModeFollow keeps looking at the boat
	CameraModeFollow
)

func (m CameraMode) String() string {
	switch m {
	case CameraModeFree:
		return "free"
	case CameraModeFollow:
		return "follow"
	default:
		return fmt.Sprintf("CameraMode(%d)", int(m))
	}
}

// SceneOptions collects the tunables Scene needs at start-up
type SceneOptions struct {
	Width, Height int
	Fov           float32 // radians
	Near, Far     float32
	EyePosition   mgl32.Vec3
	LookAt        mgl32.Vec3
	ZoomSpeed     float32

	SpinRadPerSecond float32
	BoatParts        []PartSpec

	WaterColor    mgl32.Vec4
	WaterSize     float32
	WaterSegments int
	Waves         []Wave
}

// DefaultSceneOptions returns the classic setup: 45° lens, camera above and behind the boat
func DefaultSceneOptions(width, height int) SceneOptions {
	return SceneOptions{
		Width:            width,
		Height:           height,
		Fov:              DegreesToRadians(45),
		Near:             0.01,
		Far:              500,
		EyePosition:      mgl32.Vec3{10, 14, 10},
		LookAt:           mgl32.Vec3{0, 4, 0},
		ZoomSpeed:        0.05,
		SpinRadPerSecond: DefaultSpinRadPerSecond,
		WaterColor:       DefaultWaterColor,
		WaterSize:        100,
		WaterSegments:    100,
	}
}

// Scene is everything that is drawn and everything input can change
type Scene struct {
	Cameras   [2]Camera
	Current   CameraMode
	ZoomSpeed float32

	Boat  *Boat
	Water *Water
	Input Input

	// Selected is the index of the highlighted boat part, or NoPart
	Selected int
}

// NewScene sets up the boat, the water and the initial free camera
func NewScene(opts SceneOptions) *Scene {
	s := &Scene{
		Current:   CameraModeFree,
		ZoomSpeed: opts.ZoomSpeed,
		Boat:      NewBoat(opts.BoatParts),
		Water:     NewWater(opts.WaterColor, opts.WaterSize, opts.WaterSegments, opts.Waves),
		Selected:  NoPart,
	}
	if opts.SpinRadPerSecond > 0 {
		s.Boat.SpinRadPerSecond = opts.SpinRadPerSecond
	}
	s.Cameras[CameraModeFree] = NewCamera(opts.Width, opts.Height, opts.Fov, opts.Near, opts.Far, opts.EyePosition, opts.LookAt)
	s.Cameras[CameraModeFollow] = s.Cameras[CameraModeFree]
	return s
}

// Camera returns the active camera
func (s *Scene) Camera() *Camera {
	return &s.Cameras[s.Current]
}

// SetControl records a key press, repeat or release
func (s *Scene) SetControl(c Control, held bool) {
	s.Input.Set(c, held)
}

// MouseButton records the left button state and anchors orbiting at the cursor
func (s *Scene) MouseButton(pressed bool, x, y float64) {
	s.Input.MouseLeftPressed = pressed
	s.Input.MousePressStart = mgl32.Vec2{float32(x), float32(y)}
}

// MouseMove orbits the active camera while the left button is held
func (s *Scene) MouseMove(x, y float64) {
	if !s.Input.MouseLeftPressed {
		return
	}
	pos := mgl32.Vec2{float32(x), float32(y)}
	diff := s.Input.MousePressStart.Sub(pos)
	s.Camera().UpdateOrbit(diff, 0)
	s.Input.MousePressStart = pos
}

// Scroll zooms the active camera
func (s *Scene) Scroll(yoff float64) {
	s.Camera().UpdateOrbit(mgl32.Vec2{}, s.ZoomSpeed*float32(yoff))
}

// Resize updates the active camera's viewport
func (s *Scene) Resize(width, height int) {
	cam := s.Camera()
	cam.Width = width
	cam.Height = height
}

// Update advances the scene by dt seconds
func (s *Scene) Update(dt float32) {
	dirX, dirY := s.Input.RotationDirs()

	switchTo, switching := s.requestedMode()

	s.Boat.Rotate(dirX, dirY, dt)
	s.Water.Step(dt)

	center := s.Boat.Center()
	if switching {
		old := s.Cameras[s.Current]
		lookAt := old.LookAt
		if switchTo == CameraModeFollow {
			lookAt = center
		}
		s.Cameras[switchTo] = NewCamera(old.Width, old.Height, old.Fov, old.Near, old.Far, old.Position, lookAt)
		s.Current = switchTo
	}

	if s.Current == CameraModeFollow {
		s.Camera().LookAt = center
	}
}

// requestedMode maps the camera keys to a mode change. Asking for the mode
// that is already active is not a change.
func (s *Scene) requestedMode() (CameraMode, bool) {
	switch {
	case s.Input.Held(CameraFree) && s.Current == CameraModeFollow:
		return CameraModeFree, true
	case s.Input.Held(CameraFollow) && s.Current == CameraModeFree:
		return CameraModeFollow, true
	}
	return s.Current, false
}

// Select highlights the boat part under window pixel (x, y).
// Selecting the highlighted part again, or missing, clears the selection.
func (s *Scene) Select(x, y float64) int {
	origin, dir := s.Camera().ScreenRay(x, y)
	hit, _ := s.Boat.Pick(origin, dir)
	if hit == s.Selected {
		hit = NoPart
	}
	s.Selected = hit
	return hit
}

// SelectedName returns the highlighted part's name, or "" when nothing is selected
func (s *Scene) SelectedName() string {
	if s.Selected < 0 || s.Selected >= len(s.Boat.Parts) {
		return ""
	}
	return s.Boat.Parts[s.Selected].Name
}

// ResetBoat puts the boat back to its starting orientation
func (s *Scene) ResetBoat() {
	s.Boat.Reset()
}

// ApplyTunables updates the settings that can change while running:
// lens and planes of both cameras, zoom speed, spin rate, water colour and waves.
// Viewport, camera placement and the water grid are left alone.
func (s *Scene) ApplyTunables(opts SceneOptions) {
	for i := range s.Cameras {
		s.Cameras[i].Fov = opts.Fov
		s.Cameras[i].Near = opts.Near
		s.Cameras[i].Far = opts.Far
	}
	s.ZoomSpeed = opts.ZoomSpeed
	if opts.SpinRadPerSecond > 0 {
		s.Boat.SpinRadPerSecond = opts.SpinRadPerSecond
	}
	s.Water.Color = opts.WaterColor
	s.Water.SetWaves(opts.Waves)
}

// Snapshot is a copy of the scene state safe to hand to another goroutine
type Snapshot struct {
	CameraMode     string      `json:"cameraMode"`
	CameraPosition [3]float32  `json:"cameraPosition"`
	CameraLookAt   [3]float32  `json:"cameraLookAt"`
	BoatCenter     [3]float32  `json:"boatCenter"`
	BoatHeading    float32     `json:"boatHeadingDeg"`
	BoatTransform  [16]float32 `json:"boatTransform"`
	WaterTime      float32     `json:"waterTime"`
	SelectedPart   string      `json:"selectedPart,omitempty"`
}

// Snapshot captures the current state
func (s *Scene) Snapshot() Snapshot {
	cam := s.Camera()
	return Snapshot{
		CameraMode:     s.Current.String(),
		CameraPosition: cam.Position,
		CameraLookAt:   cam.LookAt,
		BoatCenter:     s.Boat.Center(),
		BoatHeading:    RadiansToDegrees(s.Boat.Heading()),
		BoatTransform:  s.Boat.Transform,
		WaterTime:      s.Water.Sim.Time,
		SelectedPart:   s.SelectedName(),
	}
}
