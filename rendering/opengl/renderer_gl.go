package opengl

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"boatscene/core"
	"boatscene/rendering/hud"
	"boatscene/rendering/opengl/overlay"
	"boatscene/rendering/opengl/shaders"
)

// SkyColor is the clear colour behind the scene
var SkyColor = mgl32.Vec4{135.0 / 255.0, 206.0 / 255.0, 235.0 / 255.0, 1}

// Options configures the window and the scene shaders
type Options struct {
	Width, Height int
	Title         string
	VSync         bool

	// Empty paths use the built-in shaders
	VertexShader   string
	FragmentShader string
}

// SceneRenderer owns the GLFW window and draws a core.Scene into it.
// Input callbacks forward to the attached scene.
type SceneRenderer struct {
	window *glfw.Window
	scene  *core.Scene

	program   *shaders.Program
	cubeMesh  *Mesh
	waterMesh *Mesh

	// Framebuffer size, which differs from the window size on HiDPI displays
	width, height int

	statsOverlay *overlay.StatsOverlay
	showStats    bool

	// Directory screenshots are written to
	ScreenshotDir       string
	screenshotRequested bool
}

// NewSceneRenderer opens the window and prepares GL state.
// Call Attach before the first Render.
func NewSceneRenderer(opts Options) (*SceneRenderer, error) {
	runtime.LockOSThread()

	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure OpenGL context
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.MakeContextCurrent()

	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version:", version)

	program, err := shaders.LoadProgram(opts.VertexShader, opts.FragmentShader)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	r := &SceneRenderer{
		window:    window,
		program:   program,
		cubeMesh:  NewMesh(core.CubePositions, core.CubeIndices, gl.STATIC_DRAW),
		width:     fbWidth,
		height:    fbHeight,
		showStats: true,
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	gl.ClearColor(SkyColor[0], SkyColor[1], SkyColor[2], SkyColor[3])

	statsOverlay, err := overlay.NewStatsOverlay(fbWidth, fbHeight)
	if err != nil {
		fmt.Printf("WARNING: stats overlay disabled: %v\n", err)
	} else {
		r.statsOverlay = statsOverlay
	}

	return r, nil
}

// FramebufferSize returns the drawable size in pixels
func (r *SceneRenderer) FramebufferSize() (int, int) {
	return r.width, r.height
}

// Attach uploads the scene's water mesh and routes input to the scene
func (r *SceneRenderer) Attach(scene *core.Scene) {
	r.scene = scene

	if r.waterMesh != nil {
		r.waterMesh.Delete()
	}
	r.waterMesh = NewMesh(scene.Water.Positions(), scene.Water.Indices(), gl.DYNAMIC_DRAW)
	scene.Water.TakeDirty()

	window := r.window

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.onResize(width, height)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		r.onKey(key, action)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		r.scene.Scroll(yoff)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		r.onMouseButton(button, action)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.scene.MouseMove(xpos, ypos)
	})
}

// Render draws one frame of the attached scene and swaps buffers
func (r *SceneRenderer) Render() {
	capture := r.screenshotRequested
	r.screenshotRequested = false

	for _, pass := range hud.FramePasses(r.showStats && r.statsOverlay != nil, capture) {
		switch pass {
		case hud.PassScene:
			r.drawScene()
		case hud.PassCapture:
			r.saveScreenshot(time.Now())
		case hud.PassOverlay:
			r.statsOverlay.Render()
		}
	}

	r.window.SwapBuffers()
}

func (r *SceneRenderer) drawScene() {
	s := r.scene

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam := s.Camera()
	r.program.Use()
	r.program.SetMat4("uProj", cam.Projection())
	r.program.SetMat4("uView", cam.View())

	// Water
	if s.Water.TakeDirty() {
		r.waterMesh.UpdatePositions(s.Water.Positions())
	}
	r.program.SetMat4("uModel", s.Water.Model)
	r.program.SetVec4("uColor", s.Water.Color)
	r.waterMesh.Draw()

	// Boat parts share the cube mesh
	for i, part := range s.Boat.Parts {
		color := part.Color
		if i == s.Selected {
			color = core.HighlightColor(color)
		}
		r.program.SetMat4("uModel", s.Boat.ModelMatrix(i))
		r.program.SetVec4("uColor", color)
		r.cubeMesh.Draw()
	}
}

// ReloadShaders rebuilds the scene program from its files, keeping the old one on error
func (r *SceneRenderer) ReloadShaders() error {
	if err := r.program.Reload(); err != nil {
		return err
	}
	fmt.Println("Shaders reloaded")
	return nil
}

// ShaderPaths lists the shader files in use; empty when running the built-in shaders
func (r *SceneRenderer) ShaderPaths() []string {
	return r.program.Paths()
}

// Event handlers
func (r *SceneRenderer) onResize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.scene.Resize(width, height)
	if r.statsOverlay != nil {
		r.statsOverlay.UpdateSize(width, height)
	}
}

// controlKeys maps held keys onto scene controls
var controlKeys = map[glfw.Key]core.Control{
	glfw.KeyW: core.RotateXNeg,
	glfw.KeyS: core.RotateXPos,
	glfw.KeyA: core.RotateYNeg,
	glfw.KeyD: core.RotateYPos,
	glfw.Key1: core.CameraFree,
	glfw.Key2: core.CameraFollow,
}

func (r *SceneRenderer) onKey(key glfw.Key, action glfw.Action) {
	if c, ok := controlKeys[key]; ok {
		switch action {
		case glfw.Press, glfw.Repeat:
			r.scene.SetControl(c, true)
		case glfw.Release:
			r.scene.SetControl(c, false)
		}
		return
	}

	if action != glfw.Press {
		return
	}

	switch key {
	case glfw.KeyEscape:
		r.window.SetShouldClose(true)
	case glfw.KeyF1:
		// Toggle stats overlay
		r.showStats = !r.showStats
		if r.showStats {
			fmt.Println("Stats overlay: ON")
		} else {
			fmt.Println("Stats overlay: OFF")
		}
	case glfw.KeyP:
		r.screenshotRequested = true
	case glfw.KeyR:
		r.scene.ResetBoat()
		fmt.Println("Boat orientation reset")
	}
}

func (r *SceneRenderer) onMouseButton(button glfw.MouseButton, action glfw.Action) {
	x, y := r.window.GetCursorPos()

	switch button {
	case glfw.MouseButtonLeft:
		switch action {
		case glfw.Press:
			r.scene.MouseButton(true, x, y)
		case glfw.Release:
			r.scene.MouseButton(false, x, y)
		}
	case glfw.MouseButtonRight:
		if action != glfw.Press {
			return
		}
		fx, fy := r.toFramebuffer(x, y)
		if r.scene.Select(fx, fy) == core.NoPart {
			fmt.Println("Selection cleared")
		} else {
			fmt.Printf("Selected part: %s\n", r.scene.SelectedName())
		}
	}
}

// toFramebuffer scales window coordinates to framebuffer pixels for picking
func (r *SceneRenderer) toFramebuffer(x, y float64) (float64, float64) {
	winW, winH := r.window.GetSize()
	if winW <= 0 || winH <= 0 {
		return x, y
	}
	return x * float64(r.width) / float64(winW), y * float64(r.height) / float64(winH)
}

// ShouldClose returns true if the window should close
func (r *SceneRenderer) ShouldClose() bool {
	return r.window.ShouldClose()
}

// PollEvents processes window events
func (r *SceneRenderer) PollEvents() {
	glfw.PollEvents()
}

// Terminate releases GL objects and shuts GLFW down
func (r *SceneRenderer) Terminate() {
	if r.statsOverlay != nil {
		r.statsOverlay.Release()
	}
	if r.waterMesh != nil {
		r.waterMesh.Delete()
	}
	r.cubeMesh.Delete()
	r.program.Delete()
	r.window.Destroy()
	glfw.Terminate()
}
