package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"boatscene/config"
	"boatscene/core"
	"boatscene/rendering/opengl"
	"boatscene/server"
)

func main() {
	runtime.LockOSThread()

	// Parse command line flags
	var (
		configPath    = flag.String("config", config.DefaultPath, "Settings file (TOML)")
		width         = flag.Int("width", 0, "Window width, overrides settings")
		height        = flag.Int("height", 0, "Window height, overrides settings")
		serve         = flag.Bool("serve", false, "Start the telemetry websocket server")
		screenshotDir = flag.String("screenshots", ".", "Directory for screenshots taken with P")
	)
	flag.Parse()

	fmt.Println("=== Boat Scene ===")

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *width > 0 {
		settings.Window.Width = *width
	}
	if *height > 0 {
		settings.Window.Height = *height
	}
	if *serve {
		settings.Server.Enabled = true
	}
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	fmt.Printf("Window: %dx%d\n", settings.Window.Width, settings.Window.Height)

	renderer, err := opengl.NewSceneRenderer(opengl.Options{
		Width:          settings.Window.Width,
		Height:         settings.Window.Height,
		Title:          settings.Window.Title,
		VSync:          settings.Window.VSync,
		VertexShader:   settings.Shaders.Vertex,
		FragmentShader: settings.Shaders.Fragment,
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()
	renderer.ScreenshotDir = *screenshotDir

	// Cameras use the framebuffer size so projection and picking match on HiDPI displays
	opts := settings.SceneOptions()
	opts.Width, opts.Height = renderer.FramebufferSize()
	scene := core.NewScene(opts)
	renderer.Attach(scene)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := startTelemetry(ctx, settings.Server)
	if hub != nil {
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
			defer done()
			if err := hub.Shutdown(shutdownCtx); err != nil {
				fmt.Printf("Telemetry shutdown: %v\n", err)
			}
		}()
	}

	watched := []string{*configPath}
	if settings.Shaders.Watch {
		watched = append(watched, renderer.ShaderPaths()...)
	}
	watcher, err := config.Watch(ctx, watched...)
	if err != nil {
		fmt.Printf("WARNING: hot reload disabled: %v\n", err)
	} else {
		defer watcher.Close()
	}
	settingsFile, _ := filepath.Abs(*configPath)

	printControls()

	lastTime := glfw.GetTime()
	frameCount := 0
	lastFPSTime := lastTime

	// Main loop
	for !renderer.ShouldClose() {
		renderer.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		if watcher != nil {
			settings = drainChanges(watcher, settingsFile, settings, scene, renderer)
		}
		if hub != nil {
			drainCommands(hub, scene)
		}

		scene.Update(dt)
		renderer.Render()

		if hub != nil {
			hub.Publish(scene.Snapshot())
		}

		// FPS counter
		frameCount++
		if elapsed := now - lastFPSTime; elapsed >= 1.0 {
			fps := float64(frameCount) / elapsed
			renderer.UpdateStats(fps)
			fmt.Printf("\rFPS: %.1f | Camera: %s | Heading: %.0f°   ", fps, scene.Current,
				core.RadiansToDegrees(scene.Boat.Heading()))
			frameCount = 0
			lastFPSTime = now
		}
	}

	fmt.Println("\nShutting down...")
}

func startTelemetry(ctx context.Context, s config.ServerSettings) *server.Hub {
	if !s.Enabled {
		return nil
	}
	hub := server.NewHub(time.Duration(s.UpdateIntervalMs) * time.Millisecond)
	if err := hub.Start(ctx, s.Addr); err != nil {
		fmt.Printf("WARNING: telemetry disabled: %v\n", err)
		return nil
	}
	return hub
}

// drainChanges applies pending file changes without blocking the frame
func drainChanges(w *config.Watcher, settingsFile string, current config.Settings, scene *core.Scene, renderer *opengl.SceneRenderer) config.Settings {
	for {
		select {
		case path := <-w.Changes:
			if path != settingsFile {
				if err := renderer.ReloadShaders(); err != nil {
					fmt.Printf("\nShader reload failed, keeping previous shaders: %v\n", err)
				}
				continue
			}
			next, _, err := config.Reload(path, current)
			if err != nil {
				fmt.Printf("\nSettings reload failed, keeping previous settings: %v\n", err)
				continue
			}
			scene.ApplyTunables(next.SceneOptions())
			fmt.Println("\nSettings reloaded")
			current = next
		default:
			return current
		}
	}
}

func drainCommands(hub *server.Hub, scene *core.Scene) {
	for {
		select {
		case cmd := <-hub.Commands():
			if cmd.ResetBoat {
				scene.ResetBoat()
			}
		default:
			return
		}
	}
}

func printControls() {
	fmt.Println("\nControls:")
	fmt.Println("  W/S: Rotate boat around X")
	fmt.Println("  A/D: Rotate boat around Y")
	fmt.Println("  1: Free camera, 2: Follow boat")
	fmt.Println("  Left mouse drag: Orbit camera")
	fmt.Println("  Scroll: Zoom in/out")
	fmt.Println("  Right click: Select boat part")
	fmt.Println("  R: Reset boat, P: Screenshot, F1: Toggle stats")
	fmt.Println("  ESC: Exit")
}
