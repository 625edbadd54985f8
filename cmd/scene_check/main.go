// scene_check prints the scene a settings file produces without opening a window
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"boatscene/config"
	"boatscene/core"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Settings file (TOML)")
	seconds := flag.Float64("rotate", 1, "Seconds of W+A to simulate before the snapshot")
	flag.Parse()

	fmt.Println("=== Scene Check ===")

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	scene := core.NewScene(settings.SceneOptions())

	// Test 1: orbit round trip
	fmt.Println("\nTest 1: Camera orbit")
	cam := scene.Camera()
	start := core.CartesianToSpherical(cam.Position.Sub(cam.LookAt))
	fmt.Printf("  Eye %v, radius %.2f, yaw %.1f°, pitch %.1f°\n", cam.Position, start.Radius,
		core.RadiansToDegrees(start.Yaw), core.RadiansToDegrees(start.Pitch))
	eye := cam.Position
	cam.UpdateOrbit(mgl32.Vec2{100, 0}, 0)
	cam.UpdateOrbit(mgl32.Vec2{-100, 0}, 0)
	fmt.Printf("  After +100/-100 px: drift %.6f\n", cam.Position.Sub(eye).Len())

	// Test 2: part bounds
	fmt.Println("\nTest 2: Boat parts (world-space bounds)")
	for i, part := range scene.Boat.Parts {
		lo, hi := partBounds(scene.Boat.ModelMatrix(i))
		fmt.Printf("  %-14s min %v max %v\n", part.Name, lo, hi)
	}

	// Test 3: rotation and follow camera
	fmt.Printf("\nTest 3: Hold W+A for %.1fs, then follow\n", *seconds)
	scene.SetControl(core.RotateXNeg, true)
	scene.SetControl(core.RotateYNeg, true)
	const step = float32(1.0 / 60.0)
	for t := float32(0); t < float32(*seconds); t += step {
		scene.Update(step)
	}
	scene.SetControl(core.RotateXNeg, false)
	scene.SetControl(core.RotateYNeg, false)
	scene.SetControl(core.CameraFollow, true)
	scene.Update(0)

	out, err := json.MarshalIndent(scene.Snapshot(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode snapshot: %v", err)
	}
	os.Stdout.Write(append(out, '\n'))
}

// partBounds transforms the unit cube corners and returns the axis-aligned bounds
func partBounds(model mgl32.Mat4) (mgl32.Vec3, mgl32.Vec3) {
	lo := mgl32.Vec3{1e30, 1e30, 1e30}
	hi := mgl32.Vec3{-1e30, -1e30, -1e30}
	for _, c := range core.CubePositions {
		p := model.Mul4x1(c.Vec4(1)).Vec3()
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}
