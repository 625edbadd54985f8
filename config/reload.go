package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"boatscene/core"
)

// Reload re-reads path and reports which changed settings only take effect after a restart.
// On error the current settings are returned unchanged.
func Reload(path string, current Settings) (Settings, []string, error) {
	next, err := Load(path)
	if err != nil {
		return current, nil, err
	}

	var restart []string
	if next.Window.Width != current.Window.Width || next.Window.Height != current.Window.Height {
		restart = append(restart, "window size")
	}
	if next.Water.Segments != current.Water.Segments || next.Water.Size != current.Water.Size {
		restart = append(restart, "water grid")
	}
	if next.Shaders != current.Shaders {
		restart = append(restart, "shaders")
	}
	if next.Server != current.Server {
		restart = append(restart, "server")
	}
	for _, what := range restart {
		fmt.Printf("%s changed - restart required\n", what)
	}

	return next, restart, nil
}

// SceneOptions converts settings into the options core.NewScene takes
func (s Settings) SceneOptions() core.SceneOptions {
	opts := core.DefaultSceneOptions(s.Window.Width, s.Window.Height)

	opts.Fov = core.DegreesToRadians(s.Camera.FovDegrees)
	opts.Near = s.Camera.Near
	opts.Far = s.Camera.Far
	opts.EyePosition = mgl32.Vec3(s.Camera.Position)
	opts.LookAt = mgl32.Vec3(s.Camera.LookAt)
	opts.ZoomSpeed = s.Camera.ZoomSpeed
	opts.SpinRadPerSecond = core.DegreesToRadians(s.Boat.SpinDegreesPerSecond)

	opts.WaterColor = mgl32.Vec4(s.Water.Color)
	opts.WaterSize = s.Water.Size
	opts.WaterSegments = s.Water.Segments
	opts.Waves = s.Waves()

	return opts
}

// Waves converts the configured wave list
func (s Settings) Waves() []core.Wave {
	if len(s.Water.Waves) == 0 {
		return nil
	}
	waves := make([]core.Wave, len(s.Water.Waves))
	for i, w := range s.Water.Waves {
		waves[i] = core.Wave{
			Amplitude: w.Amplitude,
			Length:    w.Length,
			Speed:     w.Speed,
			Direction: mgl32.Vec2(w.Direction),
		}
	}
	return waves
}
