package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where the viewer looks for settings when no -config flag is given
const DefaultPath = "settings.toml"

type Settings struct {
	Window  WindowSettings `toml:"window"`
	Camera  CameraSettings `toml:"camera"`
	Boat    BoatSettings   `toml:"boat"`
	Water   WaterSettings  `toml:"water"`
	Shaders ShaderSettings `toml:"shaders"`
	Server  ServerSettings `toml:"server"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type CameraSettings struct {
	FovDegrees float32    `toml:"fovDegrees"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	Position   [3]float32 `toml:"position"`
	LookAt     [3]float32 `toml:"lookAt"`
	ZoomSpeed  float32    `toml:"zoomSpeed"`
}

type BoatSettings struct {
	SpinDegreesPerSecond float32 `toml:"spinDegreesPerSecond"`
}

type WaterSettings struct {
	Color    [4]float32    `toml:"color"`
	Size     float32       `toml:"size"`
	Segments int           `toml:"segments"`
	Waves    []WaveSetting `toml:"waves"`
}

type WaveSetting struct {
	Amplitude float32    `toml:"amplitude"`
	Length    float32    `toml:"length"`
	Speed     float32    `toml:"speed"`
	Direction [2]float32 `toml:"direction"`
}

// ShaderSettings points at GLSL files on disk. Empty paths use the built-in shaders.
type ShaderSettings struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	Watch    bool   `toml:"watch"`
}

type ServerSettings struct {
	Enabled          bool   `toml:"enabled"`
	Addr             string `toml:"addr"`
	UpdateIntervalMs int    `toml:"updateIntervalMs"`
}

// Defaults returns the settings used when no file is present
func Defaults() Settings {
	return Settings{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "Boat Scene - Transformations, User Input and Camera",
			VSync:  true,
		},
		Camera: CameraSettings{
			FovDegrees: 45,
			Near:       0.01,
			Far:        500,
			Position:   [3]float32{10, 14, 10},
			LookAt:     [3]float32{0, 4, 0},
			ZoomSpeed:  0.05,
		},
		Boat: BoatSettings{
			SpinDegreesPerSecond: 90,
		},
		Water: WaterSettings{
			Color:    [4]float32{0, 0, 0.35, 1},
			Size:     100,
			Segments: 100,
		},
		Server: ServerSettings{
			Enabled:          false,
			Addr:             "localhost:8080",
			UpdateIntervalMs: 100,
		},
	}
}

// Load reads settings from path on top of Defaults.
// A missing file is not an error; a malformed or invalid one is.
func Load(path string) (Settings, error) {
	settings := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}

	if err := Decode(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("error parsing %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return Defaults(), fmt.Errorf("invalid %s: %w", path, err)
	}

	fmt.Printf("Loaded settings: %dx%d window, water grid %d (~%d vertices), %d waves\n",
		settings.Window.Width, settings.Window.Height,
		settings.Water.Segments, approximateVertexCount(settings.Water.Segments),
		len(settings.Water.Waves))

	return settings, nil
}

// Decode parses TOML into settings, rejecting keys the viewer does not know
func Decode(data []byte, settings *Settings) error {
	decoded := *settings
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&decoded); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%s", strict.String())
		}
		return err
	}
	*settings = decoded
	return nil
}

// Validate checks values the renderer cannot work with
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Camera.FovDegrees <= 0 || s.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fovDegrees must be in (0, 180), got %g", s.Camera.FovDegrees))
	}
	if s.Camera.Near <= 0 || s.Camera.Near >= s.Camera.Far {
		errs = append(errs, fmt.Errorf("camera planes must satisfy 0 < near < far, got near=%g far=%g", s.Camera.Near, s.Camera.Far))
	}
	if s.Camera.ZoomSpeed < 0 {
		errs = append(errs, fmt.Errorf("camera zoomSpeed must not be negative, got %g", s.Camera.ZoomSpeed))
	}
	if s.Water.Segments < 1 {
		errs = append(errs, fmt.Errorf("water segments must be at least 1, got %d", s.Water.Segments))
	}
	if s.Water.Size <= 0 {
		errs = append(errs, fmt.Errorf("water size must be positive, got %g", s.Water.Size))
	}
	for i, w := range s.Water.Waves {
		if w.Length <= 0 {
			errs = append(errs, fmt.Errorf("water wave %d: length must be positive, got %g", i, w.Length))
		}
	}
	if s.Server.Enabled && s.Server.UpdateIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("server updateIntervalMs must be positive, got %d", s.Server.UpdateIntervalMs))
	}
	return errors.Join(errs...)
}

func approximateVertexCount(segments int) int {
	// Plane grid vertex count: (segments + 1)^2
	return (segments + 1) * (segments + 1)
}
