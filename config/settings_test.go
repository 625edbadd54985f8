package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestDefaultsAreValid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
[window]
width = 800
height = 600

[camera]
position = [5.0, 6.0, 7.0]
zoomSpeed = 0.1

[[water.waves]]
amplitude = 0.2
length = 12.0
speed = 1.5
direction = [1.0, 0.5]
`)

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800, settings.Window.Width)
	assert.Equal(t, 600, settings.Window.Height)
	assert.Equal(t, Defaults().Window.Title, settings.Window.Title)
	assert.Equal(t, [3]float32{5, 6, 7}, settings.Camera.Position)
	assert.Equal(t, float32(0.1), settings.Camera.ZoomSpeed)
	assert.Equal(t, float32(45), settings.Camera.FovDegrees)
	require.Len(t, settings.Water.Waves, 1)
	assert.Equal(t, WaveSetting{Amplitude: 0.2, Length: 12, Speed: 1.5, Direction: [2]float32{1, 0.5}}, settings.Water.Waves[0])
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{name: "syntax", content: "[window\nwidth = 3", errText: "error parsing"},
		{name: "unknown key", content: "[window]\ncolour = 3", errText: "error parsing"},
		{name: "near beyond far", content: "[camera]\nnear = 10.0\nfar = 5.0", errText: "0 < near < far"},
		{name: "fov", content: "[camera]\nfovDegrees = 180.0", errText: "fovDegrees"},
		{name: "no segments", content: "[water]\nsegments = 0", errText: "segments"},
		{name: "flat wave", content: "[[water.waves]]\namplitude = 1.0\nlength = 0.0", errText: "wave 0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings, err := Load(writeSettings(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
			assert.Equal(t, Defaults(), settings)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	s := Defaults()
	s.Window.Width = 0
	s.Camera.ZoomSpeed = -1
	s.Server.Enabled = true
	s.Server.UpdateIntervalMs = 0

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "zoomSpeed")
	assert.Contains(t, err.Error(), "updateIntervalMs")
}

func TestReloadReportsRestartOnlySettings(t *testing.T) {
	current := Defaults()
	path := writeSettings(t, "[window]\nwidth = 1024\n[camera]\nzoomSpeed = 0.2\n")

	next, restart, err := Reload(path, current)
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), next.Camera.ZoomSpeed)
	assert.Equal(t, []string{"window size"}, restart)
}

func TestReloadKeepsCurrentOnError(t *testing.T) {
	current := Defaults()
	current.Camera.ZoomSpeed = 0.3

	next, restart, err := Reload(writeSettings(t, "not toml ]["), current)
	require.Error(t, err)
	assert.Nil(t, restart)
	assert.Equal(t, current, next)
}

func TestSceneOptions(t *testing.T) {
	s := Defaults()
	s.Water.Waves = []WaveSetting{{Amplitude: 0.1, Length: 4, Speed: 1, Direction: [2]float32{0, 1}}}

	opts := s.SceneOptions()
	assert.Equal(t, 1280, opts.Width)
	assert.InDelta(t, math32.Pi/4, opts.Fov, 1e-6)
	assert.InDelta(t, math32.Pi/2, opts.SpinRadPerSecond, 1e-6)
	assert.Equal(t, mgl32.Vec3{10, 14, 10}, opts.EyePosition)
	assert.Equal(t, mgl32.Vec4{0, 0, 0.35, 1}, opts.WaterColor)
	require.Len(t, opts.Waves, 1)
	assert.Equal(t, mgl32.Vec2{0, 1}, opts.Waves[0].Direction)

	assert.Nil(t, Defaults().Waves())
}

func TestWatchReportsWrites(t *testing.T) {
	path := writeSettings(t, "[window]\nwidth = 640\n")
	other := filepath.Join(filepath.Dir(path), "other.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := Watch(ctx, path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 800\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case got := <-w.Changes:
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
