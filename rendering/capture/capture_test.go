package capture

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2 framebuffer: bottom row red, top row blue
	pix := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img, err := FromPixels(pix, 1, 2)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
}

func TestFromPixelsRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name          string
		pix           []byte
		width, height int
	}{
		{name: "zero height", pix: nil, width: 4, height: 0},
		{name: "short buffer", pix: make([]byte, 7), width: 1, height: 2},
		{name: "long buffer", pix: make([]byte, 12), width: 1, height: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromPixels(tc.pix, tc.width, tc.height)
			assert.Error(t, err)
		})
	}
}

func TestEncoder(t *testing.T) {
	for _, ok := range []string{"a.png", "b.JPG", "c.jpeg", "d.bmp"} {
		_, err := Encoder(ok)
		assert.NoError(t, err, ok)
	}
	_, err := Encoder("e.gif")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	pix := make([]byte, 3*2*4)
	for i := range pix {
		pix[i] = byte(i * 10)
		if i%4 == 3 {
			pix[i] = 255
		}
	}
	img, err := FromPixels(pix, 3, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, Save(path, img))

	loaded, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), loaded.Bounds())

	r, g, b, a := loaded.At(2, 1).RGBA()
	want := img.RGBAAt(2, 1)
	assert.Equal(t, []uint32{uint32(want.R), uint32(want.G), uint32(want.B), uint32(want.A)},
		[]uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	assert.Equal(t, filepath.Join("shots", "screenshot-20240309-140507.png"), Filename("shots", ts))
}
