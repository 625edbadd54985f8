package opengl

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"boatscene/rendering/capture"
)

// Screenshot reads back the current back buffer and saves it to path.
// Call it after drawing and before SwapBuffers.
func (r *SceneRenderer) Screenshot(path string) error {
	w, h := r.width, r.height
	pix := make([]byte, w*h*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	img, err := capture.FromPixels(pix, w, h)
	if err != nil {
		return err
	}
	return capture.Save(path, img)
}

func (r *SceneRenderer) saveScreenshot(now time.Time) {
	if r.width <= 0 || r.height <= 0 {
		fmt.Println("Screenshot skipped: window is minimised")
		return
	}
	if r.ScreenshotDir != "" {
		if err := os.MkdirAll(r.ScreenshotDir, 0o755); err != nil {
			fmt.Printf("Screenshot failed: %v\n", err)
			return
		}
	}
	path := capture.Filename(r.ScreenshotDir, now)
	if err := r.Screenshot(path); err != nil {
		fmt.Printf("Screenshot failed: %v\n", err)
		return
	}
	fmt.Printf("Saved screenshot %s\n", path)
}
