package hud

// Pass is one step of drawing a frame
type Pass int

const (
	PassScene Pass = iota
	PassCapture
	PassOverlay
)

func (p Pass) String() string {
	switch p {
	case PassScene:
		return "scene"
	case PassCapture:
		return "capture"
	case PassOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

// FramePasses orders a frame's passes. Screenshots read back the scene
// before the overlay is drawn, so captures never contain the HUD.
func FramePasses(showOverlay, capture bool) []Pass {
	passes := []Pass{PassScene}
	if capture {
		passes = append(passes, PassCapture)
	}
	if showOverlay {
		passes = append(passes, PassOverlay)
	}
	return passes
}
