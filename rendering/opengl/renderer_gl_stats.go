package opengl

import (
	"boatscene/core"
	"boatscene/rendering/hud"
)

// UpdateStats feeds the overlay with the current frame rate and scene state
func (r *SceneRenderer) UpdateStats(fps float64) {
	if r.statsOverlay == nil || r.scene == nil {
		return
	}
	r.statsOverlay.UpdateStats(hud.Stats{
		FPS:         fps,
		FollowMode:  r.scene.Current == core.CameraModeFollow,
		HeadingDeg:  core.RadiansToDegrees(r.scene.Boat.Heading()),
		Highlighted: r.scene.Selected != core.NoPart,
	})
}

// StatsVisible reports whether F1 has the overlay switched on
func (r *SceneRenderer) StatsVisible() bool {
	return r.showStats && r.statsOverlay != nil
}
