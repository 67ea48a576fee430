package app

import (
	"github.com/bvisness/portwire/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraState is the fixed world-to-screen transform of the editor. It has
// no rotation.
type CameraState struct {
	rl.Camera2D
}

func NewCameraState(s CameraSettings) *CameraState {
	return &CameraState{
		Camera2D: rl.Camera2D{
			Offset: rl.Vector2{X: s.OffsetX, Y: s.OffsetY},
			Zoom:   s.Zoom,
		},
	}
}

// WorldToScreen converts a world position to screen coordinates
func (c *CameraState) WorldToScreen(worldPos core.V2) core.V2 {
	return rl.GetWorldToScreen2D(worldPos, c.Camera2D)
}

// ScreenToWorld converts a screen position to world coordinates
func (c *CameraState) ScreenToWorld(screenPos core.V2) core.V2 {
	return rl.GetScreenToWorld2D(screenPos, c.Camera2D)
}
