package app

import (
	"github.com/bvisness/portwire/app/core"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// InputProvider is the pointer device. The editor reads it exactly once per
// frame through SamplePointer.
type InputProvider interface {
	IsMouseButtonPressed(button rl.MouseButton) bool
	IsMouseButtonReleased(button rl.MouseButton) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	IsCursorOnScreen() bool
	GetMousePosition() rl.Vector2
}

type RealInputProvider struct{}

func (p RealInputProvider) IsMouseButtonPressed(button rl.MouseButton) bool {
	return rl.IsMouseButtonPressed(button)
}
func (p RealInputProvider) IsMouseButtonReleased(button rl.MouseButton) bool {
	return rl.IsMouseButtonReleased(button)
}
func (p RealInputProvider) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}
func (p RealInputProvider) IsCursorOnScreen() bool {
	return rl.IsCursorOnScreen()
}
func (p RealInputProvider) GetMousePosition() rl.Vector2 {
	return rl.GetMousePosition()
}

// SamplePointer snapshots the primary button and the pointer position, in
// world coordinates. A cursor outside the window yields no position.
func SamplePointer(in InputProvider, cam *CameraState) core.Pointer {
	p := core.Pointer{
		Down:     in.IsMouseButtonDown(rl.MouseLeftButton),
		Clicked:  in.IsMouseButtonPressed(rl.MouseLeftButton),
		Released: in.IsMouseButtonReleased(rl.MouseLeftButton),
	}
	if in.IsCursorOnScreen() {
		p.Pos = cam.ScreenToWorld(in.GetMousePosition())
		p.HasPos = true
	}
	return p
}
