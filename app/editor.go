package app

import (
	"github.com/bvisness/portwire/app/core"
)

// Editor is the host side of one diagram: it samples the pointer, does the
// widget-level body hit testing, and feeds both to the controller.
type Editor struct {
	Controller *core.Controller
	Camera     *CameraState
	Input      InputProvider
	Debug      DebugState

	drag BodyDrag
	last core.FrameOutput
}

func NewEditor(s *Settings, in InputProvider, hooks core.Hooks) (*Editor, error) {
	nodes, err := s.BuildNodes()
	if err != nil {
		return nil, err
	}
	ctrl, err := core.NewController(nodes, core.WithHooks(hooks))
	if err != nil {
		return nil, err
	}

	return &Editor{
		Controller: ctrl,
		Camera:     NewCameraState(s.Camera),
		Input:      in,
		drag:       BodyDrag{Zoom: s.Camera.Zoom},
		last:       core.FrameOutput{Nodes: ctrl.View()},
	}, nil
}

// Frame runs one tick. The input device is read exactly once, at the top.
func (e *Editor) Frame() core.FrameOutput {
	p := SamplePointer(e.Input, e.Camera)
	drags := e.drag.Update(p, e.last.Nodes)

	out := e.Controller.Tick(core.FrameInput{Pointer: p, Drags: drags})
	if out.Mode == core.ModeDraggingNode {
		e.drag.Accept()
	}

	e.Debug.Observe(p, out)
	e.last = out
	return out
}

// Last returns the output of the most recent frame.
func (e *Editor) Last() core.FrameOutput {
	return e.last
}
