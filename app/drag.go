package app

import (
	"github.com/bvisness/portwire/app/core"
	"github.com/bvisness/portwire/util"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Movement in screen pixels before a press on a node body counts as a drag.
const dragDeadZone = 3

// BodyDrag does the widget-level hit testing of node bodies. It decides which
// node rectangle, if any, is being dragged and by how much each frame. The
// controller then decides whether that drag actually moves the node.
type BodyDrag struct {
	Pending  bool
	Dragging bool

	// Accepted is set once the controller has started moving the node. Until
	// then each frame reports the whole movement since the press.
	Accepted bool

	Key core.NodeID

	MouseStart core.V2
	mouseLast  core.V2

	// Camera zoom, to measure the dead zone in screen pixels.
	Zoom float32
}

// Call once per frame with the frame's pointer sample and the nodes as they
// were last drawn.
func (d *BodyDrag) Update(p core.Pointer, nodes []core.NodeView) map[core.NodeID]core.NodeDrag {
	if p.Released || !p.Down {
		d.reset()
		return nil
	}

	if p.Clicked {
		d.reset()
		if !p.HasPos {
			return nil
		}
		if id, ok := topmostNodeAt(p.Pos, nodes); ok {
			d.Pending = true
			d.Key = id
			d.MouseStart = p.Pos
			d.mouseLast = p.Pos
		}
		return nil
	}

	if !d.Pending && !d.Dragging {
		return nil
	}
	if !p.HasPos {
		// Pointer left the window; hold the drag without moving.
		if d.Accepted {
			return map[core.NodeID]core.NodeDrag{d.Key: {Active: true}}
		}
		return nil
	}

	if d.Pending {
		if rl.Vector2Length(rl.Vector2Subtract(p.Pos, d.MouseStart))*d.zoom() < dragDeadZone {
			// haven't dragged far enough
			return nil
		}
		d.Pending = false
		d.Dragging = true
	}

	delta := rl.Vector2Subtract(p.Pos, util.Tern(d.Accepted, d.mouseLast, d.MouseStart))
	d.mouseLast = p.Pos
	return map[core.NodeID]core.NodeDrag{d.Key: {Delta: delta, Active: true}}
}

// Accept marks the drag as taken by the controller. Later frames report
// frame-to-frame movement.
func (d *BodyDrag) Accept() {
	if d.Dragging {
		d.Accepted = true
	}
}

func (d *BodyDrag) zoom() float32 {
	return util.Tern(d.Zoom > 0, d.Zoom, 1)
}

func (d *BodyDrag) reset() {
	*d = BodyDrag{Zoom: d.Zoom}
}

// Later nodes are drawn on top, so they win.
func topmostNodeAt(pos core.V2, nodes []core.NodeView) (core.NodeID, bool) {
	for i := len(nodes) - 1; i >= 0; i-- {
		if rl.CheckCollisionPointRec(pos, nodes[i].Rect()) {
			return nodes[i].ID, true
		}
	}
	return "", false
}
